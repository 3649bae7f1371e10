package game

import "testing"

// TestScoreManagerStartsAtZero 测试无存档时最高分为 0
func TestScoreManagerStartsAtZero(t *testing.T) {
	sm := NewScoreManager(newTestGdata(t))

	if got := sm.HighScore(); got != 0 {
		t.Errorf("Expected high score 0, got %d", got)
	}
}

// TestUpdateIfHigher 测试只有超过历史记录才刷新
func TestUpdateIfHigher(t *testing.T) {
	sm := NewScoreManager(newTestGdata(t))

	if !sm.UpdateIfHigher(100) {
		t.Error("Expected first score to become the high score")
	}
	if sm.HighScore() != 100 {
		t.Errorf("Expected high score 100, got %d", sm.HighScore())
	}

	// 持平和更低的分数都不刷新
	if sm.UpdateIfHigher(100) {
		t.Error("Equal score must not update the record")
	}
	if sm.UpdateIfHigher(50) {
		t.Error("Lower score must not update the record")
	}
	if sm.HighScore() != 100 {
		t.Errorf("High score changed unexpectedly: %d", sm.HighScore())
	}

	if !sm.UpdateIfHigher(150) {
		t.Error("Higher score must update the record")
	}
	if sm.HighScore() != 150 {
		t.Errorf("Expected high score 150, got %d", sm.HighScore())
	}
}

// TestHighScorePersists 测试最高分写入后可被新实例加载
func TestHighScorePersists(t *testing.T) {
	m := newTestGdata(t)

	sm := NewScoreManager(m)
	sm.UpdateIfHigher(230)

	reloaded := NewScoreManager(m)
	if got := reloaded.HighScore(); got != 230 {
		t.Errorf("Expected persisted high score 230, got %d", got)
	}
}

// TestScoreManagerNilDegradation 测试降级模式下最高分仅保留在内存
func TestScoreManagerNilDegradation(t *testing.T) {
	sm := NewScoreManager(nil)

	if !sm.UpdateIfHigher(42) {
		t.Error("Expected in-memory update to succeed")
	}
	if sm.HighScore() != 42 {
		t.Errorf("Expected high score 42, got %d", sm.HighScore())
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should be a no-op, got: %v", err)
	}
}
