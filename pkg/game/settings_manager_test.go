package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 创建指向临时目录的 gdata 管理器
func newTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	m, err := gdata.Open(gdata.Config{AppName: "molewhack_test"})
	if err != nil {
		t.Fatalf("Failed to open gdata storage: %v", err)
	}
	return m
}

// TestSettingsManagerDefaults 测试无存档时回落到默认设置
func TestSettingsManagerDefaults(t *testing.T) {
	m := newTestGdata(t)
	sm := NewSettingsManager(m)

	settings := sm.Settings()
	if settings.Fullscreen {
		t.Error("Expected fullscreen off by default")
	}
	if !settings.ShowGrid {
		t.Error("Expected grid lines on by default")
	}
}

// TestSettingsManagerNilDegradation 测试存储不可用时的降级模式
func TestSettingsManagerNilDegradation(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.Settings() == nil {
		t.Fatal("Expected default settings in degraded mode")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should be a no-op, got: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load in degraded mode should be a no-op, got: %v", err)
	}
}

// TestSettingsManagerSaveLoad 测试设置保存后可被新实例加载
func TestSettingsManagerSaveLoad(t *testing.T) {
	m := newTestGdata(t)

	sm := NewSettingsManager(m)
	sm.Settings().Fullscreen = true
	sm.Settings().ShowGrid = false
	if err := sm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 新实例模拟重启后加载
	reloaded := NewSettingsManager(m)
	settings := reloaded.Settings()
	if !settings.Fullscreen {
		t.Error("Expected fullscreen to persist")
	}
	if settings.ShowGrid {
		t.Error("Expected grid setting to persist")
	}
}
