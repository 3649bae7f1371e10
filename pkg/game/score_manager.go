package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScoreData 持久化的分数记录
type ScoreData struct {
	HighScore int `yaml:"highScore"` // 历史最高分
}

// ScoreManager 最高分管理器
//
// 职责：
//   - 启动时加载历史最高分
//   - 本局分数超过历史记录时立即持久化
//
// 数据通过 gdata 存储（YAML 序列化，与设置保持一致）
type ScoreManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，最高分仅保留在内存）
	data         *ScoreData
}

// 存储路径常量
const (
	scoreObject   = "scores"
	scoreProperty = "global"
)

// NewScoreManager 创建最高分管理器并加载历史记录
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{
		gdataManager: gdataManager,
		data:         &ScoreData{},
	}

	if err := sm.Load(); err != nil {
		log.Printf("[ScoreManager] Warning: Failed to load high score: %v (starting from 0)", err)
	}

	return sm
}

// Load 从 gdata 加载最高分
func (sm *ScoreManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}

	raw, err := sm.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load score data: %w", err)
	}

	var loaded ScoreData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("failed to parse score data: %w", err)
	}

	sm.data = &loaded
	return nil
}

// Save 把最高分写入 gdata
// 降级模式下是无害的空操作
func (sm *ScoreManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("failed to serialize score data: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(scoreObject, scoreProperty, raw); err != nil {
		return fmt.Errorf("failed to save score data: %w", err)
	}
	return nil
}

// HighScore 返回当前最高分
func (sm *ScoreManager) HighScore() int {
	return sm.data.HighScore
}

// UpdateIfHigher 用本局分数刷新最高分
// 刷新成功时立即持久化并返回 true
func (sm *ScoreManager) UpdateIfHigher(score int) bool {
	if score <= sm.data.HighScore {
		return false
	}

	sm.data.HighScore = score
	if err := sm.Save(); err != nil {
		log.Printf("[ScoreManager] Warning: Failed to save high score: %v", err)
	}
	return true
}
