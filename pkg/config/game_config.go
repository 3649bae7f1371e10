// Package config 提供游戏配置的加载、校验与取色逻辑
package config

import (
	"fmt"
	"os"

	"github.com/gonewx/molewhack/pkg/embedded"
	"github.com/gonewx/molewhack/pkg/types"
	"gopkg.in/yaml.v3"
)

// PoolEntry 对象池中单个体型的预创建数量配置
type PoolEntry struct {
	BodyType string `yaml:"bodyType"` // 体型："small", "medium", "large"
	Count    int    `yaml:"count"`    // 预创建的实体数量
}

// GameConfig 游戏配置数据结构
// 所有可调的玩法数值都集中在这里，从 YAML 文件加载
type GameConfig struct {
	GridSize int         `yaml:"gridSize"` // 生成网格边长（格子数）
	Pools    []PoolEntry `yaml:"pools"`    // 每种体型的对象池大小

	SpawnWait       float64 `yaml:"spawnWait"`       // 生成调度基础间隔（秒）
	SpeedMultiplier float64 `yaml:"speedMultiplier"` // 间隔倍率（实际间隔 = SpawnWait × SpeedMultiplier）

	LightDamage int `yaml:"lightDamage"` // 轻击伤害
	HeavyDamage int `yaml:"heavyDamage"` // 重击伤害

	SpawnAnimDuration float64 `yaml:"spawnAnimDuration"` // 生成动画时长（秒）
	DeathAnimDuration float64 `yaml:"deathAnimDuration"` // 死亡缩小动画时长（秒）
	PunchAnimDuration float64 `yaml:"punchAnimDuration"` // 受击动画时长（秒）
	FlashDuration     float64 `yaml:"flashDuration"`     // 受击闪白时长（秒）

	Gradient []GradientStop `yaml:"gradient"` // 生命值→颜色渐变（变色变体使用）
}

// maxGridSize 网格边长上限
// 空闲格子查找是每次全表扫描，网格过大会让扫描成本失控
const maxGridSize = 50

// LoadGameConfig 从嵌入资源加载游戏配置
// 路径相对于项目根目录，如 "assets/config/game.yaml"
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return parseGameConfig(data, path)
}

// LoadGameConfigFile 从磁盘文件加载游戏配置（命令行工具使用）
func LoadGameConfigFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	return parseGameConfig(data, path)
}

// parseGameConfig 解析并校验 YAML 配置数据
func parseGameConfig(data []byte, source string) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML from %s: %w", source, err)
	}

	applyDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", source, err)
	}

	return &cfg, nil
}

// DefaultGameConfig 返回内置默认配置（测试和降级模式使用）
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{
		GridSize: 4,
		Pools: []PoolEntry{
			{BodyType: "small", Count: 4},
			{BodyType: "medium", Count: 3},
			{BodyType: "large", Count: 2},
		},
	}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults 为缺失的可选字段设置默认值
// 确保旧配置文件可正常加载
func applyDefaults(cfg *GameConfig) {
	if cfg.GridSize == 0 {
		cfg.GridSize = 4
	}
	if cfg.SpawnWait == 0 {
		cfg.SpawnWait = 1.2
	}
	if cfg.SpeedMultiplier == 0 {
		cfg.SpeedMultiplier = 1.0
	}
	if cfg.LightDamage == 0 {
		cfg.LightDamage = 1
	}
	if cfg.HeavyDamage == 0 {
		cfg.HeavyDamage = 2
	}
	if cfg.SpawnAnimDuration == 0 {
		cfg.SpawnAnimDuration = 0.35
	}
	if cfg.DeathAnimDuration == 0 {
		cfg.DeathAnimDuration = 0.5
	}
	if cfg.PunchAnimDuration == 0 {
		cfg.PunchAnimDuration = 0.18
	}
	if cfg.FlashDuration == 0 {
		cfg.FlashDuration = 0.12
	}
	if len(cfg.Gradient) == 0 {
		cfg.Gradient = DefaultGradientStops()
	}
}

// validateGameConfig 验证配置的完整性和合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.GridSize < 1 || cfg.GridSize > maxGridSize {
		return fmt.Errorf("gridSize must be in range 1..%d, got %d", maxGridSize, cfg.GridSize)
	}
	if len(cfg.Pools) == 0 {
		return fmt.Errorf("at least one pool entry is required")
	}
	for i, entry := range cfg.Pools {
		if bt := types.BodyTypeFromString(entry.BodyType); !bt.IsValid() {
			return fmt.Errorf("pools[%d]: unknown bodyType %q", i, entry.BodyType)
		}
		if entry.Count < 1 {
			return fmt.Errorf("pools[%d]: count must be at least 1, got %d", i, entry.Count)
		}
	}
	if cfg.SpawnWait <= 0 {
		return fmt.Errorf("spawnWait must be positive, got %v", cfg.SpawnWait)
	}
	if cfg.SpeedMultiplier <= 0 {
		return fmt.Errorf("speedMultiplier must be positive, got %v", cfg.SpeedMultiplier)
	}
	if cfg.LightDamage < 1 {
		return fmt.Errorf("lightDamage must be at least 1, got %d", cfg.LightDamage)
	}
	if cfg.HeavyDamage < 1 {
		return fmt.Errorf("heavyDamage must be at least 1, got %d", cfg.HeavyDamage)
	}
	for name, d := range map[string]float64{
		"spawnAnimDuration": cfg.SpawnAnimDuration,
		"deathAnimDuration": cfg.DeathAnimDuration,
		"punchAnimDuration": cfg.PunchAnimDuration,
		"flashDuration":     cfg.FlashDuration,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}
	if _, err := NewHealthGradient(cfg.Gradient); err != nil {
		return fmt.Errorf("gradient: %w", err)
	}
	return nil
}

// SpawnInterval 返回生成调度的实际触发间隔（秒）
func (cfg *GameConfig) SpawnInterval() float64 {
	return cfg.SpawnWait * cfg.SpeedMultiplier
}

// TotalPoolSize 返回配置的对象池总容量
func (cfg *GameConfig) TotalPoolSize() int {
	total := 0
	for _, entry := range cfg.Pools {
		total += entry.Count
	}
	return total
}
