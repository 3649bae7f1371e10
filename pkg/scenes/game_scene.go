// Package scenes 组装并驱动各游戏场景
package scenes

import (
	"math/rand"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/config"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/game"
	"github.com/gonewx/molewhack/pkg/systems"
	"github.com/gonewx/molewhack/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 打地鼠主场景
// 持有实体管理器和全部系统，按固定顺序驱动它们
type GameScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	scoreManager  *game.ScoreManager

	inputSystem     *systems.InputSystem
	spawnScheduler  *systems.SpawnSchedulerSystem
	spawnAnimSystem *systems.SpawnAnimationSystem
	punchAnimSystem *systems.PunchAnimationSystem
	flashSystem     *systems.FlashEffectSystem
	deathSystem     *systems.DeathSystem
	renderSystem    *systems.RenderSystem
}

// NewGameScene 构建一局新游戏
//
// seed 决定本局的全部随机行为（格子选择、池选择、变体分配、重击落空），
// 传入固定种子可以得到完全可复现的一局
func NewGameScene(cfg *config.GameConfig, settingsManager *game.SettingsManager,
	scoreManager *game.ScoreManager, seed int64) (*GameScene, error) {
	gradient, err := config.NewHealthGradient(cfg.Gradient)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	em := ecs.NewEntityManager()
	gameState := game.NewGameState()
	layout := utils.NewGridLayout(cfg.GridSize)

	// 网格实体
	gridEntity := em.CreateEntity()
	em.AddComponent(gridEntity, components.NewSpawnGridComponent(cfg.GridSize))

	// 系统装配
	gridSystem := systems.NewSpawnGridSystem(em, rng)
	poolSystem := systems.NewEnemyPoolSystem(em, rng)
	poolSystem.BuildPool(cfg.Pools)

	damageSystem := systems.NewDamageSystem(em, rng, gradient, cfg, gameState, scoreManager)

	scene := &GameScene{
		entityManager: em,
		gameState:     gameState,
		scoreManager:  scoreManager,

		inputSystem:     systems.NewInputSystem(em, gameState, damageSystem, cfg, rng),
		spawnScheduler:  systems.NewSpawnSchedulerSystem(em, gridSystem, poolSystem, gridEntity, cfg, gradient, layout, gameState),
		spawnAnimSystem: systems.NewSpawnAnimationSystem(em),
		punchAnimSystem: systems.NewPunchAnimationSystem(em),
		flashSystem:     systems.NewFlashEffectSystem(em),
		deathSystem:     systems.NewDeathSystem(em, gridSystem, gridEntity),
		renderSystem:    systems.NewRenderSystem(em, layout, settingsManager.Settings()),
	}

	return scene, nil
}

// Update 推进一帧游戏逻辑
// 输入总是处理（暂停状态下需要响应恢复），世界只在运行时推进
func (s *GameScene) Update(deltaTime float64) {
	s.inputSystem.Update()

	if !s.gameState.IsRunning() {
		return
	}

	s.spawnScheduler.Update(deltaTime)
	s.spawnAnimSystem.Update(deltaTime)
	s.punchAnimSystem.Update(deltaTime)
	s.flashSystem.Update(deltaTime)
	s.deathSystem.Update(deltaTime)
}

// Draw 渲染场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	highScore := 0
	if s.scoreManager != nil {
		highScore = s.scoreManager.HighScore()
	}
	s.renderSystem.Draw(screen, s.gameState, highScore)
}
