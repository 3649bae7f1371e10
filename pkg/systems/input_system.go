package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/config"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/game"
	"github.com/gonewx/molewhack/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem 处理用户输入
//
// 主点击（左键/触摸）→ 轻击；副点击（右键）→ 重击，
// 重击的未命中概率在点击瞬间随机抽取。
// 点中没有开启点击判定的实体等同于点空（无害的空操作）。
// ESC 切换暂停/恢复
type InputSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	damageSystem  *DamageSystem
	cfg           *config.GameConfig
	rng           *rand.Rand
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, ds *DamageSystem,
	cfg *config.GameConfig, rng *rand.Rand) *InputSystem {
	return &InputSystem{
		entityManager: em,
		gameState:     gs,
		damageSystem:  ds,
		cfg:           cfg,
		rng:           rng,
	}
}

// Update 处理本帧输入
func (s *InputSystem) Update() {
	// ESC 键切换暂停/恢复
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.gameState.TogglePause()
		if s.gameState.IsPaused {
			log.Printf("[InputSystem] 游戏暂停 (ESC)")
		} else {
			log.Printf("[InputSystem] 游戏恢复 (ESC)")
		}
		return
	}

	// 暂停时屏蔽游戏世界交互
	if !s.gameState.IsRunning() {
		return
	}

	if pressed, x, y := utils.IsPrimaryJustPressed(); pressed {
		if id, hit := s.HitTest(float64(x), float64(y)); hit {
			s.damageSystem.ApplyLightHit(id, s.cfg.LightDamage)
		}
	}

	if pressed, x, y := utils.IsSecondaryJustPressed(); pressed {
		if id, hit := s.HitTest(float64(x), float64(y)); hit {
			missChance := s.rng.Float64()
			s.damageSystem.ApplyHeavyHit(id, s.cfg.HeavyDamage, missChance)
		}
	}
}

// HitTest 查找点击位置命中的可点击实体
// 只考虑开启了点击判定的实体（垂死和待命的敌人自动排除）
func (s *InputSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !ok || !clickable.Enabled {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if utils.PointInCircle(x, y, pos.X, pos.Y, clickable.Radius) {
			return id, true
		}
	}

	return 0, false
}
