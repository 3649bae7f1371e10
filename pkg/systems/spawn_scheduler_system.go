package systems

import (
	"log"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/config"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/game"
	"github.com/gonewx/molewhack/pkg/types"
	"github.com/gonewx/molewhack/pkg/utils"
)

// SpawnSchedulerSystem 生成调度系统
//
// 按固定间隔（spawnWait × speedMultiplier）触发一次生成尝试：
//  1. 向网格要一个随机空格子 —— 没有则本次静默跳过（棋盘已满是正常稳态）
//  2. 向对象池要一个随机待命敌人 —— 没有则跳过且不保留格子（池耗尽同样是正常稳态）
//  3. 占用格子，激活敌人：重置生命/缩放/颜色/点击，定位到格子中心并播放冒出动画
//
// 调度没有停止条件，游玩状态下会一直空转下去
type SpawnSchedulerSystem struct {
	entityManager *ecs.EntityManager
	gridSystem    *SpawnGridSystem
	poolSystem    *EnemyPoolSystem
	gridEntity    ecs.EntityID
	cfg           *config.GameConfig
	gradient      *config.HealthGradient
	layout        utils.GridLayout
	gameState     *game.GameState

	elapsed float64 // 距上次触发的累计时间（秒）
}

// NewSpawnSchedulerSystem 创建生成调度系统
func NewSpawnSchedulerSystem(em *ecs.EntityManager, grid *SpawnGridSystem, pool *EnemyPoolSystem,
	gridEntity ecs.EntityID, cfg *config.GameConfig, gradient *config.HealthGradient,
	layout utils.GridLayout, gs *game.GameState) *SpawnSchedulerSystem {
	return &SpawnSchedulerSystem{
		entityManager: em,
		gridSystem:    grid,
		poolSystem:    pool,
		gridEntity:    gridEntity,
		cfg:           cfg,
		gradient:      gradient,
		layout:        layout,
		gameState:     gs,
	}
}

// Update 累计时间并在到达间隔时触发生成
func (s *SpawnSchedulerSystem) Update(deltaTime float64) {
	if !s.gameState.IsRunning() {
		return
	}

	s.elapsed += deltaTime
	interval := s.cfg.SpawnInterval()
	for s.elapsed >= interval {
		s.elapsed -= interval
		s.Tick()
	}
}

// Tick 执行一次生成尝试（测试和无头工具可直接调用）
// 返回被激活的敌人实体 ID；本次没有生成时返回 0
func (s *SpawnSchedulerSystem) Tick() ecs.EntityID {
	col, row, ok := s.gridSystem.FindRandomFreeCell(s.gridEntity)
	if !ok {
		// 棋盘已满，静默跳过
		return 0
	}

	enemyID, ok := s.poolSystem.FindRandomInactiveEnemy()
	if !ok {
		// 池已耗尽：选中的格子不保留，留给下一次调度
		return 0
	}

	if err := s.gridSystem.OccupyCell(s.gridEntity, col, row, enemyID); err != nil {
		log.Printf("[SpawnScheduler] Failed to occupy cell (%d, %d): %v", col, row, err)
		return 0
	}

	s.activate(enemyID, col, row)
	return enemyID
}

// activate 把待命敌人重置为在场状态并定位到格子
func (s *SpawnSchedulerSystem) activate(id ecs.EntityID, col, row int) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok {
		return
	}

	enemy.State = components.EnemyActive
	enemy.Col = col
	enemy.Row = row

	// 生命值重置为体型上限
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id); ok {
		health.Max = enemy.BodyType.MaxHealth()
		health.Current = health.Max
	}

	// 定位到格子中心
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.X, pos.Y = s.layout.CellCenter(col, row)
	}

	// 视觉状态复位
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scale.ScaleX = 0
		scale.ScaleY = 0
	}
	if tint, ok := ecs.GetComponent[*components.TintComponent](s.entityManager, id); ok {
		if enemy.Variant == types.VariantColored {
			full := s.gradient.Evaluate(1.0)
			tint.R, tint.G, tint.B = full.R, full.G, full.B
		} else {
			base := config.BodyBaseColor(enemy.BodyType)
			tint.R, tint.G, tint.B = base.R, base.G, base.B
		}
	}
	if punch, ok := ecs.GetComponent[*components.PunchAnimationComponent](s.entityManager, id); ok {
		punch.Active = false
		punch.Elapsed = 0
	}
	if death, ok := ecs.GetComponent[*components.DeathAnimationComponent](s.entityManager, id); ok {
		death.Active = false
		death.Elapsed = 0
	}
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id); ok {
		flash.IsActive = false
		flash.Elapsed = 0
	}

	// 点击判定重新开启
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		clickable.Enabled = true
	}

	// 冒出动画
	if anim, ok := ecs.GetComponent[*components.SpawnAnimationComponent](s.entityManager, id); ok {
		anim.Elapsed = 0
		anim.Duration = s.cfg.SpawnAnimDuration
		anim.Active = true
	}

	log.Printf("[SpawnScheduler] Spawned enemy %d (body=%s, variant=%s) at cell (%d, %d)",
		id, enemy.BodyType, enemy.Variant, col, row)
}
