package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/config"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/game"
	"github.com/gonewx/molewhack/pkg/types"
)

// 受击闪白强度
const (
	lightFlashIntensity = 0.45
	heavyFlashIntensity = 0.80
)

// DamageSystem 伤害结算系统
//
// 职责：
//   - 轻击：无条件扣血，播放轻击动画
//   - 重击：按未命中概率判定，命中才扣血并播放重击动画
//   - 变色变体在每次命中后按生命比例重算显示颜色
//   - 生命值降到 0 以下的瞬间触发死亡流程
//
// 死亡判定是严格小于 0：生命值恰好为 0 的敌人仍然存活。
// 受击动画不阻塞伤害结算，连续命中会打断并重播动画
type DamageSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	gradient      *config.HealthGradient
	cfg           *config.GameConfig
	gameState     *game.GameState
	scoreManager  *game.ScoreManager // 可为 nil（测试和无头模式）
}

// NewDamageSystem 创建伤害结算系统
// scoreManager 可为 nil，此时击杀只累计会话分数不刷新最高分
func NewDamageSystem(em *ecs.EntityManager, rng *rand.Rand, gradient *config.HealthGradient,
	cfg *config.GameConfig, gs *game.GameState, scores *game.ScoreManager) *DamageSystem {
	return &DamageSystem{
		entityManager: em,
		rng:           rng,
		gradient:      gradient,
		cfg:           cfg,
		gameState:     gs,
		scoreManager:  scores,
	}
}

// ApplyLightHit 对敌人施加轻击
// 无条件扣除 damage 点生命值；对非在场敌人是无害的空操作
func (s *DamageSystem) ApplyLightHit(id ecs.EntityID, damage int) {
	enemy, health, ok := s.activeTarget(id)
	if !ok {
		return
	}

	health.Current -= damage
	s.startPunch(id, components.PunchLight, lightFlashIntensity)
	s.recolor(id, enemy, health)

	log.Printf("[DamageSystem] Light hit: entity=%d damage=%d health=%d/%d",
		id, damage, health.Current, health.Max)

	s.checkDeath(id, enemy, health)
}

// ApplyHeavyHit 对敌人施加重击
//
// 伤害仅在均匀随机数严格大于 missChance 时生效（重击可能落空）。
// missChance 为 1.0 时任何抽样都不会超过它，重击必定落空
func (s *DamageSystem) ApplyHeavyHit(id ecs.EntityID, damage int, missChance float64) {
	enemy, health, ok := s.activeTarget(id)
	if !ok {
		return
	}

	if s.rng.Float64() <= missChance {
		log.Printf("[DamageSystem] Heavy hit whiffed: entity=%d missChance=%.2f", id, missChance)
		return
	}

	health.Current -= damage
	s.startPunch(id, components.PunchHeavy, heavyFlashIntensity)
	s.recolor(id, enemy, health)

	log.Printf("[DamageSystem] Heavy hit: entity=%d damage=%d health=%d/%d",
		id, damage, health.Current, health.Max)

	s.checkDeath(id, enemy, health)
}

// activeTarget 获取可受击的敌人组件
// 待命或垂死的敌人不是合法目标
func (s *DamageSystem) activeTarget(id ecs.EntityID) (*components.EnemyComponent, *components.HealthComponent, bool) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok || enemy.State != components.EnemyActive {
		return nil, nil, false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	return enemy, health, true
}

// startPunch 重启受击动画与闪白效果
func (s *DamageSystem) startPunch(id ecs.EntityID, kind components.PunchKind, flashIntensity float64) {
	if punch, ok := ecs.GetComponent[*components.PunchAnimationComponent](s.entityManager, id); ok {
		punch.Restart(kind, s.cfg.PunchAnimDuration)
	}
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id); ok {
		flash.Duration = s.cfg.FlashDuration
		flash.Elapsed = 0
		flash.Intensity = flashIntensity
		flash.IsActive = true
	}
}

// recolor 变色变体按生命比例重算显示颜色；普通变体不变
func (s *DamageSystem) recolor(id ecs.EntityID, enemy *components.EnemyComponent, health *components.HealthComponent) {
	if enemy.Variant != types.VariantColored {
		return
	}
	tint, ok := ecs.GetComponent[*components.TintComponent](s.entityManager, id)
	if !ok {
		return
	}
	col := s.gradient.Evaluate(health.Fraction())
	tint.R, tint.G, tint.B = col.R, col.G, col.B
}

// checkDeath 生命值严格小于 0 时进入死亡状态
func (s *DamageSystem) checkDeath(id ecs.EntityID, enemy *components.EnemyComponent, health *components.HealthComponent) {
	if health.Current >= 0 {
		return
	}

	enemy.State = components.EnemyDying

	// 垂死的敌人立刻退出攻击目标集合
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		clickable.Enabled = false
	}

	// 受击动画让位给死亡缩小动画
	if punch, ok := ecs.GetComponent[*components.PunchAnimationComponent](s.entityManager, id); ok {
		punch.Active = false
	}

	// 变色变体死亡瞬间定格为零生命渐变色
	if enemy.Variant == types.VariantColored {
		if tint, ok := ecs.GetComponent[*components.TintComponent](s.entityManager, id); ok {
			col := s.gradient.Evaluate(0)
			tint.R, tint.G, tint.B = col.R, col.G, col.B
		}
	}

	if death, ok := ecs.GetComponent[*components.DeathAnimationComponent](s.entityManager, id); ok {
		death.Elapsed = 0
		death.Duration = s.cfg.DeathAnimDuration
		death.Active = true
	}

	points := enemy.BodyType.Points()
	s.gameState.AddScore(points)
	if s.scoreManager != nil {
		s.scoreManager.UpdateIfHigher(s.gameState.Score)
	}

	log.Printf("[DamageSystem] Enemy %d dying (body=%s, +%d points, score=%d)",
		id, enemy.BodyType, points, s.gameState.Score)
}
