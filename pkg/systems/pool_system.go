package systems

import (
	"log"
	"math/rand"
	"sort"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/config"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/types"
)

// EnemyPoolSystem 敌人对象池系统
//
// 职责：
//   - 场景构建时按配置预创建全部敌人实体（之后不再创建或销毁）
//   - 提供"随机待命敌人"查找，供生成调度器激活
//
// 每个敌人的行为变体在创建时以 50/50 概率随机决定一次：
// Plain（受击只扣血）或 Colored（受击额外按生命比例变色）
type EnemyPoolSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewEnemyPoolSystem 创建敌人对象池系统
func NewEnemyPoolSystem(em *ecs.EntityManager, rng *rand.Rand) *EnemyPoolSystem {
	return &EnemyPoolSystem{
		entityManager: em,
		rng:           rng,
	}
}

// BuildPool 按配置预创建全部敌人实体
// 返回创建的实体 ID 列表（ID 在池的整个生命周期内稳定）
func (s *EnemyPoolSystem) BuildPool(entries []config.PoolEntry) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0)

	for _, entry := range entries {
		bodyType := types.BodyTypeFromString(entry.BodyType)
		for i := 0; i < entry.Count; i++ {
			ids = append(ids, s.createEnemy(bodyType))
		}
	}

	log.Printf("[EnemyPoolSystem] Pool built: %d enemies", len(ids))
	return ids
}

// FindRandomInactiveEnemy 在所有待命（Inactive）敌人中等概率随机选择一个
//
// 返回:
//   - ecs.EntityID: 选中的敌人实体
//   - bool: false 表示池已耗尽（所有敌人都在场上）
func (s *EnemyPoolSystem) FindRandomInactiveEnemy() (ecs.EntityID, bool) {
	candidates := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if enemy.State == components.EnemyInactive {
			candidates = append(candidates, id)
		}
	}

	if len(candidates) == 0 {
		return 0, false
	}

	// 实体查询的遍历顺序不稳定，排序后再随机挑选保证同种子可复现
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	return candidates[s.rng.Intn(len(candidates))], true
}

// ActiveCount 返回当前在场（Active 或 Dying）的敌人数量
func (s *EnemyPoolSystem) ActiveCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if enemy.State != components.EnemyInactive {
			count++
		}
	}
	return count
}

// createEnemy 创建单个待命敌人实体并挂载全部组件
func (s *EnemyPoolSystem) createEnemy(bodyType types.BodyType) ecs.EntityID {
	id := s.entityManager.CreateEntity()

	variant := types.VariantPlain
	if s.rng.Intn(2) == 1 {
		variant = types.VariantColored
	}

	base := config.BodyBaseColor(bodyType)

	s.entityManager.AddComponent(id, &components.EnemyComponent{
		BodyType: bodyType,
		Variant:  variant,
		State:    components.EnemyInactive,
	})
	s.entityManager.AddComponent(id, &components.HealthComponent{})
	s.entityManager.AddComponent(id, &components.PositionComponent{})
	s.entityManager.AddComponent(id, &components.ScaleComponent{})
	s.entityManager.AddComponent(id, &components.TintComponent{R: base.R, G: base.G, B: base.B})
	s.entityManager.AddComponent(id, &components.ClickableComponent{Radius: bodyType.Radius()})
	s.entityManager.AddComponent(id, &components.PunchAnimationComponent{})
	s.entityManager.AddComponent(id, &components.DeathAnimationComponent{})
	s.entityManager.AddComponent(id, &components.SpawnAnimationComponent{})
	s.entityManager.AddComponent(id, &components.FlashEffectComponent{})

	return id
}
