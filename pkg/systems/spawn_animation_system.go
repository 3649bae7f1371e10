package systems

import (
	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/utils"
)

// SpawnAnimationSystem 推进生成（冒出）动画
// 敌人激活后在动画时长内从 0 缓出放大到原始大小
type SpawnAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewSpawnAnimationSystem 创建生成动画系统
func NewSpawnAnimationSystem(em *ecs.EntityManager) *SpawnAnimationSystem {
	return &SpawnAnimationSystem{entityManager: em}
}

// Update 推进所有正在播放的生成动画
func (s *SpawnAnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.SpawnAnimationComponent, *components.ScaleComponent](s.entityManager)

	for _, id := range entities {
		anim, ok := ecs.GetComponent[*components.SpawnAnimationComponent](s.entityManager, id)
		if !ok || !anim.Active {
			continue
		}

		// 生成动画尚未结束就受击或死亡时，缩放让位给对应动画
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok {
			if enemy.State != components.EnemyActive {
				anim.Active = false
				continue
			}
		}
		if punch, ok := ecs.GetComponent[*components.PunchAnimationComponent](s.entityManager, id); ok {
			if punch.Active {
				anim.Active = false
				continue
			}
		}

		scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		anim.Elapsed += deltaTime
		if anim.IsComplete() {
			anim.Active = false
			scale.ScaleX = 1.0
			scale.ScaleY = 1.0
			continue
		}

		grow := utils.EaseOutCubic(anim.GetProgress())
		scale.ScaleX = grow
		scale.ScaleY = grow
	}
}
