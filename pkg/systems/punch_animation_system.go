package systems

import (
	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/utils"
)

// 受击压缩深度
// 重击的压缩比轻击更深，横向相应外扩制造"被砸扁"的感觉
const (
	lightPunchDepth = 0.25
	heavyPunchDepth = 0.45
)

// PunchAnimationSystem 推进受击（拳击）动画
//
// 动画只写缩放，不参与伤害结算。播放完成后缩放恢复中立值 1.0。
// 敌人一旦进入死亡状态，受击动画立即停止（缩放交给死亡系统）
type PunchAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewPunchAnimationSystem 创建受击动画系统
func NewPunchAnimationSystem(em *ecs.EntityManager) *PunchAnimationSystem {
	return &PunchAnimationSystem{entityManager: em}
}

// Update 推进所有正在播放的受击动画
func (s *PunchAnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.PunchAnimationComponent, *components.ScaleComponent](s.entityManager)

	for _, id := range entities {
		punch, ok := ecs.GetComponent[*components.PunchAnimationComponent](s.entityManager, id)
		if !ok || !punch.Active {
			continue
		}

		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok {
			if enemy.State != components.EnemyActive {
				punch.Active = false
				continue
			}
		}

		scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		punch.Elapsed += deltaTime
		if punch.IsComplete() {
			punch.Active = false
			scale.ScaleX = 1.0
			scale.ScaleY = 1.0
			continue
		}

		depth := lightPunchDepth
		if punch.Kind == components.PunchHeavy {
			depth = heavyPunchDepth
		}

		squash := depth * utils.PunchCurve(punch.GetProgress())
		scale.ScaleY = 1.0 - squash
		scale.ScaleX = 1.0 + squash*0.5
	}
}
