package systems

import (
	"log"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/utils"
)

// DeathSystem 推进死亡缩小动画并完成归池
//
// 动画期间敌人从当前大小缓入缩小到 0；
// 动画结束时敌人回到 Inactive 状态（可被再次生成），
// 同时释放它占用的网格格子
type DeathSystem struct {
	entityManager *ecs.EntityManager
	gridSystem    *SpawnGridSystem
	gridEntity    ecs.EntityID
}

// NewDeathSystem 创建死亡系统
func NewDeathSystem(em *ecs.EntityManager, grid *SpawnGridSystem, gridEntity ecs.EntityID) *DeathSystem {
	return &DeathSystem{
		entityManager: em,
		gridSystem:    grid,
		gridEntity:    gridEntity,
	}
}

// Update 推进所有正在播放的死亡动画
func (s *DeathSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.DeathAnimationComponent, *components.EnemyComponent](s.entityManager)

	for _, id := range entities {
		death, ok := ecs.GetComponent[*components.DeathAnimationComponent](s.entityManager, id)
		if !ok || !death.Active {
			continue
		}

		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if !ok {
			continue
		}

		death.Elapsed += deltaTime

		scale, hasScale := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)

		if death.IsComplete() {
			death.Active = false
			enemy.State = components.EnemyInactive
			if hasScale {
				scale.ScaleX = 0
				scale.ScaleY = 0
			}

			if err := s.gridSystem.ReleaseCell(s.gridEntity, enemy.Col, enemy.Row); err != nil {
				log.Printf("[DeathSystem] Failed to release cell (%d, %d): %v", enemy.Col, enemy.Row, err)
			}

			log.Printf("[DeathSystem] Enemy %d returned to pool, cell (%d, %d) released",
				id, enemy.Col, enemy.Row)
			continue
		}

		if hasScale {
			shrink := 1.0 - utils.EaseInCubic(death.GetProgress())
			scale.ScaleX = shrink
			scale.ScaleY = shrink
		}
	}
}
