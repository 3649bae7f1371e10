package systems

import (
	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/ecs"
)

// FlashEffectSystem 推进受击闪白效果的衰减
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪白效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{entityManager: em}
}

// Update 推进所有激活的闪白效果
func (s *FlashEffectSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager) {
		flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)
		if !ok || !flash.IsActive {
			continue
		}

		flash.Elapsed += deltaTime
		if flash.Elapsed >= flash.Duration {
			flash.IsActive = false
			flash.Elapsed = 0
		}
	}
}
