// internal/system/visual_effect.go
package system

import (
	"go-path-defense/internal/entity"
)

// VisualEffectSystem ведёт таймеры чисто визуальных эффектов.
// На правила игры не влияет.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update гасит вспышки улучшения башен.
func (s *VisualEffectSystem) Update() {
	for _, tower := range s.ecs.Towers {
		if tower.UpgradeFlash > 0 {
			tower.UpgradeFlash--
		}
	}
}
