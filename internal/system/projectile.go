// internal/system/projectile.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Update moves each bullet, applies hits and drops every bullet that
// resolved this tick. Survivors go into a fresh slice.
func (s *ProjectileSystem) Update() {
	if len(s.ecs.Bullets) == 0 {
		return
	}

	next := make([]component.Bullet, 0, len(s.ecs.Bullets))
	for _, b := range s.ecs.Bullets {
		target, _ := s.ecs.Enemies.Get(b.Target)
		b.Step(target)
		if b.Active {
			next = append(next, b)
		}
	}
	s.ecs.Bullets = next
}
