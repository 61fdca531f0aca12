package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
)

// CombatSystem управляет перезарядкой и атакой башен
type CombatSystem struct {
	ecs   *entity.ECS
	rules defs.TowerRules
}

func NewCombatSystem(ecs *entity.ECS, rules defs.TowerRules) *CombatSystem {
	return &CombatSystem{ecs: ecs, rules: rules}
}

// Update ticks every tower's cooldown, then lets each ready tower fire one
// bullet at its target. Towers are processed in placement order.
func (s *CombatSystem) Update() {
	for _, tower := range s.ecs.Towers {
		tower.Tick()
		if !tower.IsReady() {
			continue
		}

		target, ok := s.AcquireTarget(tower)
		if !ok {
			continue
		}

		s.ecs.Bullets = append(s.ecs.Bullets,
			component.NewBullet(tower.Pos, target, s.rules.BulletSpeed, tower.Damage(s.rules)))
		tower.Reload()
	}
}

// AcquireTarget returns the first live enemy, in spawn order, within range.
// Distance is not otherwise compared: the first match wins.
func (s *CombatSystem) AcquireTarget(tower *component.Tower) (types.Handle, bool) {
	for _, h := range s.ecs.Enemies.Handles() {
		e, ok := s.ecs.Enemies.Get(h)
		if !ok || !e.Alive() {
			continue
		}
		if tower.InRange(e.Pos) {
			return h, true
		}
	}
	return types.Nil, false
}
