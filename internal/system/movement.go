// internal/system/movement.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
)

// MovementSystem двигает врагов по пути и убирает выбывших:
// убитых (HP <= 0) и прошедших весь путь.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update advances every live enemy once. A dead enemy counts as killed even
// if it also ran out of path on this tick.
func (s *MovementSystem) Update() {
	path := s.ecs.Path
	s.ecs.Enemies.Retain(func(h types.Handle, e *component.Enemy) bool {
		escaped := e.Advance(path)
		switch {
		case !e.Alive():
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{Handle: h, Enemy: *e}})
			return false
		case escaped:
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyData{Handle: h, Enemy: *e}})
			return false
		}
		return true
	})
}
