// internal/system/state.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// StateSystem определяет конец игры: поражение при lives <= 0,
// победу после последней волны без живых врагов.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update sets the session outcome once. Defeat is checked first.
func (s *StateSystem) Update() {
	session := s.ecs.Session
	if session.Over() {
		return
	}

	switch {
	case session.Lives <= 0:
		session.Outcome = component.OutcomeDefeat
	case s.ecs.Wave.Phase == component.WaveAllComplete && s.ecs.Enemies.Len() == 0:
		session.Outcome = component.OutcomeVictory
	default:
		return
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: session.Outcome})
}

func (s *StateSystem) Current() component.Outcome {
	return s.ecs.Session.Outcome
}
