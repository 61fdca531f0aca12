// internal/system/economy.go
package system

import (
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// EconomySystem начисляет награду за убийство и снимает жизни за прорыв.
// Подписана на EnemyKilled и EnemyEscaped; каждое событие приходит ровно
// один раз, в момент удаления врага.
type EconomySystem struct {
	ecs *entity.ECS
}

func NewEconomySystem(ecs *entity.ECS) *EconomySystem {
	return &EconomySystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *EconomySystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyData)
	if !ok {
		return
	}

	switch e.Type {
	case event.EnemyKilled:
		s.ecs.Session.Money += data.Enemy.Reward
	case event.EnemyEscaped:
		s.ecs.Session.Lives--
	}
}

// Charge deducts amount if the balance allows it.
func (s *EconomySystem) Charge(amount int) bool {
	return s.ecs.Session.Spend(amount)
}

// CanAfford reports whether amount can be charged.
func (s *EconomySystem) CanAfford(amount int) bool {
	return s.ecs.Session.CanAfford(amount)
}
