// internal/app/tower_management.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
)

// ClickResult describes what a board click did.
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickPlaced
	ClickSelected
	ClickRemoved
)

func (r ClickResult) String() string {
	switch r {
	case ClickPlaced:
		return "placed"
	case ClickSelected:
		return "selected"
	case ClickRemoved:
		return "removed"
	default:
		return "ignored"
	}
}

// HandleClick routes a board click. A click on a tower selects it, or
// removes it when remove is set. A click elsewhere places a tower if the
// player can pay; with remove set it does nothing.
func (g *Game) HandleClick(pos types.Point, remove bool) ClickResult {
	if g.IsOver() {
		return ClickIgnored
	}

	if tower, ok := g.TowerAt(pos); ok {
		if remove {
			g.RemoveTower(tower.ID)
			return ClickRemoved
		}
		g.SelectTower(tower.ID)
		return ClickSelected
	}

	if remove {
		return ClickIgnored
	}
	if g.PlaceTower(pos) {
		return ClickPlaced
	}
	return ClickIgnored
}

// PlaceTower attempts to build a tower at pos. It fails silently when pos is
// within half a tower size of another tower or the player cannot pay.
func (g *Game) PlaceTower(pos types.Point) bool {
	if g.IsOver() || !g.canPlaceTower(pos) {
		return false
	}
	if !g.EconomySystem.Charge(g.TowerRules.Cost) {
		return false
	}

	tower := component.NewTower(g.ECS.NewEntity(), pos, g.TowerRules)
	g.ECS.Towers = append(g.ECS.Towers, tower)
	g.selectedTower = 0

	g.dispatchTower(event.TowerPlaced, tower, g.TowerRules.Cost)
	return true
}

func (g *Game) canPlaceTower(pos types.Point) bool {
	if _, occupied := g.TowerAt(pos); occupied {
		return false
	}
	return g.EconomySystem.CanAfford(g.TowerRules.Cost)
}

// RemoveTower deletes a tower without refund.
func (g *Game) RemoveTower(id types.EntityID) bool {
	tower, ok := g.ECS.Tower(id)
	if !ok || g.IsOver() {
		return false
	}
	g.ECS.RemoveTower(id)
	if g.selectedTower == id {
		g.selectedTower = 0
	}

	g.dispatchTower(event.TowerRemoved, tower, 0)
	return true
}

// SelectTower marks the tower that upgrade commands apply to.
func (g *Game) SelectTower(id types.EntityID) bool {
	if _, ok := g.ECS.Tower(id); !ok {
		return false
	}
	g.selectedTower = id
	return true
}

// SelectedTower returns the selected tower, if any.
func (g *Game) SelectedTower() (*component.Tower, bool) {
	if g.selectedTower == 0 {
		return nil, false
	}
	return g.ECS.Tower(g.selectedTower)
}

// UpgradeSelected pays for and applies one upgrade of the selected tower.
// A max-level tower is left alone and nothing is charged.
func (g *Game) UpgradeSelected() bool {
	tower, ok := g.SelectedTower()
	if !ok || g.IsOver() || !tower.CanUpgrade(g.TowerRules) {
		return false
	}

	cost := tower.UpgradeCost(g.TowerRules)
	if !g.EconomySystem.Charge(cost) {
		return false
	}
	tower.Upgrade(g.TowerRules)

	g.dispatchTower(event.TowerUpgraded, tower, cost)
	return true
}

// TowerAt returns the first tower, in placement order, whose center is
// strictly closer than half a tower size to pos.
func (g *Game) TowerAt(pos types.Point) (*component.Tower, bool) {
	half := g.TowerRules.Size / 2
	for _, tower := range g.ECS.Towers {
		if tower.Pos.DistanceTo(pos) < half {
			return tower, true
		}
	}
	return nil, false
}

func (g *Game) dispatchTower(t event.EventType, tower *component.Tower, cost int) {
	g.EventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.TowerData{ID: tower.ID, Pos: tower.Pos, Level: tower.Level, Cost: cost},
	})
}
