// component/tower.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

type Tower struct {
	ID           types.EntityID
	Pos          types.Point // фиксируется при постройке
	Range        float64     // радиус обнаружения
	Level        int         // 1..MaxLevel
	Cooldown     int         // тиков между выстрелами
	Timer        int         // тиков до следующего выстрела, 0 = готова
	UpgradeFlash int         // тиков до конца вспышки улучшения (только визуал)
}

// NewTower creates a level 1 tower ready to fire.
func NewTower(id types.EntityID, pos types.Point, rules defs.TowerRules) *Tower {
	return &Tower{
		ID:       id,
		Pos:      pos,
		Range:    rules.Range,
		Level:    1,
		Cooldown: rules.BaseCooldown,
	}
}

func (t *Tower) IsReady() bool {
	return t.Timer == 0
}

// Tick decrements the cooldown timer, stopping at zero.
func (t *Tower) Tick() {
	if t.Timer > 0 {
		t.Timer--
	}
}

// Reload starts a full cooldown after a shot.
func (t *Tower) Reload() {
	t.Timer = t.Cooldown
}

// InRange reports whether p lies within the detection radius (inclusive).
func (t *Tower) InRange(p types.Point) bool {
	return t.Pos.DistanceTo(p) <= t.Range
}

// Damage — урон снаряда при текущем уровне.
func (t *Tower) Damage(rules defs.TowerRules) int {
	return rules.Damage(t.Level)
}

// UpgradeCost — цена следующего улучшения. Баланс не проверяется.
func (t *Tower) UpgradeCost(rules defs.TowerRules) int {
	return rules.UpgradeCost(t.Level)
}

// CanUpgrade reports whether the tower is below the maximum level.
func (t *Tower) CanUpgrade(rules defs.TowerRules) bool {
	return t.Level < rules.MaxLevel
}

// Upgrade raises the level by one and shortens the cooldown. At the maximum
// level it does nothing and returns false.
func (t *Tower) Upgrade(rules defs.TowerRules) bool {
	if !t.CanUpgrade(rules) {
		return false
	}
	t.Level++
	t.Cooldown = rules.NextCooldown(t.Cooldown)
	t.Timer = min(t.Timer, t.Cooldown)
	t.UpgradeFlash = rules.UpgradeFlash
	return true
}
