// internal/defs/towers.go
package defs

// TowerRules holds the static data for the single tower type and its levels.
type TowerRules struct {
	Cost            int
	Range           float64
	Size            float64
	MaxLevel        int
	BaseCooldown    int
	CooldownStep    int
	CooldownFloor   int
	UpgradeBaseCost int
	UpgradeCostStep int
	UpgradeFlash    int

	BulletSpeed      float64
	BulletBaseDamage int
	BulletDamageStep int
}

// Damage — урон снаряда башни указанного уровня.
func (r TowerRules) Damage(level int) int {
	return r.BulletBaseDamage + r.BulletDamageStep*(level-1)
}

// UpgradeCost — стоимость перехода с уровня level на следующий.
func (r TowerRules) UpgradeCost(level int) int {
	return r.UpgradeBaseCost + r.UpgradeCostStep*(level-1)
}

// NextCooldown returns the cooldown after one upgrade, never below the floor.
func (r TowerRules) NextCooldown(cooldown int) int {
	return max(r.CooldownFloor, cooldown-r.CooldownStep)
}
