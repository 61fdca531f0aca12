package defs

import (
	"testing"

	"go-path-defense/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestWaveRules_EnemyFor(t *testing.T) {
	rules := WaveRulesFrom(config.Default())

	first := rules.EnemyFor(1)
	assert.Equal(t, 130, first.HP)
	assert.InDelta(t, 2.1, first.Speed, 1e-9)
	assert.Equal(t, 80, first.Reward)
	assert.Equal(t, 20.0, first.Radius)

	last := rules.EnemyFor(10)
	assert.Equal(t, 220, last.HP)
	assert.InDelta(t, 3.0, last.Speed, 1e-9)
	assert.Equal(t, 170, last.Reward)
}

func TestTowerRules(t *testing.T) {
	rules := TowerRulesFrom(config.Default())

	assert.Equal(t, 20, rules.Damage(1))
	assert.Equal(t, 30, rules.Damage(2))
	assert.Equal(t, 40, rules.Damage(3))

	assert.Equal(t, 50, rules.UpgradeCost(1))
	assert.Equal(t, 80, rules.UpgradeCost(2))

	assert.Equal(t, 27, rules.NextCooldown(30))
	assert.Equal(t, 10, rules.NextCooldown(12), "never below the floor")
	assert.Equal(t, 10, rules.NextCooldown(10))
}
