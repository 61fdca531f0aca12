package component

import (
	"testing"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPath(t *testing.T, pts ...types.Point) Path {
	t.Helper()
	p, err := NewPath(pts)
	require.NoError(t, err)
	return p
}

func towerRules() defs.TowerRules {
	return defs.TowerRulesFrom(config.Default())
}

func TestNewPath(t *testing.T) {
	_, err := NewPath([]types.Point{{X: 1, Y: 1}})
	assert.ErrorIs(t, err, config.ErrInvalidPath)

	_, err = NewPath([]types.Point{{X: 1, Y: 1}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, config.ErrInvalidPath)

	src := []types.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	p := mustPath(t, src...)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 2, p.Segments())
	assert.Equal(t, types.Point{X: 0, Y: 0}, p.Start())
	assert.Equal(t, types.Point{X: 10, Y: 10}, p.End())

	// Путь не зависит от исходного среза и от копий.
	src[0].X = 99
	pts := p.Points()
	pts[1].X = 99
	assert.Equal(t, types.Point{X: 0, Y: 0}, p.At(0))
	assert.Equal(t, types.Point{X: 10, Y: 0}, p.At(1))
}

func TestEnemy_AdvanceWalksWholePath(t *testing.T) {
	path := mustPath(t, types.Point{X: 0, Y: 0}, types.Point{X: 10, Y: 0}, types.Point{X: 10, Y: 10})
	e := NewEnemy(path, defs.EnemyDefinition{HP: 50, Speed: 3, Reward: 5, Radius: 20}, 1)
	require.Equal(t, path.Start(), e.Pos)

	transitions := 0
	ticks := 0
	for {
		prev := e.PathIndex
		escaped := e.Advance(path)
		ticks++
		require.LessOrEqual(t, e.PathIndex, path.Len()-1)
		if escaped {
			break
		}
		if e.PathIndex != prev {
			transitions++
		}
		require.Less(t, ticks, 100, "enemy never escaped")
	}

	assert.Equal(t, path.Segments(), transitions)
	assert.Equal(t, path.End(), e.Pos)
	assert.Equal(t, 9, ticks, "3 moves + snap per segment, then escape")
}

func TestEnemy_AdvanceDiagonal(t *testing.T) {
	path := mustPath(t, types.Point{X: 0, Y: 0}, types.Point{X: 30, Y: 40})
	e := NewEnemy(path, defs.EnemyDefinition{HP: 1, Speed: 5}, 1)

	assert.False(t, e.Advance(path))
	assert.InDelta(t, 3, e.Pos.X, 1e-9)
	assert.InDelta(t, 4, e.Pos.Y, 1e-9)
	assert.Equal(t, 0, e.PathIndex)
}

func TestEnemy_AdvanceAtEndDoesNotMove(t *testing.T) {
	path := mustPath(t, types.Point{X: 0, Y: 0}, types.Point{X: 10, Y: 0})
	e := Enemy{Pos: path.End(), Speed: 2, PathIndex: 1, HP: 1}

	assert.True(t, e.Advance(path))
	assert.Equal(t, path.End(), e.Pos)
}

func TestTower_Cooldown(t *testing.T) {
	rules := towerRules()
	tower := NewTower(1, types.Point{X: 100, Y: 100}, rules)

	assert.Equal(t, 1, tower.Level)
	assert.Equal(t, 120.0, tower.Range)
	assert.True(t, tower.IsReady())

	tower.Tick()
	assert.Zero(t, tower.Timer, "tick at zero is a no-op")

	tower.Reload()
	assert.Equal(t, 30, tower.Timer)
	for i := 0; i < 29; i++ {
		tower.Tick()
		require.False(t, tower.IsReady())
	}
	tower.Tick()
	assert.True(t, tower.IsReady())
}

func TestTower_InRangeInclusive(t *testing.T) {
	tower := NewTower(1, types.Point{X: 0, Y: 0}, towerRules())
	assert.True(t, tower.InRange(types.Point{X: 120, Y: 0}))
	assert.False(t, tower.InRange(types.Point{X: 120.5, Y: 0}))
}

func TestTower_Upgrade(t *testing.T) {
	rules := towerRules()
	tower := NewTower(1, types.Point{}, rules)

	assert.Equal(t, 50, tower.UpgradeCost(rules))
	assert.Equal(t, 20, tower.Damage(rules))

	tower.Reload()
	require.True(t, tower.Upgrade(rules))
	assert.Equal(t, 2, tower.Level)
	assert.Equal(t, 27, tower.Cooldown)
	assert.Equal(t, 27, tower.Timer, "timer clamped to the new cooldown")
	assert.Equal(t, rules.UpgradeFlash, tower.UpgradeFlash)
	assert.Equal(t, 80, tower.UpgradeCost(rules))
	assert.Equal(t, 30, tower.Damage(rules))

	require.True(t, tower.Upgrade(rules))
	assert.Equal(t, 3, tower.Level)
	assert.Equal(t, 24, tower.Cooldown)
	assert.False(t, tower.CanUpgrade(rules))

	before := *tower
	assert.False(t, tower.Upgrade(rules))
	assert.Equal(t, before, *tower, "upgrade at max level changes nothing")
}

func TestTower_UpgradeRespectsFloor(t *testing.T) {
	rules := towerRules()
	rules.CooldownStep = 15
	tower := NewTower(1, types.Point{}, rules)

	tower.Upgrade(rules)
	assert.Equal(t, 15, tower.Cooldown)
	tower.Upgrade(rules)
	assert.Equal(t, 10, tower.Cooldown)
}

func TestBullet_HitAppliesDamageOnce(t *testing.T) {
	target := &Enemy{Pos: types.Point{X: 10, Y: 0}, HP: 100, MaxHP: 100}
	b := NewBullet(types.Point{X: 0, Y: 0}, types.Handle{Index: 0, Gen: 1}, 7, 20)

	assert.False(t, b.Step(target))
	assert.True(t, b.Active)
	assert.InDelta(t, 7, b.Pos.X, 1e-9)

	assert.True(t, b.Step(target))
	assert.False(t, b.Active)
	assert.Equal(t, 80, target.HP)

	assert.False(t, b.Step(target))
	assert.Equal(t, 80, target.HP)
}

func TestBullet_HomesOnMovingTarget(t *testing.T) {
	target := &Enemy{Pos: types.Point{X: 20, Y: 0}, HP: 10}
	b := NewBullet(types.Point{}, types.Handle{Gen: 1}, 7, 5)

	b.Step(target)
	target.Pos = types.Point{X: 7, Y: 20}
	b.Step(target)
	assert.InDelta(t, 7, b.Pos.X, 1e-9)
	assert.InDelta(t, 7, b.Pos.Y, 1e-9)
}

func TestBullet_MissingOrDeadTarget(t *testing.T) {
	b := NewBullet(types.Point{}, types.Handle{Gen: 1}, 7, 20)
	assert.False(t, b.Step(nil))
	assert.False(t, b.Active)

	dead := &Enemy{Pos: types.Point{X: 1}, HP: 0}
	b = NewBullet(types.Point{}, types.Handle{Gen: 1}, 7, 20)
	assert.False(t, b.Step(dead))
	assert.False(t, b.Active)
	assert.Equal(t, 0, dead.HP, "no damage to a dead target")
}

func TestSession_Spend(t *testing.T) {
	s := &Session{Money: 150, Lives: 10}

	assert.True(t, s.Spend(100))
	assert.Equal(t, 50, s.Money)
	assert.False(t, s.Spend(100))
	assert.Equal(t, 50, s.Money)
	assert.True(t, s.Spend(50))
	assert.Zero(t, s.Money)

	assert.False(t, s.Over())
	s.Outcome = OutcomeDefeat
	assert.True(t, s.Over())
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "victory", OutcomeVictory.String())
	assert.Equal(t, "waiting-for-clear", WaveWaitingForClear.String())
	assert.Equal(t, "unknown", WavePhase(42).String())
}
