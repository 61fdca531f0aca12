package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	towerRules defs.TowerRules
	waveRules  defs.WaveRules
	events     []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	tunables := config.Default()
	path, err := component.NewPath(tunables.Path)
	require.NoError(t, err)

	waveRules := defs.WaveRulesFrom(tunables)
	w := &world{
		ecs: entity.NewECS(path,
			&component.Session{Money: tunables.Economy.StartingMoney, Lives: tunables.Economy.StartingLives},
			component.NewWave(waveRules.EnemiesPerWave, waveRules.Count)),
		dispatcher: event.NewDispatcher(),
		towerRules: defs.TowerRulesFrom(tunables),
		waveRules:  waveRules,
	}
	w.dispatcher.Subscribe(event.ListenerFunc(func(e event.Event) { w.events = append(w.events, e) }),
		event.EnemySpawned, event.EnemyKilled, event.EnemyEscaped,
		event.WaveStarted, event.WaveCleared, event.GameOver)
	return w
}

func (w *world) eventsOf(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range w.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (w *world) spawnAt(pos types.Point, hp int) types.Handle {
	return w.ecs.Enemies.Spawn(component.Enemy{Pos: pos, HP: hp, MaxHP: hp, Speed: 2, Reward: 80})
}

func (w *world) addTower(pos types.Point) *component.Tower {
	tower := component.NewTower(w.ecs.NewEntity(), pos, w.towerRules)
	w.ecs.Towers = append(w.ecs.Towers, tower)
	return tower
}

func TestWaveSystem_SpawnSchedule(t *testing.T) {
	w := newWorld(t)
	waves := NewWaveSystem(w.ecs, w.waveRules, w.dispatcher)

	var spawnTicks []int
	for tick := 1; tick <= 400; tick++ {
		before := w.ecs.Enemies.Len()
		waves.Update()
		if w.ecs.Enemies.Len() > before {
			spawnTicks = append(spawnTicks, tick)
		}
	}

	require.Len(t, spawnTicks, 10)
	for i := 1; i < len(spawnTicks); i++ {
		assert.Equal(t, 30, spawnTicks[i]-spawnTicks[i-1])
	}
	assert.Equal(t, 1, spawnTicks[0])
	assert.Equal(t, component.WaveWaitingForClear, w.ecs.Wave.Phase)

	w.ecs.Enemies.Each(func(_ types.Handle, e *component.Enemy) {
		assert.Equal(t, 130, e.HP)
		assert.InDelta(t, 2.1, e.Speed, 1e-9)
		assert.Equal(t, 80, e.Reward)
		assert.Equal(t, w.ecs.Path.Start(), e.Pos)
	})
	assert.Len(t, w.eventsOf(event.EnemySpawned), 10)
}

func TestWaveSystem_NextWaveAfterClear(t *testing.T) {
	w := newWorld(t)
	waves := NewWaveSystem(w.ecs, w.waveRules, w.dispatcher)
	for w.ecs.Wave.Phase == component.WaveSpawning {
		waves.Update()
	}

	waves.Update()
	assert.Equal(t, 1, w.ecs.Wave.Number, "live enemies hold the wave")

	w.ecs.Enemies.Clear()
	waves.Update()

	assert.Equal(t, 2, w.ecs.Wave.Number)
	assert.Equal(t, component.WaveSpawning, w.ecs.Wave.Phase)
	assert.Zero(t, w.ecs.Wave.Spawned)
	assert.Equal(t, 30, w.ecs.Wave.SpawnTimer)
	require.Len(t, w.eventsOf(event.WaveCleared), 1)
	assert.Equal(t, event.WaveData{Number: 1, Max: 10}, w.eventsOf(event.WaveCleared)[0].Data)
	require.Len(t, w.eventsOf(event.WaveStarted), 1)
	assert.Equal(t, event.WaveData{Number: 2, Max: 10}, w.eventsOf(event.WaveStarted)[0].Data)

	for i := 0; i < 29; i++ {
		waves.Update()
	}
	assert.Zero(t, w.ecs.Enemies.Len())
	waves.Update()
	require.Equal(t, 1, w.ecs.Enemies.Len())

	e, ok := w.ecs.Enemies.Get(w.ecs.Enemies.Handles()[0])
	require.True(t, ok)
	assert.Equal(t, 140, e.HP)
	assert.Equal(t, 2, e.Wave)
}

func TestWaveSystem_AllComplete(t *testing.T) {
	w := newWorld(t)
	waves := NewWaveSystem(w.ecs, w.waveRules, w.dispatcher)
	w.ecs.Wave.Number = w.ecs.Wave.Max
	w.ecs.Wave.Phase = component.WaveWaitingForClear

	waves.Update()
	assert.Equal(t, component.WaveAllComplete, w.ecs.Wave.Phase)
	assert.Equal(t, 10, w.ecs.Wave.Number)

	waves.Update()
	assert.Zero(t, w.ecs.Enemies.Len(), "nothing spawns after the last wave")
}

func TestMovementSystem_KilledAndEscaped(t *testing.T) {
	w := newWorld(t)
	economy := NewEconomySystem(w.ecs)
	w.dispatcher.Subscribe(economy, event.EnemyKilled, event.EnemyEscaped)
	movement := NewMovementSystem(w.ecs, w.dispatcher)

	end := w.ecs.Path.End()
	last := w.ecs.Path.Len() - 1

	walker := w.spawnAt(w.ecs.Path.Start(), 50)
	dead := w.spawnAt(types.Point{X: 100, Y: 300}, 0)
	escaping := w.ecs.Enemies.Spawn(component.Enemy{Pos: end, PathIndex: last, HP: 10, Speed: 2, Reward: 80})
	deadAtEnd := w.ecs.Enemies.Spawn(component.Enemy{Pos: end, PathIndex: last, HP: -5, Speed: 2, Reward: 80})

	movement.Update()

	assert.Equal(t, []types.Handle{walker}, w.ecs.Enemies.Handles())
	e, _ := w.ecs.Enemies.Get(walker)
	assert.InDelta(t, 2, e.Pos.X, 1e-9)

	killed := w.eventsOf(event.EnemyKilled)
	require.Len(t, killed, 2)
	assert.Equal(t, dead, killed[0].Data.(event.EnemyData).Handle)
	assert.Equal(t, deadAtEnd, killed[1].Data.(event.EnemyData).Handle, "killed wins over escaped")

	escaped := w.eventsOf(event.EnemyEscaped)
	require.Len(t, escaped, 1)
	assert.Equal(t, escaping, escaped[0].Data.(event.EnemyData).Handle)

	assert.Equal(t, 200+80+80, w.ecs.Session.Money)
	assert.Equal(t, 9, w.ecs.Session.Lives)

	movement.Update()
	assert.Len(t, w.eventsOf(event.EnemyKilled), 2, "each removal is reported once")
}

func TestCombatSystem_FirstMatchInSpawnOrder(t *testing.T) {
	w := newWorld(t)
	combat := NewCombatSystem(w.ecs, w.towerRules)
	tower := w.addTower(types.Point{X: 200, Y: 300})

	w.spawnAt(types.Point{X: 500, Y: 300}, 100) // вне радиуса
	w.spawnAt(types.Point{X: 190, Y: 300}, 0)   // мёртв
	far := w.spawnAt(types.Point{X: 100, Y: 300}, 100)
	w.spawnAt(types.Point{X: 199, Y: 300}, 100) // ближе, но позже

	target, ok := combat.AcquireTarget(tower)
	require.True(t, ok)
	assert.Equal(t, far, target)

	combat.Update()
	require.Len(t, w.ecs.Bullets, 1)
	b := w.ecs.Bullets[0]
	assert.Equal(t, far, b.Target)
	assert.Equal(t, tower.Pos, b.Pos)
	assert.Equal(t, 20, b.Damage)
	assert.Equal(t, 7.0, b.Speed)
	assert.Equal(t, 30, tower.Timer)
}

func TestCombatSystem_NoTargetKeepsTowerReady(t *testing.T) {
	w := newWorld(t)
	combat := NewCombatSystem(w.ecs, w.towerRules)
	tower := w.addTower(types.Point{X: 200, Y: 100})
	w.spawnAt(types.Point{X: 200, Y: 300}, 100)

	_, ok := combat.AcquireTarget(tower)
	assert.False(t, ok)
	combat.Update()
	assert.Empty(t, w.ecs.Bullets)
	assert.True(t, tower.IsReady())
}

func TestCombatSystem_FiresOncePerCooldown(t *testing.T) {
	w := newWorld(t)
	combat := NewCombatSystem(w.ecs, w.towerRules)
	w.addTower(types.Point{X: 200, Y: 300})
	w.spawnAt(types.Point{X: 150, Y: 300}, 1_000_000)

	var shotTicks []int
	for tick := 1; tick <= 61; tick++ {
		before := len(w.ecs.Bullets)
		combat.Update()
		if len(w.ecs.Bullets) > before {
			shotTicks = append(shotTicks, tick)
		}
	}
	assert.Equal(t, []int{1, 31, 61}, shotTicks)
}

func TestProjectileSystem(t *testing.T) {
	w := newWorld(t)
	projectiles := NewProjectileSystem(w.ecs)

	near := w.spawnAt(types.Point{X: 5, Y: 0}, 100)
	far := w.spawnAt(types.Point{X: 100, Y: 0}, 100)
	gone := w.spawnAt(types.Point{X: 50, Y: 0}, 100)
	w.ecs.Enemies.Retain(func(h types.Handle, _ *component.Enemy) bool { return h != gone })

	w.ecs.Bullets = []component.Bullet{
		component.NewBullet(types.Point{}, near, 7, 20),
		component.NewBullet(types.Point{}, far, 7, 20),
		component.NewBullet(types.Point{}, gone, 7, 20),
		component.NewBullet(types.Point{}, types.Nil, 7, 20),
	}

	projectiles.Update()

	require.Len(t, w.ecs.Bullets, 1)
	assert.Equal(t, far, w.ecs.Bullets[0].Target)
	assert.InDelta(t, 7, w.ecs.Bullets[0].Pos.X, 1e-9)

	e, _ := w.ecs.Enemies.Get(near)
	assert.Equal(t, 80, e.HP)
	e, _ = w.ecs.Enemies.Get(far)
	assert.Equal(t, 100, e.HP)
}

func TestProjectileSystem_TwoBulletsOneTarget(t *testing.T) {
	w := newWorld(t)
	projectiles := NewProjectileSystem(w.ecs)
	h := w.spawnAt(types.Point{X: 3, Y: 0}, 20)

	w.ecs.Bullets = []component.Bullet{
		component.NewBullet(types.Point{}, h, 7, 20),
		component.NewBullet(types.Point{}, h, 7, 20),
	}
	projectiles.Update()

	e, _ := w.ecs.Enemies.Get(h)
	assert.Equal(t, 0, e.HP, "second bullet sees a dead target and fizzles")
	assert.Empty(t, w.ecs.Bullets)
}

func TestStateSystem(t *testing.T) {
	t.Run("defeat", func(t *testing.T) {
		w := newWorld(t)
		state := NewStateSystem(w.ecs, w.dispatcher)

		state.Update()
		assert.Equal(t, component.OutcomeRunning, state.Current())

		w.ecs.Session.Lives = 0
		state.Update()
		state.Update()
		assert.Equal(t, component.OutcomeDefeat, state.Current())
		require.Len(t, w.eventsOf(event.GameOver), 1)
		assert.Equal(t, component.OutcomeDefeat, w.eventsOf(event.GameOver)[0].Data)
	})

	t.Run("victory needs an empty field", func(t *testing.T) {
		w := newWorld(t)
		state := NewStateSystem(w.ecs, w.dispatcher)
		w.ecs.Wave.Phase = component.WaveAllComplete
		h := w.spawnAt(types.Point{}, 10)

		state.Update()
		assert.Equal(t, component.OutcomeRunning, state.Current())

		w.ecs.Enemies.Retain(func(x types.Handle, _ *component.Enemy) bool { return x != h })
		state.Update()
		assert.Equal(t, component.OutcomeVictory, state.Current())
	})

	t.Run("defeat wins over victory", func(t *testing.T) {
		w := newWorld(t)
		state := NewStateSystem(w.ecs, w.dispatcher)
		w.ecs.Wave.Phase = component.WaveAllComplete
		w.ecs.Session.Lives = 0

		state.Update()
		assert.Equal(t, component.OutcomeDefeat, state.Current())
	})
}

func TestVisualEffectSystem(t *testing.T) {
	w := newWorld(t)
	effects := NewVisualEffectSystem(w.ecs)
	tower := w.addTower(types.Point{})
	tower.UpgradeFlash = 2

	effects.Update()
	assert.Equal(t, 1, tower.UpgradeFlash)
	effects.Update()
	effects.Update()
	assert.Zero(t, tower.UpgradeFlash)
}
