// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
)

// SpeedSteps — число тиков симуляции за кадр для кнопки скорости.
var SpeedSteps = []int{1, 2, 4}

// Game holds the simulation state and runs one tick at a time.
type Game struct {
	Tunables   config.Tunables
	TowerRules defs.TowerRules
	WaveRules  defs.WaveRules

	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	EconomySystem      *system.EconomySystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	selectedTower types.EntityID
	isPaused      bool
	speedIndex    int
}

// NewGame validates the tunables and sets up a fresh session at wave 1.
func NewGame(tunables config.Tunables) (*Game, error) {
	if err := tunables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tunables: %w", err)
	}
	path, err := component.NewPath(tunables.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to build path: %w", err)
	}

	towerRules := defs.TowerRulesFrom(tunables)
	waveRules := defs.WaveRulesFrom(tunables)

	session := &component.Session{
		Money: tunables.Economy.StartingMoney,
		Lives: tunables.Economy.StartingLives,
	}
	wave := component.NewWave(waveRules.EnemiesPerWave, waveRules.Count)
	ecs := entity.NewECS(path, session, wave)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		Tunables:           tunables,
		TowerRules:         towerRules,
		WaveRules:          waveRules,
		ECS:                ecs,
		EventDispatcher:    eventDispatcher,
		WaveSystem:         system.NewWaveSystem(ecs, waveRules, eventDispatcher),
		MovementSystem:     system.NewMovementSystem(ecs, eventDispatcher),
		CombatSystem:       system.NewCombatSystem(ecs, towerRules),
		ProjectileSystem:   system.NewProjectileSystem(ecs),
		EconomySystem:      system.NewEconomySystem(ecs),
		StateSystem:        system.NewStateSystem(ecs, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
	}

	eventDispatcher.Subscribe(g.EconomySystem, event.EnemyKilled, event.EnemyEscaped)
	eventDispatcher.Subscribe(&GameEventListener{game: g},
		event.WaveStarted, event.WaveCleared, event.GameOver,
		event.TowerPlaced, event.TowerRemoved, event.TowerUpgraded)

	g.WaveSystem.Start()
	return g, nil
}

// GameEventListener пишет в лог заметные события партии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.WaveData:
		log.Printf("%s: wave %d/%d", e.Type, data.Number, data.Max)
	case event.TowerData:
		log.Printf("%s: tower %d at (%.0f, %.0f), level %d, money left %d",
			e.Type, data.ID, data.Pos.X, data.Pos.Y, data.Level, l.game.ECS.Session.Money)
	case component.Outcome:
		log.Printf("%s: %s after %d ticks, money %d, lives %d",
			e.Type, data, l.game.ECS.Tick, l.game.ECS.Session.Money, l.game.ECS.Session.Lives)
	}
}

// Update progresses the simulation by exactly one tick. The order is fixed:
// waves, enemies, towers, bullets, then end-of-game detection.
func (g *Game) Update() {
	if g.ECS.Session.Over() {
		return
	}
	g.ECS.Tick++

	g.WaveSystem.Update()
	g.MovementSystem.Update()
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	g.VisualEffectSystem.Update()
	g.StateSystem.Update()
}

// Frame runs the ticks due for one rendered frame: none while paused,
// otherwise one per speed step, stopping early at game over.
func (g *Game) Frame() {
	if g.isPaused {
		return
	}
	for i := 0; i < g.Speed() && !g.IsOver(); i++ {
		g.Update()
	}
}

// Run advances n ticks or until the game ends, returning the ticks run.
func (g *Game) Run(n int) int {
	ran := 0
	for ; ran < n && !g.IsOver(); ran++ {
		g.Update()
	}
	return ran
}

func (g *Game) Outcome() component.Outcome {
	return g.StateSystem.Current()
}

func (g *Game) IsOver() bool {
	return g.ECS.Session.Over()
}

// --- Public Accessors & Mutators ---

func (g *Game) HandleSpeedClick() {
	g.speedIndex = (g.speedIndex + 1) % len(SpeedSteps)
}

// Speed returns the simulation ticks per frame.
func (g *Game) Speed() int {
	return SpeedSteps[g.speedIndex]
}

// SpeedIndex is the position of the current speed in SpeedSteps.
func (g *Game) SpeedIndex() int {
	return g.speedIndex
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetTick() uint64 {
	return g.ECS.Tick
}
