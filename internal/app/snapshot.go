package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

// EnemyView — то, что нужно рендеру для отрисовки врага.
type EnemyView struct {
	Pos    types.Point
	HP     int
	MaxHP  int
	Radius float64
}

// HealthFraction is HP/MaxHP clamped to [0, 1].
func (v EnemyView) HealthFraction() float64 {
	if v.MaxHP <= 0 {
		return 0
	}
	return utils.Clamp01(float64(v.HP) / float64(v.MaxHP))
}

type TowerView struct {
	ID           types.EntityID
	Pos          types.Point
	Range        float64
	Size         float64
	Level        int
	Selected     bool
	UpgradeFlash float64 // 1 сразу после улучшения, затухает до 0
}

type BulletView struct {
	Pos    types.Point
	Radius float64
}

// Snapshot is a read-only copy of everything presentation needs for one
// frame. It shares no memory with the simulation.
type Snapshot struct {
	Tick    uint64
	Money   int
	Lives   int
	Wave    int
	WaveMax int
	Phase   component.WavePhase
	Outcome component.Outcome
	Paused  bool
	Speed   int

	// UpgradeCost is the price of the next upgrade of the selected tower;
	// zero when nothing is selected or the tower is at max level.
	UpgradeCost int

	Path    []types.Point
	Enemies []EnemyView
	Towers  []TowerView
	Bullets []BulletView
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		Tick:    ecs.Tick,
		Money:   ecs.Session.Money,
		Lives:   ecs.Session.Lives,
		Wave:    min(ecs.Wave.Number, ecs.Wave.Max),
		WaveMax: ecs.Wave.Max,
		Phase:   ecs.Wave.Phase,
		Outcome: ecs.Session.Outcome,
		Paused:  g.isPaused,
		Speed:   g.Speed(),
		Path:    ecs.Path.Points(),
		Enemies: make([]EnemyView, 0, ecs.Enemies.Len()),
		Towers:  make([]TowerView, 0, len(ecs.Towers)),
		Bullets: make([]BulletView, 0, len(ecs.Bullets)),
	}

	if tower, ok := g.SelectedTower(); ok && tower.CanUpgrade(g.TowerRules) {
		snap.UpgradeCost = tower.UpgradeCost(g.TowerRules)
	}

	ecs.Enemies.Each(func(_ types.Handle, e *component.Enemy) {
		snap.Enemies = append(snap.Enemies, EnemyView{Pos: e.Pos, HP: e.HP, MaxHP: e.MaxHP, Radius: e.Radius})
	})

	for _, t := range ecs.Towers {
		view := TowerView{
			ID:       t.ID,
			Pos:      t.Pos,
			Range:    t.Range,
			Size:     g.TowerRules.Size,
			Level:    t.Level,
			Selected: t.ID == g.selectedTower,
		}
		if g.TowerRules.UpgradeFlash > 0 {
			view.UpgradeFlash = float64(t.UpgradeFlash) / float64(g.TowerRules.UpgradeFlash)
		}
		snap.Towers = append(snap.Towers, view)
	}

	for _, b := range ecs.Bullets {
		snap.Bullets = append(snap.Bullets, BulletView{Pos: b.Pos, Radius: g.Tunables.Bullet.Radius})
	}

	return snap
}
