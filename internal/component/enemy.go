package component

import (
	"math"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	Pos       types.Point
	Speed     float64 // единиц за тик
	PathIndex int     // индекс последней достигнутой точки пути
	MaxHP     int
	HP        int // может уйти в минус до удаления
	Reward    int
	Radius    float64
	Wave      int
}

// NewEnemy creates an enemy standing on the first waypoint.
func NewEnemy(path Path, def defs.EnemyDefinition, wave int) Enemy {
	return Enemy{
		Pos:    path.Start(),
		Speed:  def.Speed,
		MaxHP:  def.HP,
		HP:     def.HP,
		Reward: def.Reward,
		Radius: def.Radius,
		Wave:   wave,
	}
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// Advance moves the enemy one tick along the path. It returns true when the
// enemy had already reached the last waypoint and has nowhere left to go;
// in that case nothing moves and the caller removes the enemy.
func (e *Enemy) Advance(path Path) (escaped bool) {
	if e.PathIndex+1 >= path.Len() {
		return true
	}

	target := path.At(e.PathIndex + 1)
	dx := target.X - e.Pos.X
	dy := target.Y - e.Pos.Y
	dist := math.Hypot(dx, dy)

	if dist < e.Speed {
		e.Pos = target
		e.PathIndex++
	} else {
		e.Pos.X += e.Speed * dx / dist
		e.Pos.Y += e.Speed * dy / dist
	}
	return false
}
