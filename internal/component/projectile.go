// internal/component/projectile.go
package component

import (
	"math"

	"go-path-defense/internal/types"
)

// Bullet представляет летящий снаряд, привязанный к одной цели.
type Bullet struct {
	Pos    types.Point
	Target types.Handle // не владеет целью
	Speed  float64
	Damage int // фиксируется при выстреле
	Active bool
}

// NewBullet creates an active bullet at the tower position.
func NewBullet(from types.Point, target types.Handle, speed float64, damage int) Bullet {
	return Bullet{
		Pos:    from,
		Target: target,
		Speed:  speed,
		Damage: damage,
		Active: true,
	}
}

// Step advances the bullet one tick toward the current position of target.
// A nil or dead target deactivates the bullet without damage. On arrival the
// damage is applied once and the bullet deactivates. Returns true on a hit.
func (b *Bullet) Step(target *Enemy) (hit bool) {
	if !b.Active || target == nil || !target.Alive() {
		b.Active = false
		return false
	}

	dx := target.Pos.X - b.Pos.X
	dy := target.Pos.Y - b.Pos.Y
	dist := math.Hypot(dx, dy)

	if dist < b.Speed {
		target.HP -= b.Damage
		b.Active = false
		return true
	}

	b.Pos.X += b.Speed * dx / dist
	b.Pos.Y += b.Speed * dy / dist
	return false
}
