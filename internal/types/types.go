// internal/types/types.go
package types

import "math"

// EntityID — идентификатор сущности (башни)
type EntityID uint64

// Point — точка на игровом поле в пикселях
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Handle ссылается на слот в хранилище врагов.
// Gen защищает от повторно использованных слотов: устаревший Handle
// не совпадёт с поколением нового обитателя слота.
type Handle struct {
	Index uint32
	Gen   uint32
}

// Nil is the zero handle; it never resolves to a live enemy.
var Nil = Handle{}

func (h Handle) IsNil() bool {
	return h == Nil
}
