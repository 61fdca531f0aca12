// component/movement.go
package component

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/types"
)

// Path — компонент пути: неизменяемая ломаная из точек.
type Path struct {
	points []types.Point
}

// NewPath copies the points and checks that the polyline is usable.
func NewPath(points []types.Point) (Path, error) {
	if err := config.ValidatePath(points); err != nil {
		return Path{}, err
	}
	cp := make([]types.Point, len(points))
	copy(cp, points)
	return Path{points: cp}, nil
}

// Len returns the number of waypoints.
func (p Path) Len() int {
	return len(p.points)
}

// At returns waypoint i.
func (p Path) At(i int) types.Point {
	return p.points[i]
}

func (p Path) Start() types.Point {
	return p.points[0]
}

func (p Path) End() types.Point {
	return p.points[len(p.points)-1]
}

// Segments — число отрезков ломаной.
func (p Path) Segments() int {
	return len(p.points) - 1
}

// Points returns a copy of the waypoints for renderers.
func (p Path) Points() []types.Point {
	cp := make([]types.Point, len(p.points))
	copy(cp, p.points)
	return cp
}
