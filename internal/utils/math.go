// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp01 ограничивает t отрезком [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// ArcPoints splits a circular arc into n+1 points, angles in radians.
func ArcPoints(cx, cy, radius, start, end float64, n int) [][2]float64 {
	if n < 1 {
		n = 1
	}
	pts := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		pts = append(pts, [2]float64{cx + radius*math.Cos(a), cy + radius*math.Sin(a)})
	}
	return pts
}
