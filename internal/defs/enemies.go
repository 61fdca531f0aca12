// internal/defs/enemies.go
package defs

// EnemyDefinition holds the stats every enemy of one wave spawns with.
type EnemyDefinition struct {
	HP     int
	Speed  float64
	Reward int
	Radius float64
}
