// internal/event/types.go
package event

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

const (
	EnemySpawned  EventType = "EnemySpawned"  // Data: EnemyData
	EnemyKilled   EventType = "EnemyKilled"   // Data: EnemyData
	EnemyEscaped  EventType = "EnemyEscaped"  // Data: EnemyData
	TowerPlaced   EventType = "TowerPlaced"   // Data: TowerData
	TowerRemoved  EventType = "TowerRemoved"  // Data: TowerData
	TowerUpgraded EventType = "TowerUpgraded" // Data: TowerData
	WaveStarted   EventType = "WaveStarted"   // Data: WaveData
	WaveCleared   EventType = "WaveCleared"   // Data: WaveData
	GameOver      EventType = "GameOver"      // Data: component.Outcome
)

// EnemyData is a copy of the enemy at the moment of the event.
type EnemyData struct {
	Handle types.Handle
	Enemy  component.Enemy
}

type TowerData struct {
	ID    types.EntityID
	Pos   types.Point
	Level int
	Cost  int // списано за действие
}

type WaveData struct {
	Number int
	Max    int
}
