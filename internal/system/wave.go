// internal/system/wave.go
package system

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// WaveSystem — директор волн: Spawning -> WaitingForClear -> (следующая
// волна | AllWavesComplete).
type WaveSystem struct {
	ecs             *entity.ECS
	rules           defs.WaveRules
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, rules defs.WaveRules, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		rules:           rules,
		eventDispatcher: eventDispatcher,
	}
}

// Start announces the first wave.
func (s *WaveSystem) Start() {
	s.dispatchWave(event.WaveStarted)
}

// Update runs one tick of the director. It must run before enemy movement so
// an enemy spawned here also moves this tick. The spawn timer is decremented
// before the zero check, so spawns are exactly SpawnDelay ticks apart.
func (s *WaveSystem) Update() {
	wave := s.ecs.Wave
	switch wave.Phase {
	case component.WaveSpawning:
		if wave.SpawnTimer > 0 {
			wave.SpawnTimer--
		}
		if wave.SpawnTimer == 0 && wave.Spawned < wave.PerWave {
			s.spawnEnemy(wave)
			wave.Spawned++
			wave.SpawnTimer = s.rules.SpawnDelay
		}
		if wave.Spawned >= wave.PerWave {
			wave.Phase = component.WaveWaitingForClear
		}

	case component.WaveWaitingForClear:
		if s.ecs.Enemies.Len() > 0 {
			return
		}
		s.dispatchWave(event.WaveCleared)
		if wave.Number < wave.Max {
			wave.Number++
			wave.Spawned = 0
			wave.SpawnTimer = s.rules.SpawnDelay
			wave.Phase = component.WaveSpawning
			s.dispatchWave(event.WaveStarted)
		} else {
			wave.Phase = component.WaveAllComplete
			log.Printf("All %d waves complete", wave.Max)
		}

	case component.WaveAllComplete:
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def := s.rules.EnemyFor(wave.Number)
	enemy := component.NewEnemy(s.ecs.Path, def, wave.Number)
	h := s.ecs.Enemies.Spawn(enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{Handle: h, Enemy: enemy}})
}

func (s *WaveSystem) dispatchWave(t event.EventType) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.WaveData{Number: s.ecs.Wave.Number, Max: s.ecs.Wave.Max},
	})
}
