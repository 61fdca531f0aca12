package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

type enemySlot struct {
	gen   uint32
	live  bool
	enemy component.Enemy
}

// EnemyStore — арена врагов со стабильными индексами.
// Снаряды держат types.Handle; после удаления врага поколение слота
// увеличивается, и старые ссылки перестают разрешаться.
// Порядок обхода — порядок появления.
type EnemyStore struct {
	slots []enemySlot
	free  []uint32
	order []types.Handle
}

func NewEnemyStore() *EnemyStore {
	return &EnemyStore{}
}

// Spawn stores e and returns its handle.
func (s *EnemyStore) Spawn(e component.Enemy) types.Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, enemySlot{})
	}

	slot := &s.slots[idx]
	slot.gen++
	slot.live = true
	slot.enemy = e

	h := types.Handle{Index: idx, Gen: slot.gen}
	s.order = append(s.order, h)
	return h
}

// Get resolves a handle. It fails for removed enemies and reused slots.
func (s *EnemyStore) Get(h types.Handle) (*component.Enemy, bool) {
	if int(h.Index) >= len(s.slots) {
		return nil, false
	}
	slot := &s.slots[h.Index]
	if !slot.live || slot.gen != h.Gen {
		return nil, false
	}
	return &slot.enemy, true
}

// Len returns the number of live enemies.
func (s *EnemyStore) Len() int {
	return len(s.order)
}

// Handles returns the live handles in spawn order. The slice is shared;
// callers must not modify it.
func (s *EnemyStore) Handles() []types.Handle {
	return s.order
}

// Each calls fn for every live enemy in spawn order.
func (s *EnemyStore) Each(fn func(h types.Handle, e *component.Enemy)) {
	for _, h := range s.order {
		fn(h, &s.slots[h.Index].enemy)
	}
}

// Retain keeps the enemies for which keep returns true. Survivors are
// collected into a new order slice which replaces the old one only after the
// whole pass, so keep may inspect other enemies safely.
func (s *EnemyStore) Retain(keep func(h types.Handle, e *component.Enemy) bool) {
	next := make([]types.Handle, 0, len(s.order))
	var dropped []types.Handle
	for _, h := range s.order {
		if keep(h, &s.slots[h.Index].enemy) {
			next = append(next, h)
		} else {
			dropped = append(dropped, h)
		}
	}
	for _, h := range dropped {
		s.release(h)
	}
	s.order = next
}

// Clear removes every enemy.
func (s *EnemyStore) Clear() {
	for _, h := range s.order {
		s.release(h)
	}
	s.order = nil
}

func (s *EnemyStore) release(h types.Handle) {
	slot := &s.slots[h.Index]
	slot.live = false
	slot.enemy = component.Enemy{}
	s.free = append(s.free, h.Index)
}
