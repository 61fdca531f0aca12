// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

// ECS владеет всеми сущностями сессии. Изменяется только игровым циклом.
type ECS struct {
	Tick    uint64
	NextID  types.EntityID
	Path    component.Path
	Enemies *EnemyStore
	Towers  []*component.Tower // в порядке постройки
	Bullets []component.Bullet
	Wave    *component.Wave
	Session *component.Session
}

func NewECS(path component.Path, session *component.Session, wave *component.Wave) *ECS {
	return &ECS{
		NextID:  1,
		Path:    path,
		Enemies: NewEnemyStore(),
		Wave:    wave,
		Session: session,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Tower returns the tower with the given id.
func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	for _, t := range ecs.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// RemoveTower deletes the tower, keeping the placement order of the rest.
func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	for i, t := range ecs.Towers {
		if t.ID == id {
			ecs.Towers = append(ecs.Towers[:i:i], ecs.Towers[i+1:]...)
			return true
		}
	}
	return false
}
