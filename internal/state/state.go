// internal/state/state.go
package state

import (
	"go-path-defense/internal/assets"
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// Resources — общие для всех состояний данные: баланс, спрайты, шрифты.
type Resources struct {
	Tunables config.Tunables
	Sprites  *assets.SpriteManager
	Seed     int64
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	res     *Resources
	done    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(res *Resources) *StateMachine {
	return &StateMachine{res: res}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Resources() *Resources {
	return sm.res
}

// Quit просит главный цикл завершиться после текущего кадра.
func (sm *StateMachine) Quit() {
	sm.done = true
}

func (sm *StateMachine) Done() bool {
	return sm.done
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil && !sm.done {
		sm.current.Update()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
