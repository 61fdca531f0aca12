// internal/state/end_state.go
package state

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*EndState)(nil)

// EndState показывает итог партии поверх последнего кадра и закрывает окно
// по истечении таймера.
type EndState struct {
	sm        *StateMachine
	game      *GameState
	outcome   component.Outcome
	ticksLeft int
}

func NewEndState(sm *StateMachine, gs *GameState, outcome component.Outcome) *EndState {
	return &EndState{
		sm:        sm,
		game:      gs,
		outcome:   outcome,
		ticksLeft: EndScreenTicks(outcome),
	}
}

// EndScreenTicks is how long the banner for outcome stays on screen.
func EndScreenTicks(outcome component.Outcome) int {
	if outcome == component.OutcomeVictory {
		return config.VictoryScreenTicks
	}
	return config.DefeatScreenTicks
}

// Banner returns the message shown for outcome.
func Banner(outcome component.Outcome) string {
	if outcome == component.OutcomeVictory {
		return "Victory! All waves cleared"
	}
	return "Game Over"
}

func (s *EndState) Enter() {}

func (s *EndState) Update() {
	s.ticksLeft--
	if s.ticksLeft <= 0 {
		s.sm.Quit()
	}
}

func (s *EndState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	clr := config.DefeatColor
	if s.outcome == component.OutcomeVictory {
		clr = config.VictoryColor
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	face := s.sm.Resources().Sprites.Face(config.BannerFontSize)
	ui.DrawCenteredText(screen, Banner(s.outcome), face, config.ScreenWidth/2, config.ScreenHeight/2, clr)
}

func (s *EndState) Exit() {}
