// internal/state/pause_state.go
package state

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру и рисует её кадр под полупрозрачной плёнкой.
type PauseState struct {
	sm   *StateMachine
	game *GameState
}

func NewPauseState(sm *StateMachine, gs *GameState) *PauseState {
	return &PauseState{sm: sm, game: gs}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// При выходе из паузы нужно "отжать" паузу в самой игре
		s.game.game.HandlePauseClick()
		s.sm.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	face := s.sm.Resources().Sprites.Face(config.BannerFontSize)
	ui.DrawCenteredText(screen, "PAUSED", face, config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
