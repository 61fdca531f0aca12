// internal/state/menu_state.go
package state

import (
	"log"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран поверх декораций поля, Enter начинает игру.
type MenuState struct {
	sm       *StateMachine
	renderer *render.SceneRenderer
}

func NewMenuState(sm *StateMachine) *MenuState {
	res := sm.Resources()
	// Тот же сид, что и у игры: фон не меняется при старте.
	renderer := render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight, res.Sprites, res.Seed)
	renderer.RenderMapImage(res.Tunables.Path)
	return &MenuState{sm: sm, renderer: renderer}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		gs, err := NewGameState(m.sm)
		if err != nil {
			log.Printf("failed to start game: %v", err)
			m.sm.Quit()
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.renderer.DrawBackground(screen)
	res := m.sm.Resources()
	ui.DrawCenteredText(screen, config.WindowTitle, res.Sprites.Face(config.TitleFontSize),
		config.ScreenWidth/2, config.ScreenHeight/3, config.TitleColor)
	ui.DrawCenteredText(screen, "Press Enter to start", res.Sprites.Face(config.HUDFontSize),
		config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
}

func (m *MenuState) Exit() {}
