// internal/state/game_state.go
package state

import (
	"fmt"

	game "go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/types"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	game        *game.Game
	renderer    *render.SceneRenderer
	hud         *ui.HUD
	speedButton *ui.SpeedButton
}

func NewGameState(sm *StateMachine) (*GameState, error) {
	res := sm.Resources()
	gameLogic, err := game.NewGame(res.Tunables)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	renderer := render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight, res.Sprites, res.Seed)
	renderer.RenderMapImage(gameLogic.ECS.Path.Points()) // явная отрисовка фона

	face := res.Sprites.Face(config.HUDFontSize)
	lives := ui.NewLivesIndicator(config.HUDOffsetX, float32(config.HUDOffsetY+4*config.HUDLineSpacing),
		res.Tunables.Economy.StartingLives)
	hud := ui.NewHUD(config.HUDOffsetX, config.HUDOffsetY, config.HUDLineSpacing, face, config.TextLightColor, lives)

	return &GameState{
		sm:          sm,
		game:        gameLogic,
		renderer:    renderer,
		hud:         hud,
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
	}, nil
}

// Game exposes the simulation, mostly for the pause and end states.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.game.HandlePauseClick()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.game.UpgradeSelected()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.speedButton.IsClicked(x, y) {
			g.toggleSpeed()
		} else {
			remove := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
			g.game.HandleClick(types.Point{X: float64(x), Y: float64(y)}, remove)
		}
	}

	g.game.Frame()

	if g.game.IsOver() {
		g.sm.SetState(NewEndState(g.sm, g, g.game.Outcome()))
	}
}

func (g *GameState) toggleSpeed() {
	g.game.HandleSpeedClick()
	g.speedButton.SetState(g.game.SpeedIndex())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)
	g.hud.Draw(screen, snap)
	g.speedButton.Draw(screen)
}

func (g *GameState) Exit() {}
