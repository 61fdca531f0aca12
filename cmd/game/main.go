// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"go-path-defense/internal/assets"
	"go-path-defense/internal/config"
	"go-path-defense/internal/state"
	"go-path-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML tunables file (defaults are used when empty)")
	seed := flag.Int64("seed", 0, "scenery seed, 0 picks one from the clock")
	withMenu := flag.Bool("menu", true, "start from the main menu; -menu=false goes straight into the game")
	flag.Parse()

	tunables := config.Default()
	if *configPath != "" {
		var err error
		tunables, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		log.Printf("loaded tunables from %s", *configPath)
	}

	sprites := assets.NewSpriteManager(config.SpritesDir)
	sprites.LoadAll(tunables.Tower.MaxLevel)
	sprites.LoadFont(config.FontPath)

	sm := state.NewStateMachine(&state.Resources{
		Tunables: tunables,
		Sprites:  sprites,
		Seed:     utils.ResolveSeed(*seed),
	})
	if *withMenu {
		sm.SetState(state.NewMenuState(sm))
	} else {
		gs, err := state.NewGameState(sm)
		if err != nil {
			log.Fatalf("failed to start game: %v", err)
		}
		sm.SetState(gs)
	}

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
