// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 3.0
)

// LivesIndicator отображает оставшиеся жизни сеткой кружков.
type LivesIndicator struct {
	X, Y     float32
	MaxLives int
}

func NewLivesIndicator(x, y float32, maxLives int) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, MaxLives: maxLives}
}

// Draw рисует заполненный кружок на каждую оставшуюся жизнь; при потере
// половины жизней заполненные кружки краснеют.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives int) {
	filled := color.RGBA{50, 100, 255, 255}
	if lives*2 <= i.MaxLives {
		filled = color.RGBA{255, 0, 0, 255}
	}
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)

	for j := 0; j < i.MaxLives; j++ {
		cx := i.X + float32(j%LivesCols)*step + LivesCircleRadius
		cy := i.Y + float32(j/LivesCols)*step + LivesCircleRadius

		c := color.RGBA{0, 0, 0, 255}
		if j < lives {
			c = filled
		}
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}
}
