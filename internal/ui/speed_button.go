// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-path-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton — кнопка ускорения в виде двух треугольников; цвет
// показывает текущую скорость.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
	fillImg       *ebiten.Image
	vs            []ebiten.Vertex
	is            []uint16
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		fillImg:     fillImg,
	}
}

// SetState shows the given speed step and starts the click pulse.
func (b *SpeedButton) SetState(state int) {
	if state == b.CurrentState {
		return
	}
	b.CurrentState = state % len(b.StateColors)
	b.LastClickTime = time.Now()
}

// IsClicked uses a circle for hit testing since the shape is irregular.
func (b *SpeedButton) IsClicked(mx, my int) bool {
	dx := float32(mx) - b.X
	dy := float32(my) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	pulse := float32(math.Exp(-elapsed * 8))
	size := b.Size * utils.Lerp(1.0, 1.3, pulse)
	clr := b.StateColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.8

	b.drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, clr)
	b.drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, clr)
}

func (b *SpeedButton) drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	b.vs, b.is = path.AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])
	for i := range b.vs {
		b.vs[i].ColorR = float32(clr.R) / 255
		b.vs[i].ColorG = float32(clr.G) / 255
		b.vs[i].ColorB = float32(clr.B) / 255
		b.vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(b.vs, b.is, b.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vector.StrokeLine(screen, x1, y1, x2, y2, 1, color.White, true)
	vector.StrokeLine(screen, x2, y2, x3, y3, 1, color.White, true)
	vector.StrokeLine(screen, x3, y3, x1, y1, 1, color.White, true)
}
