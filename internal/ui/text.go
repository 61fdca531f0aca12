package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawText draws s with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Min.X, y-bounds.Min.Y, clr)
}

// DrawCenteredText draws s centered on (x, y).
func DrawCenteredText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(screen, s, face, x-w/2-bounds.Min.X, y-h/2-bounds.Min.Y, clr)
}
