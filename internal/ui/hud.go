// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-path-defense/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// HUD выводит деньги, жизни и номер волны в левом верхнем углу.
type HUD struct {
	X, Y        int
	LineSpacing int
	Face        font.Face
	Color       color.Color
	Lives       *LivesIndicator
}

func NewHUD(x, y, lineSpacing int, face font.Face, clr color.Color, lives *LivesIndicator) *HUD {
	return &HUD{X: x, Y: y, LineSpacing: lineSpacing, Face: face, Color: clr, Lives: lives}
}

// Lines returns the HUD text for a snapshot, one entry per row.
func Lines(snap app.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Money: %d", snap.Money),
		fmt.Sprintf("Lives: %d", snap.Lives),
		fmt.Sprintf("Wave: %d / %d", snap.Wave, snap.WaveMax),
	}
	if snap.UpgradeCost > 0 {
		lines = append(lines, fmt.Sprintf("U: upgrade (%d)", snap.UpgradeCost))
	}
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	y := h.Y
	for _, line := range Lines(snap) {
		DrawText(screen, line, h.Face, h.X, y, h.Color)
		y += h.LineSpacing
	}
	if h.Lives != nil {
		h.Lives.Draw(screen, snap.Lives)
	}
}
