// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 600
	WindowTitle  = "Tower Defense"

	TicksPerSecond = 60

	DefeatScreenTicks  = 3 * TicksPerSecond
	VictoryScreenTicks = 4 * TicksPerSecond

	PathWidth         = 40.0
	EnemySpriteSize   = 40
	HealthBarLength   = 40.0
	HealthBarHeight   = 6.0
	HealthBarOffsetY  = 25.0
	GrassSpeckleCount = 2000

	GateWidth     = 60.0
	GateHeight    = 80.0
	GateThickness = 10.0
	GateArcRadius = 30.0

	HUDOffsetX     = 10
	HUDOffsetY     = 10
	HUDLineSpacing = 30
	HUDFontSize    = 25
	TitleFontSize  = 50
	BannerFontSize = 40

	SpeedButtonX    = ScreenWidth - 40
	SpeedButtonY    = 30
	SpeedButtonSize = 14.0

	StrokeWidth = 2.0

	FontPath   = "assets/fonts/arial.ttf"
	SpritesDir = "assets/sprites"
)

var (
	GrassColor        = color.RGBA{60, 150, 60, 255}
	GrassSpeckleColor = color.RGBA{80, 180, 80, 255}
	GroundColor       = color.RGBA{150, 120, 90, 255}
	BushColor         = color.RGBA{10, 70, 10, 255}
	TreeColor         = color.RGBA{20, 120, 20, 255}
	GateColor         = color.RGBA{120, 60, 0, 255}
	GateArchColor     = color.RGBA{80, 40, 0, 255}
	EnemyColor        = color.RGBA{255, 0, 0, 255}
	HealthBackColor   = color.RGBA{255, 0, 0, 255}
	HealthFillColor   = color.RGBA{0, 255, 0, 255}
	TowerColor        = color.RGBA{0, 0, 255, 255}
	SelectionColor    = color.RGBA{255, 255, 0, 255}
	UpgradeFlashColor = color.RGBA{255, 255, 0, 255}
	RangeColor        = color.RGBA{255, 255, 255, 60}
	BulletColor       = color.RGBA{255, 255, 255, 255}
	TextLightColor    = color.RGBA{255, 255, 255, 255}
	TitleColor        = color.RGBA{255, 255, 0, 255}
	DefeatColor       = color.RGBA{255, 0, 0, 255}
	VictoryColor      = color.RGBA{255, 255, 0, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}

	// BushPositions и TreePositions задают декорации вдоль краёв поля.
	BushPositions = [][2]float64{
		{20, 20}, {80, 40}, {150, 30},
		{ScreenWidth - 60, 50}, {ScreenWidth - 30, 20},
		{20, ScreenHeight - 60}, {60, ScreenHeight - 30},
		{ScreenWidth - 80, ScreenHeight - 40}, {ScreenWidth - 40, ScreenHeight - 20},
	}
	TreePositions = [][2]float64{
		{50, 100}, {120, 150}, {180, 90},
		{ScreenWidth - 150, 120}, {ScreenWidth - 100, 80},
		{50, ScreenHeight - 150}, {120, ScreenHeight - 100},
		{ScreenWidth - 130, ScreenHeight - 120}, {ScreenWidth - 80, ScreenHeight - 90},
	}
)
