package render

import "image/color"

// SceneColors holds the colors used for the static background.
type SceneColors struct {
	Grass        color.RGBA
	GrassSpeckle color.RGBA
	Ground       color.RGBA
	Bush         color.RGBA
	Tree         color.RGBA
	Gate         color.RGBA
	GateArch     color.RGBA
}

// EntityColors holds the fallback colors for entities without sprites.
type EntityColors struct {
	Enemy        color.RGBA
	HealthBack   color.RGBA
	HealthFill   color.RGBA
	Tower        color.RGBA
	Selection    color.RGBA
	UpgradeFlash color.RGBA
	Range        color.RGBA
	Bullet       color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha scaled by a in [0, 1]. Channels are
// premultiplied, as color.RGBA expects.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
