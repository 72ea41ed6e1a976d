// Package texture synthesizes placeholder textures for the generated
// models: a UV-test checkerboard and a plated-hull pattern tinted per
// walker class.
package texture

import (
	"image"
	"image/color"
	"math/rand"
)

// Checker renders a size x size checkerboard alternating a and b in
// cell x cell squares. Useful for eyeballing UV orientation in the engine.
func Checker(size, cell int, a, b color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// HullPlate renders a plated-armor pattern: a panel grid with per-panel
// shade jitter, darkened seams, and a rivet dot in each panel corner.
func HullPlate(size, panel int, base color.NRGBA, rng *rand.Rand) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cols := (size + panel - 1) / panel
	rows := cols

	// Per-panel brightness jitter, fixed up front so pixel order below
	// doesn't affect the result.
	shades := make([]float64, cols*rows)
	for i := range shades {
		shades[i] = 0.85 + rng.Float64()*0.3
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := x/panel, y/panel
			shade := shades[py*cols+px]

			switch {
			case x%panel == 0 || y%panel == 0:
				shade *= 0.55 // seam
			case isRivet(x%panel, y%panel, panel):
				shade *= 1.35
			}

			img.SetNRGBA(x, y, scaleColor(base, shade))
		}
	}
	return img
}

// isRivet reports whether the in-panel coordinate sits on one of the four
// corner rivet dots.
func isRivet(x, y, panel int) bool {
	const inset = 3
	nearX := x <= inset+1 && x >= inset
	farX := x >= panel-inset-1 && x <= panel-inset
	nearY := y <= inset+1 && y >= inset
	farY := y >= panel-inset-1 && y <= panel-inset
	return (nearX || farX) && (nearY || farY)
}

func scaleColor(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: clamp8(float64(c.R) * f),
		G: clamp8(float64(c.G) * f),
		B: clamp8(float64(c.B) * f),
		A: c.A,
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
