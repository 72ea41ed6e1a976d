package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// Preview returns a half-resolution CatmullRom downsample of img for quick
// visual review. Generated textures are fully opaque, so no premultiply
// pass is needed.
func Preview(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx()/2, b.Dy()/2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
