// Package render draws pipeline results as images.
package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"loov.dev/elfmap/internal/region"
)

// Image converts a normalized buffer into an image.
func Image(img region.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x, px := range img.Row(y) {
			dst.SetNRGBA(x, y, pixelColor(px))
		}
	}
	return dst
}

// Scale enlarges src by an integer factor without smoothing.
func Scale(src image.Image, factor int) image.Image {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func pixelColor(px region.Pixel) color.NRGBA {
	return color.NRGBA{R: px[0], G: px[1], B: px[2], A: 0xFF}
}
