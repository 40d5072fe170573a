package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"loov.dev/elfmap/internal/f32color"
	"loov.dev/elfmap/internal/pipeline"
	"loov.dev/elfmap/internal/region"
)

const (
	margin      = 8
	titleHeight = 20
	entryHeight = 16
	swatchSize  = 12
)

var face = basicfont.Face7x13

// Composite draws the title, the scaled image and the legend onto one image.
func Composite(res *pipeline.Result, scale int) *image.NRGBA {
	plot := Scale(Image(res.Image), scale)
	pb := plot.Bounds()

	width := pb.Dx() + margin + legendWidth(res.Legend)
	if w := font.MeasureString(face, res.Title()).Ceil() + 2*margin; w > width {
		width = w
	}
	height := titleHeight + pb.Dy()
	if h := titleHeight + len(res.Legend)*entryHeight + margin; h > height {
		height = h
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(f32color.White), image.Point{}, draw.Src)

	text(dst, margin, titleHeight-6, res.Title())
	draw.Draw(dst, pb.Add(image.Pt(0, titleHeight)), plot, pb.Min, draw.Src)

	x := pb.Dx() + margin
	for i, e := range res.Legend {
		y := titleHeight + i*entryHeight
		swatch := image.Rect(x, y+2, x+swatchSize, y+2+swatchSize)
		draw.Draw(dst, swatch, image.NewUniform(e.Color.NRGBA()), image.Point{}, draw.Src)
		text(dst, x+swatchSize+margin/2, y+entryHeight-3, e.Name)
	}

	return dst
}

// legendWidth returns the width of the legend column with the swatch and margins.
func legendWidth(legend []region.LegendEntry) int {
	names := 0
	for _, e := range legend {
		if w := font.MeasureString(face, e.Name).Ceil(); w > names {
			names = w
		}
	}
	return names + swatchSize + 2*margin
}

func text(dst draw.Image, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// PNG writes the composite image of res as PNG.
func PNG(w io.Writer, res *pipeline.Result, scale int) error {
	return errors.Wrap(png.Encode(w, Composite(res, scale)), "encode png")
}
