package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"loov.dev/elfmap/internal/pipeline"
)

// SVG writes res as an SVG document.
//
// Each row is drawn as rectangles covering runs of equal pixels.
func SVG(w io.Writer, res *pipeline.Result, scale int) error {
	if scale < 1 {
		scale = 1
	}
	img := res.Image

	plotWidth := img.Width * scale
	width := plotWidth + margin + legendWidth(res.Legend)
	height := titleHeight + img.Height*scale
	if h := titleHeight + len(res.Legend)*entryHeight + margin; h > height {
		height = h
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Title(res.Title())
	canvas.Rect(0, 0, width, height, "fill:white")
	canvas.Text(margin, titleHeight-6, res.Title(), "font-family:monospace;font-size:12px")

	canvas.Gstyle("shape-rendering:crispEdges")
	for y := 0; y < img.Height; y++ {
		row := img.Row(y)
		for x := 0; x < len(row); {
			run := 1
			for x+run < len(row) && row[x+run] == row[x] {
				run++
			}
			px := row[x]
			canvas.Rect(x*scale, titleHeight+y*scale, run*scale, scale,
				canvas.RGB(int(px[0]), int(px[1]), int(px[2])))
			x += run
		}
	}
	canvas.Gend()

	x := plotWidth + margin
	for i, e := range res.Legend {
		y := titleHeight + i*entryHeight
		c := e.Color.NRGBA()
		canvas.Rect(x, y+2, swatchSize, swatchSize, canvas.RGB(int(c.R), int(c.G), int(c.B)))
		canvas.Text(x+swatchSize+margin/2, y+entryHeight-3, e.Name, "font-family:monospace;font-size:12px")
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
