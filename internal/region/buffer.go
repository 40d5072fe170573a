package region

import (
	"golang.org/x/exp/slices"

	"loov.dev/elfmap/internal/f32color"
)

// Pixel is an RGB triple.
type Pixel [3]uint8

// Buffer is a one dimensional list of pixels, one per file byte.
type Buffer []Pixel

// Grayscale converts bytes to gray pixels.
func Grayscale(data []byte) Buffer {
	buf := make(Buffer, len(data))
	for i, v := range data {
		buf[i] = Pixel{v, v, v}
	}
	return buf
}

// LegendEntry describes the color of a part.
type LegendEntry struct {
	Name  string
	Color f32color.RGB
}

// Colors assigns a color to a part name.
type Colors interface {
	Color(name string) f32color.RGB
}

// Colorize tints each part with its color.
//
// Pixels outside of parts stay gray. The legend contains an entry
// for each part in the same order. buf is not modified.
func Colorize(buf Buffer, parts []Part, colors Colors) (Buffer, []LegendEntry) {
	out := slices.Clone(buf)
	legend := make([]LegendEntry, 0, len(parts))
	for _, p := range parts {
		c := colors.Color(p.Name)
		from, to := clampRange(p, len(out))
		for i := from; i < to; i++ {
			px := &out[i]
			px[0], px[1], px[2] = c.Modulate(px[0], px[1], px[2])
		}
		legend = append(legend, LegendEntry{Name: p.Name, Color: c})
	}
	return out, legend
}

// Strip keeps only the pixels belonging to parts, concatenated in part order.
// When strip is false buf is returned as is.
func Strip(buf Buffer, parts []Part, strip bool) Buffer {
	if !strip {
		return buf
	}

	size := 0
	for _, p := range parts {
		from, to := clampRange(p, len(buf))
		size += to - from
	}

	out := make(Buffer, 0, size)
	for _, p := range parts {
		from, to := clampRange(p, len(buf))
		out = append(out, buf[from:to]...)
	}
	return out
}
