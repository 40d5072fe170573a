// Package palette assigns stable colors to part names.
package palette

import (
	"fmt"

	"loov.dev/elfmap/internal/f32color"
)

// DefaultSize is the number of colors sampled from the spectrum by default.
const DefaultSize = 3600

// Palette is a fixed list of colors sampled at equal intervals from a spectrum.
type Palette struct {
	colors []f32color.RGB
}

// New samples size colors from spectrum, including both ends.
func New(size int, spectrum f32color.Spectrum) *Palette {
	if size < 1 {
		panic(fmt.Sprintf("palette: invalid size %d", size))
	}
	p := &Palette{colors: make([]f32color.RGB, size)}
	if size == 1 {
		p.colors[0] = spectrum(0)
		return p
	}
	for i := range p.colors {
		p.colors[i] = spectrum(float32(i) / float32(size-1))
	}
	return p
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int { return len(p.colors) }

// At returns the i-th color.
func (p *Palette) At(i int) f32color.RGB { return p.colors[i] }

// NewCyclic samples size colors from a spectrum where both ends are the
// same color, the end is left out so that no color appears twice.
func NewCyclic(size int, spectrum f32color.Spectrum) *Palette {
	if size < 1 {
		panic(fmt.Sprintf("palette: invalid size %d", size))
	}
	p := &Palette{colors: make([]f32color.RGB, size)}
	for i := range p.colors {
		p.colors[i] = spectrum(float32(i) / float32(size))
	}
	return p
}

// Named creates a palette of size colors from the named spectrum.
func Named(name string, size int) (*Palette, error) {
	spectrum, err := Spectrum(name)
	if err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, fmt.Errorf("palette: invalid size %d", size)
	}
	if isCyclic(name) {
		return NewCyclic(size, spectrum), nil
	}
	return New(size, spectrum), nil
}

func isCyclic(name string) bool { return name == "hsl" || name == "hue" }

// Spectrum returns the named spectrum.
func Spectrum(name string) (f32color.Spectrum, error) {
	switch name {
	case "", "rainbow":
		return f32color.Rainbow, nil
	case "hsl", "hue":
		return f32color.Hue, nil
	default:
		return nil, fmt.Errorf("palette: unknown spectrum %q", name)
	}
}
