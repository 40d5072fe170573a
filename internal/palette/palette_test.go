package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"loov.dev/elfmap/internal/f32color"
)

func TestNewSamplesEnds(t *testing.T) {
	p := New(5, f32color.Rainbow)
	require.Equal(t, 5, p.Len())
	require.Equal(t, f32color.Rainbow(0), p.At(0))
	require.Equal(t, f32color.Rainbow(0.5), p.At(2))
	require.Equal(t, f32color.Rainbow(1), p.At(4))

	single := New(1, f32color.Hue)
	require.Equal(t, f32color.Hue(0), single.At(0))
}

func TestNewInvalidSize(t *testing.T) {
	require.Panics(t, func() { New(0, f32color.Rainbow) })
	require.Panics(t, func() { NewCyclic(0, f32color.Hue) })
}

func TestNewCyclicHasNoDuplicateEnd(t *testing.T) {
	p := NewCyclic(4, f32color.Hue)
	require.Equal(t, 4, p.Len())
	require.Equal(t, f32color.Hue(0), p.At(0))
	require.Equal(t, f32color.Hue(0.5), p.At(2))
	require.Equal(t, f32color.Hue(0.75), p.At(3))

	hsl := NewCyclic(360, f32color.Hue)
	require.NotEqual(t, hsl.At(0).NRGBA(), hsl.At(hsl.Len()-1).NRGBA())
}

func TestNamed(t *testing.T) {
	rainbow, err := Named("rainbow", 5)
	require.NoError(t, err)
	require.Equal(t, f32color.Rainbow(1), rainbow.At(4))

	hsl, err := Named("hsl", 4)
	require.NoError(t, err)
	require.Equal(t, NewCyclic(4, f32color.Hue), hsl)

	_, err = Named("viridis", 10)
	require.Error(t, err)
	_, err = Named("rainbow", 0)
	require.Error(t, err)
}

func TestSpectrum(t *testing.T) {
	for _, name := range []string{"", "rainbow", "hsl", "hue"} {
		s, err := Spectrum(name)
		require.NoError(t, err, name)
		require.NotNil(t, s)
	}
	_, err := Spectrum("viridis")
	require.Error(t, err)
}

func TestRegistryIdempotent(t *testing.T) {
	reg := NewRegistry(New(DefaultSize, f32color.Rainbow))
	first := reg.Color(".text")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, reg.Color(".text"))
	}
	require.Equal(t, 1, reg.Len())
}

func TestRegistryIndependentOfOrder(t *testing.T) {
	names := []string{"Ehdr", ".text", ".data", ".bss", ".comment", "Shdr"}

	a := NewRegistry(New(DefaultSize, f32color.Rainbow))
	for _, name := range names {
		a.Color(name)
	}

	b := NewRegistry(New(DefaultSize, f32color.Rainbow))
	for i := len(names) - 1; i >= 0; i-- {
		b.Color(names[i])
	}
	for _, name := range names {
		require.Equal(t, a.Color(name), b.Color(name), name)
	}

	// a registry that has only seen one name agrees as well
	c := NewRegistry(New(DefaultSize, f32color.Rainbow))
	require.Equal(t, a.Color(".data"), c.Color(".data"))
}

func TestIndexRange(t *testing.T) {
	for _, size := range []int{1, 2, 7, DefaultSize} {
		for _, name := range []string{"", "Ehdr", ".text", ".rela.text"} {
			i := Index(name, size)
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, size)
			require.Equal(t, i, Index(name, size))
		}
	}
}

// The assignments must not change between runs or releases.
func TestIndexGolden(t *testing.T) {
	tests := []struct {
		name  string
		index int
		color color.NRGBA
	}{
		{".text", 837, color.NRGBA{R: 8, G: 170, B: 238, A: 255}},
		{"Ehdr", 3364, color.NRGBA{R: 255, G: 51, B: 26, A: 255}},
		{"Shdr", 720, color.NRGBA{R: 25, G: 149, B: 242, A: 255}},
		{".data", 2690, color.NRGBA{R: 253, G: 181, B: 98, A: 255}},
	}

	reg := NewRegistry(New(DefaultSize, f32color.Rainbow))
	for _, tt := range tests {
		require.Equal(t, tt.index, Index(tt.name, DefaultSize), tt.name)
		require.Equal(t, tt.color, reg.Color(tt.name).NRGBA(), tt.name)
	}
}
