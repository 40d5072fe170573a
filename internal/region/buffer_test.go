package region

import (
	"testing"

	"github.com/stretchr/testify/require"

	"loov.dev/elfmap/internal/f32color"
)

type fixedColors map[string]f32color.RGB

func (c fixedColors) Color(name string) f32color.RGB { return c[name] }

func TestGrayscale(t *testing.T) {
	require.Equal(t, Buffer{{0, 0, 0}, {7, 7, 7}, {255, 255, 255}}, Grayscale([]byte{0, 7, 255}))
	require.Empty(t, Grayscale(nil))
}

func TestColorize(t *testing.T) {
	buf := Grayscale([]byte{200, 200, 200, 200, 200, 200})
	orig := append(Buffer{}, buf...)
	parts := []Part{
		{Name: "a", Offset: 0, Length: 2},
		{Name: "b", Offset: 3, Length: 2},
	}
	colors := fixedColors{
		"a": {R: 1, G: 0.5, B: 0},
		"b": {R: 0, G: 0, B: 1},
	}

	out, legend := Colorize(buf, parts, colors)
	require.Equal(t, Buffer{
		{200, 100, 0}, {200, 100, 0},
		{200, 200, 200},
		{0, 0, 200}, {0, 0, 200},
		{200, 200, 200},
	}, out)
	require.Equal(t, orig, buf, "input must not be modified")
	require.Equal(t, []LegendEntry{
		{Name: "a", Color: colors["a"]},
		{Name: "b", Color: colors["b"]},
	}, legend)
}

func TestColorizeOutOfBounds(t *testing.T) {
	buf := Grayscale([]byte{100, 100})
	parts := []Part{
		{Name: "a", Offset: 1, Length: 10},
		{Name: "b", Offset: 50, Length: 10},
	}
	out, legend := Colorize(buf, parts, fixedColors{"a": {}, "b": {}})
	require.Equal(t, Buffer{{100, 100, 100}, {0, 0, 0}}, out)
	require.Len(t, legend, 2)
}

func TestColorizeDuplicateNames(t *testing.T) {
	parts := []Part{
		{Name: "", Offset: 0, Length: 1},
		{Name: "", Offset: 1, Length: 1},
	}
	_, legend := Colorize(Grayscale([]byte{1, 2}), parts, fixedColors{})
	require.Len(t, legend, 2)
}

func TestStrip(t *testing.T) {
	buf := Grayscale([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	parts := []Part{
		{Name: "late", Offset: 7, Length: 2},
		{Name: "early", Offset: 1, Length: 3},
	}

	require.Equal(t, buf, Strip(buf, parts, false))

	stripped := Strip(buf, parts, true)
	require.Len(t, stripped, TotalLength(parts))
	require.Equal(t, Grayscale([]byte{7, 8, 1, 2, 3}), stripped)
}

func TestStripAfterColorize(t *testing.T) {
	data := make([]byte, 500)
	for i := range data {
		data[i] = byte(i)
	}
	parts := Filter(sampleParts(), []Selector{MustParseSelector(".text"), MustParseSelector(".data")})
	colored, _ := Colorize(Grayscale(data), parts, fixedColors{".text": {R: 1}, ".data": {G: 1}})

	require.Len(t, Strip(colored, parts, true), 120)
	require.Len(t, Strip(colored, parts, false), len(data))
}
