package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"loov.dev/elfmap/internal/region"
)

func selectorStrings(opts Options) []string {
	var r []string
	for _, sel := range opts.Selectors {
		r = append(r, sel.String())
	}
	return r
}

func TestResolveScoped(t *testing.T) {
	plan, err := Resolve([]string{"a.o", "++.text,.data", "b.o", "c.o", "+Shdr"}, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"a.o", "b.o", "c.o"}, plan.Paths())

	a := plan.Files[0].Options
	require.True(t, a.Strip)
	require.Equal(t, []string{".text", ".data"}, selectorStrings(a))

	b := plan.Files[1].Options
	require.False(t, b.Strip)
	require.Empty(t, b.Selectors)

	c := plan.Files[2].Options
	require.False(t, c.Strip)
	require.Equal(t, []string{"Shdr"}, selectorStrings(c))
}

func TestResolveGlobal(t *testing.T) {
	plan, err := Resolve([]string{"+Ehdr", "a.o", "++.text", "b.o"}, Options{})
	require.NoError(t, err)

	require.Equal(t, []string{"Ehdr"}, selectorStrings(plan.Global))
	require.False(t, plan.Global.Strip)

	require.Equal(t, []string{"Ehdr", ".text"}, selectorStrings(plan.Files[0].Options))
	require.True(t, plan.Files[0].Options.Strip)

	require.Equal(t, []string{"Ehdr"}, selectorStrings(plan.Files[1].Options))
	require.False(t, plan.Files[1].Options.Strip)
}

func TestResolveDefaults(t *testing.T) {
	defaults := Options{
		Selectors: []region.Selector{region.MustParseSelector("Shdr")},
		Strip:     true,
	}
	plan, err := Resolve([]string{"++Ehdr", "a.o", "+.text"}, defaults)
	require.NoError(t, err)

	require.Equal(t, []string{"Shdr", "Ehdr"}, selectorStrings(plan.Global))
	require.Equal(t, []string{"Shdr", "Ehdr", ".text"}, selectorStrings(plan.Files[0].Options))
	require.True(t, plan.Files[0].Options.Strip)
}

func TestResolveAccumulates(t *testing.T) {
	plan, err := Resolve([]string{"a.o", "+.text", "++.data"}, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{".text", ".data"}, selectorStrings(plan.Files[0].Options))
	require.True(t, plan.Files[0].Options.Strip)
}

func TestResolvePatterns(t *testing.T) {
	plan, err := Resolve([]string{"a.o", `+/\.te/,/x{1,3}/,.bss`}, Options{})
	require.NoError(t, err)

	opts := plan.Files[0].Options
	require.Equal(t, []string{`/\.te/`, `/x{1,3}/`, ".bss"}, selectorStrings(opts))
	require.True(t, opts.Selectors[0].IsPattern())
	require.True(t, opts.Selectors[1].IsPattern())
	require.False(t, opts.Selectors[2].IsPattern())
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"no args", nil, ErrNoFiles},
		{"only selectors", []string{"+.text"}, ErrNoFiles},
		{"empty list", []string{"a.o", "+"}, ErrEmptyList},
		{"empty strip list", []string{"a.o", "++"}, ErrEmptyList},
		{"empty item", []string{"a.o", "+.text,,.data"}, region.ErrEmptySelector},
		{"trailing comma", []string{"a.o", "+.text,"}, region.ErrEmptySelector},
		{"leading comma", []string{"+,.text", "a.o"}, region.ErrEmptySelector},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.args, Options{})
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.is), "got %v", err)
		})
	}
}

func TestResolveInvalidPattern(t *testing.T) {
	_, err := Resolve([]string{"a.o", "+/(/"}, Options{})
	var selErr *Error
	require.True(t, errors.As(err, &selErr))
	require.Equal(t, "a.o", selErr.Path)
	require.Equal(t, "+/(/", selErr.Token)
	require.Contains(t, err.Error(), "+/(/")
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		list string
		want []string
	}{
		{".text", []string{".text"}},
		{".text,.data", []string{".text", ".data"}},
		{"/a,b/", []string{"/a,b/"}},
		{"/a/,b", []string{"/a/", "b"}},
		{"b,/a/", []string{"b", "/a/"}},
		{"/", []string{"/"}},
	}
	for _, tt := range tests {
		got, err := splitList(tt.list)
		require.NoError(t, err, tt.list)
		require.Equal(t, tt.want, got, tt.list)
	}
}

func TestOptionsString(t *testing.T) {
	require.Equal(t, "", Options{}.String())
	opts := Options{
		Selectors: []region.Selector{region.MustParseSelector(".text"), region.MustParseSelector("/x/")},
		Strip:     true,
	}
	require.Equal(t, "++.text,/x/", opts.String())
}

func TestParseList(t *testing.T) {
	sels, err := ParseList([]string{".text", "/^\\.rel/"})
	require.NoError(t, err)
	require.Len(t, sels, 2)

	_, err = ParseList([]string{""})
	require.True(t, errors.Is(err, region.ErrEmptySelector))
}
