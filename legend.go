package main

import (
	"fmt"
	"io"

	"github.com/aybabtme/rgbterm"
	"github.com/fatih/color"

	"loov.dev/elfmap/internal/pipeline"
)

// PrintLegends writes the title and legend of each result.
func PrintLegends(w io.Writer, results []*pipeline.Result) error {
	title := color.New(color.Bold)
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := title.Fprintln(w, res.Title()); err != nil {
			return err
		}
		for _, e := range res.Legend {
			c := e.Color.NRGBA()
			if _, err := fmt.Fprintf(w, "  %s %s\n", swatch(c.R, c.G, c.B), legendName(e.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func swatch(r, g, b uint8) string {
	if color.NoColor {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return rgbterm.BgString("    ", r, g, b)
}

func legendName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}
