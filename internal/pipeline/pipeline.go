// Package pipeline turns object files into colored images.
//
// Each file goes through load, extract, filter, colorize and strip
// independently. Normalization pads all results to a common shape.
package pipeline

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"loov.dev/elfmap/internal/objfile"
	"loov.dev/elfmap/internal/region"
	"loov.dev/elfmap/internal/selection"
)

// Result is a file ready for rendering.
type Result struct {
	Path    string
	Caption string
	Options selection.Options

	// Parts are the selected parts.
	Parts  []region.Part
	Legend []region.LegendEntry
	Image  region.Image
}

// Title describes the result for display.
func (r *Result) Title() string {
	if r.Caption == "" {
		return r.Path
	}
	return r.Path + " - " + r.Caption
}

// Processor runs the pipeline.
type Processor struct {
	Logger  log.Logger
	Colors  region.Colors
	Workers int
}

// Run processes files and returns the results in the same order.
// The first failure cancels the remaining work.
func (p *Processor) Run(ctx context.Context, files []selection.File) ([]*Result, error) {
	if len(files) == 0 {
		return nil, selection.ErrNoFiles
	}

	results := make([]*Result, len(files))
	buffers := make([]region.Buffer, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if p.Workers > 0 {
		g.SetLimit(p.Workers)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			obj, err := objfile.Open(file.Path)
			if err != nil {
				return err
			}
			results[i], buffers[i], err = p.Process(obj, file.Options)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	images := region.Normalize(buffers)
	for i, img := range images {
		results[i].Image = img
	}
	level.Debug(p.logger()).Log("msg", "normalized", "files", len(files), "width", images[0].Width, "height", images[0].Height)

	return results, nil
}

// Process applies the per-file stages to a loaded file.
// The returned buffer still needs to be normalized.
func (p *Processor) Process(obj *objfile.File, opts selection.Options) (*Result, region.Buffer, error) {
	logger := log.With(p.logger(), "file", obj.Path)

	parts := region.Extract(obj.Directory)
	level.Debug(logger).Log("msg", "extracted parts", "parts", len(parts), "length", len(obj.Data))

	selected := region.Filter(parts, opts.Selectors)
	if len(selected) == 0 {
		return nil, nil, &selection.Error{Path: obj.Path, Token: opts.String(), Err: selection.ErrNothingSelected}
	}
	level.Debug(logger).Log("msg", "filtered parts", "selected", len(selected), "options", opts)

	buf, legend := region.Colorize(region.Grayscale(obj.Data), selected, p.Colors)
	buf = region.Strip(buf, selected, opts.Strip)
	if opts.Strip {
		level.Debug(logger).Log("msg", "stripped", "length", len(buf))
	}

	return &Result{
		Path:    obj.Path,
		Caption: obj.Caption,
		Options: opts,
		Parts:   selected,
		Legend:  legend,
	}, buf, nil
}

func (p *Processor) logger() log.Logger {
	if p.Logger == nil {
		return log.NewNopLogger()
	}
	return p.Logger
}
