package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"loov.dev/elfmap/internal/config"
	"loov.dev/elfmap/internal/pipeline"
)

// Writer encodes a single result.
type Writer func(w io.Writer, res *pipeline.Result, scale int) error

// WriterFor returns the writer for a format.
func WriterFor(format string) (Writer, error) {
	switch format {
	case config.FormatPNG:
		return PNG, nil
	case config.FormatSVG:
		return SVG, nil
	default:
		return nil, fmt.Errorf("render: unknown format %q", format)
	}
}

// Filename returns the output name of the i-th result.
func Filename(i int, res *pipeline.Result, format string) string {
	return fmt.Sprintf("%02d-%s.%s", i+1, filepath.Base(res.Path), format)
}

// Save writes every result into dir and returns the written paths.
func Save(dir string, results []*pipeline.Result, format string, scale int) ([]string, error) {
	write, err := WriterFor(format)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}

	paths := make([]string, 0, len(results))
	for i, res := range results {
		path := filepath.Join(dir, Filename(i, res, format))
		if err := saveFile(path, res, write, scale); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func saveFile(path string, res *pipeline.Result, write Writer, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "close output")
		}
	}()
	return write(f, res, scale)
}
