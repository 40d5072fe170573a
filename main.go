package main

import (
	"context"
	"fmt"
	"image"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"loov.dev/elfmap/internal/config"
	"loov.dev/elfmap/internal/palette"
	"loov.dev/elfmap/internal/pipeline"
	"loov.dev/elfmap/internal/render"
	"loov.dev/elfmap/internal/selection"
)

type flags struct {
	configPath string
	outDir     string
	legend     bool
	verbose    bool
	textSize   int
	font       string

	config.Config
}

func main() {
	windows, err := execute(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if windows == nil {
		return
	}

	go func() {
		windows.Wait()
		os.Exit(0)
	}()

	// This starts Gio main.
	app.Main()
}

// execute runs the command line, it returns the opened windows when
// the results should be shown on screen.
func execute(args []string) (*Windows, error) {
	var windows *Windows
	opts := flags{Config: config.Default()}

	cmd := &cobra.Command{
		Use:   "elfmap [flags] file [+selectors|++selectors] [file [+selectors]]...",
		Short: "Visualize the byte layout of ELF object files",
		Long: `elfmap draws every byte of each file as a pixel and colors
the ELF header, program header, section header and sections,
so that the layout of multiple files can be compared.

A "+a,b" token after a file shows only the parts named a or b,
"++a,b" also removes all other bytes. Before any file the tokens
apply to every file. Selectors are part names or /regexp/ patterns
matching the start of the name.

Example:
  elfmap main.o +.text,.data
  elfmap ++/\.text/ gcc.o clang.o
  elfmap --out plots --scale 2 a.o b.o`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			windows, err = run(cmd.Context(), opts, cfg, args)
			return err
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVarP(&opts.outDir, "out", "o", "", "write images into directory instead of opening a window")
	fs.StringVar(&opts.Format, "format", opts.Format, "output format: png or svg")
	fs.IntVar(&opts.Scale, "scale", opts.Scale, "integer upscaling of written images")
	fs.IntVar(&opts.PaletteSize, "palette-size", opts.PaletteSize, "number of colors in the palette")
	fs.StringVar(&opts.Spectrum, "spectrum", opts.Spectrum, "palette spectrum: rainbow or hsl")
	fs.IntVar(&opts.Workers, "workers", opts.Workers, "files processed in parallel")
	fs.BoolVar(&opts.legend, "legend", false, "print legends to the terminal")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	fs.IntVar(&opts.textSize, "text-size", 12, "viewer font size")
	fs.StringVar(&opts.font, "font", "", "viewer user font")

	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return nil, err
	}
	return windows, nil
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts flags) (config.Config, error) {
	if opts.configPath == "" {
		return opts.Config, opts.Config.Validate()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("format") {
		cfg.Format = opts.Format
	}
	if fs.Changed("scale") {
		cfg.Scale = opts.Scale
	}
	if fs.Changed("palette-size") {
		cfg.PaletteSize = opts.PaletteSize
	}
	if fs.Changed("spectrum") {
		cfg.Spectrum = opts.Spectrum
	}
	if fs.Changed("workers") {
		cfg.Workers = opts.Workers
	}
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

func run(ctx context.Context, opts flags, cfg config.Config, args []string) (*Windows, error) {
	logger := newLogger(opts.verbose)

	defaults, err := selection.ParseList(cfg.Selectors)
	if err != nil {
		return nil, err
	}
	plan, err := selection.Resolve(args, selection.Options{Selectors: defaults, Strip: cfg.Strip})
	if err != nil {
		return nil, err
	}

	colors, err := palette.Named(cfg.Spectrum, cfg.PaletteSize)
	if err != nil {
		return nil, err
	}

	processor := &pipeline.Processor{
		Logger:  logger,
		Colors:  palette.NewRegistry(colors),
		Workers: cfg.Workers,
	}
	results, err := processor.Run(ctx, plan.Files)
	if err != nil {
		return nil, err
	}

	if opts.legend {
		if err := PrintLegends(os.Stdout, results); err != nil {
			return nil, err
		}
	}

	if opts.outDir != "" {
		paths, err := render.Save(opts.outDir, results, cfg.Format, cfg.Scale)
		for _, path := range paths {
			level.Info(logger).Log("msg", "wrote image", "path", path)
		}
		return nil, err
	}

	fonts, err := LoadFonts(opts.font)
	if err != nil {
		return nil, err
	}
	theme := material.NewTheme(fonts)
	theme.TextSize = unit.Sp(opts.textSize)

	windows := &Windows{Logger: logger}
	ui := NewPlotUI(windows, theme, results)
	ui.Config = PlotUIConfig{
		SaveDir: ".",
		Format:  cfg.Format,
		Scale:   cfg.Scale,
		Logger:  logger,
	}
	windows.Open("elfmap", image.Pt(1400, 900), ui.Run)

	return windows, nil
}
