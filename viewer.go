package main

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"loov.dev/elfmap/internal/pipeline"
	"loov.dev/elfmap/internal/render"
)

var (
	secondaryBackground = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	splitterColor       = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

type PlotUIConfig struct {
	SaveDir string
	Format  string
	Scale   int
	Logger  log.Logger
}

// PlotUI shows all the files side by side.
type PlotUI struct {
	Windows *Windows
	Theme   *material.Theme

	Config PlotUIConfig

	Results []*pipeline.Result
	Panels  []*PlotPanel

	// Status is the outcome of the last save.
	Status string
	Save   widget.Clickable
}

func NewPlotUI(windows *Windows, theme *material.Theme, results []*pipeline.Result) *PlotUI {
	ui := &PlotUI{}
	ui.Windows = windows
	ui.Theme = theme
	ui.Results = results
	for _, res := range results {
		ui.Panels = append(ui.Panels, NewPlotPanel(res))
	}
	return ui
}

func (ui *PlotUI) Run(w *app.Window) error {
	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)

		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

func (ui *PlotUI) Layout(gtx layout.Context) layout.Dimensions {
	for ui.Save.Clicked() {
		ui.save()
	}
	for _, panel := range ui.Panels {
		for panel.OpenInNew.Clicked() {
			ui.openInNew(gtx, panel)
		}
	}

	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(ui.layoutToolbar),
		layout.Rigid(HorizontalLine{Height: 1, Color: splitterColor}.Layout),
		layout.Flexed(1, ui.layoutPanels),
	)
}

func (ui *PlotUI) layoutToolbar(gtx layout.Context) layout.Dimensions {
	return layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			button := material.IconButton(ui.Theme, &ui.Save, SaveIcon, "Save images")
			button.Size = 16
			button.Inset = layout.UniformInset(8)
			return layout.UniformInset(2).Layout(gtx, button.Layout)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			txt := material.Body2(ui.Theme, ui.Status)
			txt.MaxLines = 1
			return layout.Inset{Left: 8, Right: 8}.Layout(gtx, txt.Layout)
		}),
	)
}

func (ui *PlotUI) layoutPanels(gtx layout.Context) layout.Dimensions {
	children := make([]layout.FlexChild, 0, 2*len(ui.Panels))
	for i, panel := range ui.Panels {
		if i > 0 {
			children = append(children, layout.Rigid(VerticalLine{Width: 1, Color: splitterColor}.Layout))
		}
		style := PlotPanelStyle{
			Theme:         ui.Theme,
			PlotPanel:     panel,
			ShowOpenInNew: true,
		}
		children = append(children, layout.Flexed(1, style.Layout))
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}

func (ui *PlotUI) save() {
	logger := ui.Config.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	paths, err := render.Save(ui.Config.SaveDir, ui.Results, ui.Config.Format, ui.Config.Scale)
	if err != nil {
		ui.Status = err.Error()
		level.Error(logger).Log("msg", "failed to save images", "err", err)
		return
	}
	for _, path := range paths {
		level.Info(logger).Log("msg", "wrote image", "path", path)
	}
	ui.Status = fmt.Sprintf("saved %d images to %s", len(paths), ui.Config.SaveDir)
}

func (ui *PlotUI) openInNew(gtx layout.Context, panel *PlotPanel) {
	style := PlotPanelStyle{
		Theme:     ui.Theme,
		PlotPanel: NewPlotPanel(panel.Result),
	}

	size := gtx.Constraints.Max
	size.X = int(float32(size.X) / gtx.Metric.PxPerDp / float32(len(ui.Panels)))
	size.Y = int(float32(size.Y) / gtx.Metric.PxPerDp)
	ui.Windows.Open(panel.Result.Path, size, WidgetWindow(style.Layout))
}

// PlotPanel is the state of a single file view.
type PlotPanel struct {
	Result *pipeline.Result

	image     paint.ImageOp
	Legend    widget.List
	OpenInNew widget.Clickable
}

func NewPlotPanel(res *pipeline.Result) *PlotPanel {
	panel := &PlotPanel{Result: res}
	panel.image = paint.NewImageOp(render.Image(res.Image))
	panel.Legend.Axis = layout.Vertical
	return panel
}

type PlotPanelStyle struct {
	Theme *material.Theme
	*PlotPanel

	ShowOpenInNew bool
}

func (style PlotPanelStyle) Layout(gtx layout.Context) layout.Dimensions {
	res := style.Result
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			txt := material.Body1(style.Theme, res.Path)
			txt.TextSize *= 1.2
			txt.MaxLines = 1

			inset := layout.Inset{Top: 4, Left: 4, Right: 4, Bottom: 2}
			return inset.Layout(gtx, txt.Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if res.Caption == "" {
				return layout.Dimensions{}
			}
			txt := material.Body2(style.Theme, res.Caption)
			txt.Font.Style = text.Italic
			txt.MaxLines = 1

			inset := layout.Inset{Top: 2, Left: 4, Right: 4, Bottom: 4}
			return inset.Layout(gtx, txt.Layout)
		}),
		layout.Rigid(HorizontalLine{Height: 1, Color: splitterColor}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints = layout.Exact(gtx.Constraints.Max)
			return layout.Stack{
				Alignment: layout.SE,
			}.Layout(gtx,
				layout.Expanded(style.layoutBody),
				layout.Stacked(func(gtx layout.Context) layout.Dimensions {
					if !style.ShowOpenInNew {
						return layout.Dimensions{}
					}
					button := material.IconButton(style.Theme, &style.OpenInNew, OpenInNewIcon, "Open in separate window")
					button.Size = 16
					button.Inset = layout.UniformInset(12)
					return layout.UniformInset(2).Layout(gtx, button.Layout)
				}),
			)
		}),
	)
}

func (style PlotPanelStyle) layoutBody(gtx layout.Context) layout.Dimensions {
	return layout.Flex{
		Axis: layout.Horizontal,
	}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(4).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return widget.Image{
					Src:      style.image,
					Fit:      widget.Contain,
					Position: layout.N,
				}.Layout(gtx)
			})
		}),
		layout.Rigid(VerticalLine{Width: 1, Color: splitterColor}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints = layout.Exact(image.Point{
				X: gtx.Metric.Sp(10 * 16),
				Y: gtx.Constraints.Max.Y,
			})
			return style.layoutLegend(gtx)
		}),
	)
}

func (style PlotPanelStyle) layoutLegend(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, secondaryBackground, clip.Rect{Max: gtx.Constraints.Min}.Op())

	legend := style.Result.Legend
	return material.List(style.Theme, &style.Legend).Layout(gtx, len(legend),
		func(gtx layout.Context, index int) layout.Dimensions {
			return LegendItem{
				Theme: style.Theme,
				Name:  legend[index].Name,
				Color: legend[index].Color.NRGBA(),
			}.Layout(gtx)
		})
}
