package main

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type VerticalLine struct {
	Width unit.Dp
	Color color.NRGBA
}

func (line VerticalLine) Layout(gtx layout.Context) layout.Dimensions {
	size := image.Point{
		X: gtx.Metric.Dp(line.Width),
		Y: gtx.Constraints.Min.Y,
	}
	paint.FillShape(gtx.Ops, line.Color, clip.Rect{Max: size}.Op())
	return layout.Dimensions{
		Size: size,
	}
}

type HorizontalLine struct {
	Height unit.Dp
	Color  color.NRGBA
}

func (line HorizontalLine) Layout(gtx layout.Context) layout.Dimensions {
	size := image.Point{
		X: gtx.Constraints.Min.X,
		Y: gtx.Metric.Dp(line.Height),
	}
	paint.FillShape(gtx.Ops, line.Color, clip.Rect{Max: size}.Op())
	return layout.Dimensions{
		Size: size,
	}
}

// ColorSwatch is a filled square.
type ColorSwatch struct {
	Size  unit.Dp
	Color color.NRGBA
}

func (swatch ColorSwatch) Layout(gtx layout.Context) layout.Dimensions {
	side := gtx.Metric.Dp(swatch.Size)
	size := image.Point{X: side, Y: side}
	paint.FillShape(gtx.Ops, swatch.Color, clip.Rect{Max: size}.Op())
	return layout.Dimensions{
		Size: size,
	}
}

// maxLabelWidth limits legend labels, long names are cut.
const maxLabelWidth = 12 * 16

// LegendItem draws a swatch followed by the part name.
type LegendItem struct {
	Theme *material.Theme
	Name  string
	Color color.NRGBA
}

func (item LegendItem) Layout(gtx layout.Context) layout.Dimensions {
	inset := layout.Inset{Top: 1, Right: 4, Bottom: 1, Left: 4}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{
			Axis:      layout.Horizontal,
			Alignment: layout.Middle,
		}.Layout(gtx,
			layout.Rigid(ColorSwatch{Size: 12, Color: item.Color}.Layout),
			layout.Rigid(layout.Spacer{Width: 6}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.Body1(item.Theme, legendName(item.Name))
				label.MaxLines = 1
				label.TextSize = item.Theme.TextSize * 9 / 10
				gtx.Constraints.Max.X = gtx.Metric.Sp(maxLabelWidth)
				return label.Layout(gtx)
			}),
		)
	})
}
