package main

import (
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// OpenInNewIcon is used for opening a plot in a new window.
var OpenInNewIcon = mustIcon(icons.ActionOpenInNew)

// SaveIcon is used for writing all plots to disk.
var SaveIcon = mustIcon(icons.ContentSave)

func mustIcon(data []byte) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return icon
}
