// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fyneflags shows a [picker.Picker] as a Fyne list.
package fyneflags

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"cogentcore.org/flags/picker"
)

// NewList returns a new list of the items of the given picker, each row
// showing the flag and the label of a country. Selecting a row selects
// the item in the picker and calls onSelected, if non-nil, with its code.
func NewList(p *picker.Picker, onSelected func(code string)) *widget.List {
	size := fyne.NewSize(float32(p.FlagWidth()), float32(p.ItemHeight()))
	list := widget.NewList(
		func() int {
			return p.Len()
		},
		func() fyne.CanvasObject {
			img := canvas.NewImageFromImage(nil)
			img.FillMode = canvas.ImageFillContain
			img.ScaleMode = canvas.ImageScalePixels
			img.SetMinSize(size)
			return container.NewHBox(img, widget.NewLabel("template"))
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			it, ok := p.Item(i)
			if !ok {
				return
			}
			row := obj.(*fyne.Container)
			img := row.Objects[0].(*canvas.Image)
			img.Image = it.Image
			img.Refresh()
			row.Objects[1].(*widget.Label).SetText(it.Label)
		})
	list.OnSelected = func(id widget.ListItemID) {
		if !p.Select(id) {
			return
		}
		if onSelected != nil {
			onSelected(p.SelectedCode())
		}
	}
	if i := p.Selected(); i >= 0 {
		list.Select(i)
	}
	return list
}
