// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagchooser shows a [picker.Picker] as a Cogent Core
// [core.Chooser], with the flag of each country as its icon.
package flagchooser

import (
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/tree"
	"cogentcore.org/flags/flags"
	"cogentcore.org/flags/picker"
)

// New returns a new chooser in the given parent bound to the given picker.
func New(parent tree.Node, p *picker.Picker) *core.Chooser {
	ch := core.NewChooser(parent)
	Bind(ch, p)
	return ch
}

// Bind sets the items of the given chooser to those of the picker and
// keeps the selection of the picker in sync with the chooser. It must be
// called once per chooser; use [Update] after the items of the picker change.
func Bind(ch *core.Chooser, p *picker.Picker) {
	Update(ch, p)
	ch.OnChange(func(e events.Event) {
		code, ok := ch.CurrentItem.Value.(string)
		if !ok {
			return
		}
		p.SelectCode(code)
	})
}

// Update sets the items and the current item of the given chooser
// to those of the picker.
func Update(ch *core.Chooser, p *picker.Picker) {
	ch.SetItems(Items(p)...)
	if i := p.Selected(); i >= 0 {
		ch.SetCurrentIndex(i)
	}
}

// Items returns one chooser item for each item of the picker,
// with the country code as the value.
func Items(p *picker.Picker) []core.ChooserItem {
	items := make([]core.ChooserItem, p.Len())
	for i, it := range p.Items() {
		items[i] = core.ChooserItem{
			Value:   it.Code,
			Text:    it.Label,
			Tooltip: it.Region.EnglishName,
			Icon:    icon(it.Code, p.Options().Aspect),
		}
	}
	return items
}

func icon(code string, aspect flags.Aspect) icons.Icon {
	src, ok := flags.SVG(code, aspect)
	if !ok {
		return icons.None
	}
	return icons.Icon(src)
}
