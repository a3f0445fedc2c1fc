// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flagsdemo shows the country chooser with a preview
// of the flag of the selected country.
package main

import (
	"fmt"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/flags/base/logx"
	"cogentcore.org/flags/flagchooser"
	"cogentcore.org/flags/flags"
	"cogentcore.org/flags/picker"
	"cogentcore.org/flags/provider"
)

const previewWidth = 320

func main() {
	logx.SetDefaultLogger()
	b := core.NewBody("Flags")

	opts := picker.DefaultOptions()
	opts.Size = flags.Size24
	p := picker.New(opts)

	ch := flagchooser.New(b, p)
	info := core.NewText(b)
	preview := core.NewImage(b)
	show := func() {
		r := p.SelectedRegion()
		info.SetText(fmt.Sprintf("%s %s (%s, %v)", flags.Emoji(r.Code), r.NativeName, r.EnglishName, r.Language))
		if img, ok := provider.Scaled(r.Code, previewWidth); ok {
			preview.SetImage(img)
		}
	}
	show()
	ch.OnChange(func(e events.Event) {
		if code, ok := ch.CurrentItem.Value.(string); ok {
			p.SelectCode(code)
		}
		show()
		info.Update()
		preview.Update()
	})
	b.RunMainWindow()
}
