// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fyneflags

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"cogentcore.org/flags/picker"
	"cogentcore.org/flags/region"
)

func TestNewList(t *testing.T) {
	test.NewApp()
	opts := picker.DefaultOptions()
	opts.Names = picker.NamesEnglish
	p := picker.NewWith(opts, region.Fixed("FI", language.English))

	var selected []string
	list := NewList(p, func(code string) {
		selected = append(selected, code)
	})
	assert.Equal(t, p.Len(), list.Length())

	row := list.CreateItem()
	fi := p.Index("FI")
	list.UpdateItem(fi, row)
	objs := row.(*fyne.Container).Objects
	require.Len(t, objs, 2)
	assert.Equal(t, "Finland", objs[1].(*widget.Label).Text)
	assert.NotNil(t, objs[0].(*canvas.Image).Image)

	list.Select(p.Index("JP"))
	assert.Equal(t, "JP", p.SelectedCode())
	assert.Contains(t, selected, "JP")
}
