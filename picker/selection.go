// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"cogentcore.org/flags/region"
	"golang.org/x/text/language"
)

// Selected returns the index of the selected item, or -1 if there
// is none, which is always the case before the picker is populated.
func (p *Picker) Selected() int {
	if !p.populated {
		return -1
	}
	return p.selected
}

// Select selects the item at the given index,
// returning false if there is no such item.
func (p *Picker) Select(i int) bool {
	if _, ok := p.Item(i); !ok {
		return false
	}
	p.selected = i
	return true
}

// SelectCode selects the item with the given code,
// returning false if there is no such item.
func (p *Picker) SelectCode(code string) bool {
	return p.Select(p.Index(code))
}

// SetSelectedRegion selects the item of the given region,
// returning false if there is no such item.
func (p *Picker) SetSelectedRegion(r region.Region) bool {
	return p.SelectCode(r.Code)
}

// SelectedItem returns the selected item.
func (p *Picker) SelectedItem() (Item, bool) {
	return p.Item(p.Selected())
}

// SelectedRegion returns the region of the selected item. If there
// is no selection it returns the current region, which is the zero
// [region.Region] if that is not known either.
func (p *Picker) SelectedRegion() region.Region {
	if it, ok := p.SelectedItem(); ok {
		return it.Region
	}
	if p.resolver == nil {
		return region.Region{}
	}
	r, err := p.resolver.Lookup(p.resolver.CurrentCode())
	if err != nil {
		return region.Region{}
	}
	return r
}

// SelectedCode returns the code of the selected region.
func (p *Picker) SelectedCode() string {
	return p.SelectedRegion().Code
}

// SelectedNativeName returns the native name of the selected region.
func (p *Picker) SelectedNativeName() string {
	return p.SelectedRegion().NativeName
}

// SelectedEnglishName returns the English name of the selected region.
func (p *Picker) SelectedEnglishName() string {
	return p.SelectedRegion().EnglishName
}

// SelectedTag returns the language of the selected region.
func (p *Picker) SelectedTag() language.Tag {
	return p.SelectedRegion().Language
}
