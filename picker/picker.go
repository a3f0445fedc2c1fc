// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker provides a country selection list: a toolkit
// independent model of the items of a country drop-down, each
// with a flag and a name, along with the rendering of a row.
// GUI toolkits bind to it (see flagchooser and fyneflags).
package picker

import (
	"image"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/flags/flags"
	"cogentcore.org/flags/provider"
	"cogentcore.org/flags/region"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Picker is a list of countries with a selected item.
// The zero value is an empty, unpopulated picker;
// use [New] or [NewWith] to make a populated one.
type Picker struct {
	opts      Options
	resolver  region.Resolver
	list      itemList
	selected  int
	populated bool
	onRelease func(it Item)
}

// New returns a new picker with the given options,
// populated with the regions of the host system.
func New(opts Options) *Picker {
	return NewWith(opts, region.Host())
}

// NewWith returns a new picker with the given options,
// populated using the given region resolver.
func NewWith(opts Options, resolver region.Resolver) *Picker {
	p := &Picker{resolver: resolver, selected: -1}
	p.Configure(opts)
	return p
}

// Options returns the current options.
func (p *Picker) Options() Options {
	return p.opts
}

// Configure sets the options and rebuilds all of the items.
func (p *Picker) Configure(opts Options) {
	p.opts = opts.normalized()
	p.Rebuild()
}

// OnRelease sets a function called for each item whose image
// is being released, so that toolkits can free the resources
// they made from it.
func (p *Picker) OnRelease(fn func(it Item)) {
	p.onRelease = fn
}

// Populated returns whether the items have been built.
func (p *Picker) Populated() bool {
	return p.populated
}

// Rebuild releases all of the current items and builds them
// again from all of the supported countries. Countries without
// a long name or that are not known regions are skipped. The items are sorted by
// label, and the current region is selected if it is present,
// otherwise the first item.
func (p *Picker) Rebuild() {
	if p.resolver == nil {
		p.resolver = region.Host()
	}
	p.Release()
	p.list.reset()

	var items []Item
	for _, code := range flags.Codes() {
		if flags.Name(code) == "" {
			slog.Debug("picker: skipping country without a name", "code", code)
			continue
		}
		rg, err := p.resolver.Lookup(code)
		if err != nil {
			slog.Debug("picker: skipping country", "code", code, "err", err)
			continue
		}
		it := Item{Code: code, Label: p.label(rg), Region: rg}
		it.Image, _ = p.image(code)
		items = append(items, it)
	}
	col := collate.New(p.collation())
	slices.SortStableFunc(items, func(a, b Item) int {
		return col.CompareString(a.Label, b.Label)
	})
	p.list.set(items)
	p.populated = true

	p.selected = p.list.index(p.resolver.CurrentCode())
	if p.selected < 0 && len(items) > 0 {
		p.selected = 0
	}
}

// Reset rebuilds the items, undoing any filtering.
func (p *Picker) Reset() {
	p.Rebuild()
}

// Release drops the images of all of the items.
func (p *Picker) Release() {
	for i := range p.list.values {
		p.release(&p.list.values[i])
	}
}

func (p *Picker) release(it *Item) {
	if it.Image == nil {
		return
	}
	if p.onRelease != nil {
		p.onRelease(*it)
	}
	it.Image = nil
}

func (p *Picker) label(rg region.Region) string {
	switch p.opts.Names {
	case NamesEnglish:
		return rg.EnglishName
	case NamesCurrent:
		return rg.DisplayName
	default:
		return rg.NativeName
	}
}

func (p *Picker) collation() language.Tag {
	switch p.opts.Names {
	case NamesEnglish:
		return language.English
	case NamesCurrent:
		return p.resolver.DisplayLanguage()
	default:
		return language.Und
	}
}

func (p *Picker) image(code string) (image.Image, bool) {
	if p.opts.Size == flags.SizeCustom {
		return provider.ScaledSize(code, p.opts.CustomSize, p.opts.Aspect)
	}
	return provider.Image(code, p.opts.Size, p.opts.Style)
}

// Len returns the number of items.
func (p *Picker) Len() int {
	return len(p.list.values)
}

// Items returns the items in display order.
// The slice must not be modified.
func (p *Picker) Items() []Item {
	return p.list.values
}

// Item returns the item at the given index.
func (p *Picker) Item(i int) (Item, bool) {
	if i < 0 || i >= len(p.list.values) {
		return Item{}, false
	}
	return p.list.values[i], true
}

// Index returns the index of the item with the given code, or -1.
func (p *Picker) Index(code string) int {
	return p.list.index(strings.ToUpper(code))
}

// Codes returns the codes of the items in display order.
func (p *Picker) Codes() []string {
	cs := make([]string, len(p.list.values))
	for i, it := range p.list.values {
		cs[i] = it.Code
	}
	return cs
}

// KeepOnly removes all of the items that are not one of the
// given regions. It does nothing if no regions are given.
func (p *Picker) KeepOnly(regions ...region.Region) {
	p.KeepCodes(regionCodes(regions)...)
}

// RemoveOnly removes all of the items that are one of the
// given regions. It does nothing if no regions are given.
func (p *Picker) RemoveOnly(regions ...region.Region) {
	p.RemoveCodes(regionCodes(regions)...)
}

// KeepCodes is like [Picker.KeepOnly] with country codes.
func (p *Picker) KeepCodes(codes ...string) {
	if len(codes) == 0 {
		return
	}
	set := codeSet(codes)
	p.filter(func(it Item) bool { return !set[it.Code] })
}

// RemoveCodes is like [Picker.RemoveOnly] with country codes.
func (p *Picker) RemoveCodes(codes ...string) {
	if len(codes) == 0 {
		return
	}
	set := codeSet(codes)
	p.filter(func(it Item) bool { return set[it.Code] })
}

// filter removes the items for which del returns true. The selection
// stays on the same item if it is kept, and otherwise moves to the first.
func (p *Picker) filter(del func(it Item) bool) {
	var sel string
	if it, ok := p.Item(p.selected); ok {
		sel = it.Code
	}
	for _, it := range p.list.deleteFunc(del) {
		p.release(&it)
	}
	p.selected = p.list.index(sel)
	if p.selected < 0 && p.Len() > 0 {
		p.selected = 0
	}
}

func regionCodes(regions []region.Region) []string {
	codes := make([]string, len(regions))
	for i, r := range regions {
		codes[i] = r.Code
	}
	return codes
}

func codeSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[strings.ToUpper(c)] = true
	}
	return set
}
