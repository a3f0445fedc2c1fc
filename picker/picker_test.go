// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"image"
	"testing"

	"cogentcore.org/flags/flags"
	"cogentcore.org/flags/provider"
	"cogentcore.org/flags/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func newTest(t *testing.T, current string, opts Options) *Picker {
	t.Helper()
	p := NewWith(opts, region.Fixed(current, language.English))
	require.True(t, p.Populated())
	return p
}

func englishOptions() Options {
	opts := DefaultOptions()
	opts.Names = NamesEnglish
	return opts
}

func mustRegion(t *testing.T, code string) region.Region {
	t.Helper()
	r, err := region.Lookup(code)
	require.NoError(t, err)
	return r
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, flags.Size16, opts.Size)
	assert.Equal(t, provider.Size{Width: 100, Height: 75}, opts.CustomSize)
	assert.True(t, opts.LockAspect)
	assert.Equal(t, flags.Native, opts.Aspect)
	assert.Equal(t, NamesNative, opts.Names)
}

func TestRebuild(t *testing.T) {
	p := newTest(t, "FI", DefaultOptions())
	assert.Equal(t, len(flags.Codes()), p.Len())
	for i, it := range p.Items() {
		assert.Equal(t, i, p.Index(it.Code))
		assert.NotEmpty(t, it.Label, it.Code)
		assert.NotEmpty(t, flags.Name(it.Code), it.Code)
		if assert.NotNil(t, it.Image, it.Code) {
			assert.Equal(t, image.Pt(16, 16), it.Image.Bounds().Size())
		}
	}
	it, ok := p.Item(p.Index("fi"))
	require.True(t, ok)
	assert.Equal(t, "Suomi", it.Label)

	_, ok = p.Item(-1)
	assert.False(t, ok)
	_, ok = p.Item(p.Len())
	assert.False(t, ok)
	assert.Equal(t, -1, p.Index("ZZ"))
}

func TestSorted(t *testing.T) {
	p := newTest(t, "FI", englishOptions())
	col := collate.New(language.English)
	items := p.Items()
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, col.CompareString(items[i-1].Label, items[i].Label), 0, items[i].Label)
	}
	assert.Equal(t, "AM", items[0].Code)
	assert.Equal(t, "Armenia", items[0].Label)
}

func TestNames(t *testing.T) {
	p := NewWith(DefaultOptions(), region.Fixed("FI", language.German))
	de := p.Items()[p.Index("DE")]
	assert.Equal(t, "Deutschland", de.Label)

	opts := DefaultOptions()
	opts.Names = NamesCurrent
	p.Configure(opts)
	fi := p.Items()[p.Index("FI")]
	assert.Equal(t, "Finnland", fi.Label)

	opts.Names = NamesEnglish
	p.Configure(opts)
	fi = p.Items()[p.Index("FI")]
	assert.Equal(t, "Finland", fi.Label)
}

func TestDefaultSelection(t *testing.T) {
	p := newTest(t, "FI", englishOptions())
	assert.Equal(t, "FI", p.SelectedCode())
	assert.Equal(t, p.Index("FI"), p.Selected())
	assert.Equal(t, "Suomi", p.SelectedNativeName())
	assert.Equal(t, "Finland", p.SelectedEnglishName())
	assert.Equal(t, "fi-FI", p.SelectedTag().String())

	for _, cur := range []string{"", "US", "ZZ"} {
		p = newTest(t, cur, englishOptions())
		assert.Equal(t, 0, p.Selected(), cur)
		assert.Equal(t, "AM", p.SelectedCode(), cur)
	}
}

func TestSelect(t *testing.T) {
	p := newTest(t, "FI", englishOptions())
	assert.True(t, p.SelectCode("de"))
	assert.Equal(t, "DE", p.SelectedCode())
	assert.False(t, p.SelectCode("US"))
	assert.Equal(t, "DE", p.SelectedCode())
	assert.False(t, p.Select(-1))
	assert.False(t, p.Select(p.Len()))

	assert.True(t, p.SetSelectedRegion(mustRegion(t, "JP")))
	assert.Equal(t, "Japan", p.SelectedEnglishName())
	it, ok := p.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "JP", it.Code)
}

func TestFilterEmpty(t *testing.T) {
	p := newTest(t, "FI", englishOptions())
	codes := p.Codes()
	p.KeepOnly()
	assert.Equal(t, codes, p.Codes())
	p.RemoveOnly()
	assert.Equal(t, codes, p.Codes())
	p.KeepCodes()
	p.RemoveCodes()
	assert.Equal(t, codes, p.Codes())
	assert.Equal(t, "FI", p.SelectedCode())
}

func TestFilter(t *testing.T) {
	p := newTest(t, "FI", englishOptions())
	se, fi := mustRegion(t, "SE"), mustRegion(t, "FI")
	p.KeepOnly(se, fi)
	assert.Equal(t, []string{"FI", "SE"}, p.Codes())
	assert.Equal(t, "FI", p.SelectedCode())

	p.RemoveOnly(fi)
	assert.Equal(t, []string{"SE"}, p.Codes())
	assert.Equal(t, 0, p.Selected())
	assert.Equal(t, "SE", p.SelectedCode())

	p.RemoveCodes("se")
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, -1, p.Selected())
	// with nothing selected, the current region is reported
	assert.Equal(t, "FI", p.SelectedCode())

	p.Reset()
	assert.Equal(t, len(flags.Codes()), p.Len())
	assert.Equal(t, "FI", p.SelectedCode())
}

func TestFilterKeepsSelection(t *testing.T) {
	p := newTest(t, "FI", englishOptions())
	require.True(t, p.SelectCode("JP"))
	p.RemoveCodes("FI", "DE")
	assert.Equal(t, "JP", p.SelectedCode())
	assert.Equal(t, -1, p.Index("DE"))
	p.KeepCodes("JP", "AT", "US")
	assert.Equal(t, []string{"AT", "JP"}, p.Codes())
	assert.Equal(t, 1, p.Selected())
}

func TestCustomSize(t *testing.T) {
	opts := englishOptions()
	opts.Size = flags.SizeCustom
	opts.CustomSize = provider.Size{Width: 40, Height: 5}
	p := newTest(t, "FI", opts)
	assert.Equal(t, provider.Size{Width: 40, Height: 30}, p.Options().CustomSize)
	assert.Equal(t, 30, p.ItemHeight())
	assert.Equal(t, 40, p.FlagWidth())
	it, _ := p.SelectedItem()
	require.NotNil(t, it.Image)
	assert.Equal(t, image.Pt(40, 30), it.Image.Bounds().Size())

	opts.Aspect = flags.Box
	p.Configure(opts)
	it, _ = p.SelectedItem()
	require.NotNil(t, it.Image)
	assert.Equal(t, image.Pt(40, 40), it.Image.Bounds().Size())

	opts.LockAspect = false
	opts.Aspect = flags.Native
	opts.CustomSize = provider.Size{Width: 40.5, Height: 10}
	p.Configure(opts)
	it, _ = p.SelectedItem()
	require.NotNil(t, it.Image)
	assert.Equal(t, image.Pt(41, 10), it.Image.Bounds().Size())
	assert.Equal(t, 10, p.ItemHeight())

	opts.CustomSize = provider.Size{Width: -3, Height: 0}
	p.Configure(opts)
	assert.Equal(t, provider.Size{Width: 1, Height: 1}, p.Options().CustomSize)
}

func TestItemHeight(t *testing.T) {
	p := &Picker{}
	for _, sz := range flags.Sizes {
		p.opts.Size = sz
		assert.Equal(t, sz.Pixels()-1, p.ItemHeight())
		assert.Equal(t, sz.Pixels(), p.FlagWidth())
	}
}

func TestRelease(t *testing.T) {
	p := newTest(t, "FI", englishOptions())
	var released []string
	p.OnRelease(func(it Item) {
		released = append(released, it.Code)
	})
	p.RemoveCodes("DE")
	assert.Equal(t, []string{"DE"}, released)

	released = nil
	n := p.Len()
	p.Rebuild()
	assert.Len(t, released, n)

	p.Release()
	for _, it := range p.Items() {
		assert.Nil(t, it.Image)
	}
}

func TestZeroPicker(t *testing.T) {
	var p Picker
	assert.False(t, p.Populated())
	assert.Equal(t, -1, p.Selected())
	assert.False(t, p.Select(0))
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.SelectedRegion().IsZero())
	_, ok := p.SelectedItem()
	assert.False(t, ok)
}

func TestParseNames(t *testing.T) {
	for _, n := range []Names{NamesNative, NamesEnglish, NamesCurrent} {
		got, err := ParseNames(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	_, err := ParseNames("klingon")
	assert.Error(t, err)
}
