// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelGap is the space in pixels between the flag and the label.
const labelGap = 2

// RowStyle is the style of a drawn row.
type RowStyle struct {

	// Background fills the whole row.
	Background color.Color

	// Foreground is the color of the label.
	Foreground color.Color

	// Face is the font of the label, [basicfont.Face7x13] if nil.
	Face font.Face

	// RightToLeft mirrors the row: the flag is at the right edge
	// and the label ends just before it.
	RightToLeft bool
}

// DefaultRowStyle returns black text on white.
func DefaultRowStyle() RowStyle {
	return RowStyle{Background: color.White, Foreground: color.Black, Face: basicfont.Face7x13}
}

// ItemHeight returns the height of a row in pixels: one less than the
// pixel size for fixed sizes, and the rounded up custom height otherwise.
func (p *Picker) ItemHeight() int {
	if p.opts.Size.Fixed() {
		return p.opts.Size.Pixels() - 1
	}
	return int(math32.Ceil(p.opts.CustomSize.Height))
}

// FlagWidth returns the width in pixels reserved for the flag of a row.
func (p *Picker) FlagWidth() int {
	if p.opts.Size.Fixed() {
		return p.opts.Size.Pixels()
	}
	return int(math32.Ceil(p.opts.CustomSize.Width))
}

// DrawItem draws the item at the given index into the given bounds of dst.
// An index without an item, such as -1, only draws the background.
func (p *Picker) DrawItem(dst draw.Image, bounds image.Rectangle, index int, st RowStyle) {
	if st.Background == nil {
		st.Background = color.White
	}
	if st.Foreground == nil {
		st.Foreground = color.Black
	}
	if st.Face == nil {
		st.Face = basicfont.Face7x13
	}
	draw.Draw(dst, bounds, image.NewUniform(st.Background), image.Point{}, draw.Src)

	it, ok := p.Item(index)
	if !ok {
		return
	}
	fw := p.FlagWidth()
	if it.Image != nil {
		ib := it.Image.Bounds()
		at := bounds.Min
		if st.RightToLeft {
			at.X = bounds.Max.X - ib.Dx()
		}
		r := image.Rectangle{Min: at, Max: at.Add(ib.Size())}.Intersect(bounds)
		draw.Draw(dst, r, it.Image, ib.Min.Add(r.Min.Sub(at)), draw.Over)
	}

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(st.Foreground), Face: st.Face}
	m := st.Face.Metrics()
	textH := (m.Ascent + m.Descent).Ceil()
	y := bounds.Min.Y + (bounds.Dy()-textH)/2 + m.Ascent.Ceil()
	x := bounds.Min.X + fw + labelGap
	if st.RightToLeft {
		x = bounds.Max.X - fw - labelGap - d.MeasureString(it.Label).Ceil()
	}
	d.Dot = fixed.P(x, y)
	d.DrawString(it.Label)
}
