// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flags

import (
	"fmt"
	"strings"
)

// Size is the size of a flag image. The fixed sizes are square
// bitmaps of the given number of pixels; [SizeCustom] is an arbitrary
// size that can only be produced by scaling an SVG source.
type Size int32

const (
	Size16 Size = iota
	Size24
	Size32
	Size48
	Size64

	// SizeCustom is an arbitrary size rendered from an SVG source.
	SizeCustom
)

// Sizes are the fixed bitmap sizes.
var Sizes = []Size{Size16, Size24, Size32, Size48, Size64}

var sizePixels = [...]int{16, 24, 32, 48, 64}

// Fixed returns whether the size is one of the fixed bitmap sizes.
func (s Size) Fixed() bool {
	return s >= Size16 && s <= Size64
}

// Pixels returns the width and height of a fixed size in pixels,
// and 0 for [SizeCustom] and invalid values.
func (s Size) Pixels() int {
	if !s.Fixed() {
		return 0
	}
	return sizePixels[s]
}

func (s Size) String() string {
	switch {
	case s.Fixed():
		return fmt.Sprint(s.Pixels())
	case s == SizeCustom:
		return "custom"
	}
	return fmt.Sprintf("Size(%d)", int32(s))
}

// ParseSize returns the size for the given text, which is either
// a pixel count of a fixed size ("16", "24", "32", "48", "64",
// optionally as "64x64") or "custom".
func ParseSize(s string) (Size, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "custom" {
		return SizeCustom, nil
	}
	if px, _, ok := strings.Cut(s, "x"); ok {
		s = px
	}
	for _, sz := range Sizes {
		if sz.String() == s {
			return sz, nil
		}
	}
	return Size16, fmt.Errorf("flags.ParseSize: %q is not a valid size", s)
}

// SizeForPixels returns the fixed size with the given number of pixels.
func SizeForPixels(px int) (Size, bool) {
	for _, sz := range Sizes {
		if sz.Pixels() == px {
			return sz, true
		}
	}
	return SizeCustom, false
}

// Style is the visual style of the fixed size bitmaps.
type Style int32

const (
	// Flat is a plain flag.
	Flat Style = iota

	// Shiny is a flag with a glossy finish.
	Shiny
)

// Styles are all of the bitmap styles.
var Styles = []Style{Flat, Shiny}

// Valid returns whether the style is a known style.
func (s Style) Valid() bool { return s == Flat || s == Shiny }

func (s Style) String() string {
	switch s {
	case Flat:
		return "flat"
	case Shiny:
		return "shiny"
	}
	return fmt.Sprintf("Style(%d)", int32(s))
}

// ParseStyle returns the style with the given name.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat":
		return Flat, nil
	case "shiny", "glossy":
		return Shiny, nil
	}
	return Flat, fmt.Errorf("flags.ParseStyle: %q is not a valid style", s)
}

// Aspect is the aspect ratio of an SVG flag source.
type Aspect int32

const (
	// Native is the 4:3 aspect ratio.
	Native Aspect = iota

	// Box is the 1:1 aspect ratio.
	Box
)

// Valid returns whether the aspect is a known aspect ratio.
func (a Aspect) Valid() bool { return a == Native || a == Box }

func (a Aspect) String() string {
	switch a {
	case Native:
		return "native"
	case Box:
		return "box"
	}
	return fmt.Sprintf("Aspect(%d)", int32(a))
}

// Ratio returns the height of the aspect ratio relative to a width of 1.
func (a Aspect) Ratio() float32 {
	if a == Box {
		return 1
	}
	return 3.0 / 4.0
}

// ParseAspect returns the aspect ratio for the given text,
// which is "native", "4:3", "box" or "1:1".
func ParseAspect(s string) (Aspect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "4:3":
		return Native, nil
	case "box", "1:1":
		return Box, nil
	}
	return Native, fmt.Errorf("flags.ParseAspect: %q is not a valid aspect ratio", s)
}
