// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"
	"strings"

	"cogentcore.org/flags/flags"
	"cogentcore.org/flags/provider"
)

// Names is which name of a country is shown as the label of an item.
type Names int32

const (
	// NamesNative shows the name in the most likely language of the country.
	NamesNative Names = iota

	// NamesEnglish shows the English name.
	NamesEnglish

	// NamesCurrent shows the name in the language of the current locale.
	NamesCurrent
)

func (n Names) String() string {
	switch n {
	case NamesNative:
		return "native"
	case NamesEnglish:
		return "english"
	case NamesCurrent:
		return "current"
	}
	return fmt.Sprintf("Names(%d)", int32(n))
}

// ParseNames returns the [Names] with the given name.
func ParseNames(s string) (Names, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native":
		return NamesNative, nil
	case "english":
		return NamesEnglish, nil
	case "current", "display":
		return NamesCurrent, nil
	}
	return NamesNative, fmt.Errorf("picker.ParseNames: %q is not a valid name display", s)
}

// Options are the visual options of a [Picker]. Changing any of them
// requires a rebuild of the items, which [Picker.Configure] does.
type Options struct {

	// Size is the size of the flags. With [flags.SizeCustom] the
	// flags are rendered from SVG in CustomSize.
	Size flags.Size

	// CustomSize is the size of the flags with [flags.SizeCustom].
	CustomSize provider.Size

	// Style is the style of fixed size flags.
	Style flags.Style

	// Names is which name of a country is shown.
	Names Names

	// LockAspect is whether the height of CustomSize is computed
	// from its width with Aspect.
	LockAspect bool

	// Aspect is the aspect ratio of the SVG sources of custom sized flags.
	Aspect flags.Aspect
}

// DefaultOptions returns the default options: 16 pixel flat flags
// with native names, and a custom size of 100x75 with a locked
// 4:3 aspect ratio.
func DefaultOptions() Options {
	return Options{
		Size:       flags.Size16,
		CustomSize: provider.Size{Width: 100, Height: 75},
		Style:      flags.Flat,
		Names:      NamesNative,
		LockAspect: true,
		Aspect:     flags.Native,
	}
}

// normalized returns the options with the custom width clamped to
// at least 1 and the custom height locked to the aspect ratio if
// LockAspect is set.
func (o Options) normalized() Options {
	if o.CustomSize.Width < 1 {
		o.CustomSize.Width = 1
	}
	if o.CustomSize.Height < 1 {
		o.CustomSize.Height = 1
	}
	if o.LockAspect {
		o.CustomSize.Height = provider.HeightFor(o.CustomSize.Width, o.Aspect)
	}
	return o
}
