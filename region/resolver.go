// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"strings"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// Resolver looks up regions and knows the current region.
type Resolver interface {

	// Lookup returns the region with the given code.
	Lookup(code string) (Region, error)

	// CurrentCode returns the upper case code of the current region,
	// or "" if it is not known.
	CurrentCode() string

	// DisplayLanguage returns the language of display names.
	DisplayLanguage() language.Tag
}

type fixed struct {
	current string
	display language.Tag
}

// Fixed returns a [Resolver] with the given current region code,
// giving display names in the given language.
func Fixed(current string, displayIn language.Tag) Resolver {
	return &fixed{current: strings.ToUpper(current), display: displayIn}
}

func (f *fixed) Lookup(code string) (Region, error) {
	return LookupIn(code, f.display)
}

func (f *fixed) CurrentCode() string {
	return f.current
}

func (f *fixed) DisplayLanguage() language.Tag {
	return f.display
}

// Host returns a [Resolver] for the host system: the current region
// and the display language come from the locale of the user,
// as determined when Host is called. The display language is English
// if the locale can not be determined.
func Host() Resolver {
	return Fixed(hostRegion(), hostLanguage())
}

// Current returns the region of the host system.
func Current() (Region, bool) {
	code := hostRegion()
	if code == "" {
		return Region{}, false
	}
	r, err := LookupIn(code, hostLanguage())
	return r, err == nil
}

func hostRegion() string {
	r, err := locale.GetRegion()
	if err != nil || r == "" {
		if tag, ok := hostTag(); ok {
			if rg, conf := tag.Region(); conf == language.Exact {
				return rg.String()
			}
		}
		return ""
	}
	return strings.ToUpper(r)
}

func hostLanguage() language.Tag {
	if tag, ok := hostTag(); ok {
		return tag
	}
	return language.English
}

func hostTag() (language.Tag, bool) {
	l, err := locale.GetLocale()
	if err != nil || l == "" {
		return language.Und, false
	}
	// POSIX locales look like fi_FI.UTF-8
	l, _, _ = strings.Cut(l, ".")
	tag, err := language.Parse(strings.ReplaceAll(l, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
