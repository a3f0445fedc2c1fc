// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package region resolves two letter ISO country codes to regions
// with English, native and localized display names, and determines
// the region of the host system.
package region

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Region is a country known to the platform, with its names.
type Region struct {

	// Code is the upper case two letter ISO 3166-1 code.
	Code string

	// EnglishName is the name of the region in English.
	EnglishName string

	// NativeName is the name of the region in its most likely
	// language, or the English name if that language has no names.
	NativeName string

	// DisplayName is the name of the region in the display
	// language it was looked up with.
	DisplayName string

	// Language is the most likely language of the region,
	// qualified by the region, such as fi-FI.
	Language language.Tag
}

// String returns the code of the region.
func (r Region) String() string {
	return r.Code
}

// IsZero returns whether this is the zero Region.
func (r Region) IsZero() bool {
	return r.Code == ""
}

// Lookup returns the region with the given code, with the display
// name in English. Codes that are not countries, such as groupings
// and private use codes, are an error.
func Lookup(code string) (Region, error) {
	return LookupIn(code, language.English)
}

// LookupIn is like [Lookup] with the display name in the given language.
func LookupIn(code string, displayIn language.Tag) (Region, error) {
	r, err := language.ParseRegion(strings.TrimSpace(code))
	if err != nil {
		return Region{}, fmt.Errorf("region.Lookup %q: %w", code, err)
	}
	if !r.IsCountry() {
		return Region{}, fmt.Errorf("region.Lookup %q: not a country", code)
	}
	english := name(language.English, r)
	if english == "" {
		return Region{}, fmt.Errorf("region.Lookup %q: no name", code)
	}
	rg := Region{Code: r.String(), EnglishName: english}

	tag, _ := language.Compose(r)
	base, _ := tag.Base()
	rg.Language, _ = language.Compose(base, r)

	rg.NativeName = name(language.Make(base.String()), r)
	if rg.NativeName == "" {
		rg.NativeName = english
	}
	rg.DisplayName = name(displayIn, r)
	if rg.DisplayName == "" {
		rg.DisplayName = english
	}
	return rg, nil
}

// name returns the name of the region in the given language,
// or "" if there are no names for that language.
func name(in language.Tag, r language.Region) string {
	n := display.Regions(in)
	if n == nil {
		return ""
	}
	return n.Name(r)
}
