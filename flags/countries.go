// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flags

import (
	_ "embed"
	"slices"
	"strings"
)

//go:embed countries.txt
var countryList string

//go:embed countries_long.txt
var countryListLong string

var (
	// codes are the sorted, upper case supported codes.
	codes = parseCodes(countryList)

	// names maps upper case codes to long English names.
	names = parseNames(countryListLong)
)

func parseCodes(s string) []string {
	var cs []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.ToUpper(strings.TrimSpace(line))
		if line != "" {
			cs = append(cs, line)
		}
	}
	slices.Sort(cs)
	return slices.Compact(cs)
}

// parseNames parses "Long-Name=CODE" lines.
func parseNames(s string) map[string]string {
	m := map[string]string{}
	for _, line := range strings.Split(s, "\n") {
		name, code, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok || name == "" || code == "" {
			continue
		}
		m[strings.ToUpper(code)] = strings.ReplaceAll(name, "-", " ")
	}
	return m
}

// Codes returns the upper case two letter ISO codes of all of the
// countries with flags, sorted alphabetically. The returned slice
// is a copy that the caller may modify.
func Codes() []string {
	return slices.Clone(codes)
}

// Has returns whether there is a flag for the given code.
func Has(code string) bool {
	_, found := slices.BinarySearch(codes, strings.ToUpper(code))
	return found
}

// Name returns the long English name of the country with the given
// code, or "" if the code is unknown.
func Name(code string) string {
	return names[strings.ToUpper(code)]
}

// Emoji returns the regional indicator emoji flag of the country
// with the given code, or "" if the code is unknown.
func Emoji(code string) string {
	if !Has(code) {
		return ""
	}
	var sb strings.Builder
	for _, c := range strings.ToUpper(code) {
		sb.WriteRune(0x1F1E6 + c - 'A')
	}
	return sb.String()
}
