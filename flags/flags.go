// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flags provides the embedded country flag resources:
// pre-rendered bitmaps in five fixed sizes and two styles, and
// SVG sources in a 4:3 native and a 1:1 box aspect ratio,
// along with the list of supported country codes and their names.
//
// All lookups are keyed by two letter ISO country codes, which are
// case-insensitive. Unknown codes are reported with a false ok result,
// never with an error.
package flags

//go:generate go run ../cmd/flaggen --dir .

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

// FS contains all of the embedded flag resources:
// raster/{key}.png, svg/native/{code}.svg and svg/box/{code}.svg.
//
//go:embed raster svg
var FS embed.FS

// RasterKey returns the resource key of the bitmap for the given style,
// fixed size and code, for example "flat_64xFI".
func RasterKey(style Style, size Size, code string) string {
	return fmt.Sprintf("%s_%dx%s", style, size.Pixels(), strings.ToUpper(code))
}

// SVGKey returns the resource key of the SVG source for the given code,
// which is the lowercased code, for example "fi".
func SVGKey(code string) string {
	return strings.ToLower(code)
}

// RasterPath returns the path in [FS] of the bitmap for the given key.
func RasterPath(key string) string {
	return "raster/" + key + ".png"
}

// SVGPath returns the path in [FS] of the SVG source for the given
// aspect ratio and key.
func SVGPath(aspect Aspect, key string) string {
	return "svg/" + aspect.String() + "/" + key + ".svg"
}

// Raster returns the PNG encoded bitmap of the flag of the given
// country in the given fixed size and style. It returns false if the
// size is not one of the fixed sizes or if there is no such flag.
func Raster(code string, size Size, style Style) ([]byte, bool) {
	if !size.Fixed() || !style.Valid() || !Has(code) {
		return nil, false
	}
	b, err := fs.ReadFile(FS, RasterPath(RasterKey(style, size, code)))
	if err != nil {
		return nil, false
	}
	return b, true
}

// SVG returns the SVG source of the flag of the given country in the
// given aspect ratio. It returns false if there is no such flag.
func SVG(code string, aspect Aspect) ([]byte, bool) {
	if !aspect.Valid() || !Has(code) {
		return nil, false
	}
	b, err := fs.ReadFile(FS, SVGPath(aspect, SVGKey(code)))
	if err != nil {
		return nil, false
	}
	return b, true
}
