// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package provider renders country flags into images, either by
// decoding one of the embedded fixed size bitmaps or by rasterizing
// an embedded SVG source to an arbitrary pixel size.
//
// Every lookup returns an ok result instead of an error: a country
// without a flag, an unsupported size or a broken resource all come
// back as not found. The cause is logged at [slog.LevelDebug].
// Returned images are owned by the caller; nothing is cached.
package provider

import (
	"image"
	"log/slog"

	"cogentcore.org/flags/base/iox/imagex"
	"cogentcore.org/flags/flags"
	"github.com/chewxy/math32"
)

// Size is a custom flag size in (possibly fractional) pixels.
type Size struct {
	Width  float32
	Height float32
}

// Image returns the fixed size bitmap of the flag of the given country
// in the given style. The image is size.Pixels() pixels square.
func Image(code string, size flags.Size, style flags.Style) (image.Image, bool) {
	b, ok := flags.Raster(code, size, style)
	if !ok {
		slog.Debug("flag bitmap not found", "code", code, "size", size, "style", style)
		return nil, false
	}
	img, _, err := imagex.ReadBytes(b)
	if err != nil {
		slog.Debug("flag bitmap not decodable", "key", flags.RasterKey(style, size, code), "err", err)
		return nil, false
	}
	return img, true
}

// Scaled returns the flag of the given country rasterized from its
// 4:3 source to the given width. The width is rounded up, and the
// height is three quarters of it, rounded up.
func Scaled(code string, width float32) (image.Image, bool) {
	return ScaledRotated(code, width, flags.Native, 0)
}

// ScaledBox returns the flag of the given country rasterized from its
// 1:1 source into a square of the given width, rounded up.
func ScaledBox(code string, width float32) (image.Image, bool) {
	return ScaledRotated(code, width, flags.Box, 0)
}

// ScaledRotated is like [Scaled] or [ScaledBox] depending on the aspect,
// with the flag rotated clockwise by the given number of degrees
// around the center of the image.
func ScaledRotated(code string, width float32, aspect flags.Aspect, degrees float32) (image.Image, bool) {
	if !inRange(width) || !inRange(HeightFor(width, aspect)) {
		slog.Debug("flag size out of range", "code", code, "width", width)
		return nil, false
	}
	return render(code, aspect, PixelSize(width, aspect), degrees)
}

// ScaledSize returns the flag of the given country rasterized from the
// source of the given aspect ratio into the given size, with each
// dimension rounded up. The source is stretched independently along
// each axis, so a size that does not match the aspect ratio distorts it.
func ScaledSize(code string, size Size, aspect flags.Aspect) (image.Image, bool) {
	if !inRange(size.Width) || !inRange(size.Height) {
		slog.Debug("flag size out of range", "code", code, "size", size)
		return nil, false
	}
	pt := image.Pt(int(math32.Ceil(size.Width)), int(math32.Ceil(size.Height)))
	return render(code, aspect, pt, 0)
}

// inRange returns whether v is a number no larger than [MaxDimension].
// Values below 1 are in range, and are clamped when rasterizing.
func inRange(v float32) bool {
	return !math32.IsNaN(v) && v <= MaxDimension
}

// HeightFor returns the height matching the given width in the given
// aspect ratio, before rounding.
func HeightFor(width float32, aspect flags.Aspect) float32 {
	if aspect == flags.Box {
		return width
	}
	return width / 4 * 3
}

// PixelSize returns the pixel dimensions of a flag of the given width
// in the given aspect ratio: the width rounded up, and the height
// computed from that and rounded up.
func PixelSize(width float32, aspect flags.Aspect) image.Point {
	w := math32.Ceil(width)
	h := math32.Ceil(HeightFor(w, aspect))
	return image.Pt(int(w), int(h))
}

func render(code string, aspect flags.Aspect, size image.Point, degrees float32) (image.Image, bool) {
	src, ok := flags.SVG(code, aspect)
	if !ok {
		slog.Debug("flag source not found", "code", code, "aspect", aspect)
		return nil, false
	}
	img, err := RasterizeRotated(src, size, degrees)
	if err != nil {
		slog.Debug("flag source not renderable", "code", code, "aspect", aspect, "err", err)
		return nil, false
	}
	return img, true
}
