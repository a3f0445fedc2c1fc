// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package provider

import (
	"bytes"
	"fmt"
	"image"

	"cogentcore.org/flags/base/errors"
	"github.com/chewxy/math32"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// MaxDimension is the largest width or height in pixels of a rendered flag.
const MaxDimension = 1 << 12

// Rasterize renders the given SVG source into a new transparent image
// of the given size. A size with a width or height below 1 becomes 1x1,
// and one above [MaxDimension] is an error.
// The view box of the source is mapped onto the whole image with
// independent horizontal and vertical scale factors.
func Rasterize(src []byte, size image.Point) (*image.RGBA, error) {
	return RasterizeRotated(src, size, 0)
}

// RasterizeRotated is like [Rasterize], with the drawing rotated
// clockwise by the given number of degrees around the center of the image.
func RasterizeRotated(src []byte, size image.Point, degrees float32) (*image.RGBA, error) {
	if size.X < 1 || size.Y < 1 {
		size = image.Pt(1, 1)
	}
	if size.X > MaxDimension || size.Y > MaxDimension {
		return nil, fmt.Errorf("provider.Rasterize: size %v is larger than %d", size, MaxDimension)
	}
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, errors.New("provider.Rasterize: empty SVG source")
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(src), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("provider.Rasterize: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("provider.Rasterize: empty view box %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}

	w, h := float64(size.X), float64(size.Y)
	icon.SetTarget(0, 0, w, h)
	if degrees != 0 {
		theta := float64(degrees * math32.Pi / 180)
		rot := rasterx.Identity.Translate(w/2, h/2).Rotate(theta).Translate(-w/2, -h/2)
		icon.Transform = rot.Mult(icon.Transform)
	}

	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	scanner := rasterx.NewScannerGV(size.X, size.Y, img, img.Bounds())
	raster := rasterx.NewDasher(size.X, size.Y, scanner)
	icon.Draw(raster, 1)
	return img, nil
}
