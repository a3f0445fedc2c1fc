// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/flags/base/iox/imagex"
	"cogentcore.org/flags/flags"
	"cogentcore.org/flags/provider"
	"github.com/anthonynsimon/bild/adjust"
	"golang.org/x/image/draw"
)

// Generate renders every source in dir/svg/native into
// dir/raster in all of the fixed sizes and styles.
func Generate(dir string) error {
	fsys := os.DirFS(dir)
	srcs, err := fs.Glob(fsys, "svg/native/*.svg")
	if err != nil {
		return err
	}
	if len(srcs) == 0 {
		return fmt.Errorf("flaggen: no sources in %s", filepath.Join(dir, "svg", "native"))
	}
	if err := os.MkdirAll(filepath.Join(dir, "raster"), 0o755); err != nil {
		return err
	}
	for _, src := range srcs {
		code := strings.ToUpper(strings.TrimSuffix(filepath.Base(src), ".svg"))
		b, err := fs.ReadFile(fsys, src)
		if err != nil {
			return err
		}
		for _, size := range flags.Sizes {
			for _, style := range flags.Styles {
				img, err := Bitmap(b, size.Pixels(), style)
				if err != nil {
					return fmt.Errorf("flaggen %s: %w", code, err)
				}
				fn := filepath.Join(dir, flags.RasterPath(flags.RasterKey(style, size, code)))
				if err := imagex.Save(img, fn); err != nil {
					return err
				}
			}
		}
		slog.Info("rendered", "code", code)
	}
	return nil
}

// Bitmap renders the given 4:3 SVG source into a transparent square
// of px pixels, vertically centered, in the given style.
func Bitmap(src []byte, px int, style flags.Style) (*image.RGBA, error) {
	fsz := provider.PixelSize(float32(px), flags.Native)
	flag, err := provider.Rasterize(src, fsz)
	if err != nil {
		return nil, err
	}
	if style == flags.Shiny {
		flag = gloss(flag)
	}
	img := image.NewRGBA(image.Rect(0, 0, px, px))
	at := image.Pt(0, (px-fsz.Y)/2)
	draw.Draw(img, image.Rectangle{Min: at, Max: at.Add(fsz)}, flag, image.Point{}, draw.Src)
	return img, nil
}

// gloss lightens the top half of the flag and darkens the bottom half.
func gloss(flag *image.RGBA) *image.RGBA {
	light := adjust.Brightness(flag, 0.25)
	dark := adjust.Brightness(flag, -0.12)
	b := flag.Bounds()
	mid := b.Min.Y + b.Dy()/2
	out := image.NewRGBA(b)
	draw.Draw(out, image.Rect(b.Min.X, b.Min.Y, b.Max.X, mid), light, b.Min, draw.Src)
	draw.Draw(out, image.Rect(b.Min.X, mid, b.Max.X, b.Max.Y), dark, image.Pt(b.Min.X, mid), draw.Src)
	return out
}
