// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether to update currently saved test
// images in [Assert] instead of comparing against them.
// It is automatically set if the environment variable
// "FLAGS_UPDATE_TESTDATA" is set to "true". It should only be
// set when behavior has been updated that causes test images to change.
var UpdateTestImages = os.Getenv("FLAGS_UPDATE_TESTDATA") == "true"

// Tolerance is the maximum per-channel difference allowed by [Assert]
// between a rendered image and its saved counterpart. Rasterizer
// anti-aliasing differs slightly across platforms.
var Tolerance = 10

// CompareUint8 returns true if two numbers are within tol of each other
func CompareUint8(cc, ic uint8, tol int) bool {
	d := int(cc) - int(ic)
	return d >= -tol && d <= tol
}

// CompareColors returns true if two colors are within tol of each other
// on every channel.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return CompareUint8(cc.R, ic.R, tol) && CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) && CompareUint8(cc.A, ic.A, tol)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// DiffImage returns the difference between two images,
// with pixels having the abs of the difference between pixels.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			cc := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.Set(x, y, color.RGBA{absDiff(cc.R, ic.R), absDiff(cc.G, ic.G), absDiff(cc.B, ic.B), 255})
		}
	}
	return di
}

// Assert asserts that the given image is equivalent
// to the image stored at the given filename in the testdata directory,
// with ".png" added to the filename if there is no extension
// (eg: "scaled/fi" becomes "testdata/scaled/fi.png").
// If it is not, it fails the test with an error, but continues its
// execution. If there is no image at the given filename in the testdata
// directory, it creates the image.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filepath.FromSlash(filename))
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}

	err := os.MkdirAll(filepath.Dir(filename), 0750)
	if err != nil {
		t.Errorf("error making testdata directory: %v", err)
	}

	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext

	if UpdateTestImages {
		err := Save(img, filename)
		if err != nil {
			t.Errorf("imagex.Assert: error saving updated image: %v", err)
		}
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
		return
	}

	fimg, _, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("imagex.Assert: error opening saved image: %v", err)
			return
		}
		// we don't have the file yet, so we make it
		err := Save(img, filename)
		if err != nil {
			t.Errorf("imagex.Assert: error saving new image: %v", err)
		}
		return
	}

	failed := false

	ibounds := img.Bounds()
	fbounds := fimg.Bounds()
	if ibounds != fbounds {
		t.Errorf("imagex.Assert: expected bounds %v for image for %s, but got bounds %v; see %s", fbounds, filename, ibounds, failFilename)
		failed = true
	} else {
	rows:
		for y := ibounds.Min.Y; y < ibounds.Max.Y; y++ {
			for x := ibounds.Min.X; x < ibounds.Max.X; x++ {
				cc := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				ic := color.RGBAModel.Convert(fimg.At(x, y)).(color.RGBA)
				if !CompareColors(cc, ic, Tolerance) {
					t.Errorf("imagex.Assert: image for %s is not the same as expected; see %s; expected color %v at (%d, %d), but got %v", filename, failFilename, ic, x, y, cc)
					failed = true
					break rows
				}
			}
		}
	}

	if failed {
		if err := Save(img, failFilename); err != nil {
			t.Errorf("imagex.Assert: error saving fail image: %v", err)
		}
		if ibounds == fbounds {
			if err := Save(DiffImage(img, fimg), diffFilename); err != nil {
				t.Errorf("imagex.Assert: error saving diff image: %v", err)
			}
		}
	} else {
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
	}
}
