// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/flags/base/errors"
	"cogentcore.org/flags/base/iox/imagex"
	"cogentcore.org/flags/base/iox/tomlx"
	"cogentcore.org/flags/flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOpenConfig(t *testing.T) {
	c := DefaultConfig()
	errors.Test(t, OpenConfig(c, "testdata/config.toml"))
	assert.Equal(t, "32", c.Size)
	assert.Equal(t, "shiny", c.Style)
	assert.Equal(t, "SE", c.Region)
	assert.Equal(t, 10.0, c.FontSize)
	// not in the file
	assert.Equal(t, "native", c.Aspect)
	assert.Equal(t, float32(100), c.Width)

	assert.Error(t, OpenConfig(DefaultConfig(), "testdata/unknown.toml"))
	assert.Error(t, OpenConfig(DefaultConfig(), "testdata/missing.toml"))
}

func TestPickerOptions(t *testing.T) {
	c := DefaultConfig()
	c.Size = "custom"
	c.Width = 40
	c.Aspect = "box"
	opts, err := c.PickerOptions()
	require.NoError(t, err)
	assert.Equal(t, flags.SizeCustom, opts.Size)
	assert.Equal(t, flags.Box, opts.Aspect)
	assert.Equal(t, float32(40), opts.CustomSize.Width)

	c.Names = "klingon"
	_, err = c.PickerOptions()
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "--region", "FI", "--names", "english")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, len(flags.Codes()))
	assert.Contains(t, lines, "* FI "+flags.Emoji("FI")+" Finland")
	assert.True(t, strings.HasPrefix(lines[0], "  AM "))
}

func TestListConfig(t *testing.T) {
	out, err := run(t, "list", "--config", "testdata/config.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "* SE "+flags.Emoji("SE")+" Sweden\n")

	// flags override the config file
	out, err = run(t, "list", "--config", "testdata/config.toml", "--names", "native", "--region", "DE")
	require.NoError(t, err)
	assert.Contains(t, out, "* DE "+flags.Emoji("DE")+" Deutschland\n")
}

func TestRender(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "fi.png")
	_, err := run(t, "render", "fi", "--size", "48", "--style", "shiny", "-o", fn)
	require.NoError(t, err)
	img, format, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, format)
	assert.Equal(t, image.Pt(48, 48), img.Bounds().Size())

	_, err = run(t, "render", "zz", "-o", fn)
	assert.Error(t, err)
	_, err = run(t, "render", "fi", "--size", "17", "-o", fn)
	assert.Error(t, err)
}

func TestScale(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "de.png")
	_, err := run(t, "scale", "de", "--width", "33", "-o", fn)
	require.NoError(t, err)
	img, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(33, 25), img.Bounds().Size())

	_, err = run(t, "scale", "de", "--width", "20", "--aspect", "box", "--rotate", "90", "-o", fn)
	require.NoError(t, err)
	img, _, err = imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(20, 20), img.Bounds().Size())
}

func TestSheet(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sheet.png")
	_, err := run(t, "sheet", "--region", "FI", "--size", "24", "-o", fn)
	require.NoError(t, err)
	img, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 23*len(flags.Codes()), img.Bounds().Dy())
}

func TestSheetImage(t *testing.T) {
	c := DefaultConfig()
	c.Region = "FI"
	p, err := c.Picker()
	require.NoError(t, err)
	p.KeepCodes("FI", "SE")
	face, err := labelFace(13)
	require.NoError(t, err)
	img := Sheet(p, face)
	assert.Equal(t, 2*p.ItemHeight(), img.Bounds().Dy())
	assert.Greater(t, img.Bounds().Dx(), p.FlagWidth())
	assert.Equal(t, []string{"FI", "SE"}, p.Codes())

	img = Sheet(p, nil)
	assert.Equal(t, 2*p.ItemHeight(), img.Bounds().Dy())
}

func TestListFormats(t *testing.T) {
	out, err := run(t, "list", "--region", "FI", "--names", "english", "--format", "yaml")
	require.NoError(t, err)
	var cs []Country
	require.NoError(t, yaml.Unmarshal([]byte(out), &cs))
	require.Len(t, cs, len(flags.Codes()))
	assert.Equal(t, "AM", cs[0].Code)

	out, err = run(t, "list", "--region", "FI", "--names", "english", "--format", "toml")
	require.NoError(t, err)
	var doc struct {
		Countries []Country `toml:"countries"`
	}
	require.NoError(t, tomlx.Read(&doc, strings.NewReader(out)))
	assert.Equal(t, cs, doc.Countries)
	for _, c := range doc.Countries {
		if c.Code == "FI" {
			assert.True(t, c.Selected)
			assert.Equal(t, "fi-FI", c.Language)
		}
	}

	_, err = run(t, "list", "--format", "xml")
	assert.Error(t, err)
}
