// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Size  string
	Width float32
	Shiny bool
}

func TestWriteOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "flags.toml")
	in := &testConfig{Size: "64", Width: 120, Shiny: true}
	var buf bytes.Buffer
	require.NoError(t, Write(in, &buf))
	require.NoError(t, os.WriteFile(fn, buf.Bytes(), 0666))

	out := &testConfig{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestReadUnknown(t *testing.T) {
	cfg := &testConfig{}
	assert.Error(t, Read(cfg, strings.NewReader("Colour = \"red\"\n")))
	assert.NoError(t, Read(cfg, strings.NewReader("Shiny = true\n")))
	assert.True(t, cfg.Shiny)
	assert.Error(t, Open(cfg, filepath.Join(t.TempDir(), "missing.toml")))
}
