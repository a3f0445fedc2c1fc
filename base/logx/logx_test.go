// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	l := LevelFromFlags(true, false, false)
	if l != slog.LevelDebug {
		t.Errorf("expected LevelFromFlags(true, false, false) = %v, but got %v", slog.LevelDebug, l)
	}
	l = LevelFromFlags(false, true, true)
	if l != slog.LevelInfo {
		t.Errorf("expected LevelFromFlags(false, true, true) = %v, but got %v", slog.LevelInfo, l)
	}
	l = LevelFromFlags(false, false, true)
	if l != slog.LevelError {
		t.Errorf("expected LevelFromFlags(false, false, true) = %v, but got %v", slog.LevelError, l)
	}
	l = LevelFromFlags(false, false, false)
	if l != slog.LevelWarn {
		t.Errorf("expected LevelFromFlags(false, false, false) = %v, but got %v", slog.LevelWarn, l)
	}
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf)).With("pkg", "provider").WithGroup("flag")
	l.Debug("hidden")
	l.Info("rasterized", "code", "FI", "width", 64)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "rasterized")
	assert.Contains(t, out, "pkg=provider")
	assert.Contains(t, out, "flag.code=FI")
	assert.Contains(t, out, "flag.width=64")
}
