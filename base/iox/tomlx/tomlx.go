// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides helpers for opening and saving
// configuration structs as TOML.
package tomlx

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, f); err != nil {
		return fmt.Errorf("tomlx.Open %q: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader.
// Unknown keys are an error.
func Read(v any, r io.Reader) error {
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	return d.Decode(v)
}

// Write writes the given object to the given writer as TOML.
func Write(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}
