// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/flags/base/iox/tomlx"
	"cogentcore.org/flags/flags"
	"cogentcore.org/flags/picker"
	"gopkg.in/yaml.v3"
)

// Country is one entry of the output of the list command.
type Country struct {
	Code     string `toml:"code" yaml:"code"`
	Emoji    string `toml:"emoji" yaml:"emoji"`
	Label    string `toml:"label" yaml:"label"`
	English  string `toml:"english" yaml:"english"`
	Language string `toml:"language" yaml:"language"`
	Selected bool   `toml:"selected,omitempty" yaml:"selected,omitempty"`
}

// Countries returns the list entries of the items of the given picker.
func Countries(p *picker.Picker) []Country {
	cs := make([]Country, p.Len())
	for i, it := range p.Items() {
		cs[i] = Country{
			Code:     it.Code,
			Emoji:    flags.Emoji(it.Code),
			Label:    it.Label,
			English:  it.Region.EnglishName,
			Language: it.Region.Language.String(),
			Selected: i == p.Selected(),
		}
	}
	return cs
}

func writeList(w io.Writer, p *picker.Picker, format string) error {
	cs := Countries(p)
	switch format {
	case "text", "":
		for _, c := range cs {
			mark := " "
			if c.Selected {
				mark = "*"
			}
			if _, err := fmt.Fprintf(w, "%s %s %s %s\n", mark, c.Code, c.Emoji, c.Label); err != nil {
				return err
			}
		}
		return nil
	case "toml":
		return tomlx.Write(&struct {
			Countries []Country `toml:"countries"`
		}{cs}, w)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cs); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown list format %q", format)
}
