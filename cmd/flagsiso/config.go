// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"
	"log/slog"

	"cogentcore.org/flags/base/errors"
	"cogentcore.org/flags/base/iox/tomlx"
	"cogentcore.org/flags/flags"
	"cogentcore.org/flags/picker"
	"cogentcore.org/flags/region"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is the config file read when --config is not given.
const DefaultConfigFile = "~/.config/flagsiso/config.toml"

// Config is the configuration of flagsiso. Each field can be set in
// the TOML config file under the name of the command line flag that
// also sets it. Flags given on the command line take precedence.
type Config struct {

	// Size is the size of fixed size flags: 16, 24, 32, 48, 64 or custom.
	Size string `toml:"size"`

	// Style is the style of fixed size flags: flat or shiny.
	Style string `toml:"style"`

	// Names is which country names are shown: native, english or current.
	Names string `toml:"names"`

	// Aspect is the aspect ratio of scaled flags: native or box.
	Aspect string `toml:"aspect"`

	// Width is the width of scaled flags.
	Width float32 `toml:"width"`

	// Rotate is the clockwise rotation of scaled flags in degrees.
	Rotate float32 `toml:"rotate"`

	// Region overrides the current region of the host.
	Region string `toml:"region"`

	// FontSize is the size of the labels of a sheet in points.
	FontSize float64 `toml:"font-size"`

	// Output is the file images are written to.
	Output string `toml:"output"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Size:     "16",
		Style:    "flat",
		Names:    "native",
		Aspect:   "native",
		Width:    100,
		FontSize: 13,
	}
}

// OpenConfig reads the config file with the given name into c. The name
// may start with ~ for the home directory of the user. A missing file
// is not an error if it is the default config file.
func OpenConfig(c *Config, filename string) error {
	if filename == "" {
		filename = DefaultConfigFile
	}
	path, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	err = tomlx.Open(c, path)
	if errors.Is(err, fs.ErrNotExist) && filename == DefaultConfigFile {
		slog.Debug("no config file", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}
	slog.Info("read config file", "path", path)
	return nil
}

// Load reads the config file with the given name into c like [OpenConfig],
// keeping the values of the flags in flagSet that were given on the
// command line.
func (c *Config) Load(filename string, flagSet *pflag.FlagSet) error {
	var given []*pflag.Flag
	var values []string
	flagSet.Visit(func(f *pflag.Flag) {
		given = append(given, f)
		values = append(values, f.Value.String())
	})
	if err := OpenConfig(c, filename); err != nil {
		return err
	}
	var errs []error
	for i, f := range given {
		if err := f.Value.Set(values[i]); err != nil {
			errs = append(errs, fmt.Errorf("flag %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// PickerOptions returns the picker options for the configuration.
func (c *Config) PickerOptions() (picker.Options, error) {
	opts := picker.DefaultOptions()
	var err error
	if opts.Size, err = flags.ParseSize(c.Size); err != nil {
		return opts, err
	}
	if opts.Style, err = flags.ParseStyle(c.Style); err != nil {
		return opts, err
	}
	if opts.Names, err = picker.ParseNames(c.Names); err != nil {
		return opts, err
	}
	if opts.Aspect, err = flags.ParseAspect(c.Aspect); err != nil {
		return opts, err
	}
	if opts.Size == flags.SizeCustom {
		opts.CustomSize.Width = c.Width
	}
	return opts, nil
}

// Resolver returns the region resolver for the configuration.
func (c *Config) Resolver() region.Resolver {
	if c.Region == "" {
		return region.Host()
	}
	return region.Fixed(c.Region, region.Host().DisplayLanguage())
}

// Picker returns a new picker for the configuration.
func (c *Config) Picker() (*picker.Picker, error) {
	opts, err := c.PickerOptions()
	if err != nil {
		return nil, err
	}
	return picker.NewWith(opts, c.Resolver()), nil
}
