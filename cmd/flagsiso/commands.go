// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"cogentcore.org/flags/base/errors"
	"cogentcore.org/flags/base/iox/imagex"
	"cogentcore.org/flags/base/logx"
	"cogentcore.org/flags/flags"
	"cogentcore.org/flags/picker"
	"cogentcore.org/flags/provider"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// verbosity holds the global verbosity flags.
type verbosity struct {
	vv, v, q bool
}

func newRootCmd() *cobra.Command {
	cfg := DefaultConfig()
	var configFile string
	var verb verbosity

	root := &cobra.Command{
		Use:          "flagsiso",
		Short:        "flagsiso lists countries and renders their flags",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(verb.vv, verb.v, verb.q)
			return cfg.Load(configFile, cmd.Flags())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "TOML config file (default "+DefaultConfigFile+")")
	pf.BoolVar(&verb.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&verb.v, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&verb.q, "quiet", "q", false, "only show errors")
	pf.StringVar(&cfg.Region, "region", cfg.Region, "current region code (default from the locale)")

	root.AddCommand(newListCmd(cfg), newRenderCmd(cfg), newScaleCmd(cfg), newSheetCmd(cfg))
	return root
}

func newListCmd(cfg *Config) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the supported countries in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cfg.Picker()
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), p, format)
		},
	}
	cmd.Flags().StringVar(&cfg.Names, "names", cfg.Names, "names to show: native, english or current")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, toml or yaml")
	return cmd
}

func newRenderCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render CODE",
		Short: "write the fixed size bitmap of the flag of a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			size, err := flags.ParseSize(cfg.Size)
			if err != nil {
				return err
			}
			style, err := flags.ParseStyle(cfg.Style)
			if err != nil {
				return err
			}
			img, ok := provider.Image(code, size, style)
			if !ok {
				return fmt.Errorf("no %v %v flag for %q", style, size, code)
			}
			return save(cmd, img, outputName(cfg, flags.RasterKey(style, size, code)))
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&cfg.Size, "size", cfg.Size, "size: 16, 24, 32, 48 or 64")
	fs.StringVar(&cfg.Style, "style", cfg.Style, "style: flat or shiny")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file")
	return cmd
}

func newScaleCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale CODE",
		Short: "write the flag of a country rasterized to a width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			aspect, err := flags.ParseAspect(cfg.Aspect)
			if err != nil {
				return err
			}
			img, ok := provider.ScaledRotated(code, cfg.Width, aspect, cfg.Rotate)
			if !ok {
				return fmt.Errorf("no %v flag for %q", aspect, code)
			}
			return save(cmd, img, outputName(cfg, fmt.Sprintf("%s_%v", flags.SVGKey(code), aspect)))
		},
	}
	fs := cmd.Flags()
	fs.Float32Var(&cfg.Width, "width", cfg.Width, "width in pixels")
	fs.StringVar(&cfg.Aspect, "aspect", cfg.Aspect, "aspect ratio: native or box")
	fs.Float32Var(&cfg.Rotate, "rotate", cfg.Rotate, "clockwise rotation in degrees")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file")
	return cmd
}

func newSheetCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "write an image of all of the rows of the country picker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cfg.Picker()
			if err != nil {
				return err
			}
			// the sheet falls back to the built in face
			face := errors.Log1(labelFace(cfg.FontSize))
			if face != nil {
				defer func() { errors.Log(face.Close()) }()
			}
			return save(cmd, Sheet(p, face), outputName(cfg, "sheet"))
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&cfg.Size, "size", cfg.Size, "size: 16, 24, 32, 48, 64 or custom")
	fs.StringVar(&cfg.Style, "style", cfg.Style, "style: flat or shiny")
	fs.StringVar(&cfg.Names, "names", cfg.Names, "names to show: native, english or current")
	fs.Float32Var(&cfg.Width, "width", cfg.Width, "flag width with the custom size")
	fs.StringVar(&cfg.Aspect, "aspect", cfg.Aspect, "aspect ratio with the custom size: native or box")
	fs.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "label font size in points")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file")
	return cmd
}

// Sheet draws all of the rows of the given picker below each other,
// with the selected row highlighted. A nil face uses [basicfont.Face7x13].
func Sheet(p *picker.Picker, face font.Face) *image.RGBA {
	if face == nil {
		face = basicfont.Face7x13
	}
	h := p.ItemHeight()
	w := p.FlagWidth() + 4
	for _, it := range p.Items() {
		w = max(w, p.FlagWidth()+4+font.MeasureString(face, it.Label).Ceil())
	}
	img := image.NewRGBA(image.Rect(0, 0, w, max(h*p.Len(), 1)))
	st := picker.DefaultRowStyle()
	st.Face = face
	for i := range p.Len() {
		rst := st
		if i == p.Selected() {
			rst.Background = color.RGBA{0xd0, 0xe4, 0xff, 0xff}
		}
		p.DrawItem(img, image.Rect(0, i*h, w, (i+1)*h), i, rst)
	}
	return img
}

func labelFace(size float64) (font.Face, error) {
	f := errors.Must1(opentype.Parse(goregular.TTF))
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	return face, nil
}

func outputName(cfg *Config, base string) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	return base + ".png"
}

func save(cmd *cobra.Command, img image.Image, filename string) error {
	if err := imagex.Save(img, filename); err != nil {
		return err
	}
	slog.Info("wrote image", "file", filename, "size", img.Bounds().Size())
	fmt.Fprintln(cmd.OutOrStdout(), filename)
	return nil
}
