// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flaggen renders the fixed size flag bitmaps of the
// flags package from its native SVG sources.
package main

import (
	"os"

	"cogentcore.org/flags/base/logx"
	"github.com/spf13/cobra"
)

func main() {
	logx.SetDefaultLogger()
	var dir string
	var vv, v bool
	cmd := &cobra.Command{
		Use:          "flaggen",
		Short:        "flaggen renders raster/{flat,shiny}_{N}x{CODE}.png from svg/native",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(vv, v, false)
			return Generate(dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory of the flags package")
	cmd.Flags().BoolVar(&vv, "vv", false, "show debug messages")
	cmd.Flags().BoolVarP(&v, "verbose", "v", false, "show informational messages")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
