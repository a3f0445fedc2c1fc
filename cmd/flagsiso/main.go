// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flagsiso lists the supported countries and renders their flags.
package main

import (
	"os"

	"cogentcore.org/flags/base/logx"
)

func main() {
	logx.SetDefaultLogger()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
