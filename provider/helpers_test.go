// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package provider

import "github.com/chewxy/math32"

func ceil(v float32) float32 { return math32.Ceil(v) }
