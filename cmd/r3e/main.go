// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command r3e opens a window with a GUI side panel, and shows an
// offscreen rendered 3D scene that cubes can be added to.
package main

import (
	"runtime"

	"cogentcore.org/core/cli"

	"github.com/MindSwipe/r3e/app"
	"github.com/MindSwipe/r3e/config"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("r3e", "An offscreen rendered 3D scene inside an immediate-mode GUI panel.")
	opts.DefaultFiles = []string{"r3e.toml"}
	cli.Run(opts, config.New(), app.Run)
}
