// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"log/slog"

	"cogentcore.org/core/base/logx"

	"github.com/MindSwipe/r3e/bootstrap"
	"github.com/MindSwipe/r3e/config"
	"github.com/MindSwipe/r3e/gui"
	"github.com/MindSwipe/r3e/gui/guigpu"
	"github.com/MindSwipe/r3e/render"
	"github.com/MindSwipe/r3e/render/xyzengine"
)

// Run opens the window, sets up the renderer and the GUI, and runs the
// event loop until the window is closed. It must be called on the main
// thread. Everything is released in reverse order of creation.
func Run(cfg *config.Config) error { //cli:cmd -root
	if cfg.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	dev, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer dev.Release()

	eng := xyzengine.New(dev.GPU, dev.Device(), &cfg.Scene)
	defer eng.Release()
	rh, err := render.New(eng, dev.Size(), &cfg.Scene)
	if err != nil {
		return err
	}
	gc, err := gui.NewContext(&cfg.Panel)
	if err != nil {
		return err
	}
	pt := guigpu.New(dev.GPU, dev.Surface, config.Color(cfg.Window.ClearColor))
	defer pt.Release()

	d := NewDriver(cfg, dev, rh, gc, pt)
	return d.Run(context.Background(), NewGLFWSource(dev.Window))
}
