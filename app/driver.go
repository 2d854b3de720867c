// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app drives r3e: it turns window events into surface
// reconfiguration, GUI frames, offscreen scene renders and composited
// output, and runs the event loop.
package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/loov/hrtime"

	"github.com/MindSwipe/r3e/config"
	"github.com/MindSwipe/r3e/gui"
	"github.com/MindSwipe/r3e/render"
)

// PanelID is the id of the side panel.
const PanelID = "Left Panel"

// Surface is the presentable surface of the window.
type Surface interface {

	// Configure reconfigures the surface at the given size.
	Configure(size image.Point) error

	// Size returns the current size of the surface.
	Size() image.Point
}

// Compositor paints a GUI frame onto the surface and presents it.
type Compositor interface {
	Paint(out gui.Output) error
}

// EventSource delivers the window events that are pending.
type EventSource interface {
	Poll() []Event
}

// Driver handles events for the window. It is not safe for concurrent
// use; everything runs on the main thread.
type Driver struct {
	Config     *config.Config
	Surface    Surface
	Renderer   *render.Handle
	GUI        *gui.Context
	Compositor Compositor

	// Clock returns the time since the driver started.
	Clock func() time.Duration

	exited bool
}

// NewDriver returns a new [Driver] with a monotonic clock starting now.
func NewDriver(cfg *config.Config, sf Surface, rh *render.Handle, gc *gui.Context, cp Compositor) *Driver {
	start := hrtime.Now()
	return &Driver{
		Config:     cfg,
		Surface:    sf,
		Renderer:   rh,
		GUI:        gc,
		Compositor: cp,
		Clock:      func() time.Duration { return hrtime.Since(start) },
	}
}

// Handle handles one event. Once a [CloseRequested] is handled,
// every later event returns [Exit] without doing anything.
func (d *Driver) Handle(ev Event) (ControlFlow, error) {
	if d.exited {
		return Exit, nil
	}
	switch ev := ev.(type) {
	case CloseRequested:
		slog.Info("app: close requested")
		d.exited = true
		return Exit, nil
	case Resized:
		return Continue, d.resized(ev.Size)
	case RedrawRequested:
		return Continue, d.frame()
	case Input:
		d.GUI.Input(ev.Event)
	default:
		slog.Debug("app: ignoring event", "event", ev)
	}
	return Continue, nil
}

// resized reconfigures the surface and the camera aspect ratio.
// The offscreen target is resized by the next frame.
func (d *Driver) resized(size image.Point) error {
	if err := d.Surface.Configure(size); err != nil {
		return fmt.Errorf("app: configuring surface: %w", err)
	}
	if render.ValidateResolution(size) != nil {
		return nil
	}
	return d.Renderer.SetAspect(size)
}

// frame runs one GUI frame, renders the scene into the central
// viewport, and composites the result.
func (d *Driver) frame() error {
	screen := image.Rectangle{Max: d.Surface.Size()}
	if screen.Empty() {
		return nil
	}
	var errs []error
	d.GUI.Begin(screen, d.Clock())
	d.GUI.SidePanel(PanelID, func(ui *gui.UI) {
		ui.Label(d.Config.Panel.Label)
		if ui.Button(d.Config.Panel.Button) {
			_, err := d.Renderer.AddCube()
			errs = append(errs, err)
		}
	})

	rect := d.GUI.AvailableRect()
	id, err := d.renderScene(rect.Size())
	errs = append(errs, err)
	d.GUI.CentralPanel(func(ui *gui.UI) {
		if err == nil {
			ui.Image(id, d.Renderer.Resolution())
		}
	})
	out := d.GUI.End()
	if err == nil {
		out.Background = id
	}
	errs = append(errs, d.Compositor.Paint(out))
	return errors.Join(errs...)
}

// renderScene resizes the renderer to the viewport, renders the scene
// into a new target, and registers the target with the GUI.
func (d *Driver) renderScene(size image.Point) (gui.TextureID, error) {
	if err := d.Renderer.Resize(size); err != nil {
		return 0, err
	}
	tg, err := d.Renderer.NewTarget()
	if err != nil {
		return 0, err
	}
	if err := d.Renderer.RenderToTexture(tg); err != nil {
		return 0, err
	}
	return d.GUI.RegisterTexture(tg.Texture()), nil
}

// Run runs the event loop until a [CloseRequested] event or until ctx
// is done. Each tick, at the configured frame rate, it handles all
// pending events from src and then a [RedrawRequested]. Errors from
// handling events are logged and the loop continues.
func (d *Driver) Run(ctx context.Context, src EventSource) error {
	ticker := time.NewTicker(time.Second / time.Duration(d.Config.FrameRate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			evs := append(src.Poll(), RedrawRequested{})
			for _, ev := range evs {
				cf, err := d.Handle(ev)
				errors.Log(err)
				if cf == Exit {
					return nil
				}
			}
		}
	}
}
