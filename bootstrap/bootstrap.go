// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bootstrap opens the window and stands up the GPU: the adapter,
// the logical device and the presentable surface of the window.
// Everything here must be called on the main thread, which must be
// locked with [runtime.LockOSThread].
package bootstrap

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MindSwipe/r3e/config"
)

// Device is the window, the GPU and the presentable surface of the window.
type Device struct {

	// Window is the top-level window.
	Window *glfw.Window

	// GPU is the adapter and instance.
	GPU *gpu.GPU

	// Surface is the presentable surface, which also owns the logical device.
	Surface *gpu.Surface

	// Format is the texture format of the surface. Rendering goes
	// through a view of the sRGB variant of it, if there is one.
	Format wgpu.TextureFormat

	// PresentMode is the negotiated present mode of the surface.
	PresentMode wgpu.PresentMode

	wsurf *wgpu.Surface
	alpha wgpu.CompositeAlphaMode
	size  image.Point
}

// Open creates the window, the GPU and the surface of the window,
// and configures the surface at the framebuffer size of the window.
func Open(cfg *config.Config) (*Device, error) {
	want, err := ParsePresentMode(cfg.Window.PresentMode)
	if err != nil {
		return nil, err
	}
	if err := gpu.Init(); err != nil {
		return nil, fmt.Errorf("bootstrap: initializing glfw: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		gpu.Terminate()
		return nil, fmt.Errorf("bootstrap: creating window: %w", err)
	}
	d := &Device{Window: win}
	d.wsurf = gpu.Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))
	if d.wsurf == nil {
		d.Release()
		return nil, fmt.Errorf("bootstrap: creating surface for window %q", cfg.Window.Title)
	}

	d.GPU = gpu.NewGPU(d.wsurf)
	if d.GPU == nil {
		d.Release()
		return nil, fmt.Errorf("bootstrap: no suitable GPU adapter")
	}

	caps := d.wsurf.GetCapabilities(d.GPU.GPU)
	d.Format, err = SelectFormat(caps.Formats)
	if err != nil {
		d.Release()
		return nil, err
	}
	d.PresentMode = SelectPresentMode(want, caps.PresentModes)
	d.alpha = SelectAlphaMode(caps.AlphaModes)

	fw, fh := win.GetFramebufferSize()
	size := image.Point{fw, fh}
	if !ValidSize(size) {
		size = cfg.Window.Size()
	}
	d.Surface = gpu.NewSurface(d.GPU, d.wsurf, size, 1, gpu.UndefinedType)
	if err := d.Configure(size); err != nil {
		d.Release()
		return nil, err
	}
	slog.Info("bootstrap: opened window", "title", cfg.Window.Title, "size", size,
		"format", d.Format, "presentMode", d.PresentMode)
	return d, nil
}

// Device returns the logical device shared by the surface and the scene.
func (d *Device) Device() *gpu.Device {
	return d.Surface.Device()
}

// Size returns the current size of the surface.
func (d *Device) Size() image.Point {
	return d.size
}

// Configure resizes the surface and applies the surface configuration
// at the given size. Zero sizes, from minimized windows, are skipped.
func (d *Device) Configure(size image.Point) error {
	if !ValidSize(size) {
		slog.Debug("bootstrap: skipping surface configure", "size", size)
		return nil
	}
	d.Surface.SetSize(size)
	d.wsurf.Configure(d.GPU.GPU, d.Device().Device, SurfaceConfig(size, d.Format, d.PresentMode, d.alpha))
	d.size = size
	slog.Debug("bootstrap: configured surface", "size", size)
	return nil
}

// Release releases everything in reverse order of creation.
func (d *Device) Release() {
	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
	if d.GPU != nil {
		d.GPU.Release()
		d.GPU = nil
	}
	if d.Window != nil {
		d.Window.Destroy()
		d.Window = nil
	}
	gpu.Terminate()
}
