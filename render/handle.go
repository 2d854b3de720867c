// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the scene renderer [Handle], which owns the
// camera, the lights and the live objects of the 3D scene, and renders
// them through an [Engine] into offscreen targets.
package render

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/math32"

	"github.com/MindSwipe/r3e/config"
	"github.com/MindSwipe/r3e/cube"
)

// Handle is the scene renderer. It is constructed once and then
// resized, rendered and added to in any order until the program exits.
// It is not safe for concurrent use; the event loop owns it.
type Handle struct {
	engine     Engine
	cfg        config.Scene
	camera     Camera
	resolution image.Point
	objects    []ObjectHandle
	lights     []LightHandle
}

// New returns a new [Handle] rendering through the given engine
// at the given initial size. It configures the engine and camera
// and registers the single directional light.
func New(eng Engine, size image.Point, cfg *config.Scene) (*Handle, error) {
	if err := ValidateResolution(size); err != nil {
		return nil, err
	}
	h := &Handle{
		engine:     eng,
		cfg:        *cfg,
		resolution: size,
	}
	h.camera = Camera{
		FOV:   cfg.FOV,
		Near:  cfg.Near,
		Far:   cfg.Far,
		Eye:   cfg.Eye,
		Euler: cfg.Euler,
	}
	h.camera.SetAspect(size.X, size.Y)
	if err := eng.Configure(size, &h.camera); err != nil {
		return nil, fmt.Errorf("render: configuring engine: %w", err)
	}
	lh, err := eng.RegisterLight(DirLight{
		Color:     cfg.LightColor,
		Intensity: cfg.LightIntensity,
		Direction: cfg.LightDirection,
		Distance:  cfg.LightDistance,
	})
	if err != nil {
		return nil, fmt.Errorf("render: registering light: %w", err)
	}
	h.lights = append(h.lights, lh)
	slog.Info("render: scene renderer ready", "size", size, "light", lh)
	return h, nil
}

// Engine returns the engine that the handle renders through.
func (h *Handle) Engine() Engine { return h.engine }

// Resolution returns the current render resolution.
func (h *Handle) Resolution() image.Point { return h.resolution }

// Camera returns a copy of the current camera.
func (h *Handle) Camera() Camera { return h.camera }

// Objects returns the live object handles in the order they were added.
func (h *Handle) Objects() []ObjectHandle { return h.objects }

// Lights returns the light handles.
func (h *Handle) Lights() []LightHandle { return h.lights }

// Resize sets the render resolution, reconfigures the render target
// at the new size and sets the camera aspect ratio to width / height.
// The engine is only reconfigured if the resolution or the aspect
// ratio changed.
func (h *Handle) Resize(size image.Point) error {
	if err := ValidateResolution(size); err != nil {
		return err
	}
	aspect := h.camera.Aspect
	h.camera.SetAspect(size.X, size.Y)
	if size == h.resolution && h.camera.Aspect == aspect {
		return nil
	}
	h.resolution = size
	slog.Debug("render: resize", "size", size, "aspect", h.camera.Aspect)
	return h.engine.Configure(size, &h.camera)
}

// SetAspect updates only the camera aspect ratio, to width / height of
// the given size. It is used when the window changes size, which does
// not change the size of the offscreen target.
func (h *Handle) SetAspect(size image.Point) error {
	if err := ValidateResolution(size); err != nil {
		return err
	}
	h.camera.SetAspect(size.X, size.Y)
	return h.engine.Configure(h.resolution, &h.camera)
}

// NewTarget returns a new offscreen target at the current resolution.
func (h *Handle) NewTarget() (Target, error) {
	return h.engine.NewTarget(h.resolution)
}

// RenderToTexture renders all objects and lights into the given target.
func (h *Handle) RenderToTexture(t Target) error {
	if t.Size() != h.resolution {
		return fmt.Errorf("render: target size %v does not match resolution %v", t.Size(), h.resolution)
	}
	return h.engine.Render(t)
}

// AddCube adds a new cube at the world origin, with the configured
// albedo, and returns its handle. Cubes added by repeated calls overlap.
func (h *Handle) AddCube() (ObjectHandle, error) {
	ms, err := cube.New()
	if err != nil {
		return ObjectHandle{}, err
	}
	mat := DefaultMaterial(h.cfg.CubeColor)
	oh, err := h.engine.RegisterObject(ms, mat, *math32.Identity4())
	if err != nil {
		return ObjectHandle{}, fmt.Errorf("render: adding cube: %w", err)
	}
	h.objects = append(h.objects, oh)
	slog.Info("render: added cube", "object", oh, "objects", len(h.objects))
	return oh, nil
}
