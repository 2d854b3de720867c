// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rendertest provides a recording [render.Engine] that does no GPU
// work, for testing code that drives a [render.Handle].
package rendertest

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"

	"github.com/MindSwipe/r3e/cube"
	"github.com/MindSwipe/r3e/render"
)

// Object is a recorded object registration.
type Object struct {
	Handle    render.ObjectHandle
	Mesh      *cube.Mesh
	Material  render.Material
	Transform math32.Matrix4
}

// Light is a recorded light registration.
type Light struct {
	Handle render.LightHandle
	Light  render.DirLight
}

// Target is an in-memory [render.Target].
type Target struct {
	Sz image.Point

	// Renders is the number of times the target was rendered into.
	Renders int
}

func (t *Target) Size() image.Point { return t.Sz }
func (t *Target) Texture() any      { return t }

// Engine records every call made to it.
type Engine struct {

	// Size is the size of the last Configure call.
	Size image.Point

	// Camera is a copy of the camera from the last Configure call.
	Camera render.Camera

	// Configures counts Configure calls.
	Configures int

	// Renders counts Render calls.
	Renders int

	Objects []Object
	Lights  []Light
	Targets []*Target

	// Err, if set, is returned from every call.
	Err error
}

// New returns a new recording engine.
func New() *Engine {
	return &Engine{}
}

func (e *Engine) Configure(size image.Point, cam *render.Camera) error {
	if e.Err != nil {
		return e.Err
	}
	e.Configures++
	e.Size = size
	e.Camera = *cam
	return nil
}

func (e *Engine) RegisterObject(ms *cube.Mesh, mat render.Material, xform math32.Matrix4) (render.ObjectHandle, error) {
	if e.Err != nil {
		return render.ObjectHandle{}, e.Err
	}
	h := render.NewObjectHandle()
	e.Objects = append(e.Objects, Object{Handle: h, Mesh: ms, Material: mat, Transform: xform})
	return h, nil
}

func (e *Engine) RegisterLight(lt render.DirLight) (render.LightHandle, error) {
	if e.Err != nil {
		return render.LightHandle{}, e.Err
	}
	h := render.NewLightHandle()
	e.Lights = append(e.Lights, Light{Handle: h, Light: lt})
	return h, nil
}

func (e *Engine) NewTarget(size image.Point) (render.Target, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	if err := render.ValidateResolution(size); err != nil {
		return nil, err
	}
	t := &Target{Sz: size}
	e.Targets = append(e.Targets, t)
	return t, nil
}

func (e *Engine) Render(t render.Target) error {
	if e.Err != nil {
		return e.Err
	}
	rt, ok := t.(*Target)
	if !ok {
		return errors.New("rendertest: foreign render target")
	}
	e.Renders++
	rt.Renders++
	return nil
}
