// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/MindSwipe/r3e/cube"
)

// ErrInvalidResolution is returned for a resolution with a non-positive component.
var ErrInvalidResolution = errors.New("render: resolution must be > 0 in both dimensions")

// ValidateResolution returns an error wrapping [ErrInvalidResolution]
// unless both components of size are > 0.
func ValidateResolution(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidResolution, size)
	}
	return nil
}

// ObjectHandle is an opaque reference to an object registered with an [Engine].
type ObjectHandle struct {
	ID uuid.UUID
}

// NewObjectHandle returns a new unique handle.
func NewObjectHandle() ObjectHandle {
	return ObjectHandle{ID: uuid.New()}
}

func (h ObjectHandle) String() string { return "object-" + h.ID.String() }

// LightHandle is an opaque reference to a light registered with an [Engine].
type LightHandle struct {
	ID uuid.UUID
}

// NewLightHandle returns a new unique handle.
func NewLightHandle() LightHandle {
	return LightHandle{ID: uuid.New()}
}

func (h LightHandle) String() string { return "light-" + h.ID.String() }

// Material is a physically based material, with colors as RGBA
// components in 0-1. Only the albedo is set for cubes; the other
// channels keep their defaults.
type Material struct {
	Albedo    math32.Vector4
	Emissive  math32.Vector4
	Roughness float32
	Metallic  float32
}

// DefaultMaterial returns a [Material] with the given albedo and default
// values for all the other channels.
func DefaultMaterial(albedo math32.Vector4) Material {
	return Material{Albedo: albedo, Roughness: 1}
}

// DirLight is a directional light, like the sun.
type DirLight struct {

	// Color of the light at full intensity, as RGBA components in 0-1.
	Color math32.Vector4

	// Intensity is the brightness multiplier.
	Intensity float32

	// Direction the light travels in; it is normalized by [DirLight.Dir].
	Direction math32.Vector3

	// Distance is the falloff distance, used for shadow extents by
	// engines that render shadows.
	Distance float32
}

// Dir returns the normalized direction the light travels in.
func (dl *DirLight) Dir() math32.Vector3 {
	v := mgl32.Vec3{dl.Direction.X, dl.Direction.Y, dl.Direction.Z}.Normalize()
	return math32.Vec3(v[0], v[1], v[2])
}

// Target is an offscreen image that a scene can be rendered into.
type Target interface {

	// Size returns the size of the target in pixels.
	Size() image.Point

	// Texture returns the engine specific texture that the
	// GUI imports for display.
	Texture() any
}

// Engine is the narrow interface to the 3D rendering library.
// Rendering, resource binding and GPU submission are all done by the
// engine; [Handle] only decides what to register and when to render.
type Engine interface {

	// Configure sets the render target size and the camera.
	Configure(size image.Point, cam *Camera) error

	// RegisterObject adds an object with the given mesh, material and
	// world transform to the scene.
	RegisterObject(ms *cube.Mesh, mat Material, xform math32.Matrix4) (ObjectHandle, error)

	// RegisterLight adds a directional light to the scene.
	RegisterLight(lt DirLight) (LightHandle, error)

	// NewTarget returns an offscreen target of the given size.
	NewTarget(size image.Point) (Target, error)

	// Render renders all registered objects and lights into the target.
	// It returns once the work is submitted, without waiting for the GPU.
	Render(t Target) error
}
