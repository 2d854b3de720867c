// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed perspective camera, defined by an eye position and
// an XYZ Euler rotation. The view transform is Rotation * Translate(-Eye).
// The world is left-handed and the camera looks down +Z of its view space.
type Camera struct {

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32

	// Aspect is the width / height aspect ratio.
	Aspect float32

	// Eye is the camera position in world coordinates.
	Eye math32.Vector3

	// Euler is the camera rotation, as XYZ Euler angles in radians.
	Euler math32.Vector3
}

// SetAspect sets the aspect ratio from the given width and height,
// as exactly float32(w) / float32(h).
func (cm *Camera) SetAspect(w, h int) {
	cm.Aspect = float32(w) / float32(h)
}

// Rotation returns the rotation part of the view transform,
// RotX(Euler.X) * RotY(Euler.Y) * RotZ(Euler.Z).
func (cm *Camera) Rotation() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(cm.Euler.X).
		Mul4(mgl32.HomogRotate3DY(cm.Euler.Y)).
		Mul4(mgl32.HomogRotate3DZ(cm.Euler.Z))
}

// View returns the world to camera transform.
func (cm *Camera) View() mgl32.Mat4 {
	return cm.Rotation().Mul4(mgl32.Translate3D(-cm.Eye.X, -cm.Eye.Y, -cm.Eye.Z))
}

// Projection returns the perspective projection matrix.
func (cm *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(cm.FOV), cm.Aspect, cm.Near, cm.Far)
}

// Forward returns the unit direction that the camera looks in,
// in world coordinates.
func (cm *Camera) Forward() math32.Vector3 {
	f := cm.Rotation().Transpose().Mul4x1(mgl32.Vec4{0, 0, 1, 0})
	return math32.Vec3(f[0], f[1], f[2])
}

// Orientation returns the camera orientation in world space, which is
// the inverse of the view rotation, as a [math32.Quat] for scene graphs
// that position the camera by pose rather than by view matrix.
func (cm *Camera) Orientation() math32.Quat {
	q := mgl32.Mat4ToQuat(cm.Rotation()).Inverse()
	return math32.Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
