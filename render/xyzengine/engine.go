// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzengine implements [render.Engine] with an [xyz.Scene] that
// renders into an offscreen [gpu.RenderTexture] on the window's device.
//
// The world of [render.Camera] is left-handed, with the camera looking
// down +Z, while xyz is right-handed with the camera looking down -Z.
// Positions, normals, transforms and light directions are mirrored in Z
// on the way in, which gives the same image.
package xyzengine

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"

	"github.com/MindSwipe/r3e/config"
	"github.com/MindSwipe/r3e/cube"
	"github.com/MindSwipe/r3e/render"
)

// IntensityScale is the [render.DirLight] intensity that maps to full
// xyz lumens, which are normalized to 0-1.
const IntensityScale = 10

// Engine is a [render.Engine] backed by an [xyz.Scene].
// The scene owns a single render texture, which is resized in place
// when the resolution changes and reused by every frame.
type Engine struct {
	gpu *gpu.GPU
	dev *gpu.Device

	// Scene is the xyz scene graph.
	Scene *xyz.Scene
}

// New returns a new [Engine] that renders on the given device,
// which must be the device of the window surface so that the
// rendered texture can be drawn by the GUI without a copy.
func New(gp *gpu.GPU, dev *gpu.Device, cfg *config.Scene) *Engine {
	sc := xyz.NewScene()
	sc.NoNav = true
	sc.MultiSample = cfg.MultiSample
	sc.Background = colors.Uniform(config.RGBA(cfg.ClearColor))
	return &Engine{gpu: gp, dev: dev, Scene: sc}
}

// mirrorZ converts a point or direction between the left-handed
// world and xyz.
func mirrorZ(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(v.X, v.Y, -v.Z)
}

// mirrorMatrix returns M * m * M for the Z mirror M, which negates
// every element with exactly one Z row or column.
func mirrorMatrix(m math32.Matrix4) math32.Matrix4 {
	for c := range 4 {
		for r := range 4 {
			if (c == 2) != (r == 2) {
				m[c*4+r] = -m[c*4+r]
			}
		}
	}
	return m
}

// cameraPose returns the xyz camera position and orientation for cam.
// Conjugating a rotation by the Z mirror negates the X and Y components
// of its quaternion, so the +Z forward of cam becomes the -Z forward of
// the xyz camera.
func cameraPose(cam *render.Camera) (math32.Vector3, math32.Quat) {
	q := cam.Orientation()
	return mirrorZ(cam.Eye), math32.Quat{X: -q.X, Y: -q.Y, Z: q.Z, W: q.W}
}

// setCamera copies cam into the xyz camera.
func (e *Engine) setCamera(cam *render.Camera) {
	xc := &e.Scene.Camera
	xc.FOV = cam.FOV
	xc.Near = cam.Near
	xc.Far = cam.Far
	xc.Aspect = cam.Aspect
	xc.Pose.Pos, xc.Pose.Quat = cameraPose(cam)
	xc.Target = math32.Vector3{}
	xc.UpDir = math32.Vec3(0, 1, 0)
	xc.UpdateMatrix()
}

// Configure sets the scene size and camera. The first call creates the
// render texture and the phong pipeline; later calls resize the
// texture in place.
func (e *Engine) Configure(size image.Point, cam *render.Camera) error {
	if err := render.ValidateResolution(size); err != nil {
		return err
	}
	sc := e.Scene
	sc.Geom.Size = size
	sc.ConfigOffscreen(e.gpu, e.dev)
	e.setCamera(cam)
	sc.SetNeedsUpdate()
	return nil
}

// meshName returns a unique mesh name for the object with the given handle.
func meshName(h render.ObjectHandle) string {
	return "cube-" + h.ID.String()
}

// genMesh converts the cube mesh into the flat arrays of an [xyz.GenMesh].
func genMesh(name string, ms *cube.Mesh) *xyz.GenMesh {
	gm := &xyz.GenMesh{}
	gm.Name = name
	for i, p := range ms.Positions {
		p = mirrorZ(p)
		n := mirrorZ(ms.Normals[i])
		tc := ms.TexCoords[i]
		gm.Vertex.Append(p.X, p.Y, p.Z)
		gm.Normal.Append(n.X, n.Y, n.Z)
		gm.TexCoord.Append(tc.X, tc.Y)
	}
	gm.Index.Append(ms.Indices...)
	return gm
}

// RegisterObject adds the mesh as a new named mesh and a [xyz.Solid]
// that uses it, with the material and world transform applied.
func (e *Engine) RegisterObject(ms *cube.Mesh, mat render.Material, xform math32.Matrix4) (render.ObjectHandle, error) {
	if err := ms.Validate(); err != nil {
		return render.ObjectHandle{}, err
	}
	h := render.NewObjectHandle()
	sc := e.Scene
	gm := genMesh(meshName(h), ms)
	sc.SetMesh(gm)
	sld := xyz.NewSolid(sc)
	sld.SetName(h.String())
	sld.SetMesh(gm).SetColor(config.RGBA(mat.Albedo)).SetEmissive(config.RGBA(mat.Emissive)).
		SetReflective(math32.Clamp(1-mat.Roughness+mat.Metallic, 0, 1))
	xf := mirrorMatrix(xform)
	sld.Pose.SetMatrix(&xf)
	sc.SetNeedsUpdate()
	slog.Debug("xyzengine: registered object", "name", sld.Name, "mesh", gm.Name)
	return h, nil
}

// RegisterLight adds a directional light. An xyz directional light
// shines from its position toward the origin, so it is placed opposite
// the direction. xyz directional lights have no falloff or shadows,
// so [render.DirLight.Distance] is not used.
func (e *Engine) RegisterLight(lt render.DirLight) (render.LightHandle, error) {
	if lt.Direction == (math32.Vector3{}) {
		return render.LightHandle{}, errors.New("xyzengine: directional light has no direction")
	}
	h := render.NewLightHandle()
	dl := &xyz.Directional{}
	dl.Name = h.String()
	dl.On = true
	dl.Lumens = lt.Intensity / IntensityScale
	dl.Color = config.RGBA(lt.Color)
	dl.Pos = mirrorZ(lt.Dir().Negate())
	e.Scene.AddLight(dl)
	slog.Debug("xyzengine: registered light", "name", dl.Name, "pos", dl.Pos, "lumens", dl.Lumens)
	return h, nil
}

// target is the render texture of the scene at a given size.
type target struct {
	size image.Point
	tex  *gpu.Texture
}

func (t *target) Size() image.Point { return t.size }
func (t *target) Texture() any      { return t.tex }

// frame returns the render texture of the scene.
func (e *Engine) frame() (*gpu.RenderTexture, error) {
	rt, ok := e.Scene.Frame.(*gpu.RenderTexture)
	if !ok || rt == nil {
		return nil, errors.New("xyzengine: scene is not configured")
	}
	return rt, nil
}

// NewTarget returns the current texture of the scene, which must already
// be configured at the given size.
func (e *Engine) NewTarget(size image.Point) (render.Target, error) {
	rt, err := e.frame()
	if err != nil {
		return nil, err
	}
	if rt.Format.Size != size {
		return nil, fmt.Errorf("xyzengine: target size %v does not match scene size %v", size, rt.Format.Size)
	}
	tex, err := rt.GetCurrentTextureObject()
	if err != nil {
		return nil, err
	}
	return &target{size: size, tex: tex}, nil
}

// Render updates the scene nodes if needed and renders into the target.
func (e *Engine) Render(t render.Target) error {
	rt, err := e.frame()
	if err != nil {
		return err
	}
	tg, ok := t.(*target)
	if !ok || tg.size != rt.Format.Size {
		return errors.New("xyzengine: target does not belong to this engine")
	}
	sc := e.Scene
	sc.UpdateNodesIfNeeded()
	if !sc.Render() {
		return errors.New("xyzengine: scene could not render")
	}
	return nil
}

// Release releases the render texture and pipeline.
func (e *Engine) Release() {
	e.Scene.Destroy()
}
