// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cube provides the fixed unit cube mesh that is added to the scene.
// The cube spans -1..1 on every axis and is made of 6 independent quads
// (24 vertices, 36 indices), so that every face has its own normal.
package cube

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

const (
	// NumVertex is the number of vertices in the cube mesh.
	NumVertex = 24

	// NumIndex is the number of triangle indices in the cube mesh.
	NumIndex = 36
)

// ErrMalformed is returned when mesh geometry fails validation.
var ErrMalformed = errors.New("cube: malformed mesh")

// Face is one of the six faces of the cube.
type Face int32

const (
	Far Face = iota
	Near
	Right
	Left
	Top
	Bottom
	FacesN
)

var faceNames = [FacesN]string{"far", "near", "right", "left", "top", "bottom"}

func (f Face) String() string {
	if f < 0 || f >= FacesN {
		return fmt.Sprintf("Face(%d)", int32(f))
	}
	return faceNames[f]
}

// Normal returns the outward facing normal of the face.
func (f Face) Normal() math32.Vector3 {
	return faceNormals[f]
}

var faceNormals = [FacesN]math32.Vector3{
	Far:    {0, 0, 1},
	Near:   {0, 0, -1},
	Right:  {1, 0, 0},
	Left:   {-1, 0, 0},
	Top:    {0, 1, 0},
	Bottom: {0, -1, 0},
}

// Positions are the vertex positions, four per face, in [Face] order.
var Positions = [NumVertex]math32.Vector3{
	// far
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
	// near
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{-1, -1, -1},
	// right
	{1, -1, -1},
	{1, 1, -1},
	{1, 1, 1},
	{1, -1, 1},
	// left
	{-1, -1, 1},
	{-1, 1, 1},
	{-1, 1, -1},
	{-1, -1, -1},
	// top
	{1, 1, -1},
	{-1, 1, -1},
	{-1, 1, 1},
	{1, 1, 1},
	// bottom
	{1, -1, 1},
	{-1, -1, 1},
	{-1, -1, -1},
	{1, -1, -1},
}

// Indices are the triangle indices: two triangles per face quad.
var Indices = [NumIndex]uint32{
	0, 1, 2, 2, 3, 0, // far
	4, 5, 6, 6, 7, 4, // near
	8, 9, 10, 10, 11, 8, // right
	12, 13, 14, 14, 15, 12, // left
	16, 17, 18, 18, 19, 16, // top
	20, 21, 22, 22, 23, 20, // bottom
}

// quadUV are the texture coordinates of the four corners of every face.
var quadUV = [4]math32.Vector2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Mesh is indexed triangle geometry with per-vertex normals
// and texture coordinates.
type Mesh struct {
	Positions []math32.Vector3
	Normals   []math32.Vector3
	TexCoords []math32.Vector2
	Indices   []uint32
}

// New builds a fresh cube [Mesh]. Each call returns independent slices,
// so meshes can be handed to a renderer that keeps them.
func New() (*Mesh, error) {
	ms := &Mesh{
		Positions: make([]math32.Vector3, NumVertex),
		Normals:   make([]math32.Vector3, NumVertex),
		TexCoords: make([]math32.Vector2, NumVertex),
		Indices:   make([]uint32, NumIndex),
	}
	copy(ms.Positions, Positions[:])
	copy(ms.Indices, Indices[:])
	for i := range NumVertex {
		ms.Normals[i] = FaceOf(i).Normal()
		ms.TexCoords[i] = quadUV[i%4]
	}
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	return ms, nil
}

// FaceOf returns the face that vertex i belongs to.
func FaceOf(i int) Face {
	return Face(i / 4)
}

// Validate checks that the mesh is a well formed indexed triangle list.
func (ms *Mesh) Validate() error {
	nv := len(ms.Positions)
	switch {
	case nv == 0:
		return fmt.Errorf("%w: no vertices", ErrMalformed)
	case len(ms.Normals) != nv || len(ms.TexCoords) != nv:
		return fmt.Errorf("%w: %d positions but %d normals and %d texture coordinates", ErrMalformed, nv, len(ms.Normals), len(ms.TexCoords))
	case len(ms.Indices) == 0 || len(ms.Indices)%3 != 0:
		return fmt.Errorf("%w: index count %d is not a positive multiple of 3", ErrMalformed, len(ms.Indices))
	}
	for i, idx := range ms.Indices {
		if int(idx) >= nv {
			return fmt.Errorf("%w: index %d at %d out of range for %d vertices", ErrMalformed, idx, i, nv)
		}
	}
	return nil
}

// Bounds returns the axis aligned bounding box of the mesh.
func (ms *Mesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, p := range ms.Positions {
		bb.ExpandByPoint(p)
	}
	return bb
}
