// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ms, err := New()
	require.NoError(t, err)
	assert.Len(t, ms.Positions, 24)
	assert.Len(t, ms.Normals, 24)
	assert.Len(t, ms.TexCoords, 24)
	assert.Len(t, ms.Indices, 36)
	assert.Equal(t, Positions[:], ms.Positions)
	assert.Equal(t, Indices[:], ms.Indices)

	bb := ms.Bounds()
	assert.Equal(t, math32.Vec3(-1, -1, -1), bb.Min)
	assert.Equal(t, math32.Vec3(1, 1, 1), bb.Max)
}

func TestNewIndependent(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)
	a.Positions[0].X = 42
	a.Indices[0] = 7
	assert.Equal(t, float32(-1), b.Positions[0].X)
	assert.Equal(t, uint32(0), b.Indices[0])
	assert.Equal(t, float32(-1), Positions[0].X)
}

func TestLiteralGeometry(t *testing.T) {
	want := []float32{
		-1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1, 1,
		-1, 1, -1, 1, 1, -1, 1, -1, -1, -1, -1, -1,
		1, -1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1,
		-1, -1, 1, -1, 1, 1, -1, 1, -1, -1, -1, -1,
		1, 1, -1, -1, 1, -1, -1, 1, 1, 1, 1, 1,
		1, -1, 1, -1, -1, 1, -1, -1, -1, 1, -1, -1,
	}
	var got []float32
	for _, p := range Positions {
		got = append(got, p.X, p.Y, p.Z)
	}
	assert.Equal(t, want, got)

	for f := range FacesN {
		b := uint32(4 * f)
		assert.Equal(t, []uint32{b, b + 1, b + 2, b + 2, b + 3, b}, Indices[6*f:6*f+6], "face %v", f)
	}
}

func TestFaceGroups(t *testing.T) {
	for i, p := range Positions {
		f := FaceOf(i)
		n := f.Normal()
		// every vertex of a face lies on the plane of that face
		assert.Equal(t, float32(1), p.Dot(n), "vertex %d face %v", i, f)
	}
	// the first triangle of each face is perpendicular to the face normal
	for f := range FacesN {
		i0, i1, i2 := Indices[6*f], Indices[6*f+1], Indices[6*f+2]
		e1 := Positions[i1].Sub(Positions[i0])
		e2 := Positions[i2].Sub(Positions[i0])
		tn := e1.Cross(e2).Normal()
		assert.Equal(t, float32(1), math32.Abs(tn.Dot(f.Normal())), "face %v", f)
	}
}

func TestFaceString(t *testing.T) {
	assert.Equal(t, "far", Far.String())
	assert.Equal(t, "bottom", Bottom.String())
	assert.Equal(t, "Face(9)", Face(9).String())
}

func TestValidate(t *testing.T) {
	ms, err := New()
	require.NoError(t, err)

	bad := *ms
	bad.Indices = append([]uint32{}, ms.Indices[:35]...)
	assert.ErrorIs(t, bad.Validate(), ErrMalformed)

	bad = *ms
	bad.Indices = append([]uint32{}, ms.Indices...)
	bad.Indices[5] = 24
	assert.ErrorIs(t, bad.Validate(), ErrMalformed)

	bad = *ms
	bad.Normals = bad.Normals[:3]
	assert.ErrorIs(t, bad.Validate(), ErrMalformed)

	assert.ErrorIs(t, (&Mesh{}).Validate(), ErrMalformed)
}
