// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/base/tolassert"
	"github.com/go-xr/xr/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-6)

func meshVec3(ary glm.ArrayF32, i int) glm.Vector3 {
	var v glm.Vector3
	ary.GetVector3(i*3, &v)
	return v
}

func tolAssertEqualVector3(t *testing.T, tol float32, vt, va glm.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

// assertOutward checks that every triangle in the mesh winds
// counterclockwise when viewed from the side its normal points to.
func assertOutward(t *testing.T, m *Mesh) {
	t.Helper()
	for tri := range m.NumTris() {
		ia := int(m.Index[tri*3])
		ib := int(m.Index[tri*3+1])
		ic := int(m.Index[tri*3+2])
		a := meshVec3(m.Vertex, ia)
		b := meshVec3(m.Vertex, ib)
		c := meshVec3(m.Vertex, ic)
		n := meshVec3(m.Normal, ia)
		face := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, face.Dot(n), float32(0), "triangle %d", tri)
	}
}

func TestPlaneN(t *testing.T) {
	nv, ni := PlaneN(1, 1)
	assert.Equal(t, 4, nv)
	assert.Equal(t, 6, ni)

	nv, ni = PlaneN(0, 0) // clamps to 1
	assert.Equal(t, 4, nv)
	assert.Equal(t, 6, ni)

	nv, ni = PlaneN(2, 3)
	assert.Equal(t, 12, nv)
	assert.Equal(t, 36, ni)
}

func TestQuad(t *testing.T) {
	dg := ar.DisplayGeometry{Rotation: ar.Rotation0, Width: 640, Height: 480}
	qd := NewQuad(dg)
	nv, ni := qd.N()
	assert.Equal(t, 4, nv)
	assert.Equal(t, 6, ni)

	// landscape: NDC maps straight onto the texture, with V flipped
	assert.Equal(t, [4]glm.Vector2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}, qd.UVs)

	m := NewMesh(qd)
	require.Equal(t, 4, m.NumVertex())
	require.Equal(t, 2, m.NumTris())
	assert.Empty(t, m.Alpha)
	tolAssertEqualVector3(t, standardTol, glm.Vec3(-1, -1, 0), meshVec3(m.Vertex, 0))
	tolAssertEqualVector3(t, standardTol, glm.Vec3(1, 1, 0), meshVec3(m.Vertex, 3))
	tolAssertEqualVector3(t, standardTol, glm.Vec3(0, 0, 1), meshVec3(m.Normal, 2))
	assert.Equal(t, glm.ArrayU32{0, 1, 2, 1, 3, 2}, m.Index)
	assert.Equal(t, glm.B3(-1, -1, 0, 1, 1, 0), qd.BBox())

	// portrait: the sensor image is rotated a quarter turn on screen
	dg = ar.DisplayGeometry{Rotation: ar.Rotation90, Width: 480, Height: 640}
	qd = NewQuad(dg)
	assert.Equal(t, [4]glm.Vector2{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}}, qd.UVs)
}

func TestBoxCounts(t *testing.T) {
	bx := NewBox(1, 1, 1)
	nv, ni := bx.N()
	assert.Equal(t, 24, nv)
	assert.Equal(t, 36, ni)

	bx.Segs.Set(2, 1, 3)
	nv, ni = bx.N()
	assert.Equal(t, 52, nv)
	assert.Equal(t, 132, ni)

	m := NewMesh(bx)
	assert.Equal(t, 52, m.NumVertex())
	assert.Equal(t, 44, m.NumTris())
}

func TestBoxGeometry(t *testing.T) {
	bx := NewBox(2, 1, 3)
	m := NewMesh(bx)
	require.Equal(t, 24, m.NumVertex())
	assert.Equal(t, glm.B3(-1, -0.5, -1.5, 1, 0.5, 1.5), bx.BBox())

	// faces are laid out nz, ny, px, nx, py, pz, four vertices each
	faceNorms := []glm.Vector3{
		glm.Vec3(0, 0, -1), glm.Vec3(0, -1, 0), glm.Vec3(1, 0, 0),
		glm.Vec3(-1, 0, 0), glm.Vec3(0, 1, 0), glm.Vec3(0, 0, 1),
	}
	for face, fn := range faceNorms {
		for vi := range 4 {
			tolAssertEqualVector3(t, standardTol, fn, meshVec3(m.Normal, face*4+vi))
		}
	}
	assertOutward(t, m)
}

func TestBoxPos(t *testing.T) {
	bx := NewBox(1, 1, 1)
	bx.Pos = glm.Vec3(1, 2, 3)
	m := NewMesh(bx)
	assert.Equal(t, glm.B3(0.5, 1.5, 2.5, 1.5, 2.5, 3.5), bx.BBox())
	tolAssertEqualVector3(t, standardTol, glm.Vec3(1.5, 2.5, 2.5), meshVec3(m.Vertex, 0))
	assertOutward(t, m)
}

func TestFeatheredPolygon(t *testing.T) {
	poly := []glm.Vector2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	fp := NewFeatheredPolygon(poly)
	nv, ni := fp.N()
	assert.Equal(t, 8, nv)
	assert.Equal(t, 30, ni)

	m := NewMesh(fp)
	require.Equal(t, 8, m.NumVertex())
	require.Equal(t, 8, m.Alpha.Len())

	// outer ring on the boundary at y = 0
	tolAssertEqualVector3(t, standardTol, glm.Vec3(-1, 0, -1), meshVec3(m.Vertex, 0))
	tolAssertEqualVector3(t, standardTol, glm.Vec3(1, 0, 1), meshVec3(m.Vertex, 2))

	// inner ring pulled in by the feather, capped at 20%
	scale := 1 - float32(featherLength)/glm.Sqrt(2)
	tolAssertEqualVector3(t, standardTol, glm.Vec3(-scale, 0, -scale), meshVec3(m.Vertex, 4))
	tolAssertEqualVector3(t, standardTol, glm.Vec3(scale, 0, scale), meshVec3(m.Vertex, 6))

	for i := range 4 {
		assert.Equal(t, float32(0), m.Alpha[i])
		assert.Equal(t, float32(1), m.Alpha[4+i])
	}
	for i := range 8 {
		tolAssertEqualVector3(t, standardTol, glm.Vec3(0, 1, 0), meshVec3(m.Normal, i))
	}
	assert.Equal(t, glm.B3(-1, 0, -1, 1, 0, 1), fp.BBox())
}

func TestFeatheredPolygonScaleCap(t *testing.T) {
	// a vertex closer to the center than the feather length hits the cap
	poly := []glm.Vector2{{X: 0.5, Y: 0}, {X: 0, Y: 0.5}, {X: -0.5, Y: -0.5}}
	fp := NewFeatheredPolygon(poly)
	m := NewMesh(fp)
	require.Equal(t, 6, m.NumVertex())
	tolAssertEqualVector3(t, standardTol, glm.Vec3(0.4, 0, 0), meshVec3(m.Vertex, 3))
}

func TestFeatheredPolygonDegenerate(t *testing.T) {
	fp := NewFeatheredPolygon([]glm.Vector2{{X: 1}, {Y: 1}})
	nv, ni := fp.N()
	assert.Equal(t, 0, nv)
	assert.Equal(t, 0, ni)
	m := NewMesh(fp)
	assert.Equal(t, 0, m.NumVertex())
	assert.True(t, fp.BBox().IsEmpty())
}

func TestPointMarkers(t *testing.T) {
	pts := []glm.Vector4{
		{X: 1, Y: 2, Z: 3, W: 0.5},
		{X: -1, Y: 0, Z: 1, W: 1.5},
	}
	pm := NewPointMarkers(pts)
	nv, ni := pm.N()
	assert.Equal(t, 2, nv)
	assert.Equal(t, 0, ni)

	m := NewMesh(pm)
	require.Equal(t, 2, m.NumVertex())
	tolAssertEqualVector3(t, standardTol, glm.Vec3(1, 2, 3), meshVec3(m.Vertex, 0))
	tolAssertEqualVector3(t, standardTol, glm.Vec3(-1, 0, 1), meshVec3(m.Vertex, 1))
	assert.Equal(t, glm.ArrayF32{0.5, 1}, m.Alpha) // confidence clamps to 1
	assert.Equal(t, glm.B3(-1, 0, 1, 1, 2, 3), pm.BBox())
}

func TestComposeOffsets(t *testing.T) {
	bx := NewBox(1, 1, 1)
	fp := NewFeatheredPolygon([]glm.Vector2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: 1}})
	bnv, bni := bx.N()
	fnv, fni := fp.N()

	vertex := glm.NewArrayF32((bnv+fnv)*3, (bnv+fnv)*3)
	normal := glm.NewArrayF32((bnv+fnv)*3, (bnv+fnv)*3)
	texcoord := glm.NewArrayF32((bnv+fnv)*2, (bnv+fnv)*2)
	index := glm.NewArrayU32(bni+fni, bni+fni)

	bx.SetOffs(0, 0)
	fp.SetOffs(bnv, bni)
	bx.Set(vertex, normal, texcoord, index)
	fp.Set(vertex, normal, texcoord, index)

	vo, io := fp.Offs()
	assert.Equal(t, bnv, vo)
	assert.Equal(t, bni, io)
	for _, ix := range index[bni:] {
		assert.GreaterOrEqual(t, ix, uint32(bnv))
	}
	for _, ix := range index[:bni] {
		assert.Less(t, ix, uint32(bnv))
	}
	assert.Equal(t, glm.B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5), bx.BBox())
	assert.Equal(t, glm.B3(-1, 0, -1, 1, 0, 1), fp.BBox())
}
