// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape builds procedural AR meshes: the camera background
// quad, placed-object boxes, feathered plane polygons, and point
// markers. Shapes compose into shared vertex and index arrays that
// the renderer consumes.
package shape

import "github.com/go-xr/xr/glm"

// Shape is an interface for all shape-constructing elements.
type Shape interface {

	// N returns the number of vertex and index points in this shape
	// element.
	N() (numVertex, numIndex int)

	// Offs returns the starting offsets for vertices and indexes in
	// the full shape array, in terms of points, not floats.
	Offs() (vtxOff, idxOff int)

	// SetOffs sets the starting offsets for vertices and indexes in
	// the full shape array, in terms of points, not floats.
	SetOffs(vtxOff, idxOff int)

	// Set sets this shape's points in the given allocated arrays.
	Set(vertex, normal, texcoord glm.ArrayF32, index glm.ArrayU32)

	// BBox returns the bounding box for the shape, typically centered
	// around 0. It is only valid after Set has been called.
	BBox() glm.Box3
}

// AlphaShape is a Shape with per-vertex opacity, such as the feathered
// plane polygon.
type AlphaShape interface {
	Shape

	// SetAlpha sets this shape's per-vertex opacities, one float per
	// vertex, in the given allocated array.
	SetAlpha(alpha glm.ArrayF32)
}

// ShapeBase is the base shape element.
type ShapeBase struct {

	// VtxOff is the vertex offset, in points.
	VtxOff int

	// IdxOff is the index offset, in points.
	IdxOff int

	// CBBox is the bounding box in local coords, set by Set.
	CBBox glm.Box3

	// Pos is a 3D position offset applied to the shape, enabling
	// composition of shapes at different places in one mesh.
	Pos glm.Vector3
}

// Offs returns the starting offsets for vertices and indexes in the
// full shape array, in terms of points, not floats.
func (sb *ShapeBase) Offs() (vtxOff, idxOff int) {
	return sb.VtxOff, sb.IdxOff
}

// SetOffs sets the starting offsets for vertices and indexes in the
// full shape array.
func (sb *ShapeBase) SetOffs(vtxOff, idxOff int) {
	sb.VtxOff, sb.IdxOff = vtxOff, idxOff
}

// BBox returns the bounding box for the shape. It is only valid after
// Set has been called.
func (sb *ShapeBase) BBox() glm.Box3 {
	return sb.CBBox
}

// Mesh is a shape compiled into flat arrays, the renderer's input
// format.
type Mesh struct {

	// Vertex holds 3 floats per vertex.
	Vertex glm.ArrayF32

	// Normal holds 3 floats per vertex.
	Normal glm.ArrayF32

	// TexCoord holds 2 floats per vertex.
	TexCoord glm.ArrayF32

	// Alpha holds 1 float per vertex, or is empty for a fully opaque
	// mesh.
	Alpha glm.ArrayF32

	// Index holds the triangle indices.
	Index glm.ArrayU32
}

// NewMesh allocates arrays sized for the shape and fills them,
// resetting the shape's offsets to zero.
func NewMesh(sh Shape) *Mesh {
	nv, ni := sh.N()
	m := &Mesh{
		Vertex:   glm.NewArrayF32(nv*3, nv*3),
		Normal:   glm.NewArrayF32(nv*3, nv*3),
		TexCoord: glm.NewArrayF32(nv*2, nv*2),
		Index:    glm.NewArrayU32(ni, ni),
	}
	sh.SetOffs(0, 0)
	sh.Set(m.Vertex, m.Normal, m.TexCoord, m.Index)
	if ash, ok := sh.(AlphaShape); ok {
		m.Alpha = glm.NewArrayF32(nv, nv)
		ash.SetAlpha(m.Alpha)
	}
	return m
}

// NumVertex returns the number of vertices in the mesh.
func (m *Mesh) NumVertex() int {
	return m.Vertex.NumVectors(3)
}

// NumTris returns the number of triangles in the mesh.
func (m *Mesh) NumTris() int {
	return m.Index.Len() / 3
}

// BBoxFromVertices returns the bounding box of the given range of
// vertices in the array.
func BBoxFromVertices(vertex glm.ArrayF32, vtxOff, numVertex int) glm.Box3 {
	bb := glm.B3Empty()
	vidx := vtxOff * 3
	var v glm.Vector3
	for vi := 0; vi < numVertex; vi++ {
		vertex.GetVector3(vidx+vi*3, &v)
		bb.ExpandByPoint(v)
	}
	return bb
}
