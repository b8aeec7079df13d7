// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/go-xr/xr/glm"

// Feathering constants for the plane boundary: the inner ring is
// pulled featherLength meters in from the boundary, capped at
// featherScale of the distance to the plane center.
const (
	featherLength = 0.2
	featherScale  = 0.2
)

// FeatheredPolygon is the plane visualization shape: the detected
// boundary polygon with a feathered edge that fades from opaque in
// the interior to fully transparent at the boundary. Vertices lie in
// the plane's local space at y = 0, offset by Pos. A polygon with
// fewer than three vertices produces an empty shape.
type FeatheredPolygon struct {
	ShapeBase

	// Polygon is the boundary in plane-local XZ coordinates, as
	// reported by the plane trackable.
	Polygon []glm.Vector2
}

// NewFeatheredPolygon returns a feathered plane shape for the given
// boundary polygon.
func NewFeatheredPolygon(polygon []glm.Vector2) *FeatheredPolygon {
	return &FeatheredPolygon{Polygon: polygon}
}

func (fp *FeatheredPolygon) n() int {
	if len(fp.Polygon) < 3 {
		return 0
	}
	return len(fp.Polygon)
}

func (fp *FeatheredPolygon) N() (numVertex, numIndex int) {
	n := fp.n()
	if n == 0 {
		return 0, 0
	}
	// outer and inner ring, interior fan, and two triangles per edge
	return 2 * n, 3*(n-2) + 6*n
}

// Set sets the two rings and their triangles: an outer ring on the
// boundary, an inner ring scaled toward the center, a fan over the
// inner ring, and a strip joining the rings along each edge.
func (fp *FeatheredPolygon) Set(vertex, normal, texcoord glm.ArrayF32, index glm.ArrayU32) {
	n := fp.n()
	if n == 0 {
		fp.CBBox = glm.B3Empty()
		return
	}
	vidx := fp.VtxOff * 3
	tidx := fp.VtxOff * 2
	set := func(i int, x, z float32) {
		vertex.Set(vidx+i*3, fp.Pos.X+x, fp.Pos.Y, fp.Pos.Z+z)
		normal.Set(vidx+i*3, 0, 1, 0)
		texcoord.Set(tidx+i*2, x, z)
	}
	for i, v := range fp.Polygon {
		set(i, v.X, v.Y)
	}
	for i, v := range fp.Polygon {
		scale := 1 - min(featherLength/v.Length(), featherScale)
		set(n+i, scale*v.X, scale*v.Y)
	}

	outer := uint32(fp.VtxOff)
	inner := outer + uint32(n)
	ii := fp.IdxOff
	for j := 1; j < n-1; j++ {
		index.Set(ii, inner, inner+uint32(j), inner+uint32(j)+1)
		ii += 3
	}
	for j := 0; j < n; j++ {
		j1 := uint32((j + 1) % n)
		index.Set(ii, outer+uint32(j), outer+j1, inner+uint32(j))
		index.Set(ii+3, inner+uint32(j), outer+j1, inner+j1)
		ii += 6
	}
	fp.CBBox = BBoxFromVertices(vertex, fp.VtxOff, 2*n)
}

// SetAlpha sets the ring opacities: 0 on the boundary, 1 on the inner
// ring.
func (fp *FeatheredPolygon) SetAlpha(alpha glm.ArrayF32) {
	n := fp.n()
	for i := 0; i < n; i++ {
		alpha.Set(fp.VtxOff+i, 0)
		alpha.Set(fp.VtxOff+n+i, 1)
	}
}
