// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/glm"
)

// quadCorners are the screen corners in NDC, in vertex order.
var quadCorners = [4]glm.Vector2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

// Quad is the camera background quad: two triangles covering the full
// screen in NDC, with texture coordinates mapping the camera image
// upright for the current display rotation. Pos is not used, as the
// quad is always in screen space.
type Quad struct {
	ShapeBase

	// UVs are the corner texture coordinates, in vertex order
	// (-1,-1), (1,-1), (-1,1), (1,1).
	UVs [4]glm.Vector2
}

// NewQuad returns a background quad with corner UVs derived from the
// display geometry's texture transform.
func NewQuad(dg ar.DisplayGeometry) *Quad {
	qd := &Quad{}
	tt := dg.TextureTransform()
	for i, c := range quadCorners {
		qd.UVs[i] = tt.MulVector2AsPoint(c)
	}
	return qd
}

func (qd *Quad) N() (numVertex, numIndex int) {
	return 4, 6
}

func (qd *Quad) Set(vertex, normal, texcoord glm.ArrayF32, index glm.ArrayU32) {
	vidx := qd.VtxOff * 3
	tidx := qd.VtxOff * 2
	for i, c := range quadCorners {
		vertex.Set(vidx+i*3, c.X, c.Y, 0)
		normal.Set(vidx+i*3, 0, 0, 1)
		texcoord.SetVector2(tidx+i*2, qd.UVs[i])
	}
	off := uint32(qd.VtxOff)
	index.Set(qd.IdxOff, off, off+1, off+2, off+1, off+3, off+2)
	qd.CBBox = glm.B3(-1, -1, 0, 1, 1, 0)
}
