// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/go-xr/xr/glm"

// Box is an axis-aligned box shape, the standard stand-in mesh for
// objects placed at anchors.
type Box struct {
	ShapeBase

	// Size is the size along each dimension.
	Size glm.Vector3

	// Segs is the number of segments each face is divided into, with
	// a minimum of 1.
	Segs glm.Vector3i
}

// NewBox returns a Box shape with the given size.
func NewBox(width, height, depth float32) *Box {
	bx := &Box{}
	bx.Defaults()
	bx.Size.Set(width, height, depth)
	return bx
}

func (bx *Box) Defaults() {
	bx.Size.Set(1, 1, 1)
	bx.Segs.Set(1, 1, 1)
}

func (bx *Box) N() (numVertex, numIndex int) {
	xyv, xyi := PlaneN(int(bx.Segs.X), int(bx.Segs.Y))
	xzv, xzi := PlaneN(int(bx.Segs.X), int(bx.Segs.Z))
	zyv, zyi := PlaneN(int(bx.Segs.Z), int(bx.Segs.Y))
	numVertex = 2 * (xyv + xzv + zyv)
	numIndex = 2 * (xyi + xzi + zyi)
	return
}

// Set sets the box in the given arrays: six planes facing outward.
func (bx *Box) Set(vertex, normal, texcoord glm.ArrayF32, index glm.ArrayU32) {
	hSz := bx.Size.DivScalar(2)
	sx, sy, sz := int(bx.Segs.X), int(bx.Segs.Y), int(bx.Segs.Z)
	xyv, xyi := PlaneN(sx, sy)
	xzv, xzi := PlaneN(sx, sz)
	zyv, zyi := PlaneN(sz, sy)

	voff, ioff := bx.VtxOff, bx.IdxOff

	// start with neg z as typically back
	SetPlane(vertex, normal, texcoord, index, voff, ioff, glm.X, glm.Y, -1, -1, bx.Size.X, bx.Size.Y, -hSz.X, -hSz.Y, -hSz.Z, sx, sy, bx.Pos) // nz
	voff += xyv
	ioff += xyi
	SetPlane(vertex, normal, texcoord, index, voff, ioff, glm.X, glm.Z, 1, -1, bx.Size.X, bx.Size.Z, -hSz.X, -hSz.Z, -hSz.Y, sx, sz, bx.Pos) // ny
	voff += xzv
	ioff += xzi
	SetPlane(vertex, normal, texcoord, index, voff, ioff, glm.Z, glm.Y, -1, -1, bx.Size.Z, bx.Size.Y, -hSz.Z, -hSz.Y, hSz.X, sz, sy, bx.Pos) // px
	voff += zyv
	ioff += zyi
	SetPlane(vertex, normal, texcoord, index, voff, ioff, glm.Z, glm.Y, 1, -1, bx.Size.Z, bx.Size.Y, -hSz.Z, -hSz.Y, -hSz.X, sz, sy, bx.Pos) // nx
	voff += zyv
	ioff += zyi
	SetPlane(vertex, normal, texcoord, index, voff, ioff, glm.X, glm.Z, 1, 1, bx.Size.X, bx.Size.Z, -hSz.X, -hSz.Z, hSz.Y, sx, sz, bx.Pos) // py
	voff += xzv
	ioff += xzi
	SetPlane(vertex, normal, texcoord, index, voff, ioff, glm.X, glm.Y, 1, -1, bx.Size.X, bx.Size.Y, -hSz.X, -hSz.Y, hSz.Z, sx, sy, bx.Pos) // pz

	mn := bx.Pos.Sub(hSz)
	mx := bx.Pos.Add(hSz)
	bx.CBBox.Set(&mn, &mx)
}
