// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/go-xr/xr/glm"

// PointMarkers is the point cloud shape: one vertex per feature
// point, with the point's confidence as its opacity. It produces no
// triangle indices; the renderer draws it with DrawPoints.
type PointMarkers struct {
	ShapeBase

	// Points holds XYZ positions with confidence in W, as reported in
	// the frame's point cloud.
	Points []glm.Vector4
}

// NewPointMarkers returns a point marker shape for the given points.
func NewPointMarkers(points []glm.Vector4) *PointMarkers {
	return &PointMarkers{Points: points}
}

func (pm *PointMarkers) N() (numVertex, numIndex int) {
	return len(pm.Points), 0
}

func (pm *PointMarkers) Set(vertex, normal, texcoord glm.ArrayF32, index glm.ArrayU32) {
	vidx := pm.VtxOff * 3
	tidx := pm.VtxOff * 2
	for i, p := range pm.Points {
		vertex.Set(vidx+i*3, pm.Pos.X+p.X, pm.Pos.Y+p.Y, pm.Pos.Z+p.Z)
		normal.Set(vidx+i*3, 0, 0, 1)
		texcoord.Set(tidx+i*2, 0, 0)
	}
	pm.CBBox = BBoxFromVertices(vertex, pm.VtxOff, len(pm.Points))
}

// SetAlpha sets each point's confidence as its opacity, clamped to
// [0, 1].
func (pm *PointMarkers) SetAlpha(alpha glm.ArrayF32) {
	for i, p := range pm.Points {
		alpha.Set(pm.VtxOff+i, glm.Clamp(p.W, 0, 1))
	}
}
