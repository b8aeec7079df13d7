// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/go-xr/xr/glm"

// PlaneN returns the N's for a single plane's worth of vertex and
// index data with the given number of segments, which have a minimum
// of 1.
func PlaneN(wsegs, hsegs int) (numVertex, numIndex int) {
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)
	numVertex = (wsegs + 1) * (hsegs + 1)
	numIndex = wsegs * hsegs * 6
	return
}

// SetPlane sets plane vertex, normal, texture, and index data at the
// given offsets (in points, not floats). waxis and haxis are the
// dimensions for the width and height of the plane, and wdir and hdir
// are the directions (+1 or -1) along which each runs. woff and hoff
// are the coordinates of the low corner along those axes, and zoff is
// the coordinate along the remaining orthogonal axis, whose sign sets
// the normal direction. pos is a position offset added to every
// vertex after the plane is laid out.
func SetPlane(vertex, normal, texcoord glm.ArrayF32, index glm.ArrayU32, vtxOff, idxOff int, waxis, haxis glm.Dims, wdir, hdir float32, width, height, woff, hoff, zoff float32, wsegs, hsegs int, pos glm.Vector3) {
	w := glm.Z
	if (waxis == glm.X && haxis == glm.Z) || (waxis == glm.Z && haxis == glm.X) {
		w = glm.Y
	} else if (waxis == glm.Z && haxis == glm.Y) || (waxis == glm.Y && haxis == glm.Z) {
		w = glm.X
	}
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)

	var norm glm.Vector3
	if zoff > 0 {
		norm.SetDim(w, 1)
	} else {
		norm.SetDim(w, -1)
	}

	if wdir < 0 {
		woff += width
	}
	if hdir < 0 {
		hoff += height
	}

	segWidth := width / float32(wsegs)
	segHeight := height / float32(hsegs)

	vidx := vtxOff * 3
	tidx := vtxOff * 2
	var pt glm.Vector3
	for iy := 0; iy <= hsegs; iy++ {
		for ix := 0; ix <= wsegs; ix++ {
			pt.SetDim(waxis, woff+float32(ix)*segWidth*wdir)
			pt.SetDim(haxis, hoff+float32(iy)*segHeight*hdir)
			pt.SetDim(w, zoff)
			vertex.SetVector3(vidx, pt.Add(pos))
			normal.SetVector3(vidx, norm)
			texcoord.Set(tidx, float32(ix)/float32(wsegs), 1-float32(iy)/float32(hsegs))
			vidx += 3
			tidx += 2
		}
	}

	wsegs1 := wsegs + 1
	ii := idxOff
	for iy := 0; iy < hsegs; iy++ {
		for ix := 0; ix < wsegs; ix++ {
			a := uint32(vtxOff + ix + wsegs1*iy)
			b := uint32(vtxOff + ix + wsegs1*(iy+1))
			c := uint32(vtxOff + ix + 1 + wsegs1*(iy+1))
			d := uint32(vtxOff + ix + 1 + wsegs1*iy)
			index.Set(ii, a, b, d, b, c, d)
			ii += 6
		}
	}
}
