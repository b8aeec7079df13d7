// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/glm"
	"github.com/go-xr/xr/shape"
)

// PointSizeDefault is the screen size of point markers in pixels.
const PointSizeDefault = 5

// PointColorDefault is the point cloud color.
var PointColorDefault = color.RGBA{R: 31, G: 188, B: 210, A: 255}

// DrawPoints draws each mesh vertex as a screen-aligned size x size
// pixel square, depth tested at the point's depth. Per-vertex opacity
// multiplies the color's alpha. A size of 0 or less uses
// PointSizeDefault, and points outside the clip volume are dropped.
func (r *Renderer) DrawPoints(cam *Camera, m *shape.Mesh, model *glm.Matrix4, size int, c color.RGBA) {
	if size <= 0 {
		size = PointSizeDefault
	}
	vp := cam.VP()
	mvp := vp.Mul(model)
	half := size / 2
	nv := m.NumVertex()
	var v glm.Vector3
	for i := 0; i < nv; i++ {
		m.Vertex.GetVector3(i*3, &v)
		sv := r.project(&mvp, v)
		if sv.w <= 0 || sv.z < -1 || sv.z > 1 {
			continue
		}
		alpha := float32(1)
		if m.Alpha.Len() == nv {
			alpha = m.Alpha[i]
		}
		cx, cy := int(sv.x), int(sv.y)
		for y := max(cy-half, 0); y <= min(cy+half, r.height-1); y++ {
			for x := max(cx-half, 0); x <= min(cx+half, r.width-1); x++ {
				r.shadePixel(x, y, sv.z, c, alpha, true)
			}
		}
	}
}

// DrawLines draws 1-pixel lines between consecutive point pairs:
// points 0-1, 2-3, and so on. A segment with an endpoint on or behind
// the camera plane is dropped.
func (r *Renderer) DrawLines(cam *Camera, points []glm.Vector3, model *glm.Matrix4, c color.RGBA) {
	vp := cam.VP()
	mvp := vp.Mul(model)
	for i := 0; i+1 < len(points); i += 2 {
		a := r.project(&mvp, points[i])
		b := r.project(&mvp, points[i+1])
		if a.w <= 0 || b.w <= 0 {
			continue
		}
		r.line(a, b, c)
	}
}

func (r *Renderer) line(a, b screenVertex, c color.RGBA) {
	steps := int(max(glm.Abs(b.x-a.x), glm.Abs(b.y-a.y))) + 1
	for s := 0; s <= steps; s++ {
		t := float32(s) / float32(steps)
		x := int(a.x + (b.x-a.x)*t)
		y := int(a.y + (b.y-a.y)*t)
		if x < 0 || x >= r.width || y < 0 || y >= r.height {
			continue
		}
		z := a.z + (b.z-a.z)*t
		r.shadePixel(x, y, z, c, 1, true)
	}
}

// Axis gizmo colors: X red, Y green, Z blue.
var axisColors = [3]color.RGBA{
	{R: 244, G: 67, B: 54, A: 255},
	{R: 76, G: 175, B: 80, A: 255},
	{R: 33, G: 150, B: 243, A: 255},
}

// DrawAxes draws an axis gizmo at the pose: three lines of the given
// length along the pose's local axes.
func (r *Renderer) DrawAxes(cam *Camera, pose ar.Pose, length float32) {
	o := pose.Position
	axes := [3]glm.Vector3{pose.XAxis(), pose.YAxis(), pose.ZAxis()}
	ident := glm.Identity4()
	for i, ax := range axes {
		r.DrawLines(cam, []glm.Vector3{o, o.Add(ax.MulScalar(length))}, &ident, axisColors[i])
	}
}
