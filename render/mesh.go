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

// lightDirection is the fixed world-space directional light, overhead
// as in the sample scenes.
var lightDirection = glm.Vec3(0, 1, 0)

// Shading terms: a fully lit surface reaches exactly 1.
const (
	ambientIntensity = 0.3
	diffuseIntensity = 1 - ambientIntensity
)

// Material controls how DrawMesh shades a mesh.
type Material struct {

	// Color is the base color, with straight (unpremultiplied) alpha.
	Color color.RGBA

	// Tint is an additive highlight, scaled by the light estimate's
	// pixel intensity. The zero value adds nothing.
	Tint color.RGBA

	// Light is the frame's light estimate. Nil or invalid estimates
	// leave colors unadjusted.
	Light *ar.LightEstimate

	// Unshaded disables the directional shading term, for overlay
	// geometry such as planes.
	Unshaded bool

	// TwoSided disables back-face culling.
	TwoSided bool

	// NoDepthWrite leaves the depth buffer unchanged, so blended
	// overlays do not occlude geometry drawn after them.
	NoDepthWrite bool
}

// DrawMesh rasterizes the mesh's triangles with flat shading: each
// triangle takes one color from its first vertex's normal, the light
// estimate, and the material. Per-vertex opacity, when the mesh has
// it, is interpolated across each triangle.
func (r *Renderer) DrawMesh(cam *Camera, m *shape.Mesh, model *glm.Matrix4, mat Material) {
	vp := cam.VP()
	mvp := vp.Mul(model)

	var nm glm.Matrix3
	if err := nm.SetNormalMatrix(model); err != nil {
		nm.SetFromMatrix4(model)
	}

	cc := glm.Vec3(1, 1, 1)
	intensity := float32(1)
	if mat.Light != nil && mat.Light.State == ar.LightEstimateValid {
		cc = glm.Vec3(mat.Light.ColorCorrection[0], mat.Light.ColorCorrection[1], mat.Light.ColorCorrection[2])
		intensity = mat.Light.PixelIntensity
	}

	nv := m.NumVertex()
	scr := make([]screenVertex, nv)
	var v glm.Vector3
	for i := 0; i < nv; i++ {
		m.Vertex.GetVector3(i*3, &v)
		scr[i] = r.project(&mvp, v)
	}

	nt := m.NumTris()
	for tri := 0; tri < nt; tri++ {
		ia := int(m.Index[tri*3])
		ib := int(m.Index[tri*3+1])
		ic := int(m.Index[tri*3+2])
		va, vb, vc := scr[ia], scr[ib], scr[ic]
		if va.w <= 0 || vb.w <= 0 || vc.w <= 0 {
			continue // on or behind the camera plane
		}
		area := edge(va, vb, vc)
		if area == 0 {
			continue
		}
		// screen y grows down, so front faces wind negative
		if area > 0 && !mat.TwoSided {
			continue
		}

		shade := float32(1)
		if !mat.Unshaded {
			m.Normal.GetVector3(ia*3, &v)
			n := v.MulMatrix3(&nm).Normal()
			shade = ambientIntensity + diffuseIntensity*max(n.Dot(lightDirection), 0)
		}
		col := shadeColor(mat, shade, cc, intensity)

		aa, ab, ac := float32(1), float32(1), float32(1)
		if m.Alpha.Len() == nv {
			aa, ab, ac = m.Alpha[ia], m.Alpha[ib], m.Alpha[ic]
		}
		r.fillTriangle(va, vb, vc, area, col, aa, ab, ac, !mat.NoDepthWrite)
	}
}

// shadeColor combines the material color with the shading term, the
// color correction, and the additive tint, clamped to byte range.
func shadeColor(mat Material, shade float32, cc glm.Vector3, intensity float32) color.RGBA {
	rr := float32(mat.Color.R)*shade*cc.X*intensity + float32(mat.Tint.R)*intensity
	gg := float32(mat.Color.G)*shade*cc.Y*intensity + float32(mat.Tint.G)*intensity
	bb := float32(mat.Color.B)*shade*cc.Z*intensity + float32(mat.Tint.B)*intensity
	return color.RGBA{
		R: uint8(glm.Clamp(rr, 0, 255) + 0.5),
		G: uint8(glm.Clamp(gg, 0, 255) + 0.5),
		B: uint8(glm.Clamp(bb, 0, 255) + 0.5),
		A: mat.Color.A,
	}
}

// edge is the signed area function: positive when c lies to the left
// of a -> b in y-down screen coordinates.
func edge(a, b, c screenVertex) float32 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

// fillTriangle rasterizes one triangle, sampling pixel centers with
// barycentric weights normalized by the signed area, interpolating
// depth and opacity.
func (r *Renderer) fillTriangle(va, vb, vc screenVertex, area float32, col color.RGBA, aa, ab, ac float32, depthWrite bool) {
	minX := max(int(glm.Floor(min(va.x, vb.x, vc.x))), 0)
	maxX := min(int(glm.Ceil(max(va.x, vb.x, vc.x))), r.width-1)
	minY := max(int(glm.Floor(min(va.y, vb.y, vc.y))), 0)
	maxY := min(int(glm.Ceil(max(va.y, vb.y, vc.y))), r.height-1)

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := screenVertex{x: float32(x) + 0.5, y: float32(y) + 0.5}
			w0 := edge(vb, vc, p) * inv
			w1 := edge(vc, va, p) * inv
			w2 := edge(va, vb, p) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*va.z + w1*vb.z + w2*vc.z
			alpha := w0*aa + w1*ab + w2*ac
			r.shadePixel(x, y, z, col, alpha, depthWrite)
		}
	}
}
