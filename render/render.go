// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render is a small software compositor for the sample apps:
// it projects AR scene geometry onto a plain *image.RGBA with a
// float32 depth buffer, so frames can be produced without a GPU.
// Depth testing is strict less, blending is straight-alpha over, and
// NDC maps to pixels with +Y up flipped to rows growing down.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/go-xr/xr/glm"
)

// Renderer rasterizes into an RGBA framebuffer with a depth buffer.
type Renderer struct {

	// Image is the framebuffer.
	Image *image.RGBA

	width, height int
	zbuf          []float32
}

// NewRenderer returns a renderer with a framebuffer of the given size.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		Image:  image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		zbuf:   make([]float32, width*height),
	}
	r.clearDepth()
	return r
}

// Size returns the framebuffer dimensions.
func (r *Renderer) Size() image.Point {
	return image.Pt(r.width, r.height)
}

// Clear fills the framebuffer with the given color and resets the
// depth buffer.
func (r *Renderer) Clear(c color.Color) {
	draw.Draw(r.Image, r.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	r.clearDepth()
}

func (r *Renderer) clearDepth() {
	for i := range r.zbuf {
		r.zbuf[i] = glm.Infinity
	}
}

// DepthAt returns the depth buffer value at the pixel, for tests and
// diagnostics.
func (r *Renderer) DepthAt(x, y int) float32 {
	return r.zbuf[y*r.width+x]
}

// screenVertex is a projected vertex: screen-space x and y in pixels,
// NDC depth z, and the clip-space w.
type screenVertex struct {
	x, y, z, w float32
}

// project transforms a world point through the MVP into screen space.
// The result has w <= 0 when the point is on or behind the camera
// plane and cannot be used.
func (r *Renderer) project(mvp *glm.Matrix4, p glm.Vector3) screenVertex {
	clip := glm.Vec4(p.X, p.Y, p.Z, 1).MulMatrix4(mvp)
	if clip.W <= 0 {
		return screenVertex{w: clip.W}
	}
	inv := 1 / clip.W
	return screenVertex{
		x: (clip.X*inv + 1) / 2 * float32(r.width),
		y: (1 - clip.Y*inv) / 2 * float32(r.height),
		z: clip.Z * inv,
		w: clip.W,
	}
}

// shadePixel composites the color at (x, y) if z passes the strict
// less depth test. alpha multiplies the color's own alpha; blending
// is straight-alpha over.
func (r *Renderer) shadePixel(x, y int, z float32, c color.RGBA, alpha float32, depthWrite bool) {
	zi := y*r.width + x
	if z >= r.zbuf[zi] {
		return
	}
	a := alpha * float32(c.A) / 255
	if a <= 0 {
		return
	}
	if a >= 1 {
		r.Image.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	} else {
		d := r.Image.RGBAAt(x, y)
		r.Image.SetRGBA(x, y, color.RGBA{
			R: uint8(float32(c.R)*a + float32(d.R)*(1-a) + 0.5),
			G: uint8(float32(c.G)*a + float32(d.G)*(1-a) + 0.5),
			B: uint8(float32(c.B)*a + float32(d.B)*(1-a) + 0.5),
			A: uint8(255*a + float32(d.A)*(1-a) + 0.5),
		})
	}
	if depthWrite {
		r.zbuf[zi] = z
	}
}
