// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-xr/xr/base/iox/imagex"
	"github.com/go-xr/xr/glm"
	"github.com/go-xr/xr/shape"
)

// uprightUVs maps the image straight onto the viewport, in quad corner
// order bottom-left, bottom-right, top-left, top-right.
var uprightUVs = [4]glm.Vector2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}

// DrawImage stretches src across the whole framebuffer through the
// quad's corner UVs, the camera background path. It neither tests nor
// writes depth, so it goes first in a frame. A nil quad maps the image
// upright onto the viewport.
func (r *Renderer) DrawImage(src image.Image, qd *shape.Quad) {
	uvs := uprightUVs
	if qd != nil {
		uvs = qd.UVs
	}
	rgba := imagex.AsRGBA(src)
	if rgba == nil {
		return
	}
	sb := rgba.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 {
		return
	}
	for y := 0; y < r.height; y++ {
		fy := (float32(y) + 0.5) / float32(r.height)
		for x := 0; x < r.width; x++ {
			fx := (float32(x) + 0.5) / float32(r.width)
			top := uvs[2].Lerp(uvs[3], fx)
			bot := uvs[0].Lerp(uvs[1], fx)
			uv := top.Lerp(bot, fy)
			sx := glm.Clamp(int(uv.X*float32(sw)), 0, sw-1)
			sy := glm.Clamp(int(uv.Y*float32(sh)), 0, sh-1)
			r.Image.SetRGBA(x, y, rgba.RGBAAt(sb.Min.X+sx, sb.Min.Y+sy))
		}
	}
}

// Text draws one line of HUD text with its baseline starting at
// (x, y), in the fixed 7x13 face. It draws over everything and ignores
// depth.
func (r *Renderer) Text(x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  r.Image,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
