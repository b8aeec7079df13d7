// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import (
	"testing"

	"github.com/go-xr/xr/base/tolassert"
	"github.com/go-xr/xr/glm"
	"github.com/stretchr/testify/assert"
)

func tolAssertEqualVector2(t *testing.T, tol float32, vt, va glm.Vector2) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

func TestDisplayRotation(t *testing.T) {
	assert.Equal(t, 0, Rotation0.Degrees())
	assert.Equal(t, 90, Rotation90.Degrees())
	assert.Equal(t, 180, Rotation180.Degrees())
	assert.Equal(t, 270, Rotation270.Degrees())
	assert.Equal(t, "Rotation270", Rotation270.String())
}

func TestTextureTransform(t *testing.T) {
	uv := func(r DisplayRotation, x, y float32) glm.Vector2 {
		m := DisplayGeometry{Rotation: r}.TextureTransform()
		return m.MulVector2AsPoint(glm.Vec2(x, y))
	}

	// unrotated: NDC bottom-left is texture (0, 1), top-right is (1, 0)
	assert.Equal(t, glm.Vec2(0, 1), uv(Rotation0, -1, -1))
	assert.Equal(t, glm.Vec2(1, 0), uv(Rotation0, 1, 1))
	assert.Equal(t, glm.Vec2(0.5, 0.5), uv(Rotation0, 0, 0))

	assert.Equal(t, glm.Vec2(1, 1), uv(Rotation90, -1, -1))
	assert.Equal(t, glm.Vec2(0, 0), uv(Rotation90, 1, 1))

	assert.Equal(t, glm.Vec2(1, 0), uv(Rotation180, -1, -1))
	assert.Equal(t, glm.Vec2(0, 1), uv(Rotation180, 1, 1))

	assert.Equal(t, glm.Vec2(0, 0), uv(Rotation270, -1, -1))
	assert.Equal(t, glm.Vec2(1, 1), uv(Rotation270, 1, 1))

	// the center is fixed under every rotation
	for _, r := range []DisplayRotation{Rotation90, Rotation180, Rotation270} {
		assert.Equal(t, glm.Vec2(0.5, 0.5), uv(r, 0, 0))
	}

	// interior point: s=0.75, t=0.75 rotates to (t, 1-s)
	assert.Equal(t, glm.Vec2(0.75, 0.75), uv(Rotation0, 0.5, -0.5))
	assert.Equal(t, glm.Vec2(0.75, 0.25), uv(Rotation90, 0.5, -0.5))
}

func TestTransformCoordinates2D(t *testing.T) {
	f := &Frame{DisplayGeometry: DisplayGeometry{Rotation: Rotation0, Width: 200, Height: 100}}

	ndc := f.TransformCoordinates2D(SpaceView, SpaceNDC, []glm.Vector2{{X: 50, Y: 25}})
	assert.Equal(t, []glm.Vector2{{X: -0.5, Y: 0.5}}, ndc)

	tex := f.TransformCoordinates2D(SpaceView, SpaceTexture, []glm.Vector2{{X: 50, Y: 25}})
	assert.Equal(t, []glm.Vector2{{X: 0.25, Y: 0.25}}, tex)

	back := f.TransformCoordinates2D(SpaceTexture, SpaceView, tex)
	tolAssertEqualVector2(t, 1.0e-4, glm.Vec2(50, 25), back[0])

	// rotated 90 degrees the same view point samples a different texel
	f.DisplayGeometry.Rotation = Rotation90
	rtex := f.TransformCoordinates2D(SpaceView, SpaceTexture, []glm.Vector2{{X: 50, Y: 25}})
	tolAssertEqualVector2(t, standardTol, glm.Vec2(0.25, 0.75), rtex[0])

	// identical spaces copy the input
	same := f.TransformCoordinates2D(SpaceView, SpaceView, []glm.Vector2{{X: 7, Y: 9}})
	assert.Equal(t, []glm.Vector2{{X: 7, Y: 9}}, same)
}
