// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package depth

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/base/tolassert"
	"github.com/go-xr/xr/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector4(t *testing.T, tol float32, vt, va glm.Vector4) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
	tolassert.EqualTol(t, vt.W, va.W, tol)
}

func depthImage(w, h int) *Image {
	return &Image{Depth: image.NewGray16(image.Rect(0, 0, w, h))}
}

func fillDepth(img *Image, mm uint16) {
	b := img.Depth.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Depth.SetGray16(x, y, color.Gray16{Y: mm})
		}
	}
}

func TestReprojectPinhole(t *testing.T) {
	img := depthImage(4, 3)
	img.Confidence = image.NewGray(image.Rect(0, 0, 4, 3))
	img.Depth.SetGray16(0, 0, color.Gray16{Y: 1000})
	img.Depth.SetGray16(2, 1, color.Gray16{Y: 2000})
	img.Confidence.SetGray(0, 0, color.Gray{Y: 255})
	img.Confidence.SetGray(2, 1, color.Gray{Y: 127})

	// the camera image is 8x6, so the intrinsics scale by half
	intr := ar.Intrinsics{Fx: 10, Fy: 10, Cx: 4, Cy: 3, Width: 8, Height: 6}
	pts := ReprojectPoints(img, intr, 0)
	require.Len(t, pts, 2)

	// scaled model: fx = fy = 5, cx = 2, cy = 1.5
	tolAssertEqualVector4(t, standardTol, glm.Vector4{X: -0.4, Y: 0.3, Z: -1, W: 1}, pts[0])
	tolAssertEqualVector4(t, standardTol, glm.Vector4{X: 0, Y: 0.2, Z: -2, W: float32(127) / 255}, pts[1])
}

func TestReprojectConfidenceDefault(t *testing.T) {
	img := depthImage(2, 2)
	img.Depth.SetGray16(1, 1, color.Gray16{Y: 500})
	intr := ar.Intrinsics{Fx: 2, Fy: 2, Cx: 1, Cy: 1, Width: 2, Height: 2}
	pts := ReprojectPoints(img, intr, 0)
	require.Len(t, pts, 1)
	assert.Equal(t, float32(1), pts[0].W) // no confidence plane
}

func TestReprojectStep(t *testing.T) {
	img := depthImage(100, 100)
	fillDepth(img, 1000)
	intr := ar.Intrinsics{Fx: 100, Fy: 100, Cx: 50, Cy: 50, Width: 100, Height: 100}

	// 10000 pixels into 100 points: step 10 exactly
	pts := ReprojectPoints(img, intr, 100)
	assert.Len(t, pts, 100)

	// under the default limit every pixel contributes
	pts = ReprojectPoints(img, intr, 0)
	assert.Len(t, pts, 10000)
}

func TestReprojectCap(t *testing.T) {
	// step 2 over 7x1 would yield 4 samples; the cap cuts it at 3
	img := depthImage(7, 1)
	fillDepth(img, 1000)
	intr := ar.Intrinsics{Fx: 7, Fy: 1, Cx: 3, Cy: 0, Width: 7, Height: 1}
	pts := ReprojectPoints(img, intr, 3)
	assert.Len(t, pts, 3)
}

func TestReprojectSkipsMissing(t *testing.T) {
	img := depthImage(4, 4)
	img.Depth.SetGray16(3, 2, color.Gray16{Y: 1234})
	intr := ar.Intrinsics{Fx: 4, Fy: 4, Cx: 2, Cy: 2, Width: 4, Height: 4}
	pts := ReprojectPoints(img, intr, 0)
	require.Len(t, pts, 1)
	tolassert.EqualTol(t, float32(-1.234), pts[0].Z, standardTol)

	assert.Nil(t, ReprojectPoints(nil, intr, 0))
	assert.Nil(t, ReprojectPoints(&Image{}, intr, 0))
}

func TestWorldPoints(t *testing.T) {
	pose := ar.NewPose(glm.Vec3(1, 2, 3), glm.NewQuat(0, 0, 0, 1))
	pts := []glm.Vector4{{X: 0, Y: 0, Z: -2, W: 0.5}}
	world := WorldPoints(pts, pose)
	require.Len(t, world, 1)
	tolAssertEqualVector4(t, standardTol, glm.Vector4{X: 1, Y: 2, Z: 1, W: 0.5}, world[0])
}

func TestSummary(t *testing.T) {
	pts := []glm.Vector4{{Z: -1}, {Z: -2}, {Z: -3}}
	s := Summary(pts)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, float32(1), s.Min)
	assert.Equal(t, float32(3), s.Max)
	assert.Equal(t, float32(2), s.Mean)
	assert.Equal(t, "3 points, 1.00-3.00m, mean 2.00m", s.String())

	s = Summary(nil)
	assert.Equal(t, Stats{}, s)
	assert.Equal(t, "no depth points", s.String())
}
