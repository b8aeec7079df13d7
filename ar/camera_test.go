// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import (
	"testing"

	"github.com/go-xr/xr/base/tolassert"
	"github.com/go-xr/xr/glm"
)

func TestIntrinsicsProjection(t *testing.T) {
	in := Intrinsics{Fx: 500, Fy: 500, Cx: 320, Cy: 240, Width: 640, Height: 480}
	proj := in.ProjectionMatrix(0.1, 100)

	// a centered principal point maps the optical axis to NDC center
	ndc := proj.ProjectToNDC(glm.Vec3(0, 0, -1))
	tolassert.EqualTol(t, 0, ndc.X, standardTol)
	tolassert.EqualTol(t, 0, ndc.Y, standardTol)

	// the right image edge is (width-cx)/fx off axis at unit depth
	edge := proj.ProjectToNDC(glm.Vec3(0.64, 0, -1))
	tolassert.EqualTol(t, 1, edge.X, 1.0e-5)

	// an off-center principal point shifts the optical axis to the
	// NDC position of pixel (300, 240)
	off := Intrinsics{Fx: 500, Fy: 500, Cx: 300, Cy: 240, Width: 640, Height: 480}
	oproj := off.ProjectionMatrix(0.1, 100)
	ondc := oproj.ProjectToNDC(glm.Vec3(0, 0, -1))
	tolassert.EqualTol(t, 2*300.0/640-1, ondc.X, 1.0e-5)
	tolassert.EqualTol(t, 0, ondc.Y, standardTol)
}

func TestCameraViewMatrix(t *testing.T) {
	c := Camera{Pose: NewPose(glm.Vec3(0, 2, 5), glm.NewQuat(0, 0, 0, 1))}
	view := c.ViewMatrix()
	tolAssertEqualVector3(t, standardTol, glm.Vec3(0, 0, -5), glm.Vec3(0, 2, 0).MulMatrix4(&view))

	// camera turned 90 degrees about Y looks down -X
	c.Pose.Orientation = glm.NewQuatAxisAngle(glm.Vec3(0, 1, 0), glm.DegToRad(90))
	view = c.ViewMatrix()
	tolAssertEqualVector3(t, standardTol, glm.Vec3(0, 0, -1), glm.Vec3(-1, 2, 5).MulMatrix4(&view))
}
