// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import "github.com/go-xr/xr/glm"

// Intrinsics is a pinhole camera model: focal lengths and principal
// point in pixels, for an image of the given dimensions. The principal
// point is measured from the top-left corner, +Y down.
type Intrinsics struct {
	Fx float32 `json:"fx"`
	Fy float32 `json:"fy"`
	Cx float32 `json:"cx"`
	Cy float32 `json:"cy"`

	// Width and Height are the dimensions of the image the intrinsics
	// describe, in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ProjectionMatrix returns the perspective projection matrix for these
// intrinsics with the given near and far clip distances, following the
// OpenGL clip conventions.
func (in Intrinsics) ProjectionMatrix(near, far float32) glm.Matrix4 {
	w := float32(in.Width)
	h := float32(in.Height)
	left := -in.Cx * near / in.Fx
	right := (w - in.Cx) * near / in.Fx
	top := in.Cy * near / in.Fy
	bottom := -(h - in.Cy) * near / in.Fy
	m := glm.Matrix4{}
	m.SetFrustum(left, right, bottom, top, near, far)
	return m
}

// Camera is the state of the session camera for one frame. The pose is
// display-oriented: rotated to match the current display rotation.
type Camera struct {

	// Pose is the camera's world pose.
	Pose Pose

	// Intrinsics is the pinhole model of the camera image.
	Intrinsics Intrinsics

	// TrackingState is the camera's motion tracking state. Geometry
	// derived from the camera is only meaningful when Tracking.
	TrackingState TrackingState

	// FailureReason explains a non-Tracking state.
	FailureReason TrackingFailureReason
}

// ViewMatrix returns the world-to-camera view matrix, the inverse of
// the camera pose.
func (c *Camera) ViewMatrix() glm.Matrix4 {
	return c.Pose.Inverse().Matrix()
}

// ProjectionMatrix returns the camera's perspective projection matrix
// with the given near and far clip distances.
func (c *Camera) ProjectionMatrix(near, far float32) glm.Matrix4 {
	return c.Intrinsics.ProjectionMatrix(near, far)
}
