// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import (
	"image"

	"github.com/go-xr/xr/glm"
)

// PointCloud is the set of feature points the session observed in one
// frame.
type PointCloud struct {

	// Timestamp is the nanosecond timestamp of the observation.
	Timestamp int64 `json:"timestamp"`

	// Points holds one XYZW entry per point: world position in XYZ and
	// detection confidence 0..1 in W.
	Points []glm.Vector4 `json:"points,omitempty"`

	// IDs optionally holds a stable identifier per point, parallel to
	// Points. Empty when the source does not provide point identity.
	IDs []int32 `json:"ids,omitempty"`
}

// Len returns the number of points.
func (pc *PointCloud) Len() int {
	return len(pc.Points)
}

// DepthImage is one frame of depth data: 16-bit depth in millimeters
// (0 = no data) with an optional 8-bit confidence image (0..255 mapping
// to 0..1; nil means full confidence). The depth image dimensions are
// typically much smaller than the camera image; [Intrinsics] scale
// accordingly.
type DepthImage struct {

	// Depth holds the depth samples, in millimeters. Zero means the
	// sensor produced no data for that pixel.
	Depth *image.Gray16

	// Confidence optionally holds per-pixel confidence, 0..255.
	// A nil confidence image means full confidence everywhere.
	Confidence *image.Gray

	// Timestamp is the nanosecond timestamp of the acquisition.
	Timestamp int64
}

// Size returns the depth image dimensions in pixels.
func (di *DepthImage) Size() image.Point {
	if di.Depth == nil {
		return image.Point{}
	}
	return di.Depth.Rect.Size()
}

// DepthAt returns the depth at the given pixel in meters,
// or 0 if there is no data there.
func (di *DepthImage) DepthAt(x, y int) float32 {
	if di.Depth == nil || !image.Pt(x, y).In(di.Depth.Rect) {
		return 0
	}
	return float32(di.Depth.Gray16At(x, y).Y) / 1000
}

// ConfidenceAt returns the confidence at the given pixel in the 0..1
// range, or 1 if no confidence image is present.
func (di *DepthImage) ConfidenceAt(x, y int) float32 {
	if di.Confidence == nil {
		return 1
	}
	if !image.Pt(x, y).In(di.Confidence.Rect) {
		return 0
	}
	return float32(di.Confidence.GrayAt(x, y).Y) / 255
}
