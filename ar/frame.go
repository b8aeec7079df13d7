// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import (
	"slices"

	"github.com/go-xr/xr/glm"
)

// Frame is the state of the world at one update. It is a snapshot:
// later updates do not modify it. Frames are produced by
// [Session.Update].
type Frame struct {

	// Timestamp is the capture time in nanoseconds.
	Timestamp int64

	// Camera is the camera state at capture time.
	Camera Camera

	// PointCloud is the feature point cloud for this frame.
	PointCloud PointCloud

	// LightEstimate is the lighting estimate for this frame.
	LightEstimate LightEstimate

	// UpdatedTrackables lists the trackables that changed in this
	// update, including ones that just stopped tracking.
	UpdatedTrackables []Trackable

	// DisplayGeometry is the display size and rotation the frame was
	// produced for.
	DisplayGeometry DisplayGeometry

	// Depth is the depth image for this frame, or nil if depth is
	// disabled or not yet available.
	Depth *DepthImage

	sess *Session
}

// UpdatedTrackablesOf returns the updated trackables of the given
// kind, or all of them for [KindAny].
func (f *Frame) UpdatedTrackablesOf(kind TrackableKind) []Trackable {
	if kind == KindAny {
		return slices.Clone(f.UpdatedTrackables)
	}
	var ts []Trackable
	for _, t := range f.UpdatedTrackables {
		if t.Kind() == kind {
			ts = append(ts, t)
		}
	}
	return ts
}

// AcquirePointCloud returns a copy of the frame's point cloud that
// remains valid after the frame is discarded.
func (f *Frame) AcquirePointCloud() PointCloud {
	return PointCloud{
		Timestamp: f.PointCloud.Timestamp,
		Points:    slices.Clone(f.PointCloud.Points),
		IDs:       slices.Clone(f.PointCloud.IDs),
	}
}

// TransformCoordinates2D converts 2D points between display coordinate
// spaces, accounting for the frame's display rotation. It returns a new
// slice of the same length as points.
func (f *Frame) TransformCoordinates2D(from, to CoordinateSpace, points []glm.Vector2) []glm.Vector2 {
	out := make([]glm.Vector2, len(points))
	if from == to {
		copy(out, points)
		return out
	}
	dg := f.DisplayGeometry
	for i, pt := range points {
		out[i] = dg.fromNDC(to, dg.toNDC(from, pt))
	}
	return out
}

// trackables returns the candidate trackables for hit testing: the
// session registry when the frame came from a session, otherwise the
// frame's own updated trackables.
func (f *Frame) trackables() []Trackable {
	if f.sess != nil {
		return f.sess.Trackables(KindAny)
	}
	return f.UpdatedTrackables
}
