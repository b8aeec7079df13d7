// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

// TrackingState is the motion tracking state of the camera or a
// [Trackable].
type TrackingState int32

const (
	// Tracking means the pose is current and valid.
	Tracking TrackingState = iota

	// Paused means tracking is suspended and the pose may be stale.
	// Trackables in this state can resume tracking later.
	Paused

	// Stopped means tracking has ended permanently.
	Stopped
)

func (ts TrackingState) String() string {
	switch ts {
	case Tracking:
		return "Tracking"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	}
	return "TrackingState(invalid)"
}

// TrackingFailureReason explains why the camera is not Tracking.
// It is [FailureNone] whenever the camera state is Tracking.
type TrackingFailureReason int32

const (
	// FailureNone means motion tracking is not currently known to be failing.
	FailureNone TrackingFailureReason = iota

	// FailureBadState means the underlying tracking system is in a bad
	// internal state and the session should be restarted.
	FailureBadState

	// FailureInsufficientLight means the scene is too dark to track.
	FailureInsufficientLight

	// FailureExcessiveMotion means the device is moving too fast.
	FailureExcessiveMotion

	// FailureInsufficientFeatures means the camera sees too few trackable
	// visual features, such as when pointed at a blank wall.
	FailureInsufficientFeatures

	// FailureCameraUnavailable means the camera could not be acquired.
	FailureCameraUnavailable
)

func (fr TrackingFailureReason) String() string {
	switch fr {
	case FailureNone:
		return "None"
	case FailureBadState:
		return "BadState"
	case FailureInsufficientLight:
		return "InsufficientLight"
	case FailureExcessiveMotion:
		return "ExcessiveMotion"
	case FailureInsufficientFeatures:
		return "InsufficientFeatures"
	case FailureCameraUnavailable:
		return "CameraUnavailable"
	}
	return "TrackingFailureReason(invalid)"
}
