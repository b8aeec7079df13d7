// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import (
	"image/color"
	"testing"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/glm"
	"github.com/stretchr/testify/assert"
)

// camFrame builds a frame with a tracking camera at the origin looking
// down -Z.
func camFrame(trackables ...ar.Trackable) *ar.Frame {
	return &ar.Frame{
		Camera: ar.Camera{
			Pose:       ar.PoseIdentity(),
			Intrinsics: ar.Intrinsics{Fx: 500, Fy: 500, Cx: 320, Cy: 240, Width: 640, Height: 480},
		},
		DisplayGeometry:   ar.DisplayGeometry{Width: 640, Height: 480},
		UpdatedTrackables: trackables,
	}
}

// floor is a 4x4 m horizontal plane a meter below the camera, centered
// five meters ahead. The ray through pixel (320, 340) hits its center.
func floor() *ar.Plane {
	return &ar.Plane{
		TrackableBase: ar.TrackableBase{ID: 1},
		CenterPose:    ar.NewPose(glm.Vec3(0, -1, -5), glm.NewQuat(0, 0, 0, 1)),
		ExtentX:       4,
		ExtentZ:       4,
		Polygon:       []glm.Vector2{{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2}},
		Type:          ar.HorizontalUpward,
	}
}

func surfacePoint() *ar.Point {
	return &ar.Point{
		TrackableBase:   ar.TrackableBase{ID: 2},
		Pose:            ar.NewPose(glm.Vec3(0, 0, -5), glm.NewQuat(0, 0, 0, 1)),
		OrientationMode: ar.OrientationEstimatedSurfaceNormal,
	}
}

func TestPlaceAtPlane(t *testing.T) {
	sess := ar.NewSession()
	ta := NewTapAnchors()
	f := camFrame(floor())

	ca := ta.PlaceAt(sess, f, 320, 340)
	assert.NotNil(t, ca)
	assert.Equal(t, color.RGBA{R: 139, G: 195, B: 74, A: 255}, ca.Color)
	assert.Equal(t, 1, ta.Len())
	assert.Equal(t, 1, len(sess.Anchors()))

	// a miss places nothing
	assert.Nil(t, ta.PlaceAt(sess, f, 320, 100))
	assert.Equal(t, 1, ta.Len())
}

func TestPlaceAtPointModes(t *testing.T) {
	sess := ar.NewSession()
	ta := NewTapAnchors()

	// points without a surface normal estimate are not placeable
	p := surfacePoint()
	p.OrientationMode = ar.OrientationIdentity
	assert.Nil(t, ta.PlaceAt(sess, camFrame(p), 320, 240))

	p.OrientationMode = ar.OrientationEstimatedSurfaceNormal
	ca := ta.PlaceAt(sess, camFrame(p), 320, 240)
	assert.NotNil(t, ca)
	assert.Equal(t, color.RGBA{R: 66, G: 133, B: 244, A: 255}, ca.Color)
}

func TestPlaceAtPreference(t *testing.T) {
	sess := ar.NewSession()
	ta := NewTapAnchors()

	// an unacceptable nearer hit falls through to the plane behind it
	p := surfacePoint()
	p.Pose = ar.NewPose(glm.Vec3(0, -0.5882353, -2.9411764), glm.NewQuat(0, 0, 0, 1))
	p.OrientationMode = ar.OrientationIdentity
	f := camFrame(p, floor())
	ca := ta.PlaceAt(sess, f, 320, 340)
	assert.NotNil(t, ca)
	assert.Equal(t, color.RGBA{R: 139, G: 195, B: 74, A: 255}, ca.Color)

	// once the point is placeable it wins as the nearest hit
	p.OrientationMode = ar.OrientationEstimatedSurfaceNormal
	ca = ta.PlaceAt(sess, f, 320, 340)
	assert.NotNil(t, ca)
	assert.Equal(t, color.RGBA{R: 66, G: 133, B: 244, A: 255}, ca.Color)
}

func TestPlaceInstant(t *testing.T) {
	sess := ar.NewSession()
	ta := NewTapAnchors()

	ca := ta.PlaceInstant(sess, camFrame(), 320, 240, 2)
	assert.NotNil(t, ca)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, ca.Color)

	// confirmed by a plane, instant placement turns yellow
	wall := &ar.Plane{
		TrackableBase: ar.TrackableBase{ID: 3},
		CenterPose:    ar.NewPose(glm.Vec3(0, 0, -6), glm.NewQuatAxisAngle(glm.Vec3(1, 0, 0), glm.DegToRad(90))),
		ExtentX:       4,
		ExtentZ:       4,
		Polygon:       []glm.Vector2{{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2}},
		Type:          ar.Vertical,
	}
	ca = ta.PlaceInstant(sess, camFrame(wall), 320, 240, 2)
	assert.NotNil(t, ca)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 137, A: 255}, ca.Color)
}

func TestTapAnchorsEviction(t *testing.T) {
	sess := ar.NewSession()
	ta := NewTapAnchors()
	f := camFrame(surfacePoint())

	first := ta.PlaceAt(sess, f, 320, 240)
	assert.NotNil(t, first)
	for range MaxAnchors {
		assert.NotNil(t, ta.PlaceAt(sess, f, 320, 240))
	}

	// the oldest anchor was detached to stay at the cap
	assert.Equal(t, MaxAnchors, ta.Len())
	assert.Equal(t, ar.Stopped, first.Anchor.TrackingState())
	assert.Equal(t, MaxAnchors, len(sess.Anchors()))

	live := ta.Live()
	assert.Equal(t, MaxAnchors, len(live))
	assert.NotContains(t, live, first)
}

func TestTapAnchorsLive(t *testing.T) {
	sess := ar.NewSession()
	ta := NewTapAnchors()
	p := surfacePoint()
	f := camFrame(p)

	ta.PlaceAt(sess, f, 320, 240)
	ta.PlaceAt(sess, f, 320, 240)
	assert.Equal(t, 2, len(ta.Live()))

	// anchors follow their trackable out of tracking
	p.State = ar.Stopped
	assert.Empty(t, ta.Live())
	assert.Equal(t, 0, ta.Len())
}

func TestTapAnchorsClear(t *testing.T) {
	sess := ar.NewSession()
	ta := NewTapAnchors()
	f := camFrame(surfacePoint())

	ca := ta.PlaceAt(sess, f, 320, 240)
	ta.Clear()
	assert.Equal(t, 0, ta.Len())
	assert.Equal(t, ar.Stopped, ca.Anchor.TrackingState())
	assert.Empty(t, sess.Anchors())
}
