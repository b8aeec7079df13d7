// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-xr/xr/base/tolassert"
	"github.com/go-xr/xr/glm"
	"github.com/stretchr/testify/assert"
)

// testFrame builds a frame with a tracking camera at the origin looking
// down -Z, without a session.
func testFrame(trackables ...Trackable) *Frame {
	return &Frame{
		Camera: Camera{
			Pose:       PoseIdentity(),
			Intrinsics: Intrinsics{Fx: 500, Fy: 500, Cx: 320, Cy: 240, Width: 640, Height: 480},
		},
		DisplayGeometry:   DisplayGeometry{Rotation: Rotation0, Width: 640, Height: 480},
		UpdatedTrackables: trackables,
	}
}

// floorPlane is a 4x4 m horizontal plane one meter below the camera.
func floorPlane() *Plane {
	return &Plane{
		TrackableBase: TrackableBase{ID: 1},
		CenterPose:    NewPose(glm.Vec3(0, -1, -5), glm.NewQuat(0, 0, 0, 1)),
		ExtentX:       4,
		ExtentZ:       4,
		Polygon:       []glm.Vector2{{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2}},
		Type:          HorizontalUpward,
	}
}

// wallPlane is a 4x4 m vertical plane six meters ahead, facing the camera.
func wallPlane() *Plane {
	q := glm.NewQuatAxisAngle(glm.Vec3(1, 0, 0), glm.DegToRad(90))
	return &Plane{
		TrackableBase: TrackableBase{ID: 2},
		CenterPose:    NewPose(glm.Vec3(0, 0, -6), q),
		ExtentX:       4,
		ExtentZ:       4,
		Polygon:       []glm.Vector2{{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2}},
		Type:          Vertical,
	}
}

func TestHitTestNotTracking(t *testing.T) {
	f := testFrame(floorPlane())
	f.Camera.TrackingState = Paused
	assert.Nil(t, f.HitTest(320, 240))
	assert.Nil(t, f.HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, 0, -1)))
	assert.Nil(t, f.HitTestInstantPlacement(320, 240, 2))
}

func TestHitTestPlane(t *testing.T) {
	f := testFrame(floorPlane())

	hits := f.HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, -1, -5))
	assert.Equal(t, 1, len(hits))
	h := hits[0]
	tolassert.EqualTol(t, 5.099019, h.Distance, 1.0e-4)
	tolAssertEqualVector3(t, 1.0e-5, glm.Vec3(0, -1, -5), h.HitPose.Position)
	tolAssertEqualVector3(t, standardTol, glm.Vec3(0, 1, 0), h.HitPose.YAxis())
	tolAssertEqualQuat(t, standardTol, glm.NewQuat(0, 0, 0, 1), h.HitPose.Orientation)
	assert.Equal(t, f.UpdatedTrackables[0], h.Trackable)

	// a ray parallel to the plane cannot hit it
	assert.Empty(t, f.HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, 0, -1)))

	// a hit outside the polygon does not count
	assert.Empty(t, f.HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, -1, -10)))

	// a hit from below the plane faces away from the camera
	below := testFrame(floorPlane())
	below.Camera.Pose.Position = glm.Vec3(0, -2, 0)
	assert.Empty(t, below.HitTestRay(glm.Vec3(0, -2, 0), glm.Vec3(0, 1, -5)))

	// stopped trackables are not hit
	stopped := floorPlane()
	stopped.State = Stopped
	assert.Empty(t, testFrame(stopped).HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, -1, -5)))
}

func TestHitTestPoint(t *testing.T) {
	p := &Point{
		TrackableBase: TrackableBase{ID: 3},
		Pose:          NewPose(glm.Vec3(0, 0, -5), glm.NewQuatAxisAngle(glm.Vec3(1, 0, 0), glm.DegToRad(90))),
	}
	f := testFrame(p)

	hits := f.HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, 0, -1))
	assert.Equal(t, 1, len(hits))
	assert.Equal(t, float32(5), hits[0].Distance)
	assert.Equal(t, glm.Vec3(0, 0, -5), hits[0].HitPose.Position)
	// identity orientation mode ignores the point's own orientation
	assert.Equal(t, glm.NewQuat(0, 0, 0, 1), hits[0].HitPose.Orientation)

	p.OrientationMode = OrientationEstimatedSurfaceNormal
	hits = f.HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, 0, -1))
	assert.Equal(t, 1, len(hits))
	assert.Equal(t, p.Pose.Orientation, hits[0].HitPose.Orientation)

	// more than a degree off the ray is a miss
	wide := &Point{TrackableBase: TrackableBase{ID: 4}, Pose: NewPose(glm.Vec3(1, 0, -5), glm.NewQuat(0, 0, 0, 1))}
	assert.Empty(t, testFrame(wide).HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, 0, -1)))

	// behind the camera is a miss
	behind := &Point{TrackableBase: TrackableBase{ID: 5}, Pose: NewPose(glm.Vec3(0, 0, 5), glm.NewQuat(0, 0, 0, 1))}
	assert.Empty(t, testFrame(behind).HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, 0, -1)))
}

func TestHitTestSorted(t *testing.T) {
	p := &Point{TrackableBase: TrackableBase{ID: 3}, Pose: NewPose(glm.Vec3(0, 0, -5), glm.NewQuat(0, 0, 0, 1))}
	f := testFrame(wallPlane(), p)

	hits := f.HitTest(320, 240)
	assert.Equal(t, 2, len(hits))
	assert.IsType(t, &Point{}, hits[0].Trackable)
	assert.IsType(t, &Plane{}, hits[1].Trackable)
	tolassert.EqualTol(t, 5, hits[0].Distance, 1.0e-4)
	tolassert.EqualTol(t, 6, hits[1].Distance, 1.0e-4)

	// the wall hit faces back toward the camera
	tolAssertEqualVector3(t, 1.0e-5, glm.Vec3(0, 0, 1), hits[1].HitPose.YAxis())
}

func TestHitTestDepth(t *testing.T) {
	g := image.NewGray16(image.Rect(0, 0, 640, 480))
	g.SetGray16(320, 240, color.Gray16{Y: 4000}) // 4 m on the optical axis

	f := testFrame()
	f.Depth = &DepthImage{Depth: g}

	hits := f.HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, 0, -1))
	assert.Equal(t, 1, len(hits))
	h := hits[0]
	assert.Equal(t, KindDepthPoint, h.Trackable.Kind())
	assert.Equal(t, Tracking, h.Trackable.TrackingState())
	tolassert.EqualTol(t, 3.98, h.Distance, 0.011)
	tolAssertEqualVector3(t, 0.011, glm.Vec3(0, 0, -3.98), h.HitPose.Position)
	// the depth point faces the viewer
	tolAssertEqualVector3(t, 1.0e-5, glm.Vec3(0, 0, 1), h.HitPose.YAxis())

	// depth beyond the march cutoff is not hit
	far := image.NewGray16(image.Rect(0, 0, 640, 480))
	far.SetGray16(320, 240, color.Gray16{Y: 9000})
	f.Depth = &DepthImage{Depth: far}
	assert.Empty(t, f.HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, 0, -1)))
}

func TestHitTestInstantPlacement(t *testing.T) {
	// with no geometry the point is screenspace at the given distance
	f := testFrame()
	hits := f.HitTestInstantPlacement(320, 240, 2)
	assert.Equal(t, 1, len(hits))
	h := hits[0]
	assert.Equal(t, float32(2), h.Distance)
	tolAssertEqualVector3(t, 1.0e-5, glm.Vec3(0, 0, -2), h.HitPose.Position)
	ip, ok := h.Trackable.(*InstantPlacementPoint)
	assert.True(t, ok)
	assert.Equal(t, ScreenspaceWithApproximateDistance, ip.TrackingMethod)
	assert.Equal(t, glm.NewQuat(0, 0, 0, 1), h.HitPose.Orientation)
	assert.Less(t, ip.TrackableID(), int64(0)) // synthetic id

	// a plane in the way confirms the point at its real depth
	fw := testFrame(wallPlane())
	hits = fw.HitTestInstantPlacement(320, 240, 2)
	assert.Equal(t, 1, len(hits))
	h = hits[0]
	ip, ok = h.Trackable.(*InstantPlacementPoint)
	assert.True(t, ok)
	assert.Equal(t, FullTracking, ip.TrackingMethod)
	tolassert.EqualTol(t, 6, h.Distance, 1.0e-4)
	tolAssertEqualVector3(t, 1.0e-4, glm.Vec3(0, 0, -6), h.HitPose.Position)
}
