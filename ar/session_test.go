// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import (
	"context"
	"image"
	"io"
	"testing"

	"github.com/go-xr/xr/glm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubSource struct {
	frames []*RawFrame
	next   int
	closed bool
}

func (s *stubSource) Next(ctx context.Context) (*RawFrame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.frames) {
		return nil, io.EOF
	}
	f := s.frames[s.next]
	s.next++
	return f, nil
}

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

func rawFrame(ts int64, obs ...Observation) *RawFrame {
	return &RawFrame{
		Timestamp:      ts,
		CameraPose:     [7]float32{0, 0, 0, 1, 0, 0, 0},
		Intrinsics:     Intrinsics{Fx: 500, Fy: 500, Cx: 320, Cy: 240, Width: 640, Height: 480},
		CameraTracking: Tracking,
		Trackables:     obs,
		Display:        DisplayGeometry{Width: 640, Height: 480},
	}
}

func planeObs(id int64, state TrackingState, pos glm.Vector3) Observation {
	return Observation{
		ID:        id,
		Kind:      KindPlane,
		State:     state,
		Pose:      NewPose(pos, glm.NewQuat(0, 0, 0, 1)).Raw(),
		ExtentX:   2,
		ExtentZ:   2,
		Polygon:   []glm.Vector2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}},
		PlaneType: HorizontalUpward,
	}
}

func imageObs(state TrackingState, method ImageTrackingMethod) Observation {
	return Observation{
		ID:          3,
		Kind:        KindAugmentedImage,
		State:       state,
		Pose:        [7]float32{0, 0, 0, 1, 0, 0, -2},
		ExtentX:     0.5,
		ExtentZ:     0.4,
		ImageIndex:  0,
		ImageName:   "earth",
		ImageMethod: method,
	}
}

func TestSessionLifecycle(t *testing.T) {
	sess := NewSession()

	_, err := sess.Update(context.Background())
	assert.ErrorIs(t, err, ErrSessionPaused)
	assert.ErrorIs(t, sess.Resume(), ErrNoSource)

	src := &stubSource{frames: []*RawFrame{rawFrame(100)}}
	assert.NoError(t, sess.SetSource(src))
	assert.NoError(t, sess.Resume())

	f, err := sess.Update(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(100), f.Timestamp)
	assert.Equal(t, Tracking, f.Camera.TrackingState)

	_, err = sess.Update(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	sess.Pause()
	_, err = sess.Update(context.Background())
	assert.ErrorIs(t, err, ErrSessionPaused)

	assert.NoError(t, sess.Close())
	assert.True(t, src.closed)
}

func TestSessionFold(t *testing.T) {
	sess := NewSession()
	cfg := DefaultConfig()
	cfg.AugmentedImageDatabase = "test.imgdb"
	assert.NoError(t, sess.Configure(cfg))

	point := Observation{ID: 2, Kind: KindPoint, State: Tracking, Pose: [7]float32{0, 0, 0, 1, 1, 0, -3}}
	last := rawFrame(3, planeObs(1, Stopped, glm.Vec3(0, -1, -4)))
	last.Removed = []int64{2}
	src := &stubSource{frames: []*RawFrame{
		rawFrame(1, planeObs(1, Tracking, glm.Vec3(0, -1, -5)), point, imageObs(Paused, ImageNotTracking)),
		rawFrame(2, planeObs(1, Tracking, glm.Vec3(0, -1, -4)), imageObs(Tracking, ImageFullTracking)),
		last,
	}}
	assert.NoError(t, sess.SetSource(src))
	assert.NoError(t, sess.Resume())

	f1, err := sess.Update(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, len(f1.UpdatedTrackables))
	assert.Equal(t, 1, len(sess.Trackables(KindPlane)))
	assert.Equal(t, 1, len(sess.Trackables(KindPoint)))
	assert.Equal(t, 3, len(sess.Trackables(KindAny)))
	assert.Equal(t, 1, len(f1.UpdatedTrackablesOf(KindAugmentedImage)))

	// repeat observations update the same trackable in place
	f2, err := sess.Update(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(f2.UpdatedTrackables))
	p1 := f1.UpdatedTrackablesOf(KindPlane)[0].(*Plane)
	p2 := f2.UpdatedTrackablesOf(KindPlane)[0].(*Plane)
	assert.Same(t, p1, p2)
	assert.Equal(t, glm.Vec3(0, -1, -4), p2.CenterPose.Position)

	im := f2.UpdatedTrackablesOf(KindAugmentedImage)[0].(*AugmentedImage)
	assert.Equal(t, ImageFullTracking, im.TrackingMethod)
	assert.Equal(t, Tracking, im.TrackingState())
	assert.Equal(t, "earth", im.Name)

	// stopped observations and removals are reported once, then dropped
	f3, err := sess.Update(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(f3.UpdatedTrackables))
	assert.Equal(t, Stopped, f3.UpdatedTrackablesOf(KindPlane)[0].TrackingState())
	gone := f3.UpdatedTrackablesOf(KindPoint)[0]
	assert.Equal(t, int64(2), gone.TrackableID())
	assert.Equal(t, Stopped, gone.TrackingState())
	assert.Empty(t, sess.Trackables(KindPlane))
	assert.Empty(t, sess.Trackables(KindPoint))
	assert.Equal(t, 1, len(sess.Trackables(KindAny)))
}

func TestSessionPlaneGating(t *testing.T) {
	run := func(mode PlaneFindingMode) (*Session, *Frame) {
		vertical := planeObs(1, Tracking, glm.Vec3(0, 0, -6))
		vertical.PlaneType = Vertical
		horizontal := planeObs(2, Tracking, glm.Vec3(0, -1, 0))

		sess := NewSession()
		cfg := DefaultConfig()
		cfg.PlaneFinding = mode
		assert.NoError(t, sess.Configure(cfg))
		assert.NoError(t, sess.SetSource(&stubSource{frames: []*RawFrame{rawFrame(1, vertical, horizontal)}}))
		assert.NoError(t, sess.Resume())
		f, err := sess.Update(context.Background())
		assert.NoError(t, err)
		return sess, f
	}

	_, f := run(PlaneFindingDisabled)
	assert.Empty(t, f.UpdatedTrackables)

	_, f = run(PlaneFindingHorizontal)
	assert.Equal(t, 1, len(f.UpdatedTrackables))
	assert.Equal(t, int64(2), f.UpdatedTrackables[0].TrackableID())

	_, f = run(PlaneFindingVertical)
	assert.Equal(t, 1, len(f.UpdatedTrackables))
	assert.Equal(t, int64(1), f.UpdatedTrackables[0].TrackableID())

	sess, f := run(PlaneFindingHorizontalAndVertical)
	assert.Equal(t, 2, len(f.UpdatedTrackables))
	assert.Equal(t, 2, len(sess.Trackables(KindPlane)))
}

func TestSessionImageGating(t *testing.T) {
	// without a configured image database, image observations are dropped
	sess := NewSession()
	assert.NoError(t, sess.SetSource(&stubSource{frames: []*RawFrame{rawFrame(1, imageObs(Tracking, ImageFullTracking))}}))
	assert.NoError(t, sess.Resume())
	f, err := sess.Update(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, f.UpdatedTrackables)
	assert.Empty(t, sess.Trackables(KindAugmentedImage))
}

func TestSessionLightAndDepthGating(t *testing.T) {
	mkraw := func() *RawFrame {
		raw := rawFrame(1)
		raw.Light = &LightEstimate{State: LightEstimateValid, PixelIntensity: 0.5, ColorCorrection: [4]float32{1, 1, 1, 1}}
		raw.Depth = &DepthImage{Depth: image.NewGray16(image.Rect(0, 0, 4, 4))}
		return raw
	}

	// defaults: ambient light estimation on, depth off
	sess := NewSession()
	assert.NoError(t, sess.SetSource(&stubSource{frames: []*RawFrame{mkraw()}}))
	assert.NoError(t, sess.Resume())
	f, err := sess.Update(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, LightEstimateValid, f.LightEstimate.State)
	assert.Equal(t, float32(0.5), f.LightEstimate.PixelIntensity)
	assert.Nil(t, f.Depth)

	// light estimation off, depth on
	sess = NewSession()
	cfg := DefaultConfig()
	cfg.LightEstimation = LightEstimationDisabled
	cfg.DepthMode = DepthAutomatic
	assert.NoError(t, sess.Configure(cfg))
	assert.NoError(t, sess.SetSource(&stubSource{frames: []*RawFrame{mkraw()}}))
	assert.NoError(t, sess.Resume())
	f, err = sess.Update(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, LightEstimateInvalid, f.LightEstimate.State)
	assert.NotNil(t, f.Depth)
}

func TestSessionConfigIsolation(t *testing.T) {
	sess := NewSession()
	cfg := DefaultConfig()
	assert.NoError(t, sess.Configure(cfg))

	// mutating the caller's config after Configure changes nothing
	cfg.PlaneFinding = PlaneFindingDisabled
	assert.Equal(t, PlaneFindingHorizontalAndVertical, sess.Config().PlaneFinding)

	// mutating the returned copy changes nothing either
	got := sess.Config()
	got.DepthMode = DepthAutomatic
	assert.Equal(t, DepthDisabled, sess.Config().DepthMode)
}

func TestSessionAnchors(t *testing.T) {
	sess := NewSession()

	a := sess.NewAnchor(NewPose(glm.Vec3(0, 0, -1), glm.NewQuat(0, 0, 0, 1)))
	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.Equal(t, glm.Vec3(0, 0, -1), a.Pose().Position)
	assert.Equal(t, Tracking, a.TrackingState())
	assert.Equal(t, 1, len(sess.Anchors()))
	assert.Nil(t, a.Trackable())

	plane := floorPlane()
	pa := sess.AttachAnchor(plane, plane.CenterPose)
	assert.Equal(t, 2, len(sess.Anchors()))
	assert.Equal(t, Tracking, pa.TrackingState())

	// an attached anchor follows its trackable
	plane.State = Paused
	assert.Equal(t, Paused, pa.TrackingState())
	plane.State = Stopped
	assert.Equal(t, Stopped, pa.TrackingState())
	assert.Equal(t, 1, len(sess.Anchors()))

	// pausing the session pauses world anchors
	sess.Pause()
	assert.Equal(t, Paused, a.TrackingState())

	a.Detach()
	assert.Equal(t, Stopped, a.TrackingState())
	assert.Empty(t, sess.Anchors())

	// detaching twice is harmless
	a.Detach()
	assert.Empty(t, sess.Anchors())
}

func TestSessionFrameHitTest(t *testing.T) {
	sess := NewSession()
	assert.NoError(t, sess.SetSource(&stubSource{frames: []*RawFrame{
		rawFrame(1, planeObs(1, Tracking, glm.Vec3(0, -1, -5))),
	}}))
	assert.NoError(t, sess.Resume())
	f, err := sess.Update(context.Background())
	assert.NoError(t, err)

	// session frames hit against the registry
	hits := f.HitTestRay(glm.Vec3(0, 0, 0), glm.Vec3(0, -1, -5))
	assert.Equal(t, 1, len(hits))
	assert.Equal(t, f.UpdatedTrackables[0], hits[0].Trackable)
}

func TestSessionInstantPlacementConfig(t *testing.T) {
	sess := NewSession()
	assert.NoError(t, sess.SetSource(&stubSource{frames: []*RawFrame{rawFrame(1)}}))
	assert.NoError(t, sess.Resume())
	f, err := sess.Update(context.Background())
	assert.NoError(t, err)

	// instant placement is off by default
	assert.Nil(t, f.HitTestInstantPlacement(320, 240, 2))

	cfg := DefaultConfig()
	cfg.InstantPlacement = InstantPlacementLocalYUp
	assert.NoError(t, sess.Configure(cfg))
	hits := f.HitTestInstantPlacement(320, 240, 2)
	assert.Equal(t, 1, len(hits))
	assert.Equal(t, float32(2), hits[0].Distance)
}
