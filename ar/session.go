// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ar models the application side of an augmented reality
// session: trackables, anchors, camera and frame state, and hit
// testing, fed by pluggable frame sources. All geometry is world-space
// right-handed, Y up, -Z forward, in meters.
package ar

import (
	"context"
	"slices"
	"sync"

	"github.com/go-xr/xr/base/errors"
	"github.com/go-xr/xr/base/ordmap"
	"github.com/go-xr/xr/glm"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	// ErrSessionPaused is returned by [Session.Update] while the
	// session is paused.
	ErrSessionPaused = errors.New("ar: session is paused")

	// ErrNoSource is returned when the session has no frame source.
	ErrNoSource = errors.New("ar: session has no frame source")
)

// FrameSource produces raw frames for a [Session] to fold into its
// state. Sources are typically a recording player or a synthesizer.
type FrameSource interface {

	// Next returns the next raw frame, blocking until one is available
	// or the context is done. It returns [io.EOF] when the stream ends.
	Next(ctx context.Context) (*RawFrame, error)

	// Close releases the source. No calls to Next may follow.
	Close() error
}

// Observation is one trackable sighting in a [RawFrame]. Kind selects
// the concrete trackable type and which of the remaining fields apply.
type Observation struct {

	// ID identifies the trackable across frames. Observations with the
	// same ID update the same trackable.
	ID int64 `json:"id"`

	// Kind is the concrete trackable type observed.
	Kind TrackableKind `json:"kind"`

	// State is the trackable's tracking state this frame. A Stopped
	// observation removes the trackable from the session.
	State TrackingState `json:"state"`

	// Pose is the trackable's center or point pose in raw order.
	Pose [7]float32 `json:"pose"`

	// ExtentX and ExtentZ are plane or image extents in meters.
	ExtentX float32 `json:"extent_x,omitempty"`
	ExtentZ float32 `json:"extent_z,omitempty"`

	// Polygon is the plane boundary polygon in plane-local XZ.
	Polygon []glm.Vector2 `json:"polygon,omitempty"`

	// PlaneType is the plane orientation class.
	PlaneType PlaneType `json:"plane_type,omitempty"`

	// OrientationMode is the feature point orientation mode.
	OrientationMode PointOrientationMode `json:"orientation_mode,omitempty"`

	// SubsumedBy is the ID of the plane that absorbed this plane,
	// or 0 for none.
	SubsumedBy int64 `json:"subsumed_by,omitempty"`

	// ImageIndex and ImageName identify a detected database image.
	ImageIndex int32  `json:"image_index,omitempty"`
	ImageName  string `json:"image_name,omitempty"`

	// ImageMethod is how a detected image is currently tracked.
	ImageMethod ImageTrackingMethod `json:"image_method,omitempty"`
}

// RawFrame is one source frame before session bookkeeping: the camera
// state plus everything the source observed this frame. It is also the
// frame interchange form; the playback package serializes it, with the
// depth image carried separately in a wire-friendly encoding.
type RawFrame struct {

	// Timestamp is the capture time in nanoseconds.
	Timestamp int64 `json:"timestamp"`

	// CameraPose is the camera's display-oriented world pose in raw
	// order.
	CameraPose [7]float32 `json:"camera_pose"`

	// Intrinsics are the pinhole camera intrinsics.
	Intrinsics Intrinsics `json:"intrinsics"`

	// CameraTracking is the camera tracking state.
	CameraTracking TrackingState `json:"camera_tracking"`

	// FailureReason explains CameraTracking when it is Paused.
	FailureReason TrackingFailureReason `json:"failure_reason,omitempty"`

	// Trackables are this frame's trackable observations.
	Trackables []Observation `json:"trackables,omitempty"`

	// Removed lists IDs of trackables that left tracking entirely and
	// should be stopped and dropped.
	Removed []int64 `json:"removed,omitempty"`

	// PointCloud is the feature point cloud.
	PointCloud PointCloud `json:"point_cloud"`

	// Light is the lighting estimate, or nil if the source has none.
	Light *LightEstimate `json:"light,omitempty"`

	// Depth is the depth image, or nil if the source has none.
	Depth *DepthImage `json:"-"`

	// Display is the display geometry the frame was captured for.
	Display DisplayGeometry `json:"display"`
}

// Session owns the trackable registry, the anchor list, and the
// configuration, and folds source frames into them. It is safe for a
// single update loop goroutine plus concurrent readers.
type Session struct {
	mu         sync.RWMutex
	config     Config
	source     FrameSource
	paused     bool
	camState   TrackingState
	trackables ordmap.Map[int64, Trackable]
	anchors    []*Anchor
}

// NewSession returns a session with the default configuration. It
// starts paused; set a source and call [Session.Resume] before
// updating.
func NewSession() *Session {
	sess := &Session{paused: true}
	sess.config = *DefaultConfig()
	return sess
}

// Configure replaces the session configuration. The session keeps a
// deep copy, so later changes to cfg do not leak in.
func (sess *Session) Configure(cfg *Config) error {
	var c Config
	err := copier.CopyWithOption(&c, cfg, copier.Option{DeepCopy: true})
	if err != nil {
		return err
	}
	sess.mu.Lock()
	sess.config = c
	sess.mu.Unlock()
	return nil
}

// Config returns a copy of the session configuration.
func (sess *Session) Config() *Config {
	sess.mu.RLock()
	defer sess.mu.RUnlock()
	c := sess.config
	return &c
}

// SetSource sets the frame source the session pulls from, closing any
// previous source.
func (sess *Session) SetSource(src FrameSource) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	var err error
	if sess.source != nil && sess.source != src {
		err = sess.source.Close()
	}
	sess.source = src
	return err
}

// Resume starts or restarts the session. It returns [ErrNoSource]
// until a source is set.
func (sess *Session) Resume() error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.source == nil {
		return ErrNoSource
	}
	sess.paused = false
	return nil
}

// Pause suspends updates. Trackables keep their last state; anchors
// without a trackable report Paused until the session resumes.
func (sess *Session) Pause() {
	sess.mu.Lock()
	sess.paused = true
	sess.camState = Paused
	sess.mu.Unlock()
}

// Close pauses the session and closes its source.
func (sess *Session) Close() error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.paused = true
	if sess.source == nil {
		return nil
	}
	err := sess.source.Close()
	sess.source = nil
	return err
}

// NewAnchor creates an anchor fixed at the given world pose.
func (sess *Session) NewAnchor(pose Pose) *Anchor {
	a := &Anchor{id: uuid.New(), sess: sess, pose: pose}
	sess.mu.Lock()
	sess.anchors = append(sess.anchors, a)
	sess.mu.Unlock()
	return a
}

// AttachAnchor creates an anchor at the given world pose whose
// tracking state follows the given trackable.
func (sess *Session) AttachAnchor(t Trackable, pose Pose) *Anchor {
	a := &Anchor{id: uuid.New(), sess: sess, pose: pose, trackable: t}
	sess.mu.Lock()
	sess.anchors = append(sess.anchors, a)
	sess.mu.Unlock()
	return a
}

// Anchors returns the anchors that are attached and not stopped.
func (sess *Session) Anchors() []*Anchor {
	sess.mu.RLock()
	defer sess.mu.RUnlock()
	var as []*Anchor
	for _, a := range sess.anchors {
		if a.state() != Stopped {
			as = append(as, a)
		}
	}
	return as
}

// dropAnchor removes the anchor from the session list. The caller
// must hold sess.mu.
func (sess *Session) dropAnchor(a *Anchor) {
	for i, sa := range sess.anchors {
		if sa == a {
			sess.anchors = slices.Delete(sess.anchors, i, i+1)
			return
		}
	}
}

// Trackables returns the known trackables of the given kind in the
// order first observed, or all of them for [KindAny].
func (sess *Session) Trackables(kind TrackableKind) []Trackable {
	sess.mu.RLock()
	defer sess.mu.RUnlock()
	var ts []Trackable
	for _, kv := range sess.trackables.Order {
		if kind == KindAny || kv.Value.Kind() == kind {
			ts = append(ts, kv.Value)
		}
	}
	return ts
}

// Update pulls the next frame from the source, folds its observations
// into the session state, and returns the resulting frame. It returns
// [ErrSessionPaused] while paused and [io.EOF] when the source ends.
func (sess *Session) Update(ctx context.Context) (*Frame, error) {
	sess.mu.RLock()
	paused, src := sess.paused, sess.source
	sess.mu.RUnlock()
	if paused {
		return nil, ErrSessionPaused
	}
	if src == nil {
		return nil, ErrNoSource
	}
	raw, err := src.Next(ctx)
	if err != nil {
		return nil, err
	}
	return sess.fold(raw), nil
}

// fold applies a raw frame to the session state and builds the
// resulting frame snapshot.
func (sess *Session) fold(raw *RawFrame) *Frame {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.camState = raw.CameraTracking
	f := &Frame{
		Timestamp: raw.Timestamp,
		Camera: Camera{
			Pose:          PoseFromRaw(raw.CameraPose),
			Intrinsics:    raw.Intrinsics,
			TrackingState: raw.CameraTracking,
			FailureReason: raw.FailureReason,
		},
		PointCloud:      raw.PointCloud,
		DisplayGeometry: raw.Display,
		sess:            sess,
	}
	if sess.config.LightEstimation != LightEstimationDisabled && raw.Light != nil {
		f.LightEstimate = *raw.Light
	}
	if sess.config.DepthMode != DepthDisabled {
		f.Depth = raw.Depth
	}
	for _, ob := range raw.Trackables {
		if !sess.wants(ob) {
			continue
		}
		t := sess.applyObservation(ob)
		if t == nil {
			continue
		}
		f.UpdatedTrackables = append(f.UpdatedTrackables, t)
		if ob.State == Stopped {
			sess.trackables.DeleteKey(ob.ID)
		}
	}
	for _, id := range raw.Removed {
		t, ok := sess.trackables.ValueByKeyTry(id)
		if !ok {
			continue
		}
		if st, ok := t.(interface{ setState(TrackingState) }); ok {
			st.setState(Stopped)
		}
		f.UpdatedTrackables = append(f.UpdatedTrackables, t)
		sess.trackables.DeleteKey(id)
	}
	return f
}

// wants reports whether the configuration admits the observation.
func (sess *Session) wants(ob Observation) bool {
	switch ob.Kind {
	case KindPlane:
		switch sess.config.PlaneFinding {
		case PlaneFindingDisabled:
			return false
		case PlaneFindingHorizontal:
			return ob.PlaneType != Vertical
		case PlaneFindingVertical:
			return ob.PlaneType == Vertical
		}
		return true
	case KindAugmentedImage:
		return sess.config.AugmentedImageDatabase != ""
	}
	return true
}

// applyObservation creates or updates the trackable for the
// observation. The caller must hold sess.mu.
func (sess *Session) applyObservation(ob Observation) Trackable {
	existing, _ := sess.trackables.ValueByKeyTry(ob.ID)
	switch ob.Kind {
	case KindPlane:
		p, _ := existing.(*Plane)
		if p == nil {
			p = &Plane{TrackableBase: TrackableBase{ID: ob.ID}}
			sess.trackables.Add(ob.ID, p)
		}
		p.State = ob.State
		p.CenterPose = PoseFromRaw(ob.Pose)
		p.ExtentX, p.ExtentZ = ob.ExtentX, ob.ExtentZ
		p.Polygon = slices.Clone(ob.Polygon)
		p.Type = ob.PlaneType
		if ob.SubsumedBy != 0 {
			if sp, ok := sess.trackables.ValueByKeyTry(ob.SubsumedBy); ok {
				if spp, ok := sp.(*Plane); ok {
					p.SubsumedBy = spp
				}
			}
		}
		return p
	case KindPoint:
		p, _ := existing.(*Point)
		if p == nil {
			p = &Point{TrackableBase: TrackableBase{ID: ob.ID}}
			sess.trackables.Add(ob.ID, p)
		}
		p.State = ob.State
		p.Pose = PoseFromRaw(ob.Pose)
		p.OrientationMode = ob.OrientationMode
		return p
	case KindAugmentedImage:
		img, _ := existing.(*AugmentedImage)
		if img == nil {
			img = &AugmentedImage{TrackableBase: TrackableBase{ID: ob.ID}}
			sess.trackables.Add(ob.ID, img)
		}
		img.State = ob.State
		img.Index = ob.ImageIndex
		img.Name = ob.ImageName
		img.CenterPose = PoseFromRaw(ob.Pose)
		img.ExtentX, img.ExtentZ = ob.ExtentX, ob.ExtentZ
		img.TrackingMethod = ob.ImageMethod
		return img
	}
	// depth points and instant placement points only come from hit
	// tests, never from sources
	return nil
}
