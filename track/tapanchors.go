// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import (
	"image/color"
	"slices"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/glm"
)

// MaxAnchors caps the number of tap anchors kept; placing one more
// evicts the oldest.
const MaxAnchors = 20

// ColoredAnchor is an anchor plus the color its content renders with,
// chosen by the kind of trackable that was hit.
type ColoredAnchor struct {
	Anchor *ar.Anchor
	Color  color.RGBA
}

// TapAnchors is the working set of anchors placed by screen taps,
// oldest first.
type TapAnchors struct {
	anchors []*ColoredAnchor
}

// NewTapAnchors returns an empty set.
func NewTapAnchors() *TapAnchors {
	return &TapAnchors{}
}

// PlaceAt hit-tests the frame at the given view position and anchors
// content at the first acceptable hit, nearest first. It returns the
// new anchor, or nil when nothing acceptable was hit.
func (ta *TapAnchors) PlaceAt(sess *ar.Session, frame *ar.Frame, x, y float32) *ColoredAnchor {
	for _, h := range frame.HitTest(x, y) {
		if acceptHit(h, frame.Camera.Pose.Position) {
			return ta.place(sess, h)
		}
	}
	return nil
}

// PlaceInstant places an instant placement anchor at the given view
// position without waiting for detected geometry. It returns nil when
// instant placement is disabled or the camera is not tracking.
func (ta *TapAnchors) PlaceInstant(sess *ar.Session, frame *ar.Frame, x, y, approxDistance float32) *ColoredAnchor {
	for _, h := range frame.HitTestInstantPlacement(x, y, approxDistance) {
		return ta.place(sess, h)
	}
	return nil
}

func (ta *TapAnchors) place(sess *ar.Session, h ar.HitResult) *ColoredAnchor {
	if len(ta.anchors) >= MaxAnchors {
		ta.anchors[0].Anchor.Detach()
		ta.anchors = slices.Delete(ta.anchors, 0, 1)
	}
	ca := &ColoredAnchor{
		Anchor: sess.AttachAnchor(h.Trackable, h.HitPose),
		Color:  anchorColor(h.Trackable),
	}
	ta.anchors = append(ta.anchors, ca)
	return ca
}

// acceptHit applies the per-kind placement rules: plane hits must be
// inside the polygon with the camera on the normal side, point hits
// must carry an estimated surface normal, depth and instant placement
// hits are taken as-is.
func acceptHit(h ar.HitResult, camera glm.Vector3) bool {
	switch t := h.Trackable.(type) {
	case *ar.Plane:
		return t.InPolygon(h.HitPose.Position) && distanceToPlane(h.HitPose, camera) >= 0
	case *ar.Point:
		return t.OrientationMode == ar.OrientationEstimatedSurfaceNormal
	case *ar.DepthPoint, *ar.InstantPlacementPoint:
		return true
	}
	return false
}

// distanceToPlane is the signed distance from a point to the plane of
// a hit pose, positive on the normal side.
func distanceToPlane(pose ar.Pose, point glm.Vector3) float32 {
	return point.Sub(pose.Position).Dot(pose.YAxis())
}

// anchorColor returns the render color for content anchored to the
// given trackable.
func anchorColor(t ar.Trackable) color.RGBA {
	switch tr := t.(type) {
	case *ar.Point:
		return color.RGBA{R: 66, G: 133, B: 244, A: 255}
	case *ar.Plane:
		return color.RGBA{R: 139, G: 195, B: 74, A: 255}
	case *ar.DepthPoint:
		return color.RGBA{R: 199, G: 8, B: 65, A: 255}
	case *ar.InstantPlacementPoint:
		if tr.TrackingMethod == ar.FullTracking {
			return color.RGBA{R: 255, G: 255, B: 137, A: 255}
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{}
}

// Live prunes anchors that stopped tracking and returns the remaining
// set, oldest first.
func (ta *TapAnchors) Live() []*ColoredAnchor {
	var kept []*ColoredAnchor
	for _, ca := range ta.anchors {
		if ca.Anchor.TrackingState() != ar.Stopped {
			kept = append(kept, ca)
		}
	}
	ta.anchors = kept
	return kept
}

// Len returns the number of anchors currently held.
func (ta *TapAnchors) Len() int {
	return len(ta.anchors)
}

// Clear detaches every anchor and empties the set.
func (ta *TapAnchors) Clear() {
	for _, ca := range ta.anchors {
		ca.Anchor.Detach()
	}
	ta.anchors = nil
}
