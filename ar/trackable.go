// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import "github.com/go-xr/xr/glm"

// Trackable is something in the real world that the session tracks
// across frames: a plane, a feature point, a depth point, an instant
// placement point, or an augmented image.
type Trackable interface {

	// TrackableID returns the session-stable identifier of this trackable.
	TrackableID() int64

	// TrackingState returns the current tracking state.
	TrackingState() TrackingState

	// Kind returns what kind of trackable this is.
	Kind() TrackableKind
}

// TrackableKind is the kind of a [Trackable].
type TrackableKind int32

const (
	// KindPlane is a [Plane].
	KindPlane TrackableKind = iota

	// KindPoint is a feature [Point].
	KindPoint

	// KindDepthPoint is a [DepthPoint].
	KindDepthPoint

	// KindInstantPlacementPoint is an [InstantPlacementPoint].
	KindInstantPlacementPoint

	// KindAugmentedImage is an [AugmentedImage].
	KindAugmentedImage
)

// KindAny matches every trackable kind in filtering functions.
const KindAny TrackableKind = -1

func (tk TrackableKind) String() string {
	switch tk {
	case KindPlane:
		return "Plane"
	case KindPoint:
		return "Point"
	case KindDepthPoint:
		return "DepthPoint"
	case KindInstantPlacementPoint:
		return "InstantPlacementPoint"
	case KindAugmentedImage:
		return "AugmentedImage"
	case KindAny:
		return "Any"
	}
	return "TrackableKind(invalid)"
}

// TrackableBase is the state shared by all trackable types.
// Concrete trackables embed it.
type TrackableBase struct {

	// ID is the session-stable identifier of this trackable.
	ID int64

	// State is the current tracking state.
	State TrackingState
}

func (tb *TrackableBase) TrackableID() int64 {
	return tb.ID
}

func (tb *TrackableBase) TrackingState() TrackingState {
	return tb.State
}

func (tb *TrackableBase) setState(state TrackingState) {
	tb.State = state
}

// PlaneType classifies the orientation of a detected [Plane].
type PlaneType int32

const (
	// HorizontalUpward is a horizontal plane with its normal facing up,
	// such as a floor or tabletop.
	HorizontalUpward PlaneType = iota

	// HorizontalDownward is a horizontal plane with its normal facing
	// down, such as a ceiling.
	HorizontalDownward

	// Vertical is a vertical plane, such as a wall.
	Vertical
)

func (pt PlaneType) String() string {
	switch pt {
	case HorizontalUpward:
		return "HorizontalUpward"
	case HorizontalDownward:
		return "HorizontalDownward"
	case Vertical:
		return "Vertical"
	}
	return "PlaneType(invalid)"
}

// Plane is a detected flat surface. Plane-local space puts the plane in
// the XZ plane centered on CenterPose, with +Y as the normal.
type Plane struct {
	TrackableBase

	// CenterPose is the pose of the plane center. Its +Y axis is the
	// plane normal.
	CenterPose Pose

	// ExtentX is the length of the plane's bounding rectangle along the
	// plane-local X axis.
	ExtentX float32

	// ExtentZ is the length of the plane's bounding rectangle along the
	// plane-local Z axis.
	ExtentZ float32

	// Polygon is the convex boundary of the detected surface, as XZ
	// points in plane-local space.
	Polygon []glm.Vector2

	// Type is the plane orientation class.
	Type PlaneType

	// SubsumedBy is the plane this one was merged into, or nil.
	// Once set, this plane stops receiving updates of its own.
	SubsumedBy *Plane
}

func (p *Plane) Kind() TrackableKind {
	return KindPlane
}

// Normal returns the world-space plane normal.
func (p *Plane) Normal() glm.Vector3 {
	return p.CenterPose.YAxis()
}

// local maps the given world point into plane-local space.
func (p *Plane) local(point glm.Vector3) glm.Vector3 {
	return p.CenterPose.Inverse().TransformPoint(point)
}

// InExtents returns whether the given world point, projected onto the
// plane, is within the plane's bounding rectangle.
func (p *Plane) InExtents(point glm.Vector3) bool {
	l := p.local(point)
	return glm.Abs(l.X) <= p.ExtentX/2 && glm.Abs(l.Z) <= p.ExtentZ/2
}

// InPolygon returns whether the given world point, projected onto the
// plane, is inside the plane's boundary polygon.
func (p *Plane) InPolygon(point glm.Vector3) bool {
	n := len(p.Polygon)
	if n < 3 {
		return false
	}
	l := p.local(point)
	x, z := l.X, l.Z
	in := false
	// even-odd crossing test over the polygon edges
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi := p.Polygon[i]
		vj := p.Polygon[j]
		if (vi.Y > z) != (vj.Y > z) &&
			x < (vj.X-vi.X)*(z-vi.Y)/(vj.Y-vi.Y)+vi.X {
			in = !in
		}
	}
	return in
}

// PointOrientationMode is how a feature [Point] pose was oriented.
type PointOrientationMode int32

const (
	// OrientationIdentity means the point pose has identity orientation.
	OrientationIdentity PointOrientationMode = iota

	// OrientationEstimatedSurfaceNormal means the point pose orients +Y
	// along the estimated surface normal at the point.
	OrientationEstimatedSurfaceNormal
)

func (om PointOrientationMode) String() string {
	switch om {
	case OrientationIdentity:
		return "Identity"
	case OrientationEstimatedSurfaceNormal:
		return "EstimatedSurfaceNormal"
	}
	return "PointOrientationMode(invalid)"
}

// Point is a visual feature point the session is tracking.
type Point struct {
	TrackableBase

	// Pose is the point's world pose.
	Pose Pose

	// OrientationMode says how the pose orientation was derived.
	OrientationMode PointOrientationMode
}

func (p *Point) Kind() TrackableKind {
	return KindPoint
}

// DepthPoint is a point on real geometry produced by a depth hit test.
type DepthPoint struct {
	TrackableBase

	// Pose orients +Y along the surface normal and +Z toward the device.
	Pose Pose
}

func (p *DepthPoint) Kind() TrackableKind {
	return KindDepthPoint
}

// InstantPlacementTrackingMethod is how an [InstantPlacementPoint] is
// currently tracked.
type InstantPlacementTrackingMethod int32

const (
	// InstantNotTracking means the point is not currently being tracked.
	InstantNotTracking InstantPlacementTrackingMethod = iota

	// ScreenspaceWithApproximateDistance means the point tracks a screen
	// position at the caller's approximate distance, before real
	// geometry has confirmed its depth.
	ScreenspaceWithApproximateDistance

	// FullTracking means real geometry has confirmed the point and it is
	// tracked at an accurate world position.
	FullTracking
)

func (tm InstantPlacementTrackingMethod) String() string {
	switch tm {
	case InstantNotTracking:
		return "NotTracking"
	case ScreenspaceWithApproximateDistance:
		return "ScreenspaceWithApproximateDistance"
	case FullTracking:
		return "FullTracking"
	}
	return "InstantPlacementTrackingMethod(invalid)"
}

// InstantPlacementPoint is a point placed from a screen position before
// the surrounding geometry was known.
type InstantPlacementPoint struct {
	TrackableBase

	// Pose is the point's world pose. While the tracking method is
	// ScreenspaceWithApproximateDistance, the position is at the
	// caller's approximate distance and may jump when real geometry
	// confirms it.
	Pose Pose

	// TrackingMethod is how the point is currently tracked.
	TrackingMethod InstantPlacementTrackingMethod
}

func (p *InstantPlacementPoint) Kind() TrackableKind {
	return KindInstantPlacementPoint
}

// ImageTrackingMethod is how an [AugmentedImage] is currently tracked.
type ImageTrackingMethod int32

const (
	// ImageNotTracking means the image is not currently tracked.
	ImageNotTracking ImageTrackingMethod = iota

	// ImageFullTracking means the image is actively tracked in view.
	ImageFullTracking

	// ImageLastKnownPose means the image is out of view and its pose is
	// the last one observed.
	ImageLastKnownPose
)

func (tm ImageTrackingMethod) String() string {
	switch tm {
	case ImageNotTracking:
		return "NotTracking"
	case ImageFullTracking:
		return "FullTracking"
	case ImageLastKnownPose:
		return "LastKnownPose"
	}
	return "ImageTrackingMethod(invalid)"
}

// AugmentedImage is a detected instance of an image from the session's
// augmented image database.
type AugmentedImage struct {
	TrackableBase

	// Index is the image's index in the database.
	Index int32

	// Name is the image's name in the database.
	Name string

	// CenterPose is the pose of the image center, with +Y out of the
	// image surface.
	CenterPose Pose

	// ExtentX is the detected physical width of the image, in meters.
	ExtentX float32

	// ExtentZ is the detected physical height of the image, in meters.
	ExtentZ float32

	// TrackingMethod is how the image is currently tracked.
	TrackingMethod ImageTrackingMethod
}

func (im *AugmentedImage) Kind() TrackableKind {
	return KindAugmentedImage
}
