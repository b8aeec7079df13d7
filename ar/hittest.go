// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import (
	"cmp"
	"slices"
	"sync/atomic"

	"github.com/go-xr/xr/glm"
)

// pointHitConeRad is the angular acceptance threshold for feature point
// hits, about one degree.
const pointHitConeRad = 0.0174533

const (
	depthHitStep      = 0.01 // meters per march step
	depthHitMaxDist   = 8.0  // meters, march cutoff
	depthHitTolerance = 0.02 // meters, sample acceptance
)

// HitResult is one hit returned by a hit test.
type HitResult struct {

	// Distance is the distance from the ray origin to the hit, in meters.
	Distance float32

	// HitPose is the world pose of the hit. Where the surface normal is
	// known, +Y points along it and +Z points toward the device.
	HitPose Pose

	// Trackable is the trackable that was hit. Depth and instant
	// placement hits carry a trackable created for the result.
	Trackable Trackable
}

// syntheticID issues ids for trackables created by hit tests. They are
// negative so they never collide with source-provided trackable ids.
var syntheticID atomic.Int64

func nextSyntheticID() int64 {
	return -syntheticID.Add(1)
}

// HitTest casts a ray from the camera through the given point in view
// coordinates (pixels) and returns the hits against the frame's
// trackables, sorted nearest first. It returns nil when the camera is
// not tracking.
func (f *Frame) HitTest(x, y float32) []HitResult {
	if f.Camera.TrackingState != Tracking {
		return nil
	}
	origin, dir := f.ray(x, y)
	return f.HitTestRay(origin, dir)
}

// HitTestRay returns the hits of the given world-space ray against the
// frame's trackables, sorted nearest first. The direction need not be
// normalized. It returns nil when the camera is not tracking.
func (f *Frame) HitTestRay(origin, dir glm.Vector3) []HitResult {
	if f.Camera.TrackingState != Tracking {
		return nil
	}
	dir = dir.Normal()
	var hits []HitResult
	for _, t := range f.trackables() {
		if t.TrackingState() != Tracking {
			continue
		}
		switch tr := t.(type) {
		case *Plane:
			if h, ok := planeHit(tr, origin, dir); ok {
				hits = append(hits, h)
			}
		case *Point:
			if h, ok := pointHit(tr, origin, dir); ok {
				hits = append(hits, h)
			}
		}
	}
	if h, ok := f.depthHit(origin, dir); ok {
		hits = append(hits, h)
	}
	slices.SortStableFunc(hits, func(a, b HitResult) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return hits
}

// HitTestInstantPlacement returns a single instant placement hit for
// the given point in view coordinates. While no real geometry confirms
// the location, the point is placed at approxDistance along the ray
// with the [ScreenspaceWithApproximateDistance] method; once a plane
// confirms it, the result is [FullTracking] at the plane. It returns
// nil when the camera is not tracking or instant placement is disabled.
func (f *Frame) HitTestInstantPlacement(x, y, approxDistance float32) []HitResult {
	if f.Camera.TrackingState != Tracking {
		return nil
	}
	if f.sess != nil && f.sess.Config().InstantPlacement == InstantPlacementDisabled {
		return nil
	}
	origin, dir := f.ray(x, y)
	ip := &InstantPlacementPoint{
		TrackableBase: TrackableBase{ID: nextSyntheticID(), State: Tracking},
	}
	for _, h := range f.HitTestRay(origin, dir) {
		if _, ok := h.Trackable.(*Plane); ok {
			ip.Pose = h.HitPose
			ip.TrackingMethod = FullTracking
			return []HitResult{{Distance: h.Distance, HitPose: ip.Pose, Trackable: ip}}
		}
	}
	ip.Pose = Pose{Position: origin.Add(dir.MulScalar(approxDistance))}
	ip.Pose.Orientation.SetIdentity()
	ip.TrackingMethod = ScreenspaceWithApproximateDistance
	return []HitResult{{Distance: approxDistance, HitPose: ip.Pose, Trackable: ip}}
}

// ray returns the world-space ray from the camera through the given
// point in view coordinates.
func (f *Frame) ray(x, y float32) (origin, dir glm.Vector3) {
	ndc := f.DisplayGeometry.toNDC(SpaceView, glm.Vec2(x, y))
	proj := f.Camera.ProjectionMatrix(0.1, 100)
	view := f.Camera.ViewMatrix()
	vp := proj.Mul(&view)
	near := vp.UnprojectFromNDC(glm.Vec3(ndc.X, ndc.Y, -1))
	origin = f.Camera.Pose.Position
	dir = near.Sub(origin).Normal()
	return origin, dir
}

func planeHit(p *Plane, origin, dir glm.Vector3) (HitResult, bool) {
	n := p.Normal()
	denom := n.Dot(dir)
	if glm.Abs(denom) < 1.0e-6 { // ray parallel to the plane
		return HitResult{}, false
	}
	t := n.Dot(p.CenterPose.Position.Sub(origin)) / denom
	if t < 0 {
		return HitResult{}, false
	}
	hit := origin.Add(dir.MulScalar(t))
	if !p.InPolygon(hit) {
		return HitResult{}, false
	}
	if n.Dot(origin.Sub(hit)) < 0 { // ray origin behind the plane
		return HitResult{}, false
	}
	return HitResult{
		Distance:  t,
		HitPose:   poseFacing(hit, n, origin),
		Trackable: p,
	}, true
}

func pointHit(p *Point, origin, dir glm.Vector3) (HitResult, bool) {
	v := p.Pose.Position.Sub(origin)
	dist := v.Length()
	if dist == 0 || v.Dot(dir) <= 0 {
		return HitResult{}, false
	}
	if v.AngleTo(dir) > pointHitConeRad {
		return HitResult{}, false
	}
	pose := Pose{Position: p.Pose.Position}
	pose.Orientation.SetIdentity()
	if p.OrientationMode == OrientationEstimatedSurfaceNormal {
		pose.Orientation = p.Pose.Orientation
	}
	return HitResult{Distance: dist, HitPose: pose, Trackable: p}, true
}

// depthHit marches along the ray against the frame's depth image and
// returns a hit at the first sample within tolerance of the ray depth.
func (f *Frame) depthHit(origin, dir glm.Vector3) (HitResult, bool) {
	if f.Depth == nil {
		return HitResult{}, false
	}
	inv := f.Camera.Pose.Inverse()
	in := f.Camera.Intrinsics
	for t := float32(depthHitStep); t <= depthHitMaxDist; t += depthHitStep {
		p := origin.Add(dir.MulScalar(t))
		v := inv.TransformPoint(p)
		d := -v.Z // camera looks down -Z
		if d <= 0 {
			continue
		}
		px := int(in.Fx*v.X/d + in.Cx)
		py := int(in.Cy - in.Fy*v.Y/d)
		dv := f.Depth.DepthAt(px, py)
		if dv == 0 {
			continue
		}
		if glm.Abs(dv-d) <= depthHitTolerance {
			dp := &DepthPoint{
				TrackableBase: TrackableBase{ID: nextSyntheticID(), State: Tracking},
				Pose:          poseFacing(p, dir.Negate(), origin),
			}
			return HitResult{Distance: t, HitPose: dp.Pose, Trackable: dp}, true
		}
	}
	return HitResult{}, false
}

// poseFacing returns a pose at position with +Y along normal and +Z
// pointing as nearly toward the given point as the normal allows.
func poseFacing(position, normal, toward glm.Vector3) Pose {
	y := normal.Normal()
	z := toward.Sub(position)
	z = z.Sub(y.MulScalar(z.Dot(y)))
	if z.LengthSquared() < 1.0e-12 {
		// toward lies on the normal, any heading works
		z = glm.Vec3(0, 0, 1).Sub(y.MulScalar(y.Z))
		if z.LengthSquared() < 1.0e-12 {
			z = glm.Vec3(1, 0, 0).Sub(y.MulScalar(y.X))
		}
	}
	z = z.Normal()
	x := y.Cross(z)
	var m glm.Matrix4
	m.Set(
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		0, 0, 0, 1,
	)
	var q glm.Quat
	q.SetFromRotationMatrix(&m)
	return Pose{Position: position, Orientation: q}
}
