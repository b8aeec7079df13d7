// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import "github.com/go-xr/xr/glm"

// Pose is a rigid transformation from a local coordinate frame to the
// world frame, as a position and an orientation. World space is
// right-handed with Y up and -Z forward, in meters.
//
// The zero value has a zero orientation, which is not a valid rotation;
// use [PoseIdentity] or one of the constructors.
type Pose struct {

	// Position is the translation component, in world meters.
	Position glm.Vector3

	// Orientation is the rotation component, as a unit quaternion.
	Orientation glm.Quat
}

// PoseIdentity returns the identity pose.
func PoseIdentity() Pose {
	p := Pose{}
	p.Orientation.SetIdentity()
	return p
}

// NewPose returns a pose with the given position and orientation.
func NewPose(position glm.Vector3, orientation glm.Quat) Pose {
	return Pose{Position: position, Orientation: orientation}
}

// PoseFromRaw returns the pose encoded in the raw 7-float interchange
// order [qx, qy, qz, qw, tx, ty, tz].
func PoseFromRaw(raw [7]float32) Pose {
	return Pose{
		Position:    glm.Vec3(raw[4], raw[5], raw[6]),
		Orientation: glm.NewQuat(raw[0], raw[1], raw[2], raw[3]),
	}
}

// Raw returns this pose in the raw 7-float interchange order
// [qx, qy, qz, qw, tx, ty, tz].
func (p Pose) Raw() [7]float32 {
	return [7]float32{
		p.Orientation.X, p.Orientation.Y, p.Orientation.Z, p.Orientation.W,
		p.Position.X, p.Position.Y, p.Position.Z,
	}
}

// Matrix returns this pose as a column-major 4x4 transformation matrix.
func (p Pose) Matrix() glm.Matrix4 {
	m := glm.Matrix4{}
	m.SetTransform(p.Position, p.Orientation, glm.Vec3(1, 1, 1))
	return m
}

// Inverse returns the pose that undoes this one.
func (p Pose) Inverse() Pose {
	iq := p.Orientation.Inverse()
	return Pose{
		Position:    p.Position.Negate().MulQuat(iq),
		Orientation: iq,
	}
}

// Mul returns the composition of this pose with the other given pose,
// applying other in this pose's local frame, equivalent to multiplying
// the corresponding matrices.
func (p Pose) Mul(other Pose) Pose {
	return Pose{
		Position:    p.TransformPoint(other.Position),
		Orientation: p.Orientation.Mul(other.Orientation),
	}
}

// TransformPoint transforms the given local point into world space.
func (p Pose) TransformPoint(pt glm.Vector3) glm.Vector3 {
	return pt.MulQuat(p.Orientation).Add(p.Position)
}

// TransformVector transforms the given local direction vector into
// world space, applying only the rotation.
func (p Pose) TransformVector(v glm.Vector3) glm.Vector3 {
	return v.MulQuat(p.Orientation)
}

// XAxis returns the world-space direction of this pose's local +X axis.
func (p Pose) XAxis() glm.Vector3 {
	return p.TransformVector(glm.Vec3(1, 0, 0))
}

// YAxis returns the world-space direction of this pose's local +Y axis.
// For a plane pose, this is the plane normal.
func (p Pose) YAxis() glm.Vector3 {
	return p.TransformVector(glm.Vec3(0, 1, 0))
}

// ZAxis returns the world-space direction of this pose's local +Z axis.
// For a hit pose, this points toward the device.
func (p Pose) ZAxis() glm.Vector3 {
	return p.TransformVector(glm.Vec3(0, 0, 1))
}
