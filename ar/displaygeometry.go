// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import "github.com/go-xr/xr/glm"

// DisplayRotation is the rotation of the display relative to the
// camera sensor's natural (landscape) orientation.
type DisplayRotation int32

const (
	Rotation0 DisplayRotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// Degrees returns the rotation angle in degrees.
func (dr DisplayRotation) Degrees() int {
	return int(dr) * 90
}

func (dr DisplayRotation) String() string {
	switch dr {
	case Rotation0:
		return "Rotation0"
	case Rotation90:
		return "Rotation90"
	case Rotation180:
		return "Rotation180"
	case Rotation270:
		return "Rotation270"
	}
	return "DisplayRotation(invalid)"
}

// DisplayGeometry is the viewport the session renders into: its pixel
// dimensions and its rotation relative to the camera sensor.
type DisplayGeometry struct {

	// Rotation is the display rotation.
	Rotation DisplayRotation `json:"rotation"`

	// Width and Height are the viewport dimensions in pixels, after
	// rotation (portrait viewports have Height > Width).
	Width  int `json:"width"`
	Height int `json:"height"`
}

// transformNDC maps one NDC position to camera-texture UV for this
// display rotation. Texture UV has its origin at the sensor image's
// top-left corner with +V down.
func (dg DisplayGeometry) transformNDC(p glm.Vector2) glm.Vector2 {
	s := (p.X + 1) / 2
	t := 1 - (p.Y+1)/2 // NDC +Y is up, texture +V is down
	switch dg.Rotation {
	case Rotation90:
		return glm.Vec2(t, 1-s)
	case Rotation180:
		return glm.Vec2(1-s, 1-t)
	case Rotation270:
		return glm.Vec2(1-t, s)
	}
	return glm.Vec2(s, t)
}

// TextureTransform returns the affine transform taking NDC positions to
// camera-texture UV coordinates for this display rotation, so that the
// camera image appears upright in the viewport. The matrix is built by
// transforming the basis points (0,0), (1,0) and (0,1).
func (dg DisplayGeometry) TextureTransform() glm.Matrix3 {
	o := dg.transformNDC(glm.Vec2(0, 0))
	px := dg.transformNDC(glm.Vec2(1, 0))
	py := dg.transformNDC(glm.Vec2(0, 1))
	m := glm.Identity3()
	m[0] = px.X - o.X
	m[1] = px.Y - o.Y
	m[3] = py.X - o.X
	m[4] = py.Y - o.Y
	m[6] = o.X
	m[7] = o.Y
	return m
}

// CoordinateSpace is a 2D coordinate space used by
// [Frame.TransformCoordinates2D].
type CoordinateSpace int32

const (
	// SpaceNDC is OpenGL normalized device coordinates: -1..1 with +Y up.
	SpaceNDC CoordinateSpace = iota

	// SpaceView is display pixels: origin at the top-left corner of the
	// viewport with +Y down.
	SpaceView

	// SpaceTexture is camera-texture UV: 0..1 with the origin at the
	// sensor image's top-left corner and +V down.
	SpaceTexture
)

func (cs CoordinateSpace) String() string {
	switch cs {
	case SpaceNDC:
		return "NDC"
	case SpaceView:
		return "View"
	case SpaceTexture:
		return "Texture"
	}
	return "CoordinateSpace(invalid)"
}

// toNDC maps a point in the given space into NDC.
func (dg DisplayGeometry) toNDC(space CoordinateSpace, p glm.Vector2) glm.Vector2 {
	switch space {
	case SpaceView:
		return glm.Vec2(2*p.X/float32(dg.Width)-1, 1-2*p.Y/float32(dg.Height))
	case SpaceTexture:
		inv := dg.TextureTransform().Inverse()
		return inv.MulVector2AsPoint(p)
	}
	return p
}

// fromNDC maps an NDC point into the given space.
func (dg DisplayGeometry) fromNDC(space CoordinateSpace, p glm.Vector2) glm.Vector2 {
	switch space {
	case SpaceView:
		return glm.Vec2((p.X+1)/2*float32(dg.Width), (1-p.Y)/2*float32(dg.Height))
	case SpaceTexture:
		return dg.transformNDC(p)
	}
	return p
}
