// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/glm"
)

// Default clip distances for AR scenes.
const (
	NearDefault = 0.1
	FarDefault  = 100
)

// Camera holds the view and projection matrices that project world
// geometry onto the framebuffer.
type Camera struct {
	View       glm.Matrix4
	Projection glm.Matrix4
}

// NewCamera returns a camera with identity matrices.
func NewCamera() *Camera {
	return &Camera{View: glm.Identity4(), Projection: glm.Identity4()}
}

// SetFromAR sets both matrices from a tracked AR camera with the given
// clip distances. A non-positive near or a far at or below near get
// the defaults.
func (c *Camera) SetFromAR(cam *ar.Camera, near, far float32) {
	if near <= 0 {
		near = NearDefault
	}
	if far <= near {
		far = FarDefault
	}
	c.View = cam.ViewMatrix()
	c.Projection = cam.ProjectionMatrix(near, far)
}

// VP returns the combined projection times view matrix.
func (c *Camera) VP() glm.Matrix4 {
	return c.Projection.Mul(&c.View)
}
