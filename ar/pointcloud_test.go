// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-xr/xr/glm"
	"github.com/stretchr/testify/assert"
)

func TestPointCloud(t *testing.T) {
	var pc PointCloud
	assert.Equal(t, 0, pc.Len())

	pc.Points = []glm.Vector4{{X: 1, Y: 2, Z: 3, W: 0.9}}
	pc.IDs = []int32{42}
	assert.Equal(t, 1, pc.Len())

	f := &Frame{PointCloud: pc}
	got := f.AcquirePointCloud()
	assert.Equal(t, pc.Points, got.Points)
	assert.Equal(t, pc.IDs, got.IDs)

	// the copy is detached from the frame
	got.Points[0].X = -1
	assert.Equal(t, float32(1), f.PointCloud.Points[0].X)
}

func TestDepthImage(t *testing.T) {
	g := image.NewGray16(image.Rect(0, 0, 4, 4))
	g.SetGray16(1, 1, color.Gray16{Y: 1500})

	di := &DepthImage{Depth: g, Timestamp: 12}
	assert.Equal(t, image.Pt(4, 4), di.Size())
	assert.Equal(t, float32(1.5), di.DepthAt(1, 1))
	assert.Equal(t, float32(0), di.DepthAt(0, 0))
	assert.Equal(t, float32(0), di.DepthAt(-1, 2))
	assert.Equal(t, float32(0), di.DepthAt(4, 2))

	// no confidence image means full confidence
	assert.Equal(t, float32(1), di.ConfidenceAt(1, 1))

	c := image.NewGray(image.Rect(0, 0, 4, 4))
	c.SetGray(1, 1, color.Gray{Y: 255})
	c.SetGray(2, 2, color.Gray{Y: 51})
	di.Confidence = c
	assert.Equal(t, float32(1), di.ConfidenceAt(1, 1))
	assert.Equal(t, float32(0.2), di.ConfidenceAt(2, 2))

	var empty DepthImage
	assert.Equal(t, image.Pt(0, 0), empty.Size())
	assert.Equal(t, float32(0), empty.DepthAt(1, 1))
}
