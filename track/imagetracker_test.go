// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import (
	"image/color"
	"testing"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/glm"
	"github.com/stretchr/testify/assert"
)

func imgFrame(imgs ...*ar.AugmentedImage) *ar.Frame {
	f := &ar.Frame{}
	for _, im := range imgs {
		f.UpdatedTrackables = append(f.UpdatedTrackables, im)
	}
	return f
}

func TestImageTrackerLifecycle(t *testing.T) {
	sess := ar.NewSession()
	it := NewImageTracker()

	// detected but not yet tracked: announced, no anchor
	img := &ar.AugmentedImage{
		TrackableBase:  ar.TrackableBase{ID: 10, State: ar.Paused},
		Index:          2,
		Name:           "earth",
		TrackingMethod: ar.ImageNotTracking,
	}
	it.Update(sess, imgFrame(img))
	assert.Empty(t, it.Visible())
	assert.Equal(t, 0, it.Len())
	assert.False(t, it.FitToScanHidden())
	assert.Empty(t, sess.Anchors())

	// first Tracking sighting anchors content at the image center
	img.State = ar.Tracking
	img.TrackingMethod = ar.ImageFullTracking
	img.CenterPose = ar.NewPose(glm.Vec3(0, 0, -2), glm.NewQuat(0, 0, 0, 1))
	it.Update(sess, imgFrame(img))
	vis := it.Visible()
	assert.Equal(t, 1, len(vis))
	assert.True(t, it.FitToScanHidden())
	assert.Equal(t, 1, len(sess.Anchors()))
	anchor := vis[0].Anchor
	assert.Equal(t, glm.Vec3(0, 0, -2), anchor.Pose().Position)
	assert.Equal(t, TintColor(2), vis[0].Tint)

	// repeat sightings keep the same anchor
	it.Update(sess, imgFrame(img))
	assert.Equal(t, 1, len(sess.Anchors()))
	assert.Same(t, anchor, it.Visible()[0].Anchor)

	// last-known-pose images keep their anchor but are not visible
	img.State = ar.Paused
	img.TrackingMethod = ar.ImageLastKnownPose
	it.Update(sess, imgFrame(img))
	assert.Empty(t, it.Visible())
	assert.Equal(t, 1, it.Len())
	assert.Equal(t, 1, len(sess.Anchors()))
	assert.True(t, it.FitToScanHidden())

	// stopping detaches the anchor and forgets the image
	img.State = ar.Stopped
	it.Update(sess, imgFrame(img))
	assert.Empty(t, it.Visible())
	assert.Equal(t, 0, it.Len())
	assert.Empty(t, sess.Anchors())
	assert.Equal(t, ar.Stopped, anchor.TrackingState())

	// re-detection gets a fresh anchor
	img.State = ar.Tracking
	it.Update(sess, imgFrame(img))
	assert.Equal(t, 1, len(it.Visible()))
	assert.NotSame(t, anchor, it.Visible()[0].Anchor)
	assert.Equal(t, 1, len(sess.Anchors()))
}

func TestImageTrackerOrder(t *testing.T) {
	sess := ar.NewSession()
	it := NewImageTracker()

	second := &ar.AugmentedImage{TrackableBase: ar.TrackableBase{ID: 11, State: ar.Tracking}, Index: 5}
	first := &ar.AugmentedImage{TrackableBase: ar.TrackableBase{ID: 12, State: ar.Tracking}, Index: 1}
	it.Update(sess, imgFrame(second, first))

	vis := it.Visible()
	assert.Equal(t, 2, len(vis))
	assert.Equal(t, int32(1), vis[0].Image.Index)
	assert.Equal(t, int32(5), vis[1].Image.Index)
	assert.Equal(t, 2, len(sess.Anchors()))
}

func TestTintColor(t *testing.T) {
	assert.Equal(t, color.RGBA{A: 255}, TintColor(0))
	assert.Equal(t, color.RGBA{R: 0xF4, G: 0x43, B: 0x36, A: 255}, TintColor(1))
	assert.Equal(t, color.RGBA{R: 0x8B, G: 0xC3, B: 0x4A, A: 255}, TintColor(11))
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x98, B: 0x00, A: 255}, TintColor(15))

	// indexes cycle through the palette
	assert.Equal(t, TintColor(1), TintColor(17))
}
