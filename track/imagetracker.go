// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package track keeps the application-side bookkeeping for tracked
// content: which augmented images currently have content anchored to
// them, and the working set of anchors placed by screen taps.
package track

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/base/logx"
)

const (
	// TintIntensity scales the per-image tint mixed over rendered
	// content.
	TintIntensity = 0.1

	// TintAlpha is the alpha applied to tinted content.
	TintAlpha = 1.0
)

// tintColors is the per-image palette, RGBA byte order.
var tintColors = [...]uint32{
	0x000000FF, 0xF44336FF, 0xE91E63FF, 0x9C27B0FF,
	0x673AB7FF, 0x3F51B5FF, 0x2196F3FF, 0x03A9F4FF,
	0x00BCD4FF, 0x009688FF, 0x4CAF50FF, 0x8BC34AFF,
	0xCDDC39FF, 0xFFEB3BFF, 0xFFC107FF, 0xFF9800FF,
}

// TintColor returns the tint for a database image index. Indexes cycle
// through a palette of 16 colors.
func TintColor(index int32) color.RGBA {
	i := int(index) % len(tintColors)
	if i < 0 {
		i += len(tintColors)
	}
	c := tintColors[i]
	return color.RGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}

// TrackedImage is one augmented image that currently has content
// anchored to it.
type TrackedImage struct {

	// Image is the tracked image.
	Image *ar.AugmentedImage

	// Anchor holds the content at the image center.
	Anchor *ar.Anchor

	// Tint is the image's palette color.
	Tint color.RGBA
}

// ImageTracker reacts to augmented image events: it anchors content to
// images as they start tracking and drops it again when they stop.
type ImageTracker struct {
	images          map[int32]*TrackedImage
	announced       map[int32]bool
	fitToScanHidden bool
}

// NewImageTracker returns an empty tracker.
func NewImageTracker() *ImageTracker {
	return &ImageTracker{
		images:    make(map[int32]*TrackedImage),
		announced: make(map[int32]bool),
	}
}

// Update folds one frame's augmented image events into the tracker.
// Newly tracking images get an anchor at their center pose; stopped
// images are detached and forgotten.
func (it *ImageTracker) Update(sess *ar.Session, frame *ar.Frame) {
	for _, t := range frame.UpdatedTrackablesOf(ar.KindAugmentedImage) {
		img := t.(*ar.AugmentedImage)
		switch img.TrackingState() {
		case ar.Paused:
			// detected but not yet tracked; no anchor yet
			if !it.announced[img.Index] {
				it.announced[img.Index] = true
				logx.PrintfInfo("Detected Image %d", img.Index)
			}
		case ar.Tracking:
			it.fitToScanHidden = true
			if _, ok := it.images[img.Index]; !ok {
				it.images[img.Index] = &TrackedImage{
					Image:  img,
					Anchor: sess.AttachAnchor(img, img.CenterPose),
					Tint:   TintColor(img.Index),
				}
			}
		case ar.Stopped:
			if ti, ok := it.images[img.Index]; ok {
				ti.Anchor.Detach()
				delete(it.images, img.Index)
			}
			delete(it.announced, img.Index)
		}
	}
}

// Visible returns the tracked images that are currently tracking, in
// database index order. Images paused at their last known pose keep
// their anchor but are not visible.
func (it *ImageTracker) Visible() []*TrackedImage {
	var vis []*TrackedImage
	for _, ti := range it.images {
		if ti.Image.TrackingState() == ar.Tracking {
			vis = append(vis, ti)
		}
	}
	slices.SortFunc(vis, func(a, b *TrackedImage) int {
		return cmp.Compare(a.Image.Index, b.Image.Index)
	})
	return vis
}

// Len returns the number of images currently holding an anchor.
func (it *ImageTracker) Len() int {
	return len(it.images)
}

// FitToScanHidden reports whether any image has ever reached Tracking,
// which permanently hides the fit-to-scan overlay.
func (it *ImageTracker) FitToScanHidden() bool {
	return it.fitToScanHidden
}
