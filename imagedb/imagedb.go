// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagedb builds and stores augmented-image reference
// databases: named grayscale images that sessions detect and track by
// index. Databases build from YAML manifests of image files and save
// to a compact checksummed binary format.
package imagedb

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/go-xr/xr/vision"
)

const (
	// Ext is the standard database filename extension.
	Ext = ".imgdb"

	// MinDim is the smallest acceptable dimension in pixels for a
	// reference image. Smaller images do not carry enough detail to
	// track.
	MinDim = 300

	// MaxStoredDim caps the long side of the stored grayscale; larger
	// images are downscaled on Add.
	MaxStoredDim = 512
)

// Entry is one reference image in a database.
type Entry struct {

	// Name is the lookup name, unique within a database.
	Name string

	// WidthMeters is the physical width of the printed image, or 0 if
	// unknown.
	WidthMeters float32

	// Gray is the stored grayscale, downscaled to at most
	// [MaxStoredDim] on the long side.
	Gray *image.Gray

	// FullW and FullH are the image dimensions in pixels before
	// downscaling. Databases loaded from disk report the stored
	// dimensions.
	FullW int
	FullH int
}

// Database is an ordered set of reference images. An entry's index is
// its insertion order; trackers and recordings key on that index.
type Database struct {
	entries []*Entry
	byName  map[string]int
}

// New returns an empty database.
func New() *Database {
	return &Database{byName: map[string]int{}}
}

// Len returns the number of entries.
func (db *Database) Len() int {
	return len(db.entries)
}

// Entry returns the entry at the given index, or nil if out of range.
func (db *Database) Entry(index int) *Entry {
	if index < 0 || index >= len(db.entries) {
		return nil
	}
	return db.entries[index]
}

// ByName returns the named entry and its index, or (nil, -1) if there
// is no such entry.
func (db *Database) ByName(name string) (*Entry, int) {
	i, ok := db.byName[name]
	if !ok {
		return nil, -1
	}
	return db.entries[i], i
}

// Names returns the entry names in index order.
func (db *Database) Names() []string {
	ns := make([]string, len(db.entries))
	for i, e := range db.entries {
		ns[i] = e.Name
	}
	return ns
}

// Add converts the image to grayscale, downscales it to at most
// [MaxStoredDim] on the long side, and appends it under the given
// name, returning the new entry's index. The image must be at least
// [MinDim] pixels on both sides and the name must be new.
func (db *Database) Add(name string, img image.Image, widthMeters float32) (int, error) {
	if name == "" {
		return -1, fmt.Errorf("imagedb: empty image name")
	}
	if _, ok := db.byName[name]; ok {
		return -1, fmt.Errorf("imagedb: duplicate image name %q", name)
	}
	sz := img.Bounds().Size()
	if sz.X < MinDim || sz.Y < MinDim {
		return -1, fmt.Errorf("imagedb: image %q is %dx%d, need at least %dx%d", name, sz.X, sz.Y, MinDim, MinDim)
	}
	scaled := img
	if long := max(sz.X, sz.Y); long > MaxStoredDim {
		s := float64(MaxStoredDim) / float64(long)
		w := max(1, int(float64(sz.X)*s+0.5))
		h := max(1, int(float64(sz.Y)*s+0.5))
		scaled = transform.Resize(img, w, h, transform.Linear)
	}
	e := &Entry{
		Name:        name,
		WidthMeters: widthMeters,
		Gray:        vision.Grayscale(scaled),
		FullW:       sz.X,
		FullH:       sz.Y,
	}
	if db.byName == nil {
		db.byName = map[string]int{}
	}
	i := len(db.entries)
	db.entries = append(db.entries, e)
	db.byName[name] = i
	return i, nil
}
