// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagedb

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-xr/xr/base/iox/yamlx"
	"github.com/h2non/filetype"
	"golang.org/x/sync/errgroup"
)

// ManifestEntry names one image to include in a database build.
type ManifestEntry struct {

	// Name is the database entry name.
	Name string `yaml:"name"`

	// Path is the image file, absolute or relative to the manifest.
	Path string `yaml:"path"`

	// WidthM is the physical width of the printed image in meters, or
	// 0 if unknown.
	WidthM float32 `yaml:"width_m"`
}

// Manifest lists the images to build a database from, in index order.
type Manifest []ManifestEntry

// OpenManifest reads a YAML manifest file.
func OpenManifest(filename string) (Manifest, error) {
	var m Manifest
	if err := yamlx.Open(&m, filename); err != nil {
		return nil, err
	}
	return m, nil
}

// BuildFromManifest reads a YAML manifest and builds a database from
// the images it lists. Relative image paths resolve against the
// manifest's directory.
func BuildFromManifest(filename string) (*Database, error) {
	man, err := OpenManifest(filename)
	if err != nil {
		return nil, err
	}
	return Build(filepath.Dir(filename), man)
}

// Build builds a database from the manifest entries, resolving
// relative paths against dir. Images load and decode concurrently;
// entries keep manifest order regardless of completion order.
func Build(dir string, man Manifest) (*Database, error) {
	imgs := make([]image.Image, len(man))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, me := range man {
		g.Go(func() error {
			path := me.Path
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			img, err := loadImage(path)
			if err != nil {
				return fmt.Errorf("%q: %w", me.Name, err)
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	db := New()
	for i, me := range man {
		if _, err := db.Add(me.Name, imgs[i], me.WidthM); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// loadImage reads and decodes one image file, rejecting non-image
// content by sniffing before decoding.
func loadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("imagedb: %s is not a supported image format", path)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}
