// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package depth turns raw 16-bit depth images into camera and world
// space point clouds.
package depth

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/go-xr/xr/ar"
	"github.com/go-xr/xr/glm"
)

// Image is the raw depth frame: 16-bit depth in millimeters with
// optional 8-bit confidence.
type Image = ar.DepthImage

// MaxPointsDefault bounds the number of points ReprojectPoints
// produces when the caller passes no limit.
const MaxPointsDefault = 15000

// ReprojectPoints unprojects the depth image into camera-space points
// through the pinhole model. The camera intrinsics are scaled from the
// camera image dimensions down to the depth image dimensions. Each
// point is (x, y, z) in meters in the camera frame, z negative ahead,
// with the depth confidence in W. Pixels with no depth are skipped,
// and the image is subsampled on a regular grid so that at most
// maxPoints points come back (MaxPointsDefault if maxPoints <= 0).
func ReprojectPoints(img *Image, intr ar.Intrinsics, maxPoints int) []glm.Vector4 {
	if img == nil || img.Depth == nil {
		return nil
	}
	if maxPoints <= 0 {
		maxPoints = MaxPointsDefault
	}
	sz := img.Size()
	w, h := sz.X, sz.Y
	if w == 0 || h == 0 || intr.Width == 0 || intr.Height == 0 {
		return nil
	}

	sx := float32(w) / float32(intr.Width)
	sy := float32(h) / float32(intr.Height)
	fx := intr.Fx * sx
	fy := intr.Fy * sy
	cx := intr.Cx * sx
	cy := intr.Cy * sy

	step := 1
	if w*h > maxPoints {
		step = int(glm.Ceil(glm.Sqrt(float32(w*h) / float32(maxPoints))))
	}

	pts := make([]glm.Vector4, 0, min(w*h/(step*step)+1, maxPoints))
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			d := img.DepthAt(x, y)
			if d <= 0 {
				continue
			}
			pts = append(pts, glm.Vector4{
				X: (float32(x) - cx) * d / fx,
				Y: (cy - float32(y)) * d / fy,
				Z: -d,
				W: img.ConfidenceAt(x, y),
			})
			if len(pts) == maxPoints {
				return pts
			}
		}
	}
	return pts
}

// WorldPoints transforms camera-space points into world space with the
// camera pose at acquisition, keeping confidence in W.
func WorldPoints(points []glm.Vector4, cameraPose ar.Pose) []glm.Vector4 {
	out := make([]glm.Vector4, len(points))
	for i, p := range points {
		wp := cameraPose.TransformPoint(glm.Vec3(p.X, p.Y, p.Z))
		out[i] = glm.Vector4{X: wp.X, Y: wp.Y, Z: wp.Z, W: p.W}
	}
	return out
}

// Stats summarizes the depth distribution of a point cloud for HUD
// display.
type Stats struct {

	// Count is the number of points.
	Count int

	// Min, Max, and Mean are distances ahead of the camera in meters.
	Min, Max, Mean float32
}

// Summary computes depth statistics over camera-space points, reading
// each point's distance ahead as -Z. An empty cloud gives zero stats.
func Summary(points []glm.Vector4) Stats {
	if len(points) == 0 {
		return Stats{}
	}
	ds := make([]float64, len(points))
	for i, p := range points {
		ds[i] = float64(-p.Z)
	}
	return Stats{
		Count: len(points),
		Min:   float32(floats.Min(ds)),
		Max:   float32(floats.Max(ds)),
		Mean:  float32(stat.Mean(ds, nil)),
	}
}

func (s Stats) String() string {
	if s.Count == 0 {
		return "no depth points"
	}
	return fmt.Sprintf("%d points, %.2f-%.2fm, mean %.2fm", s.Count, s.Min, s.Max, s.Mean)
}
