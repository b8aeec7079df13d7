// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagedb

import (
	"image"

	"github.com/go-xr/xr/base/logx"
	"github.com/go-xr/xr/vision"
	"gonum.org/v1/gonum/stat"
)

// GoodScore is the quality score below which an image is likely to
// track poorly.
const GoodScore = 75

// Normalization scales for the gradient statistics. A richly textured
// photo saturates both.
const (
	scoreMeanScale = 120
	scoreStdScale  = 160
)

// Score rates how well the grayscale image will track, from 0 (flat,
// untrackable) to 100. The score blends the mean Sobel gradient
// magnitude with its standard deviation, so it rewards images that
// have strong feature edges spread unevenly, like photos and detailed
// artwork. Images under [MinDim] pixels score 0. Scores below
// [GoodScore] log a warning.
func Score(img *image.Gray) float64 {
	sz := img.Bounds().Size()
	if sz.X < MinDim || sz.Y < MinDim {
		logx.PrintfWarn("imagedb: image is %dx%d, need at least %dx%d to track", sz.X, sz.Y, MinDim, MinDim)
		return 0
	}
	mags := vision.SobelMagnitudes(img)
	if len(mags) == 0 {
		return 0
	}
	mean := stat.Mean(mags, nil)
	std := stat.StdDev(mags, nil)
	s := 100 * (0.7*min(mean/scoreMeanScale, 1) + 0.3*min(std/scoreStdScale, 1))
	if s < GoodScore {
		logx.PrintfWarn("imagedb: image scores %.0f/100, below the recommended %d; it may track poorly", s, GoodScore)
	}
	return s
}
