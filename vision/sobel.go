// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vision

import (
	"image"
	"math"
)

// sobelEdgeThreshold is the squared gradient magnitude above which a
// pixel counts as an edge.
const sobelEdgeThreshold = 128 * 128

// SobelEdges runs a 3x3 Sobel edge detector over the image, marking
// edge pixels 0xFF on a dark 0x1F background. Border pixels are left
// at zero. The result has its origin at (0, 0).
func SobelEdges(src *image.Gray) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for j := 1; j < h-1; j++ {
		for i := 1; i < w-1; i++ {
			gx, gy := sobelAt(src, b.Min.X+i, b.Min.Y+j)
			out := byte(0x1F)
			if gx*gx+gy*gy > sobelEdgeThreshold {
				out = 0xFF
			}
			dst.Pix[j*dst.Stride+i] = out
		}
	}
	return dst
}

// SobelMagnitudes returns the gradient magnitude at every interior
// pixel, row-major, for gradient statistics. It is nil for images
// smaller than 3x3.
func SobelMagnitudes(src *image.Gray) []float64 {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return nil
	}
	mags := make([]float64, 0, (w-2)*(h-2))
	for j := 1; j < h-1; j++ {
		for i := 1; i < w-1; i++ {
			gx, gy := sobelAt(src, b.Min.X+i, b.Min.Y+j)
			mags = append(mags, math.Sqrt(float64(gx*gx+gy*gy)))
		}
	}
	return mags
}

// sobelAt returns the horizontal and vertical Sobel responses at the
// given interior pixel.
func sobelAt(src *image.Gray, x, y int) (gx, gy int) {
	a00 := int(src.GrayAt(x-1, y-1).Y)
	a01 := int(src.GrayAt(x, y-1).Y)
	a02 := int(src.GrayAt(x+1, y-1).Y)
	a10 := int(src.GrayAt(x-1, y).Y)
	a12 := int(src.GrayAt(x+1, y).Y)
	a20 := int(src.GrayAt(x-1, y+1).Y)
	a21 := int(src.GrayAt(x, y+1).Y)
	a22 := int(src.GrayAt(x+1, y+1).Y)

	// Sobel X:          Sobel Y:
	//   -1  0  1           1  2  1
	//   -2  0  2           0  0  0
	//   -1  0  1          -1 -2 -1
	gx = -a00 - 2*a10 - a20 + a02 + 2*a12 + a22
	gy = a00 + 2*a01 + a02 - a20 - 2*a21 - a22
	return gx, gy
}
