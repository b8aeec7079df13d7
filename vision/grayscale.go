// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vision has small CPU-side image analysis helpers: grayscale
// conversion and Sobel edge detection, shared by the image database
// quality scoring and the edge detect example.
package vision

import (
	"image"
	"image/color"
	"image/draw"
)

// Grayscale converts the image to 8-bit grayscale using Rec.709 luma
// coefficients (0.213 r + 0.715 g + 0.072 b). The result has its
// origin at (0, 0).
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.Gray); ok {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			l := 0.213*float32(r>>8) + 0.715*float32(g>>8) + 0.072*float32(bl>>8)
			dst.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: uint8(l + 0.5)})
		}
	}
	return dst
}
