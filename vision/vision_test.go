// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stepImage is black on the left, 200 from column 4 on.
func stepImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := 4; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}
	return img
}

func TestGrayscaleCoefficients(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(2, 0, color.RGBA{B: 255, A: 255})
	img.Set(3, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	g := Grayscale(img)
	assert.Equal(t, uint8(54), g.GrayAt(0, 0).Y)  // 0.213 * 255
	assert.Equal(t, uint8(182), g.GrayAt(1, 0).Y) // 0.715 * 255
	assert.Equal(t, uint8(18), g.GrayAt(2, 0).Y)  // 0.072 * 255
	assert.Equal(t, uint8(255), g.GrayAt(3, 0).Y)
}

func TestGrayscaleOffsetBounds(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	src.SetGray(5, 5, color.Gray{Y: 200})
	sub := src.SubImage(image.Rect(4, 4, 8, 8)).(*image.Gray)

	g := Grayscale(sub)
	assert.Equal(t, image.Rect(0, 0, 4, 4), g.Bounds())
	assert.Equal(t, uint8(200), g.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(0), g.GrayAt(0, 0).Y)
}

func TestSobelEdgesFlat(t *testing.T) {
	flat := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range flat.Pix {
		flat.Pix[i] = 100
	}
	e := SobelEdges(flat)
	assert.Equal(t, uint8(0), e.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), e.GrayAt(7, 7).Y)
	for y := 1; y < 7; y++ {
		for x := 1; x < 7; x++ {
			assert.Equal(t, uint8(0x1F), e.GrayAt(x, y).Y, "pixel %d,%d", x, y)
		}
	}
}

func TestSobelEdgesStep(t *testing.T) {
	e := SobelEdges(stepImage())
	for y := 1; y < 7; y++ {
		assert.Equal(t, uint8(0xFF), e.GrayAt(3, y).Y, "row %d", y)
		assert.Equal(t, uint8(0xFF), e.GrayAt(4, y).Y, "row %d", y)
		assert.Equal(t, uint8(0x1F), e.GrayAt(1, y).Y, "row %d", y)
		assert.Equal(t, uint8(0x1F), e.GrayAt(6, y).Y, "row %d", y)
	}
}

func TestSobelMagnitudes(t *testing.T) {
	assert.Nil(t, SobelMagnitudes(image.NewGray(image.Rect(0, 0, 2, 2))))

	mags := SobelMagnitudes(stepImage())
	assert.Len(t, mags, 36)
	assert.Equal(t, float64(0), mags[0])   // row 1, column 1
	assert.Equal(t, float64(800), mags[2]) // row 1, column 3, across the step
}
