// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

// LightEstimateState is the validity of a [LightEstimate].
type LightEstimateState int32

const (
	// LightEstimateInvalid means the estimate should not be used
	// for rendering.
	LightEstimateInvalid LightEstimateState = iota

	// LightEstimateValid means the estimate is current.
	LightEstimateValid
)

func (ls LightEstimateState) String() string {
	switch ls {
	case LightEstimateInvalid:
		return "Invalid"
	case LightEstimateValid:
		return "Valid"
	}
	return "LightEstimateState(invalid)"
}

// LightEstimate is the ambient lighting estimate for one frame.
type LightEstimate struct {

	// State is the validity of this estimate.
	State LightEstimateState `json:"state"`

	// PixelIntensity is the average luminosity of the camera image,
	// in the 0..1 range with 0.18 as an "average" scene.
	PixelIntensity float32 `json:"pixel_intensity"`

	// ColorCorrection is the RGB scaling to apply to rendered content
	// to match the scene's white balance, plus the intensity replicated
	// in the fourth component.
	ColorCorrection [4]float32 `json:"color_correction"`
}

// DefaultLightEstimate returns a valid estimate with neutral color
// correction and a pixel intensity of 0.8.
func DefaultLightEstimate() LightEstimate {
	return LightEstimate{
		State:           LightEstimateValid,
		PixelIntensity:  0.8,
		ColorCorrection: [4]float32{1, 1, 1, 1},
	}
}
