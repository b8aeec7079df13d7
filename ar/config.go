// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ar

// PlaneFindingMode controls plane detection.
type PlaneFindingMode int32

const (
	// PlaneFindingDisabled turns plane detection off.
	PlaneFindingDisabled PlaneFindingMode = iota

	// PlaneFindingHorizontal detects horizontal planes only.
	PlaneFindingHorizontal

	// PlaneFindingVertical detects vertical planes only.
	PlaneFindingVertical

	// PlaneFindingHorizontalAndVertical detects both.
	PlaneFindingHorizontalAndVertical
)

func (pf PlaneFindingMode) String() string {
	switch pf {
	case PlaneFindingDisabled:
		return "Disabled"
	case PlaneFindingHorizontal:
		return "Horizontal"
	case PlaneFindingVertical:
		return "Vertical"
	case PlaneFindingHorizontalAndVertical:
		return "HorizontalAndVertical"
	}
	return "PlaneFindingMode(invalid)"
}

// LightEstimationMode controls lighting estimation.
type LightEstimationMode int32

const (
	// LightEstimationDisabled turns lighting estimation off; frames
	// carry an invalid [LightEstimate].
	LightEstimationDisabled LightEstimationMode = iota

	// LightEstimationAmbientIntensity estimates a single pixel intensity
	// and color correction per frame.
	LightEstimationAmbientIntensity
)

func (le LightEstimationMode) String() string {
	switch le {
	case LightEstimationDisabled:
		return "Disabled"
	case LightEstimationAmbientIntensity:
		return "AmbientIntensity"
	}
	return "LightEstimationMode(invalid)"
}

// DepthMode controls depth acquisition.
type DepthMode int32

const (
	// DepthDisabled turns depth off; frames carry no [DepthImage].
	DepthDisabled DepthMode = iota

	// DepthAutomatic provides depth images on frames when available.
	DepthAutomatic

	// DepthRawOnly provides only raw (unsmoothed) depth images.
	DepthRawOnly
)

func (dm DepthMode) String() string {
	switch dm {
	case DepthDisabled:
		return "Disabled"
	case DepthAutomatic:
		return "Automatic"
	case DepthRawOnly:
		return "RawDepthOnly"
	}
	return "DepthMode(invalid)"
}

// InstantPlacementMode controls instant placement hit testing.
type InstantPlacementMode int32

const (
	// InstantPlacementDisabled turns instant placement off;
	// [Frame.HitTestInstantPlacement] returns no results.
	InstantPlacementDisabled InstantPlacementMode = iota

	// InstantPlacementLocalYUp enables instant placement with the
	// point's +Y axis matching world up.
	InstantPlacementLocalYUp
)

func (ip InstantPlacementMode) String() string {
	switch ip {
	case InstantPlacementDisabled:
		return "Disabled"
	case InstantPlacementLocalYUp:
		return "LocalYUp"
	}
	return "InstantPlacementMode(invalid)"
}

// FocusMode controls camera focus.
type FocusMode int32

const (
	// FocusFixed locks focus, best for stable tracking.
	FocusFixed FocusMode = iota

	// FocusAuto enables continuous autofocus.
	FocusAuto
)

func (fm FocusMode) String() string {
	switch fm {
	case FocusFixed:
		return "Fixed"
	case FocusAuto:
		return "Auto"
	}
	return "FocusMode(invalid)"
}

// UpdateMode controls the pacing behavior of [Session.Update].
type UpdateMode int32

const (
	// UpdateBlocking makes Update wait for a new frame from the source.
	UpdateBlocking UpdateMode = iota

	// UpdateLatestCameraImage makes Update return immediately with the
	// most recent frame when the source supports skipping.
	UpdateLatestCameraImage
)

func (um UpdateMode) String() string {
	switch um {
	case UpdateBlocking:
		return "Blocking"
	case UpdateLatestCameraImage:
		return "LatestCameraImage"
	}
	return "UpdateMode(invalid)"
}

// Config selects the features a [Session] provides. Set it with
// [Session.Configure]; the session keeps its own deep copy.
type Config struct {

	// PlaneFinding controls plane detection.
	PlaneFinding PlaneFindingMode `toml:"plane_finding" yaml:"plane_finding"`

	// LightEstimation controls lighting estimation.
	LightEstimation LightEstimationMode `toml:"light_estimation" yaml:"light_estimation"`

	// DepthMode controls depth acquisition.
	DepthMode DepthMode `toml:"depth_mode" yaml:"depth_mode"`

	// InstantPlacement controls instant placement hit testing.
	InstantPlacement InstantPlacementMode `toml:"instant_placement" yaml:"instant_placement"`

	// FocusMode controls camera focus.
	FocusMode FocusMode `toml:"focus_mode" yaml:"focus_mode"`

	// UpdateMode controls frame pacing in Update.
	UpdateMode UpdateMode `toml:"update_mode" yaml:"update_mode"`

	// AugmentedImageDatabase is the path of the image database file to
	// detect images from, or empty for no image tracking.
	AugmentedImageDatabase string `toml:"augmented_image_database" yaml:"augmented_image_database"`
}

// DefaultConfig returns the default session configuration: both plane
// orientations, ambient intensity light estimation, depth and instant
// placement off, fixed focus, blocking updates.
func DefaultConfig() *Config {
	return &Config{
		PlaneFinding:    PlaneFindingHorizontalAndVertical,
		LightEstimation: LightEstimationAmbientIntensity,
	}
}
