// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package model defines versioned, JSON-serializable brush models.
//
// A brush model is selected by its integer "version" field. Each version
// is a distinct Go type implementing BrushModel; decoding is a closed
// switch over known versions. New versions are added as new types and
// existing ones are never changed or migrated in place.
//
// Models are immutable values and safe for concurrent use.
package model

import "math"

// BrushModel is the surface shared by all brush model versions.
// The set of implementations is closed: only types of this package
// implement it.
type BrushModel interface {
	// Version returns the version tag of the concrete model.
	Version() Version

	// BaseModel returns the scale parameters shared by all versions.
	BaseModel() Base

	// WithScale returns a copy with scale clamped to [MinScale, MaxScale].
	WithScale(scale float64) BrushModel

	// ImageURLKeys returns the JSON keys of properties holding image URLs.
	ImageURLKeys() []string

	// ImageURLs returns the non-empty image URLs keyed by ImageURLKeys.
	ImageURLs() map[string]string

	// Validate checks all fields and returns an *Error for the first
	// invalid one.
	Validate() error

	brushModel()
}

// Base holds the parameters common to every version.
type Base struct {
	// Scale of the brush stroke. A value of 1 yields brush tips with edge
	// length 1 in stroke geometry units.
	Scale float64 `json:"scale"`

	// MinScale is the lower bound for Scale.
	MinScale float64 `json:"minScale"`

	// MaxScale is the upper bound for Scale.
	MaxScale float64 `json:"maxScale"`
}

// DefaultBase returns scale 1 within [0, math.MaxFloat64].
func DefaultBase() Base {
	return Base{Scale: 1, MinScale: 0, MaxScale: math.MaxFloat64}
}

func (b Base) clampScale(s float64) float64 {
	return math.Min(math.Max(s, b.MinScale), b.MaxScale)
}

func (b Base) validate() error {
	if !(b.MinScale >= 0) {
		return fieldError("minScale", "must be non-negative, got %v", b.MinScale)
	}
	if !(b.MaxScale >= b.MinScale) {
		return fieldError("maxScale", "must be at least minScale %v, got %v", b.MinScale, b.MaxScale)
	}
	if !(b.Scale >= b.MinScale && b.Scale <= b.MaxScale) {
		return fieldError("scale", "must be in [%v, %v], got %v", b.MinScale, b.MaxScale, b.Scale)
	}
	return nil
}
