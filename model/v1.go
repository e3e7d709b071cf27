// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"math"

	"github.com/gogpu/brush/pipeline"
)

// V1 is version 1 of the brush model: brush tips placed along the stroke
// with random duplication, jitter, tapering, flow and color dynamics.
//
// V1 is a comparable value; two models are equal if all fields are equal.
type V1 struct {
	Base

	// RandomInitialSeed selects InitialSeed as the seed of all random
	// values. When false the seed is 0.
	RandomInitialSeed bool   `json:"randomInitialSeed"`
	InitialSeed       uint64 `json:"initialSeed"`

	// Brush tip pattern.
	Spacing                    float64 `json:"spacing"`
	NumberOfSamplesPerSequence int     `json:"numberOfSamplesPerSequence"`
	SequenceDistance           float64 `json:"sequenceDistance"`

	// Brush tip duplications.
	MinCount int `json:"minCount"`
	MaxCount int `json:"maxCount"`

	// Random translation, rotation (radians in [0, 2π)) and scaling.
	MinDistanceJitterFactor float64 `json:"minDistanceJitterFactor"`
	MaxDistanceJitterFactor float64 `json:"maxDistanceJitterFactor"`
	MinAngle                float64 `json:"minAngle"`
	MaxAngle                float64 `json:"maxAngle"`
	MinScaleJitter          float64 `json:"minScaleJitter"`
	MaxScaleJitter          float64 `json:"maxScaleJitter"`

	// Tapering.
	LengthOfStartTapering      float64 `json:"lengthOfStartTapering"`
	LengthOfEndTapering        float64 `json:"lengthOfEndTapering"`
	MinimumTaperingScaleFactor float64 `json:"minimumTaperingScaleFactor"`
	TaperingExponent           float64 `json:"taperingExponent"`

	// Flow.
	Flow         float64 `json:"flow"`
	MinFlow      float64 `json:"minFlow"`
	MaxFlow      float64 `json:"maxFlow"`
	FlowExponent float64 `json:"flowExponent"`

	// Color is the RGB base tint with components in [0, 1].
	Color            [3]float64 `json:"color"`
	BrightnessJitter float64    `json:"brightnessJitter"`
	HueJitter        float64    `json:"hueJitter"`
	SaturationJitter float64    `json:"saturationJitter"`

	// Hardness of the brush tip edge in [0, 1].
	Hardness float64 `json:"hardness"`

	// Texture mapping.
	SourceType            pipeline.SourceType `json:"sourceType"`
	BrushTipImageURL      string              `json:"brushTipImageURL"`
	BrushTipImageGridSize [2]int              `json:"brushTipImageGridSize"`
	OverlayImageURL       string              `json:"overlayImageURL"`

	BlendMode pipeline.BlendMode `json:"blendMode"`

	// Edge avoidance.
	EdgeAvoidance               float64 `json:"edgeAvoidance"`
	EdgeAvoidanceSamplingOffset float64 `json:"edgeAvoidanceSamplingOffset"`
}

// JSON keys of the V1 image URL properties.
const (
	KeyBrushTipImageURL = "brushTipImageURL"
	KeyOverlayImageURL  = "overlayImageURL"
)

// MaxGridCells bounds the number of cells of a brush tip image grid.
const MaxGridCells = 1 << 16

// DefaultV1 returns the V1 model every decoded V1 starts from: a solid
// black, hard, round-free brush tip of scale 1 without any randomness.
func DefaultV1() V1 {
	return V1{
		Base:                       DefaultBase(),
		Spacing:                    1,
		NumberOfSamplesPerSequence: 1,
		SequenceDistance:           1,
		MinCount:                   1,
		MaxCount:                   1,
		MinScaleJitter:             1,
		MaxScaleJitter:             1,
		MinimumTaperingScaleFactor: 1,
		TaperingExponent:           1,
		Flow:                       1,
		MinFlow:                    0,
		MaxFlow:                    1,
		FlowExponent:               1,
		Hardness:                   1,
		SourceType:                 pipeline.SourceColor,
		BrushTipImageGridSize:      [2]int{1, 1},
		BlendMode:                  pipeline.BlendNormal,
	}
}

// Version implements BrushModel.
func (V1) Version() Version { return VersionV1 }

// BaseModel implements BrushModel.
func (m V1) BaseModel() Base { return m.Base }

// WithScale implements BrushModel.
func (m V1) WithScale(scale float64) BrushModel {
	m.Scale = m.clampScale(scale)
	return m
}

// ImageURLKeys implements BrushModel.
func (V1) ImageURLKeys() []string {
	return []string{KeyBrushTipImageURL, KeyOverlayImageURL}
}

// ImageURLs implements BrushModel.
func (m V1) ImageURLs() map[string]string {
	urls := make(map[string]string, 2)
	if m.BrushTipImageURL != "" {
		urls[KeyBrushTipImageURL] = m.BrushTipImageURL
	}
	if m.OverlayImageURL != "" {
		urls[KeyOverlayImageURL] = m.OverlayImageURL
	}
	return urls
}

// Seed returns the seed for all random values of the brush.
func (m V1) Seed() uint64 {
	if m.RandomInitialSeed {
		return m.InitialSeed
	}
	return 0
}

// HasColorJitter reports whether any of the HSB jitters is non-zero.
func (m V1) HasColorJitter() bool {
	return m.BrightnessJitter > 0 || m.HueJitter > 0 || m.SaturationJitter > 0
}

func (V1) brushModel() {}

// v1JSON has V1's fields without its methods.
type v1JSON V1

// MarshalJSON encodes the model with its version field.
func (m V1) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version Version `json:"version"`
		v1JSON
	}{VersionV1, v1JSON(m)})
}

// Validate implements BrushModel.
func (m V1) Validate() error {
	if err := m.Base.validate(); err != nil {
		return err
	}

	checks := []struct {
		key    string
		v      float64
		lo, hi float64
	}{
		{"spacing", m.Spacing, 0, math.MaxFloat64},
		{"sequenceDistance", m.SequenceDistance, 0, math.MaxFloat64},
		{"minDistanceJitterFactor", m.MinDistanceJitterFactor, 0, math.MaxFloat64},
		{"maxDistanceJitterFactor", m.MaxDistanceJitterFactor, m.MinDistanceJitterFactor, math.MaxFloat64},
		{"minAngle", m.MinAngle, 0, math.Nextafter(2*math.Pi, 0)},
		{"maxAngle", m.MaxAngle, m.MinAngle, math.Nextafter(2*math.Pi, 0)},
		{"minScaleJitter", m.MinScaleJitter, 0, 1},
		{"maxScaleJitter", m.MaxScaleJitter, 1, math.MaxFloat64},
		{"lengthOfStartTapering", m.LengthOfStartTapering, 0, math.MaxFloat64},
		{"lengthOfEndTapering", m.LengthOfEndTapering, 0, math.MaxFloat64},
		{"minimumTaperingScaleFactor", m.MinimumTaperingScaleFactor, 0, 1},
		{"minFlow", m.MinFlow, 0, 1},
		{"maxFlow", m.MaxFlow, m.MinFlow, 1},
		{"flow", m.Flow, m.MinFlow, m.MaxFlow},
		{"brightnessJitter", m.BrightnessJitter, 0, 1},
		{"hueJitter", m.HueJitter, 0, 1},
		{"saturationJitter", m.SaturationJitter, 0, 1},
		{"hardness", m.Hardness, 0, 1},
		{"edgeAvoidance", m.EdgeAvoidance, 0, 1},
		{"edgeAvoidanceSamplingOffset", m.EdgeAvoidanceSamplingOffset, 0, math.MaxFloat64},
	}
	for _, c := range checks {
		if !(c.v >= c.lo && c.v <= c.hi) {
			return fieldError(c.key, "must be in [%v, %v], got %v", c.lo, c.hi, c.v)
		}
	}
	if !(m.TaperingExponent > 0) {
		return fieldError("taperingExponent", "must be positive, got %v", m.TaperingExponent)
	}
	if !(m.FlowExponent > 0) {
		return fieldError("flowExponent", "must be positive, got %v", m.FlowExponent)
	}
	for _, c := range m.Color {
		if !(c >= 0 && c <= 1) {
			return fieldError("color", "components must be in [0, 1], got %v", m.Color)
		}
	}
	if m.NumberOfSamplesPerSequence < 1 {
		return fieldError("numberOfSamplesPerSequence", "must be positive, got %d", m.NumberOfSamplesPerSequence)
	}
	if m.MinCount < 0 || m.MaxCount < m.MinCount {
		return fieldError("maxCount", "count range [%d, %d] is invalid", m.MinCount, m.MaxCount)
	}
	cols, rows := m.BrushTipImageGridSize[0], m.BrushTipImageGridSize[1]
	if cols < 1 || rows < 1 {
		return fieldError("brushTipImageGridSize", "columns and rows must be positive, got %v", m.BrushTipImageGridSize)
	}
	if cols > MaxGridCells || rows > MaxGridCells || cols*rows > MaxGridCells {
		return fieldError("brushTipImageGridSize", "at most %d cells, got %v", MaxGridCells, m.BrushTipImageGridSize)
	}
	switch m.SourceType {
	case pipeline.SourceColor:
	case pipeline.SourceTexture:
		if m.BrushTipImageURL == "" {
			return fieldError(KeyBrushTipImageURL, "required for source type %v", m.SourceType)
		}
	case pipeline.SourceOverlay:
		if m.OverlayImageURL == "" {
			return fieldError(KeyOverlayImageURL, "required for source type %v", m.SourceType)
		}
	default:
		return fieldError("sourceType", "unknown source type %v", m.SourceType)
	}
	if _, err := m.BlendMode.MarshalText(); err != nil {
		return fieldError("blendMode", "unknown blend mode %v", m.BlendMode)
	}
	return nil
}
