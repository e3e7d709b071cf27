// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package attribute

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/gpustruct"
	"github.com/gogpu/brush/random"
)

// JitteredColorStruct holds an RGBA color with 8 bits per channel.
// Alpha is always 255.
var JitteredColorStruct = gpustruct.New("jitteredColor",
	gpustruct.Field{Name: "color", Format: gputypes.VertexFormatUnorm8x4},
)

func init() {
	gpustruct.Register(JitteredColorStruct)
}

// JitteredColorModel provides a randomly jittered color per quad.
//
// For each of brightness, hue and saturation the quad value x' is drawn
// uniformly from [x - jitter, x + jitter] around the base color's value x
// and clamped to [0, 1]. Three random values are consumed per quad, in the
// order brightness, hue, saturation.
type JitteredColorModel struct {
	// BaseColor is the RGB base color with components in [0, 1].
	BaseColor mgl32.Vec3 `json:"baseColor"`

	BrightnessJitter float64 `json:"brightnessJitter"`
	HueJitter        float64 `json:"hueJitter"`
	SaturationJitter float64 `json:"saturationJitter"`

	// RandomState is the initial state of the provider's generator.
	RandomState random.State `json:"randomState"`
}

// NewJitteredColorModel returns a model after validating that every jitter
// lies in [0, 1]. It panics otherwise.
func NewJitteredColorModel(base mgl32.Vec3, brightness, hue, saturation float64, state random.State) JitteredColorModel {
	for _, j := range []float64{brightness, hue, saturation} {
		if j < 0 || j > 1 || math.IsNaN(j) {
			panic(fmt.Sprintf("attribute: jitter %v out of range [0, 1]", j))
		}
	}
	return JitteredColorModel{
		BaseColor:        base,
		BrightnessJitter: brightness,
		HueJitter:        hue,
		SaturationJitter: saturation,
		RandomState:      state,
	}
}

// Provider implements ProviderModel.
func (m JitteredColorModel) Provider() Provider {
	c := colorful.Color{R: float64(m.BaseColor[0]), G: float64(m.BaseColor[1]), B: float64(m.BaseColor[2])}
	h, s, v := c.Hsv()
	return &jitteredColorProvider{
		model: m,
		hue:   h / 360,
		sat:   s,
		val:   v,
		rng:   random.NewGenerator(m.RandomState),
	}
}

// Struct implements ProviderModel.
func (JitteredColorModel) Struct() gpustruct.Struct { return JitteredColorStruct }

// Equal implements ProviderModel.
func (m JitteredColorModel) Equal(other ProviderModel) bool {
	o, ok := other.(JitteredColorModel)
	return ok && o == m
}

type jitteredColorProvider struct {
	model         JitteredColorModel
	hue, sat, val float64
	rng           *random.Generator
}

func (p *jitteredColorProvider) AttributeData(quads []geom.Quad) Data {
	w := newRecordWriter(JitteredColorStruct, len(quads))
	for range quads {
		v := p.jitter(p.val, p.model.BrightnessJitter)
		h := p.jitter(p.hue, p.model.HueJitter)
		s := p.jitter(p.sat, p.model.SaturationJitter)
		r, g, b := colorful.Hsv(math.Mod(h*360, 360), s, v).Clamped().RGB255()
		w.putBytes("color", r, g, b, 255)
		w.emit()
	}
	return w.data()
}

func (p *jitteredColorProvider) jitter(x, j float64) float64 {
	return clamp01(p.rng.Uniform(x-j, x+j))
}

func (p *jitteredColorProvider) Model() ProviderModel {
	m := p.model
	m.RandomState = p.rng.State()
	return m
}

func clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}
