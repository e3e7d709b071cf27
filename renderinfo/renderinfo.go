// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package renderinfo turns a brush model into the pipeline configuration
// that renders it.
//
// A Provider is built once per brush model and texture set. It is pure:
// equal models, textures and targets yield equal configurations, so a
// caller may rebuild pipelines at any time, for instance after the canvas
// is resized.
package renderinfo

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/brush/attribute"
	"github.com/gogpu/brush/model"
	"github.com/gogpu/brush/pipeline"
	"github.com/gogpu/brush/random"
	"github.com/gogpu/brush/render"
	"github.com/gogpu/brush/texcoord"
)

// ErrMissingTexture is returned when the model's source type needs a
// texture that was not supplied.
var ErrMissingTexture = errors.New("renderinfo: missing texture")

// Provider describes how strokes of one brush are rendered.
type Provider interface {
	// SplineType returns the spline interpolating the stroke's control
	// points.
	SplineType() SplineType

	// PipelineConfiguration returns the configuration for rendering into
	// a target of the given dimensions and format.
	PipelineConfiguration(target render.Target) (pipeline.Configuration, error)
}

// New returns the provider for m. Textures are keyed by the model's image
// URL property keys (see model.BrushModel.ImageURLKeys); the caller owns
// them and must keep them alive while configurations built from the
// provider are in use.
func New(m model.BrushModel, textures map[string]gpucontext.Texture) (Provider, error) {
	if m == nil {
		return nil, errors.New("renderinfo: nil brush model")
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("renderinfo: %w", err)
	}
	switch m := m.(type) {
	case model.V1:
		return newV1Provider(m, textures)
	default:
		return nil, fmt.Errorf("renderinfo: unsupported brush model %T", m)
	}
}

// v1Provider renders V1 brushes.
type v1Provider struct {
	model   model.V1
	texture gpucontext.Texture
}

func newV1Provider(m model.V1, textures map[string]gpucontext.Texture) (*v1Provider, error) {
	p := &v1Provider{model: m}
	var key string
	switch m.SourceType {
	case pipeline.SourceTexture:
		key = model.KeyBrushTipImageURL
	case pipeline.SourceOverlay:
		key = model.KeyOverlayImageURL
	default:
		return p, nil
	}
	tex := textures[key]
	if tex == nil {
		return nil, fmt.Errorf("%w: %s for source type %v", ErrMissingTexture, key, m.SourceType)
	}
	p.texture = tex
	return p, nil
}

func (p *v1Provider) SplineType() SplineType { return SplineBSpline }

func (p *v1Provider) PipelineConfiguration(target render.Target) (pipeline.Configuration, error) {
	if target == nil {
		return pipeline.Configuration{}, fmt.Errorf("renderinfo: %w: nil", render.ErrInvalidTarget)
	}
	info := render.InfoOf(target)
	if err := info.Validate(); err != nil {
		return pipeline.Configuration{}, fmt.Errorf("renderinfo: %w", err)
	}

	m := p.model
	seed := m.Seed()

	var attrs []attribute.ProviderModel
	if m.HasColorJitter() {
		base := mgl32.Vec3{float32(m.Color[0]), float32(m.Color[1]), float32(m.Color[2])}
		attrs = append(attrs, attribute.NewJitteredColorModel(base,
			m.BrightnessJitter, m.HueJitter, m.SaturationJitter, random.NewState(seed)))
	}
	if m.EdgeAvoidance > 0 {
		attrs = append(attrs,
			attribute.QuadCenterModel{Width: float64(info.Width()), Height: float64(info.Height())},
			attribute.MaxEdgeLengthModel{},
		)
	}

	var tm texcoord.ProviderModel = texcoord.CanonicalModel{}
	if m.SourceType == pipeline.SourceTexture {
		cols, rows := m.BrushTipImageGridSize[0], m.BrushTipImageGridSize[1]
		if cols*rows > 1 {
			tm = texcoord.NewRandomModel(texcoord.GridCandidates(cols, rows), random.NewState(seed+1))
		}
	}

	return pipeline.NewConfiguration(
		pipeline.NewAttributeStageConfiguration(attrs...),
		pipeline.NewTextureMappingStageConfiguration(tm, p.texture),
		m.BlendMode,
		m.SourceType,
	), nil
}
