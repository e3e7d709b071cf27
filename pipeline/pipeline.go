// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pipeline assembles brush configurations and runs the per-batch
// attribute and texture mapping stages.
//
// A Configuration is an immutable value built once per brush (usually by
// package renderinfo). A Pipeline instantiates stateful providers from it
// for one stroke session and turns every batch of quads from the geometry
// sampler into a Batch for the render stage.
//
// A Pipeline is bound to the goroutine that owns the graphics context and
// must not be used concurrently.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/brush"
	"github.com/gogpu/brush/attribute"
	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/shader"
	"github.com/gogpu/brush/texcoord"
)

// Renderer is the render stage. It consumes a batch and issues the draw
// call. The batch buffers must not be retained after Render returns.
type Renderer interface {
	Render(batch Batch) error
}

// Pipeline runs the attribute and texture mapping stages of one stroke
// session.
type Pipeline struct {
	cfg        Configuration
	attributes []attribute.Provider
	texcoords  texcoord.Provider

	opts    options
	session uuid.UUID
	log     *slog.Logger
	quads   int
}

// New builds a pipeline for cfg.
//
// If a vertex shader was supplied with WithVertexShader, New fails when the
// configuration's vertex buffer layouts do not match the shader inputs.
func New(cfg Configuration, opts ...Option) (*Pipeline, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = brush.Logger()
	}

	p := &Pipeline{opts: o, session: uuid.New()}
	p.log = o.logger.With("session", p.session.String())
	if err := p.SetConfiguration(cfg); err != nil {
		return nil, err
	}
	p.log.Info("pipeline created", "config", cfg.String())
	return p, nil
}

// Session returns the identifier of the stroke session, used in logs.
func (p *Pipeline) Session() uuid.UUID { return p.session }

// SetConfiguration replaces the configuration and rebuilds all providers
// from its models. On error the previous configuration stays in effect.
func (p *Pipeline) SetConfiguration(cfg Configuration) error {
	if cfg.textureMapping.model == nil {
		return fmt.Errorf("pipeline: configuration has no texture mapping model")
	}
	if p.opts.shaderSource != "" {
		if err := checkShader(cfg, p.opts.shaderSource, p.opts.shaderEntry); err != nil {
			return err
		}
	}

	attrs := make([]attribute.Provider, len(cfg.attributes.models))
	for i, m := range cfg.attributes.models {
		attrs[i] = m.Provider()
	}
	p.cfg = cfg
	p.attributes = attrs
	p.texcoords = cfg.textureMapping.model.Provider()
	p.log.Debug("pipeline configured", "attributes", len(attrs), "blend", cfg.blendMode, "source", cfg.sourceType)
	return nil
}

func checkShader(cfg Configuration, source, entry string) error {
	inputs, err := shader.VertexInputs(source, entry)
	if err != nil {
		return fmt.Errorf("pipeline: vertex shader: %w", err)
	}
	if err := shader.CheckLayouts(inputs, cfg.Layouts()); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}

// CurrentConfiguration returns the configuration with every model
// replaced by its provider's current state. Building a pipeline from the
// result continues the stroke exactly where this pipeline is.
func (p *Pipeline) CurrentConfiguration() Configuration {
	models := make([]attribute.ProviderModel, len(p.attributes))
	for i, a := range p.attributes {
		models[i] = a.Model()
	}
	return NewConfiguration(
		AttributeStageConfiguration{models: models},
		NewTextureMappingStageConfiguration(p.texcoords.Model(), p.cfg.textureMapping.texture),
		p.cfg.blendMode,
		p.cfg.sourceType,
	)
}

// Process runs the attribute stage and then the texture mapping stage on
// quads and hands the batch to the renderer, if any. Errors come only from
// the renderer; the returned batch is valid either way.
func (p *Pipeline) Process(quads []geom.Quad) (Batch, error) {
	batch := Batch{
		Quads:      quads,
		Attributes: make([]attribute.Data, len(p.attributes)),
		BlendMode:  p.cfg.blendMode,
		SourceType: p.cfg.sourceType,
		Texture:    p.cfg.textureMapping.texture,
	}
	for i, a := range p.attributes {
		batch.Attributes[i] = a.AttributeData(quads)
	}
	batch.TexCoords = p.texcoords.TexCoords(quads)
	p.quads += len(quads)

	p.log.Debug("batch processed", "quads", len(quads), "total", p.quads, "buffers", len(batch.Attributes))

	if p.opts.renderer != nil {
		if err := p.opts.renderer.Render(batch); err != nil {
			return batch, fmt.Errorf("pipeline: render: %w", err)
		}
	}
	if p.opts.quadsHandler != nil {
		p.opts.quadsHandler(quads)
	}
	return batch, nil
}

// ProcessedQuads returns the number of quads processed in this session.
func (p *Pipeline) ProcessedQuads() int { return p.quads }
