// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"log/slog"

	"github.com/gogpu/brush/geom"
)

// Option configures a Pipeline during creation.
//
// Example:
//
//	p, err := pipeline.New(cfg,
//	    pipeline.WithRenderer(r),
//	    pipeline.WithVertexShader(wgsl, "vs_main"),
//	)
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	renderer     Renderer
	logger       *slog.Logger
	shaderSource string
	shaderEntry  string
	quadsHandler func(quads []geom.Quad)
}

// WithRenderer sets the render stage that consumes every processed batch.
// Without a renderer, Process only computes batches.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithLogger sets the logger for the pipeline instead of brush.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithVertexShader sets the WGSL vertex shader the pipeline's buffers are
// bound to. New and SetConfiguration then fail if the configuration's
// vertex buffer layouts do not provide every input of the entry point.
// An empty entry point selects the first vertex entry point.
func WithVertexShader(source, entryPoint string) Option {
	return func(o *options) {
		o.shaderSource = source
		o.shaderEntry = entryPoint
	}
}

// WithQuadsHandler sets a function called with the quads of every batch
// after it has been rendered.
func WithQuadsHandler(f func(quads []geom.Quad)) Option {
	return func(o *options) {
		o.quadsHandler = f
	}
}
