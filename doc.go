// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package brush renders brush strokes as batches of textured quads.
//
// # Overview
//
// A brush is described by a versioned, JSON-serializable model (package
// model). A render-info provider (package renderinfo) turns the model into a
// spline type for the geometry sampler and a pipeline configuration
// (package pipeline). The configuration holds immutable provider models.
// When a stroke session starts the pipeline builds stateful providers
// from those models and then, for every batch of quads produced by the
// geometry sampler:
//
//   - attribute providers (package attribute) pack per-vertex records,
//     six per quad, in the order of the attribute stage configuration
//   - a texture coordinate provider (package texcoord) assigns one UV quad
//     per geometry quad
//   - an optional renderer (package render) consumes the batch
//
// # Models and providers
//
// Models are immutable values that can be compared, serialized and shared
// across goroutines. Providers are created per stroke session, hold state
// such as a random generator position, and must be used from a single
// goroutine. Pipeline.CurrentConfiguration captures that state back into
// models so a session can be checkpointed and replayed exactly.
//
// # Logging
//
// The library is silent by default. Use SetLogger to route diagnostics to a
// slog.Logger of your choice.
package brush
