// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package attribute computes per-vertex attribute records for quads.
//
// Every attribute kind comes as a pair: an immutable ProviderModel that
// describes what to compute and can be compared and serialized, and a
// stateful Provider built from it for one stroke session. A Provider packs
// one record per quad vertex (six per quad) into a Data buffer laid out as
// the model's gpustruct.Struct.
package attribute

import (
	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/gpustruct"
)

const geomVertices = geom.VerticesPerQuad

// ProviderModel is an immutable description of one attribute kind.
// Models are safe to share between goroutines.
type ProviderModel interface {
	// Provider builds a new stateful provider starting at the model's state.
	Provider() Provider

	// Struct returns the record layout of the data produced by the provider.
	Struct() gpustruct.Struct

	// Equal reports whether other describes the same attribute with the
	// same initial state.
	Equal(other ProviderModel) bool
}

// Provider computes attribute data for batches of quads.
// A Provider is owned by a single goroutine for the lifetime of a stroke
// session.
type Provider interface {
	// AttributeData returns six records per quad, in quad order.
	// The returned Data length is len(quads) * 6 * Struct().Size().
	AttributeData(quads []geom.Quad) Data

	// Model captures the provider's current state as a model. Building a
	// provider from the returned model continues the same sequence.
	Model() ProviderModel
}
