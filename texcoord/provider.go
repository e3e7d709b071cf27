// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texcoord assigns texture coordinate quads to geometry quads.
//
// As with attribute providers, an immutable ProviderModel builds a
// stateful Provider per stroke session. Provider.TexCoords returns exactly
// one UV quad per input quad, in input order.
package texcoord

import (
	"slices"

	"github.com/gogpu/brush/atlas"
	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/random"
)

// ProviderModel is an immutable description of a texture mapping.
type ProviderModel interface {
	Provider() Provider
	Equal(other ProviderModel) bool
}

// Provider maps geometry quads to texture coordinate quads.
type Provider interface {
	// TexCoords returns one UV quad per quad, in the same order.
	TexCoords(quads []geom.Quad) []geom.Quad

	// Model captures the current state as a model.
	Model() ProviderModel
}

// CanonicalModel maps every quad to the unit square.
type CanonicalModel struct{}

// Provider implements ProviderModel.
func (CanonicalModel) Provider() Provider { return canonicalProvider{} }

// Equal implements ProviderModel.
func (CanonicalModel) Equal(other ProviderModel) bool {
	_, ok := other.(CanonicalModel)
	return ok
}

type canonicalProvider struct{}

func (canonicalProvider) TexCoords(quads []geom.Quad) []geom.Quad {
	out := make([]geom.Quad, len(quads))
	for i := range out {
		out[i] = geom.CanonicalQuad
	}
	return out
}

func (canonicalProvider) Model() ProviderModel { return CanonicalModel{} }

// RandomModel draws each quad's UV quad uniformly from a candidate pool.
// One random value is consumed per quad, so the sequence of chosen
// candidates is fully determined by the random state.
type RandomModel struct {
	candidates []geom.Quad
	state      random.State
}

// NewRandomModel returns a model drawing from candidates starting at
// state. The candidates are copied.
//
// NewRandomModel panics if candidates is empty.
func NewRandomModel(candidates []geom.Quad, state random.State) RandomModel {
	if len(candidates) == 0 {
		panic("texcoord: random model with empty candidate pool")
	}
	return RandomModel{candidates: slices.Clone(candidates), state: state}
}

// NewRandomModelFromAtlas returns a random model whose candidates are the
// atlas regions, in region name order.
func NewRandomModelFromAtlas(a *atlas.Atlas, state random.State) RandomModel {
	return NewRandomModel(a.TexCoordQuads(), state)
}

// Candidates returns a copy of the candidate pool.
func (m RandomModel) Candidates() []geom.Quad { return slices.Clone(m.candidates) }

// State returns the initial random state.
func (m RandomModel) State() random.State { return m.state }

// Provider implements ProviderModel.
func (m RandomModel) Provider() Provider {
	if len(m.candidates) == 0 {
		panic("texcoord: random model with empty candidate pool")
	}
	return &randomProvider{candidates: m.candidates, rng: random.NewGenerator(m.state)}
}

// Equal implements ProviderModel.
func (m RandomModel) Equal(other ProviderModel) bool {
	o, ok := other.(RandomModel)
	return ok && o.state == m.state && slices.Equal(o.candidates, m.candidates)
}

type randomProvider struct {
	candidates []geom.Quad
	rng        *random.Generator
}

func (p *randomProvider) TexCoords(quads []geom.Quad) []geom.Quad {
	out := make([]geom.Quad, len(quads))
	for i := range out {
		out[i] = p.candidates[p.rng.IntN(len(p.candidates))]
	}
	return out
}

func (p *randomProvider) Model() ProviderModel {
	return RandomModel{candidates: p.candidates, state: p.rng.State()}
}

// CyclicModel assigns candidates in round-robin order starting at Next.
type CyclicModel struct {
	candidates []geom.Quad
	next       int
}

// NewCyclicModel returns a model cycling through candidates from index
// next, taken modulo the pool size so negative values count back from
// the end. It panics if candidates is empty.
func NewCyclicModel(candidates []geom.Quad, next int) CyclicModel {
	n := len(candidates)
	if n == 0 {
		panic("texcoord: cyclic model with empty candidate pool")
	}
	return CyclicModel{candidates: slices.Clone(candidates), next: ((next % n) + n) % n}
}

// Next returns the index of the candidate assigned to the next quad.
func (m CyclicModel) Next() int { return m.next }

// Provider implements ProviderModel.
func (m CyclicModel) Provider() Provider {
	if len(m.candidates) == 0 {
		panic("texcoord: cyclic model with empty candidate pool")
	}
	return &cyclicProvider{model: m}
}

// Equal implements ProviderModel.
func (m CyclicModel) Equal(other ProviderModel) bool {
	o, ok := other.(CyclicModel)
	return ok && o.next == m.next && slices.Equal(o.candidates, m.candidates)
}

type cyclicProvider struct {
	model CyclicModel
}

func (p *cyclicProvider) TexCoords(quads []geom.Quad) []geom.Quad {
	out := make([]geom.Quad, len(quads))
	n := len(p.model.candidates)
	for i := range out {
		out[i] = p.model.candidates[p.model.next]
		p.model.next = (p.model.next + 1) % n
	}
	return out
}

func (p *cyclicProvider) Model() ProviderModel { return p.model }

// GridCandidates returns the cells of a cols x rows grid over the unit
// square in row-major order. It panics if cols or rows is not positive.
func GridCandidates(cols, rows int) []geom.Quad {
	if cols <= 0 || rows <= 0 {
		panic("texcoord: grid dimensions must be positive")
	}
	w, h := 1/float64(cols), 1/float64(rows)
	quads := make([]geom.Quad, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			quads = append(quads, geom.QuadFromRect(float64(col)*w, float64(row)*h, w, h))
		}
	}
	return quads
}
