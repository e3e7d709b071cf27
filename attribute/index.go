// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package attribute

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/gpustruct"
)

// QuadIndexStruct holds a per-quad running index.
var QuadIndexStruct = gpustruct.New("quadIndex",
	gpustruct.Field{Name: "quadIndex", Format: gputypes.VertexFormatUint32},
)

// FactorStruct holds a per-quad linear factor.
var FactorStruct = gpustruct.New("factor",
	gpustruct.Field{Name: "factor", Format: gputypes.VertexFormatFloat32},
)

func init() {
	gpustruct.Register(QuadIndexStruct)
	gpustruct.Register(FactorStruct)
}

// QuadIndexModel provides a monotonically increasing index per quad,
// starting at Next. The index continues across batches and is part of the
// captured state: the model returned by Provider.Model has Next set to the
// index of the next quad.
type QuadIndexModel struct {
	Next uint32 `json:"next"`
}

// Provider implements ProviderModel.
func (m QuadIndexModel) Provider() Provider { return &quadIndexProvider{next: m.Next} }

// Struct implements ProviderModel.
func (QuadIndexModel) Struct() gpustruct.Struct { return QuadIndexStruct }

// Equal implements ProviderModel.
func (m QuadIndexModel) Equal(other ProviderModel) bool {
	o, ok := other.(QuadIndexModel)
	return ok && o == m
}

type quadIndexProvider struct {
	next uint32
}

func (p *quadIndexProvider) AttributeData(quads []geom.Quad) Data {
	w := newRecordWriter(QuadIndexStruct, len(quads))
	for range quads {
		w.putUint32("quadIndex", p.next)
		w.emit()
		p.next++
	}
	return w.data()
}

func (p *quadIndexProvider) Model() ProviderModel { return QuadIndexModel{Next: p.next} }

// FactorModel provides 1 - i*Step for the i-th quad of each batch.
// The factor restarts at 1 for every batch.
type FactorModel struct {
	Step float64 `json:"step"`
}

// Provider implements ProviderModel.
func (m FactorModel) Provider() Provider { return factorProvider{m} }

// Struct implements ProviderModel.
func (FactorModel) Struct() gpustruct.Struct { return FactorStruct }

// Equal implements ProviderModel.
func (m FactorModel) Equal(other ProviderModel) bool {
	o, ok := other.(FactorModel)
	return ok && o == m
}

type factorProvider struct {
	model FactorModel
}

func (p factorProvider) AttributeData(quads []geom.Quad) Data {
	w := newRecordWriter(FactorStruct, len(quads))
	for i := range quads {
		w.putFloat32("factor", float32(1-float64(i)*p.model.Step))
		w.emit()
	}
	return w.data()
}

func (p factorProvider) Model() ProviderModel { return p.model }
