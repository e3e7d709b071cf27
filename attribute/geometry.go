// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package attribute

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/gpustruct"
)

// QuadCenterStruct holds the center of the quad a vertex belongs to.
var QuadCenterStruct = gpustruct.New("quadCenter",
	gpustruct.Field{Name: "quadCenter", Format: gputypes.VertexFormatFloat32x2},
)

// MaxEdgeLengthStruct holds the longest edge of the quad a vertex belongs to.
var MaxEdgeLengthStruct = gpustruct.New("maxEdgeLength",
	gpustruct.Field{Name: "maxEdgeLength", Format: gputypes.VertexFormatFloat32},
)

func init() {
	gpustruct.Register(QuadCenterStruct)
	gpustruct.Register(MaxEdgeLengthStruct)
}

// QuadCenterModel provides the center of each quad.
//
// When Width and Height are non-zero the center is divided by them, which
// expresses it in normalized target coordinates for sampling guide
// textures that cover the whole canvas.
type QuadCenterModel struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Provider implements ProviderModel.
func (m QuadCenterModel) Provider() Provider { return quadCenterProvider{m} }

// Struct implements ProviderModel.
func (QuadCenterModel) Struct() gpustruct.Struct { return QuadCenterStruct }

// Equal implements ProviderModel.
func (m QuadCenterModel) Equal(other ProviderModel) bool {
	o, ok := other.(QuadCenterModel)
	return ok && o == m
}

type quadCenterProvider struct {
	model QuadCenterModel
}

func (p quadCenterProvider) AttributeData(quads []geom.Quad) Data {
	w := newRecordWriter(QuadCenterStruct, len(quads))
	for _, q := range quads {
		c := q.Center()
		x, y := c.X(), c.Y()
		if p.model.Width != 0 && p.model.Height != 0 {
			x, y = x/p.model.Width, y/p.model.Height
		}
		w.putFloat32("quadCenter", float32(x), float32(y))
		w.emit()
	}
	return w.data()
}

func (p quadCenterProvider) Model() ProviderModel { return p.model }

// MaxEdgeLengthModel provides the length of the longest edge of each quad.
type MaxEdgeLengthModel struct{}

// Provider implements ProviderModel.
func (MaxEdgeLengthModel) Provider() Provider { return maxEdgeLengthProvider{} }

// Struct implements ProviderModel.
func (MaxEdgeLengthModel) Struct() gpustruct.Struct { return MaxEdgeLengthStruct }

// Equal implements ProviderModel.
func (MaxEdgeLengthModel) Equal(other ProviderModel) bool {
	_, ok := other.(MaxEdgeLengthModel)
	return ok
}

type maxEdgeLengthProvider struct{}

func (maxEdgeLengthProvider) AttributeData(quads []geom.Quad) Data {
	w := newRecordWriter(MaxEdgeLengthStruct, len(quads))
	for _, q := range quads {
		w.putFloat32("maxEdgeLength", float32(q.MaxEdgeLength()))
		w.emit()
	}
	return w.data()
}

func (maxEdgeLengthProvider) Model() ProviderModel { return MaxEdgeLengthModel{} }
