// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/brush/attribute"
	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/gpustruct"
)

// Batch is the output of one Pipeline.Process call: everything the render
// stage needs for one draw call. Quads, TexCoords and the records of each
// attribute buffer correspond index by index.
type Batch struct {
	Quads      []geom.Quad
	TexCoords  []geom.Quad
	Attributes []attribute.Data

	BlendMode  BlendMode
	SourceType SourceType

	// Texture is the non-owning source texture reference, or nil.
	Texture gpucontext.Texture
}

// Len returns the number of quads in the batch.
func (b Batch) Len() int { return len(b.Quads) }

// Vertices packs the built-in vertex buffer: position and texture
// coordinate for the six vertices of every quad.
func (b Batch) Vertices() attribute.Data {
	const stride = 16
	bo := binary.LittleEndian
	data := make([]byte, len(b.Quads)*geom.VerticesPerQuad*stride)
	off := 0
	for i, q := range b.Quads {
		pos := q.Triangles()
		uv := b.TexCoords[i].Triangles()
		for v := range geom.VerticesPerQuad {
			bo.PutUint32(data[off:], math.Float32bits(float32(pos[v].X())))
			bo.PutUint32(data[off+4:], math.Float32bits(float32(pos[v].Y())))
			bo.PutUint32(data[off+8:], math.Float32bits(float32(uv[v].X())))
			bo.PutUint32(data[off+12:], math.Float32bits(float32(uv[v].Y())))
			off += stride
		}
	}
	d, err := attribute.NewData(gpustruct.Vertex, data)
	if err != nil {
		panic(err) // stride matches gpustruct.Vertex
	}
	return d
}

// Buffers returns the vertex buffers in bind order: Vertices followed by
// the attribute buffers in configuration order.
func (b Batch) Buffers() []attribute.Data {
	buffers := make([]attribute.Data, 0, 1+len(b.Attributes))
	buffers = append(buffers, b.Vertices())
	return append(buffers, b.Attributes...)
}

// Layouts returns the vertex buffer layouts of Buffers, with shader
// locations assigned the same way as Configuration.Layouts.
func (b Batch) Layouts() []gputypes.VertexBufferLayout {
	structs := make([]gpustruct.Struct, 0, 1+len(b.Attributes))
	structs = append(structs, gpustruct.Vertex)
	for _, a := range b.Attributes {
		structs = append(structs, a.Struct())
	}
	return gpustruct.Layouts(structs...)
}
