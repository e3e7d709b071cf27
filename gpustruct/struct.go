// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpustruct describes the binary layout of vertex attribute records.
//
// A Struct is a named, fixed-layout tuple of primitive fields. It is the
// contract between the code that packs attribute data on the CPU and the
// vertex shader that reads it: field offsets and the total size must match
// the shader's vertex buffer layout byte for byte.
package gpustruct

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
)

// Field is one primitive member of a Struct.
type Field struct {
	// Name is the member name, matching the shader input name.
	Name string

	// Format is the primitive vertex format of the member.
	Format gputypes.VertexFormat

	// Offset is the byte offset of the member inside a record.
	// It is computed by New; any value supplied by the caller is ignored.
	Offset uint64
}

// Struct is an immutable record layout. Fields are packed tightly in
// declaration order. Use Equal for comparison.
type Struct struct {
	name   string
	fields []Field
	size   uint64
}

// New creates a Struct with the given fields laid out in order.
//
// New panics if name is empty, no fields are given, a field name is empty
// or repeated, a format is undefined, or the record size is not a multiple
// of 4 bytes (vertex buffer strides must be 4-byte aligned).
func New(name string, fields ...Field) Struct {
	if name == "" {
		panic("gpustruct: empty struct name")
	}
	if len(fields) == 0 {
		panic("gpustruct: struct " + name + " has no fields")
	}

	s := Struct{name: name, fields: make([]Field, len(fields))}
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			panic(fmt.Sprintf("gpustruct: %s: field %d has no name", name, i))
		}
		if seen[f.Name] {
			panic(fmt.Sprintf("gpustruct: %s: duplicate field %q", name, f.Name))
		}
		seen[f.Name] = true

		size := f.Format.Size()
		if size == 0 {
			panic(fmt.Sprintf("gpustruct: %s: field %q has unsupported format %v", name, f.Name, f.Format))
		}
		s.fields[i] = Field{Name: f.Name, Format: f.Format, Offset: s.size}
		s.size += size
	}
	if s.size%4 != 0 {
		panic(fmt.Sprintf("gpustruct: %s: size %d is not a multiple of 4", name, s.size))
	}
	return s
}

// Name returns the struct name.
func (s Struct) Name() string { return s.name }

// Size returns the size of one record in bytes.
func (s Struct) Size() uint64 { return s.size }

// Fields returns a copy of the struct fields with computed offsets.
func (s Struct) Fields() []Field { return slices.Clone(s.fields) }

// Field returns the field with the given name.
func (s Struct) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// IsZero reports whether s is the zero Struct.
func (s Struct) IsZero() bool { return s.name == "" && len(s.fields) == 0 }

// Equal reports whether s and o have the same name and field layout.
func (s Struct) Equal(o Struct) bool {
	return s.name == o.name && s.size == o.size && slices.Equal(s.fields, o.fields)
}

// Layout returns the vertex buffer layout for records of s, assigning
// consecutive shader locations starting at firstLocation.
func (s Struct) Layout(firstLocation uint32) gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, len(s.fields))
	for i, f := range s.fields {
		attrs[i] = gputypes.VertexAttribute{
			Format:         f.Format,
			Offset:         f.Offset,
			ShaderLocation: firstLocation + uint32(i), //nolint:gosec // field count is small
		}
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: s.size,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// Layouts returns one layout per struct, in order, with shader locations
// assigned consecutively across all buffers starting at 0.
func Layouts(structs ...Struct) []gputypes.VertexBufferLayout {
	layouts := make([]gputypes.VertexBufferLayout, len(structs))
	var location uint32
	for i, s := range structs {
		layouts[i] = s.Layout(location)
		location += uint32(len(s.fields)) //nolint:gosec // field count is small
	}
	return layouts
}

// String returns a compact description such as "vertex{position:Float32x2@0}".
func (s Struct) String() string {
	out := s.name + "{"
	for i, f := range s.fields {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s:%v@%d", f.Name, f.Format, f.Offset)
	}
	return out + "}"
}
