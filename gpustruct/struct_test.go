// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpustruct

import (
	"slices"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewComputesOffsets(t *testing.T) {
	s := New("sample",
		Field{Name: "a", Format: gputypes.VertexFormatFloat32x2},
		Field{Name: "b", Format: gputypes.VertexFormatUnorm8x4},
		Field{Name: "c", Format: gputypes.VertexFormatFloat32, Offset: 99},
	)

	tests := []struct {
		name   string
		offset uint64
	}{
		{"a", 0},
		{"b", 8},
		{"c", 12},
	}
	for _, tt := range tests {
		f, ok := s.Field(tt.name)
		if !ok {
			t.Fatalf("Field(%q) not found", tt.name)
		}
		if f.Offset != tt.offset {
			t.Errorf("Field(%q).Offset = %d, want %d", tt.name, f.Offset, tt.offset)
		}
	}
	if s.Size() != 16 {
		t.Errorf("Size() = %d, want 16", s.Size())
	}
	if _, ok := s.Field("missing"); ok {
		t.Error("Field(missing) found, want not found")
	}
}

func TestNewPanics(t *testing.T) {
	tests := []struct {
		name   string
		sname  string
		fields []Field
	}{
		{"empty name", "", []Field{{Name: "a", Format: gputypes.VertexFormatFloat32}}},
		{"no fields", "s", nil},
		{"unnamed field", "s", []Field{{Format: gputypes.VertexFormatFloat32}}},
		{"duplicate field", "s", []Field{
			{Name: "a", Format: gputypes.VertexFormatFloat32},
			{Name: "a", Format: gputypes.VertexFormatFloat32},
		}},
		{"undefined format", "s", []Field{{Name: "a", Format: gputypes.VertexFormatUndefined}}},
		{"unaligned size", "s", []Field{{Name: "a", Format: gputypes.VertexFormatUnorm8x2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("New() did not panic")
				}
			}()
			New(tt.sname, tt.fields...)
		})
	}
}

func TestStructEqual(t *testing.T) {
	a := New("x", Field{Name: "v", Format: gputypes.VertexFormatFloat32})
	b := New("x", Field{Name: "v", Format: gputypes.VertexFormatFloat32})
	c := New("x", Field{Name: "v", Format: gputypes.VertexFormatUint32})
	d := New("y", Field{Name: "v", Format: gputypes.VertexFormatFloat32})

	if !a.Equal(b) {
		t.Error("identical structs are not Equal")
	}
	if a.Equal(c) {
		t.Error("structs with different formats are Equal")
	}
	if a.Equal(d) {
		t.Error("structs with different names are Equal")
	}
}

func TestFieldsReturnsCopy(t *testing.T) {
	f := Vertex.Fields()
	f[0].Name = "mutated"
	if got, _ := Vertex.Field("position"); got.Name != "position" {
		t.Error("mutating Fields() result changed the struct")
	}
}

func TestLayout(t *testing.T) {
	l := Vertex.Layout(3)
	if l.ArrayStride != 16 {
		t.Errorf("ArrayStride = %d, want 16", l.ArrayStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want Vertex", l.StepMode)
	}
	want := []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 3},
		{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 4},
	}
	if !slices.Equal(l.Attributes, want) {
		t.Errorf("Attributes = %v, want %v", l.Attributes, want)
	}
}

func TestLayoutsConsecutiveLocations(t *testing.T) {
	color := New("rgba", Field{Name: "color", Format: gputypes.VertexFormatUnorm8x4})
	layouts := Layouts(Vertex, color, Vertex)
	if len(layouts) != 3 {
		t.Fatalf("len(Layouts) = %d, want 3", len(layouts))
	}
	wantLocations := [][]uint32{{0, 1}, {2}, {3, 4}}
	for i, l := range layouts {
		var got []uint32
		for _, a := range l.Attributes {
			got = append(got, a.ShaderLocation)
		}
		if !slices.Equal(got, wantLocations[i]) {
			t.Errorf("layout %d locations = %v, want %v", i, got, wantLocations[i])
		}
	}
	if layouts[1].ArrayStride != 4 {
		t.Errorf("rgba ArrayStride = %d, want 4", layouts[1].ArrayStride)
	}
}

func TestRegistry(t *testing.T) {
	if got, ok := Lookup("vertex"); !ok || !got.Equal(Vertex) {
		t.Fatalf("Lookup(vertex) = %v, %v; want built-in vertex struct", got, ok)
	}

	s := New("registryTest", Field{Name: "v", Format: gputypes.VertexFormatFloat32})
	Register(s)
	Register(s) // identical re-registration is allowed

	if !slices.Contains(Names(), "registryTest") {
		t.Errorf("Names() = %v, want to contain registryTest", Names())
	}
	if _, ok := Lookup("unknown"); ok {
		t.Error("Lookup(unknown) found a struct")
	}

	defer func() {
		if recover() == nil {
			t.Error("Register of conflicting struct did not panic")
		}
	}()
	Register(New("registryTest", Field{Name: "v", Format: gputypes.VertexFormatUint32}))
}
