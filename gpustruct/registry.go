// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpustruct

import (
	"slices"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Vertex is the built-in record carrying quad corner positions and
// texture coordinates. It is always bound first, at locations 0 and 1.
var Vertex = New("vertex",
	Field{Name: "position", Format: gputypes.VertexFormatFloat32x2},
	Field{Name: "texcoord", Format: gputypes.VertexFormatFloat32x2},
)

var (
	registryMu sync.Mutex
	structs    = gpucontext.NewRegistry[Struct]()
)

func init() {
	Register(Vertex)
}

// Register makes s available by name via Lookup.
// This function is typically called from package-level initialization of
// attribute providers so that tools can resolve record layouts by name.
//
// Register panics if a different struct with the same name is already
// registered. Registering an identical struct again is a no-op.
func Register(s Struct) {
	if s.IsZero() {
		panic("gpustruct: Register of zero struct")
	}
	registryMu.Lock()
	defer registryMu.Unlock()

	if structs.Has(s.name) {
		if structs.Get(s.name).Equal(s) {
			return
		}
		panic("gpustruct: Register called twice for " + s.name)
	}
	structs.Register(s.name, func() Struct { return s })
}

// Lookup returns the registered struct with the given name.
func Lookup(name string) (Struct, bool) {
	if !structs.Has(name) {
		return Struct{}, false
	}
	return structs.Get(name), true
}

// Names returns the sorted names of all registered structs.
func Names() []string {
	names := structs.Available()
	slices.Sort(names)
	return names
}
