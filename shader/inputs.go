// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader checks vertex buffer layouts against WGSL vertex shaders.
//
// The attribute buffers produced by a pipeline are bound in configuration
// order. If that order or a record format disagrees with the @location
// inputs of the vertex shader, rendering silently reads garbage. This
// package parses the shader with naga and reports such mismatches before
// any buffer is created.
package shader

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/brush/internal/cache"
)

// Kind is the scalar kind of a vertex input component.
type Kind uint8

// Scalar kinds of vertex inputs.
const (
	KindFloat Kind = iota
	KindUint
	KindSint
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindUint:
		return "uint"
	case KindSint:
		return "sint"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Input is one @location input of a vertex entry point.
type Input struct {
	Name       string
	Location   uint32
	Kind       Kind
	Components int
}

// ErrNoEntryPoint is returned when the shader has no matching vertex
// entry point.
var ErrNoEntryPoint = errors.New("shader: vertex entry point not found")

type inputsKey struct {
	source [sha256.Size]byte
	entry  string
}

// parsed memoizes VertexInputs, since pipelines re-check the same shader
// on every configuration change.
var parsed = cache.New[inputsKey, []Input](64)

// VertexInputs parses WGSL source and returns the @location inputs of the
// vertex entry point named entryPoint, sorted by location. Inputs declared
// as struct members are flattened. An empty entryPoint selects the first
// vertex entry point.
func VertexInputs(source, entryPoint string) ([]Input, error) {
	key := inputsKey{source: sha256.Sum256([]byte(source)), entry: entryPoint}
	inputs, err := parsed.Load(key, func() ([]Input, error) {
		return vertexInputs(source, entryPoint)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(inputs), nil
}

func vertexInputs(source, entryPoint string) ([]Input, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}

	var ep *ir.EntryPoint
	for i := range module.EntryPoints {
		e := &module.EntryPoints[i]
		if e.Stage == ir.StageVertex && (entryPoint == "" || e.Name == entryPoint) {
			ep = e
			break
		}
	}
	if ep == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoEntryPoint, entryPoint)
	}

	var inputs []Input
	for _, arg := range ep.Function.Arguments {
		collected, err := collect(module, arg.Name, arg.Type, arg.Binding)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, collected...)
	}
	slices.SortFunc(inputs, func(a, b Input) int { return int(a.Location) - int(b.Location) })
	return inputs, nil
}

func collect(module *ir.Module, name string, th ir.TypeHandle, binding *ir.Binding) ([]Input, error) {
	if int(th) >= len(module.Types) {
		return nil, fmt.Errorf("shader: input %q has invalid type handle %d", name, th)
	}
	inner := module.Types[th].Inner

	if binding == nil {
		st, ok := inner.(ir.StructType)
		if !ok {
			return nil, nil
		}
		var inputs []Input
		for _, m := range st.Members {
			collected, err := collect(module, m.Name, m.Type, m.Binding)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, collected...)
		}
		return inputs, nil
	}

	loc, ok := location(*binding)
	if !ok {
		return nil, nil // builtin
	}
	kind, n, ok := shape(inner)
	if !ok {
		return nil, fmt.Errorf("shader: input %q at location %d has unsupported type", name, loc)
	}
	return []Input{{Name: name, Location: loc, Kind: kind, Components: n}}, nil
}

func location(b ir.Binding) (uint32, bool) {
	switch lb := b.(type) {
	case ir.LocationBinding:
		return lb.Location, true
	case *ir.LocationBinding:
		return lb.Location, true
	default:
		return 0, false
	}
}

func shape(inner ir.TypeInner) (Kind, int, bool) {
	switch t := inner.(type) {
	case ir.ScalarType:
		k, ok := scalarKind(t.Kind)
		return k, 1, ok
	case ir.VectorType:
		k, ok := scalarKind(t.Scalar.Kind)
		return k, int(t.Size), ok
	default:
		return 0, 0, false
	}
}

func scalarKind(k ir.ScalarKind) (Kind, bool) {
	switch k {
	case ir.ScalarFloat:
		return KindFloat, true
	case ir.ScalarUint:
		return KindUint, true
	case ir.ScalarSint:
		return KindSint, true
	default:
		return 0, false
	}
}
