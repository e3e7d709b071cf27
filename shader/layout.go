// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrLayoutMismatch is returned when vertex buffer layouts do not satisfy
// the inputs of a vertex shader.
var ErrLayoutMismatch = errors.New("shader: vertex layout does not match shader inputs")

// FormatKind returns the shader-side scalar kind and component count of a
// vertex format. Normalized and half-float formats are read as float.
func FormatKind(f gputypes.VertexFormat) (Kind, int, bool) {
	switch f {
	case gputypes.VertexFormatFloat32, gputypes.VertexFormatFloat32x2,
		gputypes.VertexFormatFloat32x3, gputypes.VertexFormatFloat32x4:
		return KindFloat, int(f.Size() / 4), true
	case gputypes.VertexFormatUint32, gputypes.VertexFormatUint32x2,
		gputypes.VertexFormatUint32x3, gputypes.VertexFormatUint32x4:
		return KindUint, int(f.Size() / 4), true
	case gputypes.VertexFormatSint32, gputypes.VertexFormatSint32x2,
		gputypes.VertexFormatSint32x3, gputypes.VertexFormatSint32x4:
		return KindSint, int(f.Size() / 4), true
	case gputypes.VertexFormatUnorm8x2, gputypes.VertexFormatSnorm8x2,
		gputypes.VertexFormatUnorm16x2, gputypes.VertexFormatSnorm16x2, gputypes.VertexFormatFloat16x2:
		return KindFloat, 2, true
	case gputypes.VertexFormatUnorm8x4, gputypes.VertexFormatSnorm8x4,
		gputypes.VertexFormatUnorm16x4, gputypes.VertexFormatSnorm16x4, gputypes.VertexFormatFloat16x4,
		gputypes.VertexFormatUnorm1010102:
		return KindFloat, 4, true
	case gputypes.VertexFormatUint8x2, gputypes.VertexFormatUint16x2:
		return KindUint, 2, true
	case gputypes.VertexFormatUint8x4, gputypes.VertexFormatUint16x4:
		return KindUint, 4, true
	case gputypes.VertexFormatSint8x2, gputypes.VertexFormatSint16x2:
		return KindSint, 2, true
	case gputypes.VertexFormatSint8x4, gputypes.VertexFormatSint16x4:
		return KindSint, 4, true
	default:
		return 0, 0, false
	}
}

// CheckLayouts verifies that every shader input location is provided by
// exactly one attribute of layouts and that the attribute format has the
// input's scalar kind. Attributes the shader does not read are allowed.
func CheckLayouts(inputs []Input, layouts []gputypes.VertexBufferLayout) error {
	provided := make(map[uint32]gputypes.VertexFormat)
	for _, l := range layouts {
		for _, a := range l.Attributes {
			if _, dup := provided[a.ShaderLocation]; dup {
				return fmt.Errorf("%w: location %d bound twice", ErrLayoutMismatch, a.ShaderLocation)
			}
			provided[a.ShaderLocation] = a.Format
		}
	}

	for _, in := range inputs {
		f, ok := provided[in.Location]
		if !ok {
			return fmt.Errorf("%w: input %q at location %d has no attribute", ErrLayoutMismatch, in.Name, in.Location)
		}
		kind, _, ok := FormatKind(f)
		if !ok || kind != in.Kind {
			return fmt.Errorf("%w: input %q at location %d is %v, attribute format is %v",
				ErrLayoutMismatch, in.Name, in.Location, in.Kind, f)
		}
	}
	return nil
}
