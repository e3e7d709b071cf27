// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// BlendMode selects how brush output is composited onto the canvas.
type BlendMode int

const (
	// BlendNormal is premultiplied source-over.
	BlendNormal BlendMode = iota
	// BlendDarken keeps the darker of source and destination.
	BlendDarken
	// BlendMultiply multiplies source and destination.
	BlendMultiply
	// BlendHardLight multiplies or screens depending on the source.
	BlendHardLight
	// BlendSoftLight darkens or lightens depending on the source.
	BlendSoftLight
	// BlendLighten keeps the lighter of source and destination.
	BlendLighten
	// BlendScreen inverts, multiplies and inverts again.
	BlendScreen
	// BlendColorBurn darkens the destination to reflect the source.
	BlendColorBurn
	// BlendOverlay multiplies or screens depending on the destination.
	BlendOverlay
	// BlendPlusLighter adds source and destination.
	BlendPlusLighter
	// BlendPlusDarker adds source and destination and subtracts one.
	BlendPlusDarker
	// BlendSubtract subtracts the source from the destination.
	BlendSubtract
	// BlendOpaqueSource replaces the destination with the source.
	BlendOpaqueSource
	// BlendOpaqueDestination leaves the destination unchanged.
	BlendOpaqueDestination
)

var blendModeNames = [...]string{
	BlendNormal:            "normal",
	BlendDarken:            "darken",
	BlendMultiply:          "multiply",
	BlendHardLight:         "hardLight",
	BlendSoftLight:         "softLight",
	BlendLighten:           "lighten",
	BlendScreen:            "screen",
	BlendColorBurn:         "colorBurn",
	BlendOverlay:           "overlay",
	BlendPlusLighter:       "plusLighter",
	BlendPlusDarker:        "plusDarker",
	BlendSubtract:          "subtract",
	BlendOpaqueSource:      "opaqueSource",
	BlendOpaqueDestination: "opaqueDestination",
}

// String returns the serialized name of the mode.
func (m BlendMode) String() string {
	if m >= 0 && int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode returns the mode with the given serialized name.
func ParseBlendMode(s string) (BlendMode, error) {
	for i, name := range blendModeNames {
		if name == s {
			return BlendMode(i), nil
		}
	}
	return 0, fmt.Errorf("pipeline: unknown blend mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m BlendMode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(blendModeNames) {
		return nil, fmt.Errorf("pipeline: invalid blend mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BlendMode) UnmarshalText(text []byte) error {
	v, err := ParseBlendMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// BlendState returns the fixed-function blend state for premultiplied
// colors implementing m. The second result is false for modes that need
// programmable blending in the fragment shader.
//
// Darken, Lighten and Multiply are exact only over an opaque destination.
func (m BlendMode) BlendState() (gputypes.BlendState, bool) {
	component := func(src, dst gputypes.BlendFactor, op gputypes.BlendOperation) gputypes.BlendComponent {
		return gputypes.BlendComponent{SrcFactor: src, DstFactor: dst, Operation: op}
	}
	overAlpha := component(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha, gputypes.BlendOperationAdd)

	switch m {
	case BlendNormal:
		return gputypes.BlendStatePremultiplied(), true
	case BlendOpaqueSource:
		return gputypes.BlendStateReplace(), true
	case BlendOpaqueDestination:
		keep := component(gputypes.BlendFactorZero, gputypes.BlendFactorOne, gputypes.BlendOperationAdd)
		return gputypes.BlendState{Color: keep, Alpha: keep}, true
	case BlendScreen:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrc, gputypes.BlendOperationAdd),
			Alpha: overAlpha,
		}, true
	case BlendMultiply:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorDst, gputypes.BlendFactorOneMinusSrcAlpha, gputypes.BlendOperationAdd),
			Alpha: overAlpha,
		}, true
	case BlendDarken:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorOne, gputypes.BlendFactorOne, gputypes.BlendOperationMin),
			Alpha: overAlpha,
		}, true
	case BlendLighten:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorOne, gputypes.BlendFactorOne, gputypes.BlendOperationMax),
			Alpha: overAlpha,
		}, true
	case BlendPlusLighter:
		add := component(gputypes.BlendFactorOne, gputypes.BlendFactorOne, gputypes.BlendOperationAdd)
		return gputypes.BlendState{Color: add, Alpha: add}, true
	case BlendSubtract:
		return gputypes.BlendState{
			Color: component(gputypes.BlendFactorOne, gputypes.BlendFactorOne, gputypes.BlendOperationReverseSubtract),
			Alpha: overAlpha,
		}, true
	default:
		return gputypes.BlendState{}, false
	}
}
