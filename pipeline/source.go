// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

import "fmt"

// SourceType selects where brush color comes from.
type SourceType int

const (
	// SourceColor paints a solid (possibly jittered) color.
	SourceColor SourceType = iota
	// SourceTexture paints with the brush tip texture.
	SourceTexture
	// SourceOverlay paints with an overlay texture covering the canvas.
	SourceOverlay
)

var sourceTypeNames = [...]string{
	SourceColor:   "color",
	SourceTexture: "texture",
	SourceOverlay: "overlay",
}

// String returns the serialized name of the source type.
func (s SourceType) String() string {
	if s >= 0 && int(s) < len(sourceTypeNames) {
		return sourceTypeNames[s]
	}
	return fmt.Sprintf("SourceType(%d)", int(s))
}

// ParseSourceType returns the source type with the given serialized name.
func ParseSourceType(name string) (SourceType, error) {
	for i, n := range sourceTypeNames {
		if n == name {
			return SourceType(i), nil
		}
	}
	return 0, fmt.Errorf("pipeline: unknown source type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s SourceType) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(sourceTypeNames) {
		return nil, fmt.Errorf("pipeline: invalid source type %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SourceType) UnmarshalText(text []byte) error {
	v, err := ParseSourceType(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
