// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderinfo

import "fmt"

// SplineType is the interpolation used to turn stroke control points into
// the spline the geometry sampler walks along.
type SplineType int

const (
	// SplineLinear connects control points with straight segments.
	SplineLinear SplineType = iota
	// SplineCatmullRom interpolates control points with a Catmull-Rom spline.
	SplineCatmullRom
	// SplineBSpline approximates control points with a cubic B-spline.
	SplineBSpline
)

var splineTypeNames = [...]string{
	SplineLinear:     "linear",
	SplineCatmullRom: "catmullRom",
	SplineBSpline:    "bspline",
}

func (s SplineType) String() string {
	if s >= 0 && int(s) < len(splineTypeNames) {
		return splineTypeNames[s]
	}
	return fmt.Sprintf("SplineType(%d)", int(s))
}

// ParseSplineType returns the spline type with the given name.
func ParseSplineType(name string) (SplineType, error) {
	for i, n := range splineTypeNames {
		if n == name {
			return SplineType(i), nil
		}
	}
	return 0, fmt.Errorf("renderinfo: unknown spline type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s SplineType) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(splineTypeNames) {
		return nil, fmt.Errorf("renderinfo: invalid spline type %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SplineType) UnmarshalText(text []byte) error {
	v, err := ParseSplineType(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
