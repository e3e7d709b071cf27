// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// Version is the ordinal tag selecting a brush model's concrete type.
// It is serialized as a JSON number.
type Version int

// Known versions.
const (
	VersionV1 Version = 1
)

// VersionKey is the JSON key of the version field.
const VersionKey = "version"

// Versions returns all supported versions in ascending order.
func Versions() []Version { return []Version{VersionV1} }

// Supported reports whether v is a known version.
func (v Version) Supported() bool {
	return v == VersionV1
}

func (v Version) String() string {
	if v.Supported() {
		return fmt.Sprintf("v%d", int(v))
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// versionFromRaw converts a decoded version value to a Version. Only
// integral numbers are accepted; strings and fractions are rejected.
func versionFromRaw(raw any) (Version, bool) {
	var n int64
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return 0, false
		}
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, false
		}
		n = i
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint32:
		n = int64(v)
	case uint64:
		if v > math.MaxInt32 {
			return 0, false
		}
		n = int64(v)
	default:
		return 0, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return Version(n), true
}
