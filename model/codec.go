// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/gogpu/brush"
)

// Deserialize decodes a brush model from a keyed dictionary as produced
// by encoding/json, yaml.v3 or go-toml. The "version" key selects the
// concrete type. Keys unknown to the selected version, including keys
// matching a known one only up to case, are ignored and logged at warning
// level.
//
// The returned error is an *Error with CodeNoSerializedVersion,
// CodeNoValidVersion or CodeInvalidField.
func Deserialize(dict map[string]any) (BrushModel, error) {
	raw, ok := dict[VersionKey]
	if !ok || raw == nil {
		return nil, ErrNoSerializedVersion
	}
	v, ok := versionFromRaw(raw)
	if !ok || !v.Supported() {
		return nil, &Error{
			Domain:      ErrorDomain,
			Code:        CodeNoValidVersion,
			Field:       VersionKey,
			Description: fmt.Sprintf("unsupported version %v", raw),
		}
	}

	switch v {
	case VersionV1:
		return decodeV1(dict)
	}
	panic("model: unhandled version " + v.String())
}

// Unmarshal decodes a brush model from JSON.
func Unmarshal(data []byte) (BrushModel, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var dict map[string]any
	if err := dec.Decode(&dict); err != nil {
		return nil, fmt.Errorf("model: decode json: %w", err)
	}
	return Deserialize(dict)
}

// Serialize encodes m into a keyed dictionary including its version.
// Numbers are json.Number values so that 64-bit seeds survive exactly.
func Serialize(m BrushModel) (map[string]any, error) {
	data, err := Marshal(m)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var dict map[string]any
	if err := dec.Decode(&dict); err != nil {
		return nil, fmt.Errorf("model: serialize: %w", err)
	}
	return dict, nil
}

// Marshal encodes m as JSON.
func Marshal(m BrushModel) ([]byte, error) {
	if m == nil {
		return nil, errors.New("model: nil brush model")
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("model: marshal %v: %w", m.Version(), err)
	}
	return data, nil
}

var v1Keys = sync.OnceValue(func() map[string]bool {
	data, err := json.Marshal(DefaultV1())
	if err != nil {
		panic("model: marshal default v1: " + err.Error())
	}
	var dict map[string]json.RawMessage
	if err := json.Unmarshal(data, &dict); err != nil {
		panic("model: decode default v1: " + err.Error())
	}
	keys := make(map[string]bool, len(dict))
	for k := range dict {
		keys[k] = true
	}
	return keys
})

// v1ArrayLens holds the exact element count of every array field of V1.
var v1ArrayLens = map[string]int{
	"color":                 3,
	"brushTipImageGridSize": 2,
}

func decodeV1(dict map[string]any) (BrushModel, error) {
	known := v1Keys()
	fields := make(map[string]any, len(dict))
	var unknown []string
	for k, v := range dict {
		if !known[k] {
			unknown = append(unknown, k)
			continue
		}
		fields[k] = v
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		brush.Logger().Warn("model: ignoring unknown keys",
			"version", VersionV1, "keys", unknown)
	}
	for k, n := range v1ArrayLens {
		v, ok := fields[k]
		if !ok || v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if kind := rv.Kind(); (kind == reflect.Slice || kind == reflect.Array) && rv.Len() != n {
			return nil, fieldError(k, "must have %d elements, got %d", n, rv.Len())
		}
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, &Error{
			Domain:      ErrorDomain,
			Code:        CodeInvalidField,
			Description: "dictionary is not encodable",
			Err:         err,
		}
	}

	m := v1JSON(DefaultV1())
	if err := json.Unmarshal(data, &m); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &Error{
				Domain:      ErrorDomain,
				Code:        CodeInvalidField,
				Field:       typeErr.Field,
				Description: fmt.Sprintf("cannot use %s as %s", typeErr.Value, typeErr.Type),
				Err:         err,
			}
		}
		return nil, &Error{
			Domain:      ErrorDomain,
			Code:        CodeInvalidField,
			Description: "cannot decode field",
			Err:         err,
		}
	}

	v1 := V1(m)
	if err := v1.Validate(); err != nil {
		return nil, err
	}
	return v1, nil
}
