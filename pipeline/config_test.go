// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/brush/attribute"
	"github.com/gogpu/brush/random"
	"github.com/gogpu/brush/texcoord"
)

type fakeTexture struct{ w, h int }

func (t *fakeTexture) Width() int  { return t.w }
func (t *fakeTexture) Height() int { return t.h }

func TestConfigurationEqual(t *testing.T) {
	tex := &fakeTexture{64, 64}
	grid := texcoord.GridCandidates(2, 2)

	build := func(seed uint64, texture *fakeTexture, blend BlendMode, models ...attribute.ProviderModel) Configuration {
		return NewConfiguration(
			NewAttributeStageConfiguration(models...),
			NewTextureMappingStageConfiguration(texcoord.NewRandomModel(grid, random.NewState(seed)), texture),
			blend, SourceTexture,
		)
	}
	base := build(1, tex, BlendNormal, attribute.QuadCenterModel{}, attribute.MaxEdgeLengthModel{})

	tests := []struct {
		name  string
		other Configuration
		want  bool
	}{
		{"identical", build(1, tex, BlendNormal, attribute.QuadCenterModel{}, attribute.MaxEdgeLengthModel{}), true},
		{"reordered", build(1, tex, BlendNormal, attribute.MaxEdgeLengthModel{}, attribute.QuadCenterModel{}), false},
		{"fewer models", build(1, tex, BlendNormal, attribute.QuadCenterModel{}), false},
		{"seed", build(2, tex, BlendNormal, attribute.QuadCenterModel{}, attribute.MaxEdgeLengthModel{}), false},
		{"texture identity", build(1, &fakeTexture{64, 64}, BlendNormal, attribute.QuadCenterModel{}, attribute.MaxEdgeLengthModel{}), false},
		{"blend", build(1, tex, BlendMultiply, attribute.QuadCenterModel{}, attribute.MaxEdgeLengthModel{}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
			assert.Equal(t, tt.want, tt.other.Equal(base))
		})
	}
}

func TestAttributeStageConfigurationCopiesModels(t *testing.T) {
	models := []attribute.ProviderModel{attribute.QuadCenterModel{}}
	c := NewAttributeStageConfiguration(models...)
	models[0] = attribute.MaxEdgeLengthModel{}
	assert.True(t, c.Models()[0].Equal(attribute.QuadCenterModel{}))

	got := c.Models()
	got[0] = attribute.MaxEdgeLengthModel{}
	assert.True(t, c.Models()[0].Equal(attribute.QuadCenterModel{}))
}

func TestNilModelsPanic(t *testing.T) {
	assert.Panics(t, func() { NewAttributeStageConfiguration(nil) })
	assert.Panics(t, func() { NewTextureMappingStageConfiguration(nil, nil) })
}

func TestLayouts(t *testing.T) {
	cfg := NewConfiguration(
		NewAttributeStageConfiguration(attribute.QuadCenterModel{}, attribute.MaxEdgeLengthModel{}),
		NewTextureMappingStageConfiguration(texcoord.CanonicalModel{}, nil),
		BlendNormal, SourceColor,
	)
	layouts := cfg.Layouts()
	require.Len(t, layouts, 3)

	assert.Equal(t, uint64(16), layouts[0].ArrayStride)
	assert.Equal(t, uint32(0), layouts[0].Attributes[0].ShaderLocation)
	assert.Equal(t, uint32(1), layouts[0].Attributes[1].ShaderLocation)

	assert.Equal(t, uint64(8), layouts[1].ArrayStride)
	assert.Equal(t, uint32(2), layouts[1].Attributes[0].ShaderLocation)
	assert.Equal(t, gputypes.VertexFormatFloat32x2, layouts[1].Attributes[0].Format)

	assert.Equal(t, uint64(4), layouts[2].ArrayStride)
	assert.Equal(t, uint32(3), layouts[2].Attributes[0].ShaderLocation)
}

func TestBlendModeText(t *testing.T) {
	for m := BlendNormal; m <= BlendOpaqueDestination; m++ {
		text, err := m.MarshalText()
		require.NoError(t, err)

		var got BlendMode
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, m, got)
	}

	data, err := json.Marshal(BlendPlusLighter)
	require.NoError(t, err)
	assert.JSONEq(t, `"plusLighter"`, string(data))

	var m BlendMode
	assert.Error(t, m.UnmarshalText([]byte("bogus")))
	_, err = BlendMode(99).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "BlendMode(99)", BlendMode(99).String())
}

func TestBlendState(t *testing.T) {
	tests := []struct {
		mode BlendMode
		ok   bool
		want gputypes.BlendState
	}{
		{BlendNormal, true, gputypes.BlendStatePremultiplied()},
		{BlendOpaqueSource, true, gputypes.BlendStateReplace()},
		{BlendHardLight, false, gputypes.BlendState{}},
		{BlendOverlay, false, gputypes.BlendState{}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got, ok := tt.mode.BlendState()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	screen, ok := BlendScreen.BlendState()
	require.True(t, ok)
	assert.Equal(t, gputypes.BlendFactorOneMinusSrc, screen.Color.DstFactor)

	lighten, ok := BlendLighten.BlendState()
	require.True(t, ok)
	assert.Equal(t, gputypes.BlendOperationMax, lighten.Color.Operation)
}

func TestSourceTypeText(t *testing.T) {
	for _, s := range []SourceType{SourceColor, SourceTexture, SourceOverlay} {
		text, err := s.MarshalText()
		require.NoError(t, err)
		var got SourceType
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}
	_, err := ParseSourceType("paint")
	assert.Error(t, err)
}
