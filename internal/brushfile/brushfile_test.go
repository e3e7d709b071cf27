// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package brushfile

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/brush/model"
	"github.com/gogpu/brush/pipeline"
)

const jsonDoc = `{
  "version": 1,
  "scale": 2,
  "maxScale": 4,
  "color": [0.25, 0.5, 1],
  "hueJitter": 0.125,
  "brushTipImageGridSize": [2, 3],
  "blendMode": "multiply",
  "initialSeed": 12345678901234,
  "randomInitialSeed": true
}`

const yamlDoc = `
version: 1
scale: 2
maxScale: 4
color: [0.25, 0.5, 1]
hueJitter: 0.125
brushTipImageGridSize: [2, 3]
blendMode: multiply
initialSeed: 12345678901234
randomInitialSeed: true
`

const tomlDoc = `
version = 1
scale = 2.0
maxScale = 4.0
color = [0.25, 0.5, 1.0]
hueJitter = 0.125
brushTipImageGridSize = [2, 3]
blendMode = "multiply"
initialSeed = 12345678901234
randomInitialSeed = true
`

func wantModel() model.V1 {
	m := model.DefaultV1()
	m.Scale = 2
	m.MaxScale = 4
	m.Color = [3]float64{0.25, 0.5, 1}
	m.HueJitter = 0.125
	m.BrushTipImageGridSize = [2]int{2, 3}
	m.BlendMode = pipeline.BlendMultiply
	m.InitialSeed = 12345678901234
	m.RandomInitialSeed = true
	return m
}

func TestLoadModelFormats(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file string
		doc  string
	}{
		{"brush.json", jsonDoc},
		{"brush.yaml", yamlDoc},
		{"brush.YML", yamlDoc},
		{"brush.toml", tomlDoc},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o600))

			m, err := LoadModel(path)
			require.NoError(t, err)
			assert.Equal(t, wantModel(), m)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{}`), ".xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Decode([]byte(`{`), ".json")
	assert.Error(t, err)

	_, err = Decode([]byte("version = "), ".toml")
	assert.Error(t, err)

	_, err = Decode([]byte("- a\n- b\n"), ".yaml")
	assert.Error(t, err)
}

func TestDecodeEmptyDocument(t *testing.T) {
	dict, err := Decode(nil, ".yaml")
	require.NoError(t, err)
	assert.Empty(t, dict)

	_, err = model.Deserialize(dict)
	assert.ErrorIs(t, err, model.ErrNoSerializedVersion)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadTextures(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "tip.png"))
	writePNG(t, filepath.Join(dir, "paper.png"))

	m := model.DefaultV1()
	m.SourceType = pipeline.SourceTexture
	m.BrushTipImageURL = "tip.png"
	m.OverlayImageURL = "file://" + filepath.ToSlash(filepath.Join(dir, "paper.png"))

	textures, err := LoadTextures(m, dir)
	require.NoError(t, err)
	require.Len(t, textures, 2)
	for _, key := range m.ImageURLKeys() {
		tex := textures[key]
		require.NotNil(t, tex, key)
		assert.Equal(t, 3, tex.Width())
		assert.Equal(t, 2, tex.Height())
	}
}

func TestLoadTexturesErrors(t *testing.T) {
	m := model.DefaultV1()
	m.OverlayImageURL = "missing.png"
	_, err := LoadTextures(m, t.TempDir())
	assert.Error(t, err)

	m.OverlayImageURL = "https://example.com/paper.png"
	_, err = LoadTextures(m, t.TempDir())
	assert.ErrorContains(t, err, "unsupported URL scheme")

	textures, err := LoadTextures(model.DefaultV1(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, textures)
}
