// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package brushfile loads brush model documents and their images from
// disk.
//
// Documents may be JSON, YAML or TOML. Each is decoded into the keyed
// dictionary model.Deserialize accepts.
package brushfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/png" // brush tips are usually PNG
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gpucontext"
	"github.com/pelletier/go-toml/v2"
	_ "golang.org/x/image/bmp"  // BMP brush tips
	_ "golang.org/x/image/webp" // WebP brush tips
	"gopkg.in/yaml.v3"

	"github.com/gogpu/brush/model"
	"github.com/gogpu/brush/render"
)

// ErrUnknownFormat is returned for file extensions without a decoder.
var ErrUnknownFormat = errors.New("brushfile: unknown format")

// Load reads the brush model document at path. The format is chosen by
// the file extension.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("brushfile: %w", err)
	}
	dict, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("brushfile: %s: %w", path, err)
	}
	return dict, nil
}

// LoadModel loads and deserializes the brush model at path.
func LoadModel(path string) (model.BrushModel, error) {
	dict, err := Load(path)
	if err != nil {
		return nil, err
	}
	return model.Deserialize(dict)
}

// Decode decodes a document of the format named by ext (".json", ".yaml",
// ".yml" or ".toml"; case-insensitive).
func Decode(data []byte, ext string) (map[string]any, error) {
	var dict map[string]any
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&dict); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &dict); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &dict); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if dict == nil {
		dict = map[string]any{}
	}
	return dict, nil
}

// LoadTextures loads every image the model refers to, keyed by its image
// URL property key. URLs are file URLs or paths; relative paths are
// resolved against dir.
func LoadTextures(m model.BrushModel, dir string) (map[string]gpucontext.Texture, error) {
	textures := make(map[string]gpucontext.Texture)
	for key, raw := range m.ImageURLs() {
		path, err := filePath(raw, dir)
		if err != nil {
			return nil, fmt.Errorf("brushfile: %s: %w", key, err)
		}
		img, err := loadImage(path)
		if err != nil {
			return nil, fmt.Errorf("brushfile: %s: %w", key, err)
		}
		textures[key] = render.NewImageTexture(img)
	}
	return textures, nil
}

func filePath(raw, dir string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	path := raw
	switch u.Scheme {
	case "file":
		path = u.Path
	case "":
	default:
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return path, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
