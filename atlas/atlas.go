// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package atlas maps named rectangular regions of a texture to texture
// coordinate quads.
package atlas

import (
	"errors"
	"fmt"
	"image"
	"maps"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/brush/geom"
)

// Errors returned by New and Grid.
var (
	ErrNilTexture    = errors.New("atlas: nil texture")
	ErrNoRegions     = errors.New("atlas: no regions")
	ErrInvalidRegion = errors.New("atlas: region is empty or outside the texture")
)

// Atlas is a texture subdivided into named regions.
//
// The atlas holds a non-owning reference to the texture: the caller keeps
// ownership and must keep the texture alive while the atlas, or any
// configuration built from it, is in use. An Atlas is immutable.
type Atlas struct {
	texture gpucontext.Texture
	regions map[string]image.Rectangle
	names   []string
}

// New creates an atlas over texture. Every region must be non-empty and
// lie within the texture bounds. The region map is copied.
func New(texture gpucontext.Texture, regions map[string]image.Rectangle) (*Atlas, error) {
	if texture == nil {
		return nil, ErrNilTexture
	}
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}
	bounds := image.Rect(0, 0, texture.Width(), texture.Height())
	for name, r := range regions {
		if r.Empty() || !r.In(bounds) {
			return nil, fmt.Errorf("%w: %q %v not in %v", ErrInvalidRegion, name, r, bounds)
		}
	}
	a := &Atlas{
		texture: texture,
		regions: maps.Clone(regions),
		names:   slices.Sorted(maps.Keys(regions)),
	}
	return a, nil
}

// Grid creates an atlas splitting texture into cols x rows equal cells.
// Cells are named so that name order is row-major order.
func Grid(texture gpucontext.Texture, cols, rows int) (*Atlas, error) {
	if texture == nil {
		return nil, ErrNilTexture
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("atlas: invalid grid %dx%d", cols, rows)
	}
	w, h := texture.Width()/cols, texture.Height()/rows
	regions := make(map[string]image.Rectangle, cols*rows)
	for row := range rows {
		for col := range cols {
			regions[CellName(row*cols+col)] = image.Rect(col*w, row*h, (col+1)*w, (row+1)*h)
		}
	}
	return New(texture, regions)
}

// CellName returns the name Grid gives to the i-th cell in row-major order.
func CellName(i int) string {
	return fmt.Sprintf("cell-%04d", i)
}

// Texture returns the atlas texture.
func (a *Atlas) Texture() gpucontext.Texture { return a.texture }

// Names returns the region names in sorted order.
func (a *Atlas) Names() []string { return slices.Clone(a.names) }

// Len returns the number of regions.
func (a *Atlas) Len() int { return len(a.names) }

// Region returns the pixel rectangle of the named region.
func (a *Atlas) Region(name string) (image.Rectangle, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// TexCoordQuad returns the named region in normalized texture coordinates.
func (a *Atlas) TexCoordQuad(name string) (geom.Quad, bool) {
	r, ok := a.regions[name]
	if !ok {
		return geom.Quad{}, false
	}
	return a.normalize(r), true
}

// TexCoordQuads returns every region as a normalized quad, ordered by
// region name. The result depends only on the region map and texture size.
func (a *Atlas) TexCoordQuads() []geom.Quad {
	quads := make([]geom.Quad, len(a.names))
	for i, name := range a.names {
		quads[i] = a.normalize(a.regions[name])
	}
	return quads
}

func (a *Atlas) normalize(r image.Rectangle) geom.Quad {
	return geom.QuadFromRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy())).
		Normalized(float64(a.texture.Width()), float64(a.texture.Height()))
}
