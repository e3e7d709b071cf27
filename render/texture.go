// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"golang.org/x/image/draw"
)

// ImageTexture is a CPU-side texture backed by premultiplied RGBA pixels.
// It stands in for GPU textures wherever the software renderer samples
// brush tip or overlay images.
type ImageTexture struct {
	img *image.RGBA
}

// NewImageTexture copies img into a new texture with origin (0, 0).
// A nil img yields an empty texture.
func NewImageTexture(img image.Image) *ImageTexture {
	if img == nil {
		return &ImageTexture{img: image.NewRGBA(image.Rectangle{})}
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)
	return &ImageTexture{img: rgba}
}

// Width implements gpucontext.Texture.
func (t *ImageTexture) Width() int { return t.img.Bounds().Dx() }

// Height implements gpucontext.Texture.
func (t *ImageTexture) Height() int { return t.img.Bounds().Dy() }

// Image returns the underlying pixels. The image shares memory with t.
func (t *ImageTexture) Image() *image.RGBA { return t.img }

// UpdateData replaces the pixels with data, which must hold exactly
// width * height premultiplied RGBA pixels.
func (t *ImageTexture) UpdateData(data []byte) error {
	if len(data) != len(t.img.Pix) {
		return fmt.Errorf("render: texture data is %d bytes, want %d", len(data), len(t.img.Pix))
	}
	copy(t.img.Pix, data)
	return nil
}

// Sample returns the premultiplied color at texture coordinate (u, v) in
// [0, 1]², using nearest filtering and clamp-to-edge addressing.
func (t *ImageTexture) Sample(u, v float64) color.RGBA {
	w, h := t.Width(), t.Height()
	if w == 0 || h == 0 {
		return color.RGBA{}
	}
	x := clampInt(int(u*float64(w)), 0, w-1)
	y := clampInt(int(v*float64(h)), 0, h-1)
	return t.img.RGBAAt(x, y)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

var (
	_ gpucontext.Texture        = (*ImageTexture)(nil)
	_ gpucontext.TextureUpdater = (*ImageTexture)(nil)
)
