// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// ErrInvalidTarget is returned for targets with a non-positive size or an
// undefined format.
var ErrInvalidTarget = errors.New("render: invalid target")

// Target defines where brush strokes are drawn.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat
}

// Info is the render target information a pipeline configuration is
// built for. It is a comparable value and itself a Target.
type Info struct {
	width, height int
	format        gputypes.TextureFormat
}

// InfoOf captures the current dimensions and format of t.
func InfoOf(t Target) Info {
	return Info{width: t.Width(), height: t.Height(), format: t.Format()}
}

// NewInfo returns target information for the given size and format.
func NewInfo(width, height int, format gputypes.TextureFormat) Info {
	return Info{width: width, height: height, format: format}
}

// Width implements Target.
func (i Info) Width() int { return i.width }

// Height implements Target.
func (i Info) Height() int { return i.height }

// Format implements Target.
func (i Info) Format() gputypes.TextureFormat { return i.format }

// Validate returns an error wrapping ErrInvalidTarget if the size is not
// positive or the format is undefined.
func (i Info) Validate() error {
	if i.width <= 0 || i.height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidTarget, i.width, i.height)
	}
	if i.format == gputypes.TextureFormatUndefined {
		return fmt.Errorf("%w: undefined format", ErrInvalidTarget)
	}
	return nil
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
// Pixels are premultiplied, as with every *image.RGBA.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	renderer := render.NewSoftwareRenderer(target, color.Black)
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a render target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, rgba)
		}
	}
}

// SetPixel sets a single pixel at the given coordinates.
func (t *PixmapTarget) SetPixel(x, y int, c color.Color) {
	t.img.Set(x, y, c)
}

// GetPixel returns the color at the given coordinates.
func (t *PixmapTarget) GetPixel(x, y int) color.Color {
	return t.img.At(x, y)
}

// Resize creates a new target with the given dimensions.
// The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

var (
	_ Target = (*PixmapTarget)(nil)
	_ Target = Info{}
)
