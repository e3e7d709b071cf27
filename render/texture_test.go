// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"testing"
)

func TestImageTexture(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 14, 12))
	src.SetNRGBA(10, 10, color.NRGBA{255, 0, 0, 255})
	src.SetNRGBA(13, 11, color.NRGBA{0, 0, 255, 128})

	tex := NewImageTexture(src)
	if tex.Width() != 4 || tex.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", tex.Width(), tex.Height())
	}

	tests := []struct {
		u, v float64
		want color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{0.1, 0.2, color.RGBA{255, 0, 0, 255}},
		{0.99, 0.99, color.RGBA{0, 0, 128, 128}},
		{-1, -1, color.RGBA{255, 0, 0, 255}},
		{2, 2, color.RGBA{0, 0, 128, 128}},
		{0.5, 0, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := tex.Sample(tt.u, tt.v); got != tt.want {
			t.Errorf("Sample(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestImageTextureUpdateData(t *testing.T) {
	tex := NewImageTexture(image.NewRGBA(image.Rect(0, 0, 2, 1)))

	if err := tex.UpdateData(make([]byte, 3)); err == nil {
		t.Error("UpdateData with short data should fail")
	}
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := tex.UpdateData(data); err != nil {
		t.Fatalf("UpdateData() = %v", err)
	}
	if got := tex.Image().RGBAAt(1, 0); got != (color.RGBA{5, 6, 7, 8}) {
		t.Errorf("pixel = %v, want {5 6 7 8}", got)
	}
}

func TestImageTextureNil(t *testing.T) {
	tex := NewImageTexture(nil)
	if tex.Width() != 0 || tex.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", tex.Width(), tex.Height())
	}
	if got := tex.Sample(0.5, 0.5); got != (color.RGBA{}) {
		t.Errorf("Sample() = %v, want transparent", got)
	}
}
