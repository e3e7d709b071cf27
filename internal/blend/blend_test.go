// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import (
	"image/color"
	"testing"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	grey  = color.RGBA{128, 128, 128, 255}
	transparent = color.RGBA{}
)

func TestBlendModes(t *testing.T) {
	tests := []struct {
		name     string
		f        Func
		src, dst color.RGBA
		want     color.RGBA
	}{
		{"hardLight dark source multiplies", HardLight, black, grey, black},
		{"hardLight light source screens", HardLight, white, grey, white},
		{"hardLight grey is identity", HardLight, color.RGBA{127, 127, 127, 255}, color.RGBA{200, 100, 50, 255}, color.RGBA{199, 100, 50, 255}},
		{"overlay keeps black backdrop", Overlay, white, black, black},
		{"overlay keeps white backdrop", Overlay, black, white, white},
		{"softLight black backdrop", SoftLight, grey, black, black},
		{"softLight white backdrop", SoftLight, grey, white, white},
		{"colorBurn white backdrop", ColorBurn, grey, white, white},
		{"colorBurn black source", ColorBurn, black, grey, black},
		{"plusDarker white is identity", PlusDarker, white, grey, grey},
		{"plusDarker greys", PlusDarker, grey, grey, color.RGBA{1, 1, 1, 255}},
		{"plusDarker black", PlusDarker, black, white, black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f(tt.src, tt.dst); got != tt.want {
				t.Errorf("blend(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestSeparableTransparent(t *testing.T) {
	for _, f := range []Func{Overlay, HardLight, SoftLight, ColorBurn} {
		if got := f(transparent, grey); got != grey {
			t.Errorf("transparent source: got %v, want destination %v", got, grey)
		}
		if got := f(grey, transparent); got != grey {
			t.Errorf("transparent destination: got %v, want source %v", got, grey)
		}
	}
}

func TestSeparableHalfAlpha(t *testing.T) {
	// Half-transparent white over opaque grey.
	src := color.RGBA{128, 128, 128, 128}
	got := HardLight(src, grey)
	if got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
	if got.R < grey.R {
		t.Errorf("white hard light darkened the backdrop: %v", got)
	}
}

func TestPremultipliedInvariant(t *testing.T) {
	src := color.RGBA{200, 10, 90, 200}
	dst := color.RGBA{30, 60, 20, 60}
	for _, f := range []Func{Overlay, HardLight, SoftLight, ColorBurn, PlusDarker} {
		got := f(src, dst)
		if got.R > got.A || got.G > got.A || got.B > got.A {
			t.Errorf("channel exceeds alpha: %v", got)
		}
	}
}
