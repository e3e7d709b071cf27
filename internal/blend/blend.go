// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blend implements the brush blend modes that have no
// fixed-function blend state and must be evaluated per pixel.
//
// All functions take and return premultiplied colors.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"image/color"
	"math"
)

// Func blends a premultiplied source pixel onto a premultiplied
// destination pixel.
type Func func(src, dst color.RGBA) color.RGBA

// Separable returns the blend function applying the per-channel blend b
// with source-over compositing:
//
//	Co = (1 - Sa)·D + (1 - Da)·S + Sa·Da·B(Cs, Cb)
//	Ao = Sa + Da·(1 - Sa)
//
// where Cs and Cb are the unpremultiplied source and backdrop channels.
func Separable(b func(cs, cb float64) float64) Func {
	return func(src, dst color.RGBA) color.RGBA {
		if src.A == 0 {
			return dst
		}
		if dst.A == 0 {
			return src
		}
		s, d := unit(src), unit(dst)
		sa, da := s[3], d[3]
		var out [4]float64
		for i := range 3 {
			cs, cb := s[i]/sa, d[i]/da
			out[i] = (1-sa)*d[i] + (1-da)*s[i] + sa*da*b(cs, cb)
		}
		out[3] = sa + da*(1-sa)
		return pack(out)
	}
}

// Blend modes.
var (
	Overlay   = Separable(overlay)
	HardLight = Separable(hardLight)
	SoftLight = Separable(softLight)
	ColorBurn = Separable(colorBurn)
)

// HardLight multiplies or screens depending on the source.
func hardLight(cs, cb float64) float64 {
	if cs <= 0.5 {
		return cb * 2 * cs
	}
	return screen(cb, 2*cs-1)
}

// Overlay is HardLight with source and backdrop swapped.
func overlay(cs, cb float64) float64 { return hardLight(cb, cs) }

func screen(cs, cb float64) float64 { return cb + cs - cb*cs }

func softLight(cs, cb float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

func colorBurn(cs, cb float64) float64 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	default:
		return 1 - math.Min(1, (1-cb)/cs)
	}
}

// PlusDarker adds source and destination and subtracts one, per
// premultiplied channel relative to the result alpha:
//
//	Ao = Sa + Da·(1 - Sa)
//	Co = max(0, Ao - ((Da - D) + (Sa - S)))
func PlusDarker(src, dst color.RGBA) color.RGBA {
	s, d := unit(src), unit(dst)
	var out [4]float64
	out[3] = s[3] + d[3]*(1-s[3])
	for i := range 3 {
		out[i] = math.Max(0, out[3]-((d[3]-d[i])+(s[3]-s[i])))
	}
	return pack(out)
}

func unit(c color.RGBA) [4]float64 {
	return [4]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}
}

func pack(v [4]float64) color.RGBA {
	a := to8(v[3])
	// Premultiplied channels never exceed alpha.
	return color.RGBA{R: min(to8(v[0]), a), G: min(to8(v[1]), a), B: min(to8(v[2]), a), A: a}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}
