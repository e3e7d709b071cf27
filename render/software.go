// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/vector"

	"github.com/gogpu/brush/attribute"
	"github.com/gogpu/brush/geom"
	"github.com/gogpu/brush/internal/blend"
	"github.com/gogpu/brush/pipeline"
)

// ErrUnsupportedBlendMode is returned for blend modes a renderer cannot
// evaluate.
var ErrUnsupportedBlendMode = errors.New("render: unsupported blend mode")

// ErrNilTarget is returned when rendering without a target.
var ErrNilTarget = errors.New("render: nil target")

// ErrUnsupportedTexture is returned when a texture or overlay batch does
// not carry an *ImageTexture.
var ErrUnsupportedTexture = errors.New("render: unsupported texture")

// ColorField is the attribute field name the software renderer takes
// per-quad colors from.
const ColorField = "color"

// SoftwareRenderer rasterizes batches into a PixmapTarget on the CPU.
//
// Every quad is filled with anti-aliased coverage. The fragment color is
// the base color, or the quad's "color" attribute when the batch carries
// one, modulated by the source texture:
//   - color sources use the fragment color as is;
//   - texture sources multiply it by the brush tip sampled through the
//     quad's texture coordinates;
//   - overlay sources sample the overlay at the canvas position.
//
// The result is blended into the target with the blend mode's fixed
// function blend state, or per pixel for modes without one.
type SoftwareRenderer struct {
	target *PixmapTarget
	base   color.RGBA
	rast   vector.Rasterizer
	buf    []uint8
}

// NewSoftwareRenderer returns a renderer drawing into target with base as
// the fragment color for batches without a color attribute.
func NewSoftwareRenderer(target *PixmapTarget, base color.Color) *SoftwareRenderer {
	return &SoftwareRenderer{
		target: target,
		base:   color.RGBAModel.Convert(base).(color.RGBA),
	}
}

// Target returns the render target.
func (r *SoftwareRenderer) Target() *PixmapTarget { return r.target }

// Render implements pipeline.Renderer.
func (r *SoftwareRenderer) Render(batch pipeline.Batch) error {
	if r.target == nil {
		return ErrNilTarget
	}
	f, err := blendFunc(batch.BlendMode)
	if err != nil {
		return err
	}

	var colors *attribute.Data
	for i := range batch.Attributes {
		if _, ok := batch.Attributes[i].Struct().Field(ColorField); ok {
			colors = &batch.Attributes[i]
			break
		}
	}
	tex, ok := batch.Texture.(*ImageTexture)
	if batch.SourceType != pipeline.SourceColor && (!ok || tex == nil) {
		return fmt.Errorf("%w: %v source with %T", ErrUnsupportedTexture, batch.SourceType, batch.Texture)
	}

	for i, q := range batch.Quads {
		c := r.base
		if colors != nil {
			rec := i * geom.VerticesPerQuad
			c = color.RGBA{
				R: colors.Unorm8(rec, ColorField, 0),
				G: colors.Unorm8(rec, ColorField, 1),
				B: colors.Unorm8(rec, ColorField, 2),
				A: colors.Unorm8(rec, ColorField, 3),
			}
			c = premultiply(c)
		}
		var uv geom.Quad
		if i < len(batch.TexCoords) {
			uv = batch.TexCoords[i]
		} else {
			uv = geom.CanonicalQuad
		}
		r.fillQuad(q, uv, c, batch.SourceType, tex, f)
	}
	return nil
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255), //nolint:gosec // bounded by 255
		G: uint8(uint32(c.G) * a / 255), //nolint:gosec // bounded by 255
		B: uint8(uint32(c.B) * a / 255), //nolint:gosec // bounded by 255
		A: c.A,
	}
}

func (r *SoftwareRenderer) fillQuad(q, uv geom.Quad, c color.RGBA, source pipeline.SourceType,
	tex *ImageTexture, f blend.Func) {
	img := r.target.Image()
	lo, hi := q.Bounds()
	bounds := image.Rect(
		int(math.Floor(lo.X())), int(math.Floor(lo.Y())),
		int(math.Ceil(hi.X())), int(math.Ceil(hi.Y())),
	).Intersect(img.Bounds())
	if bounds.Empty() {
		return
	}

	w, h := bounds.Dx(), bounds.Dy()
	r.rast.Reset(w, h)
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	corners := q.Corners()
	r.rast.MoveTo(float32(corners[0].X()-ox), float32(corners[0].Y()-oy))
	for _, v := range corners[1:] {
		r.rast.LineTo(float32(v.X()-ox), float32(v.Y()-oy))
	}
	r.rast.ClosePath()

	// The rasterizer's *image.Alpha fast path needs Stride == w.
	if cap(r.buf) < w*h {
		r.buf = make([]uint8, w*h)
	}
	mask := &image.Alpha{Pix: r.buf[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}
	clear(mask.Pix)
	r.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	inv, invOK := quadFrame(q)
	tw, th := float64(r.target.Width()), float64(r.target.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov := mask.AlphaAt(x, y).A
			if cov == 0 {
				continue
			}
			px, py := bounds.Min.X+x, bounds.Min.Y+y
			frag := c
			switch source {
			case pipeline.SourceTexture:
				if invOK {
					s, t := inv(mgl64.Vec2{float64(px) + 0.5, float64(py) + 0.5})
					p := lerpQuad(uv, s, t)
					frag = modulate(frag, tex.Sample(p.X(), p.Y()).A)
				}
			case pipeline.SourceOverlay:
				o := tex.Sample((float64(px)+0.5)/tw, (float64(py)+0.5)/th)
				frag = modulate(o, c.A)
			}
			frag = modulate(frag, cov)
			img.SetRGBA(px, py, f(frag, img.RGBAAt(px, py)))
		}
	}
}

// quadFrame returns the inverse of the affine map sending (s, t) in
// [0, 1]² to v0 + s(v1-v0) + t(v3-v0). ok is false for degenerate quads.
func quadFrame(q geom.Quad) (inv func(mgl64.Vec2) (float64, float64), ok bool) {
	v0, e1, e2 := q.V0(), q.V1().Sub(q.V0()), q.V3().Sub(q.V0())
	det := e1.X()*e2.Y() - e1.Y()*e2.X()
	if math.Abs(det) < 1e-12 {
		return nil, false
	}
	return func(p mgl64.Vec2) (float64, float64) {
		d := p.Sub(v0)
		s := (d.X()*e2.Y() - d.Y()*e2.X()) / det
		t := (e1.X()*d.Y() - e1.Y()*d.X()) / det
		return s, t
	}, true
}

func lerpQuad(q geom.Quad, s, t float64) mgl64.Vec2 {
	v0 := q.V0()
	return v0.Add(q.V1().Sub(v0).Mul(s)).Add(q.V3().Sub(v0).Mul(t))
}

// modulate scales a premultiplied color by a/255.
func modulate(c color.RGBA, a uint8) color.RGBA {
	if a == 255 {
		return c
	}
	k := uint32(a)
	return color.RGBA{
		R: uint8(uint32(c.R) * k / 255), //nolint:gosec // bounded by 255
		G: uint8(uint32(c.G) * k / 255), //nolint:gosec // bounded by 255
		B: uint8(uint32(c.B) * k / 255), //nolint:gosec // bounded by 255
		A: uint8(uint32(c.A) * k / 255), //nolint:gosec // bounded by 255
	}
}

// blendFunc returns the per-pixel blend function of mode.
func blendFunc(mode pipeline.BlendMode) (blend.Func, error) {
	if state, ok := mode.BlendState(); ok {
		return func(src, dst color.RGBA) color.RGBA { return fixedFunction(state, src, dst) }, nil
	}
	switch mode {
	case pipeline.BlendHardLight:
		return blend.HardLight, nil
	case pipeline.BlendSoftLight:
		return blend.SoftLight, nil
	case pipeline.BlendColorBurn:
		return blend.ColorBurn, nil
	case pipeline.BlendOverlay:
		return blend.Overlay, nil
	case pipeline.BlendPlusDarker:
		return blend.PlusDarker, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedBlendMode, mode)
}

// fixedFunction evaluates a fixed-function blend state on premultiplied
// colors.
func fixedFunction(state gputypes.BlendState, src, dst color.RGBA) color.RGBA {
	s := unit(src)
	d := unit(dst)
	var out [4]float64
	for i := range 3 {
		out[i] = blendComponent(state.Color, s[i], d[i], s, d, i)
	}
	out[3] = blendComponent(state.Alpha, s[3], d[3], s, d, 3)
	return color.RGBA{R: to8(out[0]), G: to8(out[1]), B: to8(out[2]), A: to8(out[3])}
}

func blendComponent(c gputypes.BlendComponent, sv, dv float64, s, d [4]float64, i int) float64 {
	switch c.Operation {
	case gputypes.BlendOperationMin:
		return math.Min(sv, dv)
	case gputypes.BlendOperationMax:
		return math.Max(sv, dv)
	}
	a := sv * blendFactor(c.SrcFactor, s, d, i)
	b := dv * blendFactor(c.DstFactor, s, d, i)
	switch c.Operation {
	case gputypes.BlendOperationSubtract:
		return a - b
	case gputypes.BlendOperationReverseSubtract:
		return b - a
	default:
		return a + b
	}
}

func blendFactor(f gputypes.BlendFactor, s, d [4]float64, i int) float64 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorSrc:
		return s[i]
	case gputypes.BlendFactorOneMinusSrc:
		return 1 - s[i]
	case gputypes.BlendFactorSrcAlpha:
		return s[3]
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - s[3]
	case gputypes.BlendFactorDst:
		return d[i]
	case gputypes.BlendFactorOneMinusDst:
		return 1 - d[i]
	case gputypes.BlendFactorDstAlpha:
		return d[3]
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - d[3]
	case gputypes.BlendFactorSrcAlphaSaturated:
		if i == 3 {
			return 1
		}
		return math.Min(s[3], 1-d[3])
	default:
		return 1
	}
}

func unit(c color.RGBA) [4]float64 {
	return [4]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

var _ pipeline.Renderer = (*SoftwareRenderer)(nil)
