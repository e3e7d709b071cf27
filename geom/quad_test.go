// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func TestQuadFromRect(t *testing.T) {
	q := QuadFromRect(1, 2, 3, 4)
	want := [4]mgl64.Vec2{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	if q.Corners() != want {
		t.Errorf("Corners() = %v, want %v", q.Corners(), want)
	}
	if q.V0() != want[0] || q.V1() != want[1] || q.V2() != want[2] || q.V3() != want[3] {
		t.Error("V0..V3 do not match Corners()")
	}
}

func TestQuadMetrics(t *testing.T) {
	tests := []struct {
		name    string
		q       Quad
		center  mgl64.Vec2
		maxEdge float64
		minEdge float64
	}{
		{"unit", CanonicalQuad, mgl64.Vec2{0.5, 0.5}, 1, 1},
		{"rect", QuadFromRect(10, 20, 4, 2), mgl64.Vec2{12, 21}, 4, 2},
		{"rotated square", QuadAround(mgl64.Vec2{5, 5}, 2, math.Pi/4), mgl64.Vec2{5, 5}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Center(); !got.ApproxEqualThreshold(tt.center, eps) {
				t.Errorf("Center() = %v, want %v", got, tt.center)
			}
			if got := tt.q.MaxEdgeLength(); math.Abs(got-tt.maxEdge) > eps {
				t.Errorf("MaxEdgeLength() = %v, want %v", got, tt.maxEdge)
			}
			if got := tt.q.MinEdgeLength(); math.Abs(got-tt.minEdge) > eps {
				t.Errorf("MinEdgeLength() = %v, want %v", got, tt.minEdge)
			}
		})
	}
}

func TestQuadTransforms(t *testing.T) {
	q := QuadFromRect(0, 0, 2, 2)

	if got, want := q.Translated(mgl64.Vec2{1, 1}), QuadFromRect(1, 1, 2, 2); got != want {
		t.Errorf("Translated() = %v, want %v", got, want)
	}
	if got, want := q.Scaled(2, mgl64.Vec2{1, 1}), QuadFromRect(-1, -1, 4, 4); !got.ApproxEqual(want, eps) {
		t.Errorf("Scaled() = %v, want %v", got, want)
	}
	if got := q.Rotated(0, mgl64.Vec2{}); got != q {
		t.Errorf("Rotated(0) = %v, want %v", got, q)
	}
	rot := q.Rotated(math.Pi/2, mgl64.Vec2{1, 1})
	want := NewQuad(mgl64.Vec2{2, 0}, mgl64.Vec2{2, 2}, mgl64.Vec2{0, 2}, mgl64.Vec2{0, 0})
	if !rot.ApproxEqual(want, eps) {
		t.Errorf("Rotated(pi/2) = %v, want %v", rot, want)
	}
	if got, want := QuadFromRect(10, 20, 10, 20).Normalized(100, 200), QuadFromRect(0.1, 0.1, 0.1, 0.1); !got.ApproxEqual(want, eps) {
		t.Errorf("Normalized() = %v, want %v", got, want)
	}
}

func TestQuadBounds(t *testing.T) {
	q := QuadAround(mgl64.Vec2{0, 0}, 2, math.Pi/4)
	minPt, maxPt := q.Bounds()
	r := math.Sqrt2
	if !minPt.ApproxEqualThreshold(mgl64.Vec2{-r, -r}, eps) || !maxPt.ApproxEqualThreshold(mgl64.Vec2{r, r}, eps) {
		t.Errorf("Bounds() = %v, %v, want ±%v", minPt, maxPt, r)
	}
}

func TestQuadTriangles(t *testing.T) {
	q := CanonicalQuad
	tri := q.Triangles()
	if len(tri) != VerticesPerQuad {
		t.Fatalf("len(Triangles()) = %d, want %d", len(tri), VerticesPerQuad)
	}
	want := [VerticesPerQuad]mgl64.Vec2{q.V0(), q.V1(), q.V2(), q.V0(), q.V2(), q.V3()}
	if tri != want {
		t.Errorf("Triangles() = %v, want %v", tri, want)
	}
}

func TestQuadApproxEqual(t *testing.T) {
	q := QuadFromRect(0, 0, 2, 2)
	tests := []struct {
		name string
		o    Quad
		want bool
	}{
		{"identical", q, true},
		{"rounding at zero", q.Translated(mgl64.Vec2{1.1e-16, -1.1e-16}), true},
		{"within eps", q.Translated(mgl64.Vec2{0, 5e-10}), true},
		{"beyond eps", q.Translated(mgl64.Vec2{2e-9, 0}), false},
		{"one corner off", NewQuad(q.V0(), q.V1(), q.V2(), mgl64.Vec2{0, 2.1}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.ApproxEqual(tt.o, eps); got != tt.want {
				t.Errorf("ApproxEqual(%v) = %v, want %v", tt.o, got, tt.want)
			}
		})
	}
}
