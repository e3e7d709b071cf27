// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom defines the quad primitive shared by all pipeline stages.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// VerticesPerQuad is the number of vertex records emitted per quad.
// Each quad is drawn as two triangles (v0 v1 v2, v0 v2 v3).
const VerticesPerQuad = 6

// Quad is a four-cornered planar primitive.
//
// Corners are ordered clockwise in a y-down coordinate system:
// v0 top-left, v1 top-right, v2 bottom-right, v3 bottom-left for an
// axis-aligned rectangle. Quad is an immutable value and is comparable
// with ==.
type Quad struct {
	v [4]mgl64.Vec2
}

// CanonicalQuad is the unit square (0,0)-(1,1).
var CanonicalQuad = QuadFromRect(0, 0, 1, 1)

// NewQuad creates a quad from four corners in clockwise order.
func NewQuad(v0, v1, v2, v3 mgl64.Vec2) Quad {
	return Quad{v: [4]mgl64.Vec2{v0, v1, v2, v3}}
}

// QuadFromRect creates an axis-aligned quad with top-left corner (x, y).
func QuadFromRect(x, y, w, h float64) Quad {
	return NewQuad(
		mgl64.Vec2{x, y},
		mgl64.Vec2{x + w, y},
		mgl64.Vec2{x + w, y + h},
		mgl64.Vec2{x, y + h},
	)
}

// QuadAround creates an axis-aligned square of the given side length
// centered at c and rotated by angle radians around c.
func QuadAround(c mgl64.Vec2, side, angle float64) Quad {
	half := side / 2
	return QuadFromRect(c.X()-half, c.Y()-half, side, side).Rotated(angle, c)
}

// Corners returns the four corners in order.
func (q Quad) Corners() [4]mgl64.Vec2 { return q.v }

// V0 returns the first corner.
func (q Quad) V0() mgl64.Vec2 { return q.v[0] }

// V1 returns the second corner.
func (q Quad) V1() mgl64.Vec2 { return q.v[1] }

// V2 returns the third corner.
func (q Quad) V2() mgl64.Vec2 { return q.v[2] }

// V3 returns the fourth corner.
func (q Quad) V3() mgl64.Vec2 { return q.v[3] }

// Center returns the average of the four corners.
func (q Quad) Center() mgl64.Vec2 {
	return q.v[0].Add(q.v[1]).Add(q.v[2]).Add(q.v[3]).Mul(0.25)
}

// EdgeLengths returns the lengths of edges v0v1, v1v2, v2v3 and v3v0.
func (q Quad) EdgeLengths() [4]float64 {
	var l [4]float64
	for i := range q.v {
		l[i] = q.v[(i+1)%4].Sub(q.v[i]).Len()
	}
	return l
}

// MaxEdgeLength returns the length of the longest edge.
func (q Quad) MaxEdgeLength() float64 {
	m := 0.0
	for _, l := range q.EdgeLengths() {
		m = math.Max(m, l)
	}
	return m
}

// MinEdgeLength returns the length of the shortest edge.
func (q Quad) MinEdgeLength() float64 {
	m := math.Inf(1)
	for _, l := range q.EdgeLengths() {
		m = math.Min(m, l)
	}
	return m
}

// Bounds returns the minimum and maximum corners of the bounding box.
func (q Quad) Bounds() (minPt, maxPt mgl64.Vec2) {
	minPt, maxPt = q.v[0], q.v[0]
	for _, p := range q.v[1:] {
		minPt = mgl64.Vec2{math.Min(minPt.X(), p.X()), math.Min(minPt.Y(), p.Y())}
		maxPt = mgl64.Vec2{math.Max(maxPt.X(), p.X()), math.Max(maxPt.Y(), p.Y())}
	}
	return minPt, maxPt
}

// Translated returns the quad moved by d.
func (q Quad) Translated(d mgl64.Vec2) Quad {
	return q.mapCorners(func(p mgl64.Vec2) mgl64.Vec2 { return p.Add(d) })
}

// Scaled returns the quad scaled by s around anchor.
func (q Quad) Scaled(s float64, anchor mgl64.Vec2) Quad {
	return q.mapCorners(func(p mgl64.Vec2) mgl64.Vec2 {
		return anchor.Add(p.Sub(anchor).Mul(s))
	})
}

// Rotated returns the quad rotated by angle radians around anchor.
func (q Quad) Rotated(angle float64, anchor mgl64.Vec2) Quad {
	if angle == 0 {
		return q
	}
	m := mgl64.Rotate2D(angle)
	return q.mapCorners(func(p mgl64.Vec2) mgl64.Vec2 {
		return anchor.Add(m.Mul2x1(p.Sub(anchor)))
	})
}

// Normalized returns the quad with x divided by w and y divided by h.
// Used to express canvas-space quads in [0,1] texture space.
func (q Quad) Normalized(w, h float64) Quad {
	return q.mapCorners(func(p mgl64.Vec2) mgl64.Vec2 {
		return mgl64.Vec2{p.X() / w, p.Y() / h}
	})
}

// ApproxEqual reports whether every corner coordinate of q differs from
// the corresponding coordinate of o by at most eps.
func (q Quad) ApproxEqual(o Quad, eps float64) bool {
	for i := range q.v {
		for j := range q.v[i] {
			if math.Abs(q.v[i][j]-o.v[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// Triangles returns the six vertices of the two triangles covering q.
func (q Quad) Triangles() [VerticesPerQuad]mgl64.Vec2 {
	return [VerticesPerQuad]mgl64.Vec2{q.v[0], q.v[1], q.v[2], q.v[0], q.v[2], q.v[3]}
}

func (q Quad) mapCorners(f func(mgl64.Vec2) mgl64.Vec2) Quad {
	return Quad{v: [4]mgl64.Vec2{f(q.v[0]), f(q.v[1]), f(q.v[2]), f(q.v[3])}}
}
