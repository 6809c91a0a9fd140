// Package physics implements a 2D rigid-body simulation core: convex
// shapes, a GJK+EPA narrow-phase detector, bodies, pairwise constraints,
// and a fixed-substep world.
package physics

import (
	"math"

	"github.com/hatchetphys/rb2d/math/vec2"
)

// Kind discriminates the closed set of Shape variants, so a caller can tell
// the variants apart without a type assertion. (momentOfInertia still uses
// a type switch, since it needs a Polygon's points.)
type Kind int

const (
	// KindPolygon is an arbitrary convex polygon given by its vertices.
	KindPolygon Kind = iota
	// KindCircle is a unit-radius circle; actual radius is applied by a
	// ShapeView's scale.
	KindCircle
)

// Shape is an immutable convex shape in local coordinates, centered at or
// near the origin. Shapes may be shared by many bodies; nothing in this
// package mutates a Shape after construction.
type Shape interface {
	Kind() Kind
	// Support returns the shape's extreme point along dir, i.e. the point
	// p in the shape maximizing dot(p, dir). dir need not be unit length.
	Support(dir *vec2.V2) vec2.V2
	// Center returns the shape's centroid, used by the detector only as
	// a seed hint; it need not be exact.
	Center() vec2.V2
}

// Polygon is an ordered, convex set of vertices with no duplicate points.
// Winding order is unconstrained.
type Polygon struct {
	points []vec2.V2
	center vec2.V2
}

// NewPolygon builds a Polygon from the given vertices. pts must describe a
// convex hull of at least 3 points; the caller is responsible for that
// invariant, matching the source's assumption that shapes arrive already
// convex.
func NewPolygon(pts []vec2.V2) *Polygon {
	p := &Polygon{points: append([]vec2.V2(nil), pts...)}
	var c vec2.V2
	for i := range p.points {
		// running average, so a partially-built polygon always has a
		// sensible center — mirrors how the source accumulates centroid
		// incrementally as points are pushed.
		pt := p.points[i]
		n := float64(i + 1)
		c.X += (pt.X - c.X) / n
		c.Y += (pt.Y - c.Y) / n
	}
	p.center = c
	return p
}

// NewRegularPolygon builds a regular polygon of n sides on the unit
// circle. If n is even, the vertex ring is rotated by half the
// inter-vertex angle so the bottom edge is axis-aligned, matching the
// source's regular_polygon_pts.
func NewRegularPolygon(n int) *Polygon {
	if n < 3 {
		n = 3
	}
	angle := 2 * math.Pi / float64(n)
	pts := make([]vec2.V2, n)
	start := vec2.V2{X: 0, Y: 1}
	if n%2 == 0 {
		r := vec2.NewRot2(angle / 2)
		x, y := r.Apply(start.X, start.Y)
		start = vec2.V2{X: x, Y: y}
	}
	pts[0] = start
	step := vec2.NewRot2(angle)
	for i := 1; i < n; i++ {
		x, y := step.Apply(pts[i-1].X, pts[i-1].Y)
		pts[i] = vec2.V2{X: x, Y: y}
	}
	return NewPolygon(pts)
}

// Points returns the polygon's local-space vertices. The returned slice
// must not be modified.
func (p *Polygon) Points() []vec2.V2 { return p.points }

func (p *Polygon) Kind() Kind       { return KindPolygon }
func (p *Polygon) Center() vec2.V2  { return p.center }

// Support is a linear scan of dot products, per spec: a plain polygon's
// support mapping has no faster closed form without a precomputed normal
// ordering, which this core does not maintain.
func (p *Polygon) Support(dir *vec2.V2) vec2.V2 {
	best := p.points[0]
	bestDot := best.Dot(dir)
	for _, pt := range p.points[1:] {
		d := pt.Dot(dir)
		if d > bestDot {
			bestDot = d
			best = pt
		}
	}
	return best
}

// Circle is a unit-radius circle centered at the origin. Non-unit radii
// are obtained via a ShapeView's scale.
type Circle struct{}

// NewCircle returns a unit-radius circle shape.
func NewCircle() *Circle { return &Circle{} }

func (c *Circle) Kind() Kind      { return KindCircle }
func (c *Circle) Center() vec2.V2 { return vec2.V2{} }

// Support returns dir normalized to unit length, or the zero vector if
// dir has no length (an arbitrary but deterministic tie-break).
func (c *Circle) Support(dir *vec2.V2) vec2.V2 {
	d := *dir
	d.Unit()
	return d
}
