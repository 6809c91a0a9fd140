package physics

import (
	"log/slog"

	"github.com/hatchetphys/rb2d/math/vec2"
)

// maxGjkIterations bounds the simplex-refinement loop so the detector
// never spins forever on a degenerate or numerically troublesome pair.
const maxGjkIterations = 100

// simplex holds up to 3 points of the Minkowski difference A - B. num
// tracks how many of a, b, c are in use; a is always the most recently
// added point, matching the source's add-to-front convention.
type simplex struct {
	a, b, c vec2.V2
	num     int
}

func (s *simplex) push(p vec2.V2) {
	switch s.num {
	case 0:
		s.a = p
	case 1:
		s.b = s.a
		s.a = p
	default:
		s.c = s.b
		s.b = s.a
		s.a = p
	}
	if s.num < 3 {
		s.num++
	}
}

// tripleProduct returns (a x b) x c for 2D vectors, the vector in the
// plane of a, b perpendicular to b and on the same side as c minus its
// projection — used to build a direction perpendicular to a simplex edge
// and pointing toward a target point. Equivalent in spirit to gjk.go's
// triple_cross, collapsed from 3D cross products to the 2D identity
// (a x b) x c = b * dot(a, c) - a * dot(b, c).
func tripleProduct(a, b, c vec2.V2) vec2.V2 {
	var r vec2.V2
	r.X = b.X*a.Dot(&c) - a.X*b.Dot(&c)
	r.Y = b.Y*a.Dot(&c) - a.Y*b.Dot(&c)
	return r
}

func support(a, b *ShapeView, dir vec2.V2) vec2.V2 {
	sa := a.Support(dir)
	neg := vec2.V2{X: -dir.X, Y: -dir.Y}
	sb := b.Support(neg)
	var diff vec2.V2
	diff.Sub(&sa, &sb)
	return diff
}

// doSimplexLine handles the 2-point (line) simplex case: reduce to the
// feature nearest the origin and update direction to point toward it.
// A segment cannot enclose the origin, so it always returns false; when
// the origin lies on the segment the search continues perpendicular to it.
func doSimplexLine(s *simplex, direction *vec2.V2) bool {
	a, b := s.a, s.b
	var ab, ao vec2.V2
	ab.Sub(&b, &a)
	ao.Neg(&a)
	if ab.Dot(&ao) >= 0 {
		*direction = tripleProduct(ab, ao, ab)
		if direction.AeqZ() {
			// ao is parallel to ab: origin lies on the segment. Search
			// perpendicular to it for a third point.
			direction.Perp(&ab)
		}
	} else {
		s.a = a
		s.num = 1
		*direction = ao
	}
	return false
}

// doSimplexTriangle handles the 3-point (triangle) simplex case.
func doSimplexTriangle(s *simplex, direction *vec2.V2) bool {
	a, b, c := s.a, s.b, s.c
	var ab, ac, ao vec2.V2
	ab.Sub(&b, &a)
	ac.Sub(&c, &a)
	ao.Neg(&a)

	abPerp := tripleProduct(ac, ab, ab)
	if abPerp.Dot(&ao) > 0 {
		s.a, s.b = a, b
		s.num = 2
		*direction = abPerp
		return false
	}

	acPerp := tripleProduct(ab, ac, ac)
	if acPerp.Dot(&ao) > 0 {
		s.a, s.b = a, c
		s.num = 2
		*direction = acPerp
		return false
	}

	// Origin is inside the triangle.
	return true
}

// gjkIntersect runs GJK on ShapeViews a and b and returns the terminal
// simplex (which contains the origin) when they intersect.
func gjkIntersect(a, b *ShapeView) (simplex, bool) {
	var s simplex
	initial := vec2.V2{X: 1, Y: 0}
	p0 := support(a, b, initial)
	s.push(p0)
	direction := vec2.V2{X: -p0.X, Y: -p0.Y}
	if direction.AeqZ() {
		// origin coincides with the first support point: touching.
		return s, true
	}

	var prev vec2.V2
	for i := 0; i < maxGjkIterations; i++ {
		p := support(a, b, direction)
		if p.Dot(&direction) <= 0 {
			return s, false
		}
		if i > 0 && p.Eq(&prev) {
			// same support point twice in a row: numerical stall.
			return s, false
		}
		prev = p
		s.push(p)

		var done bool
		switch s.num {
		case 2:
			done = doSimplexLine(&s, &direction)
			if done {
				return s, true
			}
		case 3:
			done = doSimplexTriangle(&s, &direction)
			if done {
				return s, true
			}
		}
	}
	slog.Warn("gjk: iteration cap reached without convergence")
	return s, false
}
