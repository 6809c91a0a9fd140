package physics

import (
	"log/slog"

	"github.com/hatchetphys/rb2d/math/vec2"
)

// epaEpsilon is the convergence tolerance between a polytope edge's
// supporting line and the next support point along its normal.
const epaEpsilon = 1e-6

// maxEpaIterations bounds the polytope expansion loop.
const maxEpaIterations = 64

// edgeNormal returns the outward unit normal of the edge from p[i] to
// p[(i+1)%len(p)] (outward meaning away from the origin, which the
// polytope always encloses) and the signed distance from the origin to
// the edge's supporting line. Analogous to gjk.go/epa.go's face-normal
// computation, collapsed from a 3D face to a 2D edge.
func edgeNormal(poly []vec2.V2, i int) (n vec2.V2, dist float64) {
	j := (i + 1) % len(poly)
	var edge vec2.V2
	edge.Sub(&poly[j], &poly[i])
	n = vec2.V2{X: edge.Y, Y: -edge.X}
	n.Unit()
	dist = n.Dot(&poly[i])
	if dist < 0 {
		n.Neg(&n)
		dist = -dist
	}
	return n, dist
}

// epa expands the GJK-terminating triangle simplex into the polytope's
// closest edge to the origin, returning the contact normal (pointing out
// of B into A) and penetration depth. Bounded iteration; on exhaustion it
// returns the best edge found so far rather than looping forever.
func epa(a, b *ShapeView, s simplex) (normal vec2.V2, depth float64, converged bool) {
	poly := []vec2.V2{s.a, s.b, s.c}

	for iter := 0; iter < maxEpaIterations; iter++ {
		// find the edge closest to the origin.
		bestIdx := 0
		bestNormal, bestDist := edgeNormal(poly, 0)
		for i := 1; i < len(poly); i++ {
			n, d := edgeNormal(poly, i)
			if d < bestDist {
				bestIdx, bestNormal, bestDist = i, n, d
			}
		}

		p := support(a, b, bestNormal)
		d := bestNormal.Dot(&p)
		if d-bestDist < epaEpsilon {
			// the edge normal points from A into B; flip it to out of B.
			return vec2.V2{X: -bestNormal.X, Y: -bestNormal.Y}, bestDist, true
		}

		// insert p between the endpoints of the closest edge.
		j := (bestIdx + 1) % len(poly)
		if j == 0 {
			poly = append(poly, p)
		} else {
			poly = append(poly, vec2.V2{})
			copy(poly[j+1:], poly[j:])
			poly[j] = p
		}
	}
	slog.Warn("epa: iteration cap reached without convergence")
	// best-so-far: recompute the current closest edge.
	bestNormal, bestDist := edgeNormal(poly, 0)
	for i := 1; i < len(poly); i++ {
		n, d := edgeNormal(poly, i)
		if d < bestDist {
			bestNormal, bestDist = n, d
		}
	}
	return vec2.V2{X: -bestNormal.X, Y: -bestNormal.Y}, bestDist, false
}

// contactPoints recovers the two shapes' witness points for a converged
// EPA normal (out of B into A): A's support point against the normal,
// i.e. its deepest point into B, and B's support point along it.
func contactPoints(a, b *ShapeView, normal vec2.V2) (pa, pb vec2.V2) {
	neg := vec2.V2{X: -normal.X, Y: -normal.Y}
	pa = a.Support(neg)
	pb = b.Support(normal)
	return pa, pb
}
