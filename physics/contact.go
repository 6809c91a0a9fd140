package physics

import "github.com/hatchetphys/rb2d/math/vec2"

// contactDepthEpsilon is the minimum penetration depth treated as an
// actual collision; anything below it is reported as no contact.
const contactDepthEpsilon = 1e-6

// Contact is the result of a successful collision test between two
// ShapeViews: a unit normal pointing out of B into A, the penetration
// depth, and a witness point on each shape.
type Contact struct {
	Normal   vec2.V2
	Depth    float64
	ContactA vec2.V2
	ContactB vec2.V2
}

// Detect runs GJK followed by EPA on ShapeViews a and b. It returns the
// contact record and true on overlap, or a zero Contact and false when
// the shapes are disjoint or the overlap is too shallow to matter. Detect
// never panics: GJK and EPA are both bounded-iteration and fall back to
// best-effort results rather than looping forever.
func Detect(a, b ShapeView) (Contact, bool) {
	s, hit := gjkIntersect(&a, &b)
	if !hit {
		return Contact{}, false
	}
	normal, depth, _ := epa(&a, &b, s)
	if depth < contactDepthEpsilon {
		return Contact{}, false
	}
	pa, pb := contactPoints(&a, &b, normal)
	return Contact{Normal: normal, Depth: depth, ContactA: pa, ContactB: pb}, true
}
