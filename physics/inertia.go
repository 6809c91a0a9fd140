package physics

import "github.com/hatchetphys/rb2d/math/vec2"

// momentOfInertia estimates a shape's moment of inertia about its own
// centroid for the given mass, with the shape placed at scale. The
// source uses a fixed mass*10 placeholder; per the design notes this
// implementation replaces it with the actual polygon formula and the
// standard solid-disc formula for circles.
func momentOfInertia(shape Shape, scale vec2.V2, mass float64) float64 {
	switch s := shape.(type) {
	case *Circle:
		// unit circle scaled anisotropically approximates an ellipse;
		// use the mean of the two radii for a disc-equivalent estimate.
		r := (scale.X + scale.Y) / 2
		return mass * r * r / 2
	case *Polygon:
		return polygonMomentOfInertia(s, scale, mass)
	default:
		return mass
	}
}

// polygonMomentOfInertia implements I = (mass/6) * sum(|cross(pi,pi+1)| *
// (|pi|^2 + dot(pi,pi+1) + |pi+1|^2)) / sum(|cross(pi,pi+1)|), taken about
// the polygon's centroid, with points first placed by scale.
func polygonMomentOfInertia(p *Polygon, scale vec2.V2, mass float64) float64 {
	pts := p.Points()
	center := p.Center()
	n := len(pts)
	if n < 3 {
		return mass
	}
	shifted := make([]vec2.V2, n)
	for i, pt := range pts {
		shifted[i] = vec2.V2{
			X: (pt.X - center.X) * scale.X,
			Y: (pt.Y - center.Y) * scale.Y,
		}
	}

	var numerator, denominator float64
	for i := 0; i < n; i++ {
		a := shifted[i]
		b := shifted[(i+1)%n]
		cross := a.Cross(&b)
		if cross < 0 {
			cross = -cross
		}
		term := a.Dot(&a) + a.Dot(&b) + b.Dot(&b)
		numerator += cross * term
		denominator += cross
	}
	if denominator == 0 {
		return mass
	}
	return (mass / 6) * numerator / denominator
}
