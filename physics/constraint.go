package physics

import "github.com/hatchetphys/rb2d/math/vec2"

// kFactor is the soft position-bias stiffness used by both constraint
// kinds, per §4.4.
const kFactor = 0.01

// Constraint is a pairwise condition applied as a velocity impulse once
// per substep. The closed variant set is Distance and Rope; both share
// the soft position-bias solve in applySoftBias.
type Constraint interface {
	BodyA() BodyId
	BodyB() BodyId
	Apply(dt float64, a, b *Body)
}

// Distance holds |a.pos - b.pos| == Length, applied whenever the current
// distance differs from Length.
type Distance struct {
	A, B   BodyId
	Length float64
}

// NewDistance returns a Distance constraint pinning bodies a and b to the
// given separation.
func NewDistance(a, b BodyId, length float64) *Distance {
	return &Distance{A: a, B: b, Length: length}
}

func (c *Distance) BodyA() BodyId { return c.A }
func (c *Distance) BodyB() BodyId { return c.B }

func (c *Distance) Apply(dt float64, a, b *Body) {
	applySoftBias(dt, a, b, c.Length, false)
}

// Rope holds |a.pos - b.pos| <= Length: a no-op while slack, and the same
// soft position-bias pull as Distance once the rope goes taut.
type Rope struct {
	A, B   BodyId
	Length float64
}

// NewRope returns a Rope constraint capping the separation of bodies a
// and b at the given length.
func NewRope(a, b BodyId, length float64) *Rope {
	return &Rope{A: a, B: b, Length: length}
}

func (c *Rope) BodyA() BodyId { return c.A }
func (c *Rope) BodyB() BodyId { return c.B }

func (c *Rope) Apply(dt float64, a, b *Body) {
	applySoftBias(dt, a, b, c.Length, true)
}

// applySoftBias implements the shared soft position-bias solve from
// §4.4: let r = a.pos-b.pos, delta = length-|r|, n = r/|r|, v_rel =
// a.vel-b.vel, w = a.invMass+b.invMass. Skip if w==0. Compute bias =
// -kFactor*delta/dt, lagrange = -(dot(v_rel,n)+bias)/w, and apply
// a.vel += n*lagrange*a.invMass, b.vel -= n*lagrange*b.invMass.
// ropeOnly restricts application to the taut case (delta < 0).
func applySoftBias(dt float64, a, b *Body, length float64, ropeOnly bool) {
	var r vec2.V2
	r.Sub(&a.Pos, &b.Pos)
	dist := r.Len()
	if dist == 0 {
		return
	}
	delta := length - dist
	if delta == 0 {
		return
	}
	if ropeOnly && delta >= 0 {
		return
	}

	w := a.InvMass + b.InvMass
	if w == 0 {
		return
	}

	n := r
	n.Unit()

	var vrel vec2.V2
	vrel.Sub(&a.Vel, &b.Vel)

	bias := -kFactor * delta / dt
	lagrange := -(vrel.Dot(&n) + bias) / w

	a.Vel.X += n.X * lagrange * a.InvMass
	a.Vel.Y += n.Y * lagrange * a.InvMass
	b.Vel.X -= n.X * lagrange * b.InvMass
	b.Vel.Y -= n.Y * lagrange * b.InvMass
}
