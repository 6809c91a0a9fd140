// Package vec2 provides 2D vector, rotation, and transform math for the
// physics package. It is the thin math wrapper the physics core is built
// against, written in the style of a hand-rolled linear algebra package
// rather than pulled in as a dependency.
package vec2

import "math"

// Epsilon is the tolerance used by Aeq and AeqZ for float comparisons.
const Epsilon = 1e-10

// Aeq (~=) almost-equals returns true if a and b are close enough that
// the difference makes no practical difference.
func Aeq(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < Epsilon
}

// V2 is a 2 element vector. It is also used as a point.
type V2 struct {
	X float64
	Y float64
}

// Eq (==) returns true if each element in v has the same value as the
// corresponding element in a.
func (v *V2) Eq(a *V2) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if all elements in v have essentially
// the same value as the corresponding elements in a.
func (v *V2) Aeq(a *V2) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// AeqZ (~=) almost equals zero returns true if the square length of v is
// close enough to zero that it makes no difference.
func (v *V2) AeqZ() bool { return v.Dot(v) < Epsilon }

// GetS returns the float64 values of the vector.
func (v *V2) GetS() (x, y float64) { return v.X, v.Y }

// SetS (=) sets the vector elements to the given values. The updated vector
// v is returned.
func (v *V2) SetS(x, y float64) *V2 {
	v.X, v.Y = x, y
	return v
}

// Set (=, copy, clone) sets the elements of v to the elements of a.
// The updated vector v is returned.
func (v *V2) Set(a *V2) *V2 {
	v.X, v.Y = a.X, a.Y
	return v
}

// Add (+) adds vectors a and b storing the result in v. Vector v may be
// used as one or both of the parameters. The updated vector v is returned.
func (v *V2) Add(a, b *V2) *V2 {
	v.X, v.Y = a.X+b.X, a.Y+b.Y
	return v
}

// Sub (-) subtracts b from a storing the result in v. Vector v may be used
// as one or both of the parameters. The updated vector v is returned.
func (v *V2) Sub(a, b *V2) *V2 {
	v.X, v.Y = a.X-b.X, a.Y-b.Y
	return v
}

// Neg (-) sets v to the negative of a. The updated vector v is returned.
func (v *V2) Neg(a *V2) *V2 {
	v.X, v.Y = -a.X, -a.Y
	return v
}

// Scale (*=) updates v to be a scaled by the given scalar. The updated
// vector v is returned.
func (v *V2) Scale(a *V2, s float64) *V2 {
	v.X, v.Y = a.X*s, a.Y*s
	return v
}

// Dot returns the dot product of v and a. Both vectors are unchanged.
func (v *V2) Dot(a *V2) float64 { return v.X*a.X + v.Y*a.Y }

// Cross returns the 2D scalar cross product of v and a (the z component of
// the 3D cross product of the two vectors lifted into the xy plane).
func (v *V2) Cross(a *V2) float64 { return v.X*a.Y - v.Y*a.X }

// Perp updates v to be a rotated 90 degrees counter-clockwise.
// The updated vector v is returned.
func (v *V2) Perp(a *V2) *V2 {
	v.X, v.Y = -a.Y, a.X
	return v
}

// Len returns the length of v. The calling vector v is unchanged.
func (v *V2) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the squared length of v. The calling vector v is
// unchanged.
func (v *V2) LenSqr() float64 { return v.Dot(v) }

// Dist returns the distance between points v and a.
func (v *V2) Dist(a *V2) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the squared distance between points v and a.
func (v *V2) DistSqr(a *V2) float64 {
	dx, dy := a.X-v.X, a.Y-v.Y
	return dx*dx + dy*dy
}

// Unit updates v such that its length is 1. v is unchanged if its length
// is zero. The updated vector v is returned.
func (v *V2) Unit() *V2 {
	length := v.Len()
	if length != 0 {
		inv := 1 / length
		v.X, v.Y = v.X*inv, v.Y*inv
	}
	return v
}

// Lerp updates v to be the linear interpolation between a and b at the
// given fraction. The fraction is not clamped.
func (v *V2) Lerp(a, b *V2, fraction float64) *V2 {
	v.X = (b.X-a.X)*fraction + a.X
	v.Y = (b.Y-a.Y)*fraction + a.Y
	return v
}

// NewV2 creates and returns a new, all zero, 2D vector.
func NewV2() *V2 { return &V2{} }

// NewV2S creates and returns a new 2D vector from the given scalars.
func NewV2S(x, y float64) *V2 { return &V2{x, y} }

// Rot2 is a 2D rotation stored as a sin/cos pair rather than an angle, so
// that repeated composition never needs a trig call.
type Rot2 struct {
	Sin float64
	Cos float64
}

// NewRot2 creates a Rot2 from an angle in radians.
func NewRot2(angle float64) *Rot2 {
	return &Rot2{Sin: math.Sin(angle), Cos: math.Cos(angle)}
}

// Ident returns the identity rotation (angle zero).
func Ident() *Rot2 { return &Rot2{Sin: 0, Cos: 1} }

// Set updates r to the rotation described by angle in radians.
// The updated Rot2 r is returned.
func (r *Rot2) Set(angle float64) *Rot2 {
	r.Sin, r.Cos = math.Sin(angle), math.Cos(angle)
	return r
}

// Angle returns the angle in radians represented by r.
func (r *Rot2) Angle() float64 { return math.Atan2(r.Sin, r.Cos) }

// Apply rotates vector (x, y) by r, returning the rotated components.
func (r *Rot2) Apply(x, y float64) (rx, ry float64) {
	return r.Cos*x - r.Sin*y, r.Sin*x + r.Cos*y
}

// T2 is a 2D scale + rotate + translate transform, applied in that order:
// scale, then rotate, then translate. It is used to place a Shape's local
// space points into world space.
type T2 struct {
	Scale *V2   // per-axis scale, applied first.
	Rot   *Rot2 // rotation, applied second.
	Loc   *V2   // translation (origin), applied last.
}

// NewT2 returns an identity transform: unit scale, zero rotation, origin
// location.
func NewT2() *T2 {
	return &T2{Scale: &V2{X: 1, Y: 1}, Rot: Ident(), Loc: &V2{}}
}

// App applies transform t (scale, then rotate, then translate) to point a,
// storing the result in v. Vector a is unchanged. The updated vector v is
// returned. Vector v and a may be the same vector.
func (t *T2) App(v *V2, a *V2) *V2 {
	sx, sy := a.X*t.Scale.X, a.Y*t.Scale.Y
	rx, ry := t.Rot.Apply(sx, sy)
	v.X, v.Y = rx+t.Loc.X, ry+t.Loc.Y
	return v
}

// AppDir applies just the rotation of t (no scale, no translation) to
// direction a, storing the result in v. Used for rotating normals, which
// must not pick up the positional translation of the transform.
func (t *T2) AppDir(v *V2, a *V2) *V2 {
	rx, ry := t.Rot.Apply(a.X, a.Y)
	v.X, v.Y = rx, ry
	return v
}
