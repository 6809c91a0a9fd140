package physics

import "github.com/hatchetphys/rb2d/math/vec2"

// ShapeView is a placed instance of a Shape: a shape reference plus an
// affine placement (offset, anisotropic scale, rotation) held as a
// vec2.T2. It composes scale, then rotate, then translate, and lifts the
// shape's support mapping into world space — the direct Go analogue of
// the source's polygon_view.
type ShapeView struct {
	Shape Shape
	t     *vec2.T2
}

// NewShapeView places shape with the given offset, per-axis scale, and
// angle in radians.
func NewShapeView(shape Shape, offset, scale vec2.V2, angle float64) ShapeView {
	t := vec2.NewT2()
	t.Scale, t.Rot, t.Loc = &scale, vec2.NewRot2(angle), &offset
	return ShapeView{Shape: shape, t: t}
}

// Transform maps local-space point p into world space: scale, then
// rotate, then translate.
func (s *ShapeView) Transform(p vec2.V2) vec2.V2 {
	var out vec2.V2
	s.t.App(&out, &p)
	return out
}

// invTransformDir maps a world-space direction back to the local-space
// direction that produces the same ranking under the shape's support
// function: inverse-rotate, then scale (the transpose of the rotate-then-
// scale forward linear map, since scale is diagonal). The inverse
// rotation is applied through AppDir of a throwaway, zero-translation T2
// so the rotation step never picks up an offset; the scale is then
// applied separately since T2 only composes scale before rotation.
func (s *ShapeView) invTransformDir(dir vec2.V2) vec2.V2 {
	invRot := vec2.Rot2{Sin: -s.t.Rot.Sin, Cos: s.t.Rot.Cos}
	invT := vec2.T2{Scale: &vec2.V2{X: 1, Y: 1}, Rot: &invRot, Loc: &vec2.V2{}}
	var rotated vec2.V2
	invT.AppDir(&rotated, &dir)
	return vec2.V2{X: rotated.X * s.t.Scale.X, Y: rotated.Y * s.t.Scale.Y}
}

// Support returns the true world-space extreme point of the placed shape
// along dir. When scale is anisotropic the direction is first mapped back
// through the inverse linear part so the result is the actual extreme
// point, not an approximation.
func (s *ShapeView) Support(dir vec2.V2) vec2.V2 {
	localDir := s.invTransformDir(dir)
	p := s.Shape.Support(&localDir)
	return s.Transform(p)
}

// Center returns the placed shape's world-space center, used by the
// detector only as a seed hint.
func (s *ShapeView) Center() vec2.V2 {
	return s.Transform(s.Shape.Center())
}
