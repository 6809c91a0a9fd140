package physics

import "github.com/hatchetphys/rb2d/math/vec2"

// Divide a BodyId into an index (used for array lookups into the World's
// body storage) and an edition (used to detect stale ids after a body
// slot is reused). Same split as the entity-id scheme this is grounded
// on: ids are expected to be used as array indices and must not change
// value over a body's lifetime.
const bodyIdBits = 20                      // body array index : 1048575
const bodyEdBits = 12                      // body edition     :    4096
const maxBodyIndex = (1 << bodyIdBits) - 1 // mask and max live bodies.
const maxBodyEdition = (1 << bodyEdBits) - 1

// BodyId is a stable, reused-index handle to a Body stored in a World.
// Callers store BodyId values, not pointers. The World never removes a
// body or reuses a slot, so every id it hands out has edition 0; lookups
// still reject an id whose edition does not match its slot.
type BodyId uint32

func newBodyId(index uint32, edition uint16) BodyId {
	return BodyId(index | uint32(edition)<<bodyIdBits)
}

func (id BodyId) index() uint32    { return uint32(id) & maxBodyIndex }
func (id BodyId) edition() uint16  { return uint16((uint32(id) >> bodyIdBits) & maxBodyEdition) }

// Body is the kinematic/dynamic state of one rigid object: pose, linear
// and angular velocity, linear acceleration, inverse mass, inverse
// moment of inertia, and the Shape it references. A body is dynamic iff
// InvMass > 0; a static body (InvMass == 0, InvInertia == 0) is never
// mutated by the World outside of construction.
type Body struct {
	Pos   vec2.V2
	Angle float64

	Vel    vec2.V2
	AngVel float64

	Accel vec2.V2

	InvMass    float64
	InvInertia float64

	Scale vec2.V2
	Shape Shape
}

// IsStatic reports whether the body has infinite mass and inertia.
func (b *Body) IsStatic() bool { return b.InvMass == 0 }

// View returns a ShapeView placing the body's shape at its current pose.
func (b *Body) View() ShapeView {
	return NewShapeView(b.Shape, b.Pos, b.Scale, b.Angle)
}

// Center returns the body's world-space shape center: the shape's local
// centroid transformed by the body's current pose and scale.
func (b *Body) Center() vec2.V2 {
	v := b.View()
	return v.Center()
}

// integrate advances the body one substep of dt, per §4.3: linear
// velocity picks up acceleration, position and angle integrate their
// velocities. Static bodies are never integrated — the caller is
// expected to skip them.
func (b *Body) integrate(dt float64) {
	b.Vel.X += b.Accel.X * dt
	b.Vel.Y += b.Accel.Y * dt
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt
	b.Angle += b.AngVel * dt
}
