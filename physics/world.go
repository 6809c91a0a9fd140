package physics

import (
	"sort"

	"github.com/hatchetphys/rb2d/math/vec2"
)

// timeStep is the fixed internal substep length, per §4.6.
const timeStep = 0.001

// defaultRestitution is applied to every collision unless a World
// overrides it.
const defaultRestitution = 0.85

// wallBoundWidth is the thickness of each of the four static boundary
// walls (and how far the floor and ceiling extend past each side), large enough that nothing in a reasonably sized world escapes
// them. Matches the source's bound_width constant.
const wallBoundWidth = 1e7

var wallShape = NewPolygon([]vec2.V2{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
})

// collisionPair is a recorded overlap from the current substep's
// resolve-overlap phase, consumed by the impulse phase that follows it.
type collisionPair struct {
	A, B    BodyId
	Contact Contact
}

// World owns a population of bodies and constraints and advances them
// with a fixed-substep loop: integrate, resolve overlap, apply
// constraints, apply collision impulses.
type World struct {
	Gravity     float64
	Width       float64
	Height      float64
	Restitution float64

	bodies   []Body
	editions []uint16

	constraints []Constraint
	collisions  []collisionPair

	// residual accumulates leftover time across Update calls rather than
	// dropping sub-timeStep remainders, per the design notes' recommended
	// fix for the source's off-by-one substep loop.
	residual float64
}

// NewWorld returns a World of the given dimensions and gravity, framed by
// four static boundary walls.
func NewWorld(width, height, gravity float64) *World {
	w := &World{
		Width:       width,
		Height:      height,
		Gravity:     gravity,
		Restitution: defaultRestitution,
	}
	w.addWalls()
	return w
}

// addWalls installs the four static boundary bodies, built from a shared
// unit-square shape scaled and offset per wall — the same construction as
// the source's world constructor.
func (w *World) addWalls() {
	bw := wallBoundWidth
	// bottom
	w.AddStatic(wallShape, vec2.V2{X: -bw, Y: -bw}, 0, vec2.V2{X: bw*2 + w.Width, Y: bw})
	// left
	w.AddStatic(wallShape, vec2.V2{X: -bw, Y: 0}, 0, vec2.V2{X: bw, Y: w.Height})
	// right
	w.AddStatic(wallShape, vec2.V2{X: w.Width, Y: 0}, 0, vec2.V2{X: bw, Y: w.Height})
	// top
	w.AddStatic(wallShape, vec2.V2{X: -bw, Y: w.Height}, 0, vec2.V2{X: bw*2 + w.Width, Y: bw})
}

func (w *World) addBody(b Body) BodyId {
	idx := uint32(len(w.bodies))
	w.bodies = append(w.bodies, b)
	w.editions = append(w.editions, 0)
	return newBodyId(idx, 0)
}

// body returns a pointer to the body referenced by id, or nil if id is
// stale or out of range.
func (w *World) body(id BodyId) *Body {
	idx := id.index()
	if idx >= uint32(len(w.bodies)) {
		return nil
	}
	if w.editions[idx] != id.edition() {
		return nil
	}
	return &w.bodies[idx]
}

// AddDynamic adds a finite-mass body with the given pose, velocity, and
// shape placement, returning its stable id.
func (w *World) AddDynamic(shape Shape, pos, vel vec2.V2, angle, angVel, mass float64, scale vec2.V2) BodyId {
	var invMass, invInertia float64
	if mass > 0 {
		invMass = 1 / mass
		if inertia := momentOfInertia(shape, scale, mass); inertia > 0 {
			invInertia = 1 / inertia
		}
	}
	return w.addBody(Body{
		Pos:        pos,
		Angle:      angle,
		Vel:        vel,
		AngVel:     angVel,
		Accel:      vec2.V2{X: 0, Y: w.Gravity},
		InvMass:    invMass,
		InvInertia: invInertia,
		Scale:      scale,
		Shape:      shape,
	})
}

// AddStatic adds an infinite-mass body at the given pose, returning its
// stable id. Static bodies are never integrated or mutated by overlap
// resolution or collision impulses.
func (w *World) AddStatic(shape Shape, pos vec2.V2, angle float64, scale vec2.V2) BodyId {
	return w.addBody(Body{
		Pos:   pos,
		Angle: angle,
		Scale: scale,
		Shape: shape,
	})
}

// AddConstraint registers a constraint to be applied every substep in
// registration order.
func (w *World) AddConstraint(c Constraint) {
	w.constraints = append(w.constraints, c)
}

// Update advances the simulation by dt seconds, running as many fixed
// timeStep substeps as fit, and carrying any remainder forward to the
// next call.
func (w *World) Update(dt float64) {
	w.residual += dt
	for w.residual >= timeStep {
		w.step()
		w.residual -= timeStep
	}
}

// step performs one internal fixed-timeStep update: integrate, resolve
// overlap, apply constraints, apply collision impulses, in that order.
func (w *World) step() {
	for i := range w.bodies {
		if !w.bodies[i].IsStatic() {
			w.bodies[i].integrate(timeStep)
		}
	}

	w.resolveOverlaps()

	for _, c := range w.constraints {
		a, b := w.body(c.BodyA()), w.body(c.BodyB())
		if a == nil || b == nil {
			continue
		}
		c.Apply(timeStep, a, b)
	}

	w.applyCollisionImpulses()
}

// resolveOverlaps enumerates every unordered body pair in descending-y
// sorted order (a stable, deterministic tie-break — the source's choice,
// and not the only acceptable one per §4.6), records any overlapping
// pair, and splits the positional correction by inverse mass so that
// after correction both bodies report depth < epsilon on the next
// detection. This implements the inverse-mass split the design notes
// recommend in place of the source's one-sided push.
func (w *World) resolveOverlaps() {
	w.collisions = w.collisions[:0]

	order := make([]int, len(w.bodies))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return w.bodies[order[i]].Pos.Y > w.bodies[order[j]].Pos.Y
	})

	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			ia, ib := order[i], order[j]
			a, b := &w.bodies[ia], &w.bodies[ib]
			if a.IsStatic() && b.IsStatic() {
				continue
			}

			contact, hit := Detect(a.View(), b.View())
			if !hit {
				continue
			}

			w.collisions = append(w.collisions, collisionPair{
				A:       newBodyId(uint32(ia), w.editions[ia]),
				B:       newBodyId(uint32(ib), w.editions[ib]),
				Contact: contact,
			})

			wsum := a.InvMass + b.InvMass
			if wsum == 0 {
				continue
			}
			mtvX, mtvY := contact.Normal.X*contact.Depth, contact.Normal.Y*contact.Depth
			a.Pos.X += mtvX * a.InvMass / wsum
			a.Pos.Y += mtvY * a.InvMass / wsum
			b.Pos.X -= mtvX * b.InvMass / wsum
			b.Pos.Y -= mtvY * b.InvMass / wsum
		}
	}
}

// applyCollisionImpulses applies the moment-arm impulse formula (§4.5) to
// every pair recorded this substep. When the detector yields two contact
// points, this uses their midpoint as the single contact point used for
// the impulse rather than applying half the impulse at each point twice —
// a decision recorded in the design notes.
func (w *World) applyCollisionImpulses() {
	for _, cp := range w.collisions {
		a, b := w.body(cp.A), w.body(cp.B)
		if a == nil || b == nil {
			continue
		}
		contact := vec2.V2{
			X: (cp.Contact.ContactA.X + cp.Contact.ContactB.X) / 2,
			Y: (cp.Contact.ContactA.Y + cp.Contact.ContactB.Y) / 2,
		}
		applyCollisionImpulse(a, b, contact, cp.Contact.Normal, a.Center(), b.Center(), w.Restitution)
	}
}

// applyCollisionImpulse implements §4.5's contact-point moment-arm
// formula, ported directly from the source's get_dv.
func applyCollisionImpulse(a, b *Body, contact, normal, centerA, centerB vec2.V2, e float64) {
	r1x, r1y := contact.X-centerA.X, contact.Y-centerA.Y
	r2x, r2y := contact.X-centerB.X, contact.Y-centerB.Y
	nx, ny := normal.X, normal.Y

	s1 := nx*(centerA.Y-contact.Y) + ny*(contact.X-centerA.X)
	s2 := nx*(centerB.Y-contact.Y) + ny*(contact.X-centerB.X)

	// A.ω × r1 = (-ω*r1.y, ω*r1.x); same for B with r2.
	vax := a.Vel.X - a.AngVel*r1y
	vay := a.Vel.Y + a.AngVel*r1x
	vbx := b.Vel.X - b.AngVel*r2y
	vby := b.Vel.Y + b.AngVel*r2x

	vImp := nx*(vax-vbx) + ny*(vay-vby)

	denom := a.InvMass + s1*s1*a.InvInertia + b.InvMass + s2*s2*b.InvInertia
	if denom == 0 {
		return
	}
	mEff := 1 / denom
	j := (1 + e) * mEff * vImp

	a.Vel.X -= nx * a.InvMass * j
	a.Vel.Y -= ny * a.InvMass * j
	a.AngVel -= s1 * a.InvInertia * j

	b.Vel.X += nx * b.InvMass * j
	b.Vel.Y += ny * b.InvMass * j
	b.AngVel += s2 * b.InvInertia * j
}

// BodySnapshot is a read-only view of one body's current state, returned
// by World.Bodies.
type BodySnapshot struct {
	Id     BodyId
	Pos    vec2.V2
	Angle  float64
	Vel    vec2.V2
	AngVel float64
	Scale  vec2.V2
	Shape  Shape
	Static bool
}

// Bodies returns a snapshot of every body currently in the world,
// including the boundary walls.
func (w *World) Bodies() []BodySnapshot {
	out := make([]BodySnapshot, len(w.bodies))
	for i := range w.bodies {
		b := &w.bodies[i]
		out[i] = BodySnapshot{
			Id:     newBodyId(uint32(i), w.editions[i]),
			Pos:    b.Pos,
			Angle:  b.Angle,
			Vel:    b.Vel,
			AngVel: b.AngVel,
			Scale:  b.Scale,
			Shape:  b.Shape,
			Static: b.IsStatic(),
		}
	}
	return out
}

// Body returns a snapshot of the body referenced by id, or false if id is
// stale or unknown.
func (w *World) Body(id BodyId) (BodySnapshot, bool) {
	b := w.body(id)
	if b == nil {
		return BodySnapshot{}, false
	}
	idx := id.index()
	return BodySnapshot{
		Id:     id,
		Pos:    b.Pos,
		Angle:  b.Angle,
		Vel:    b.Vel,
		AngVel: b.AngVel,
		Scale:  b.Scale,
		Shape:  b.Shape,
		Static: b.IsStatic(),
	}, idx < uint32(len(w.bodies))
}
