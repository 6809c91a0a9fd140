package physics

import (
	"fmt"
	"math"
	"testing"

	"github.com/hatchetphys/rb2d/math/vec2"
)

func dumpV2(v vec2.V2) string { return fmt.Sprintf("{%0.4f %0.4f}", v.X, v.Y) }

func TestPolygonSupport(t *testing.T) {
	square := NewPolygon([]vec2.V2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	got := square.Support(&vec2.V2{X: 1, Y: 1})
	if want := "{1.0000 1.0000}"; dumpV2(got) != want {
		t.Errorf("Expected support %s, got %s", want, dumpV2(got))
	}
	got = square.Support(&vec2.V2{X: -1, Y: -1})
	if want := "{0.0000 0.0000}"; dumpV2(got) != want {
		t.Errorf("Expected support %s, got %s", want, dumpV2(got))
	}
}

func TestRegularPolygonEvenSidedWinding(t *testing.T) {
	square := NewRegularPolygon(4)
	if len(square.Points()) != 4 {
		t.Fatalf("Expected 4 points, got %d", len(square.Points()))
	}
	// an even-sided regular polygon is rotated half an inter-vertex angle
	// so the bottom edge is axis-aligned: no vertex should sit at the top
	// (0,1) of the unit circle.
	for _, p := range square.Points() {
		if vec2.Aeq(p.X, 0) && vec2.Aeq(p.Y, 1) {
			t.Error("Expected even-sided regular polygon to be rotated off axis-aligned top vertex")
		}
	}
}

func TestRegularPolygonOddSidedStartsAtTop(t *testing.T) {
	tri := NewRegularPolygon(3)
	p := tri.Points()[0]
	if !vec2.Aeq(p.X, 0) || !vec2.Aeq(p.Y, 1) {
		t.Errorf("Expected odd-sided regular polygon to start at (0,1), got %s", dumpV2(p))
	}
}

func TestCircleSupport(t *testing.T) {
	c := NewCircle()
	got := c.Support(&vec2.V2{X: 3, Y: 4})
	if want := "{0.6000 0.8000}"; dumpV2(got) != want {
		t.Errorf("Expected unit support %s, got %s", want, dumpV2(got))
	}
}

func TestShapeViewTransformOrder(t *testing.T) {
	sv := NewShapeView(NewCircle(), vec2.V2{X: 5, Y: 5}, vec2.V2{X: 2, Y: 2}, math.Pi/2)
	got := sv.Transform(vec2.V2{X: 1, Y: 0})
	// scale: (2,0) -> rotate 90deg: (0,2) -> translate: (5,7)
	if want := "{5.0000 7.0000}"; dumpV2(got) != want {
		t.Errorf("Expected %s, got %s", want, dumpV2(got))
	}
}

func TestShapeViewSupportAnisotropicScale(t *testing.T) {
	// an ellipse stretched twice as wide as tall: along +x the extreme
	// point should reach further than along +y.
	sv := NewShapeView(NewCircle(), vec2.V2{}, vec2.V2{X: 2, Y: 1}, 0)
	px := sv.Support(vec2.V2{X: 1, Y: 0})
	py := sv.Support(vec2.V2{X: 0, Y: 1})
	if !vec2.Aeq(px.X, 2) {
		t.Errorf("Expected support along +x at x=2, got %s", dumpV2(px))
	}
	if !vec2.Aeq(py.Y, 1) {
		t.Errorf("Expected support along +y at y=1, got %s", dumpV2(py))
	}
}
