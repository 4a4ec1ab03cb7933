package tess

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/mesh2d"
)

func TestRingSegments(t *testing.T) {
	if got := ringSegments(1, 2); got != 4 {
		t.Errorf("ringSegments(1, 2) = %d, want minimum 4", got)
	}
	if got := ringSegments(100, 0.1); got < 4 {
		t.Errorf("ringSegments(100, 0.1) = %d, want >= 4", got)
	}
}

func TestRingSegments_ToleranceMonotonic(t *testing.T) {
	// Tighter tolerance never yields fewer segments.
	prev := 0
	for _, tol := range []float32{4, 1, 0.25, 0.05, 0.01} {
		n := ringSegments(50, tol)
		if n < prev {
			t.Errorf("ringSegments(50, %v) = %d, less than %d at looser tolerance", tol, n, prev)
		}
		prev = n
	}
}

func TestFillCircle(t *testing.T) {
	e := New()
	g := mesh2d.NewGeometry(0, 0)
	if err := e.FillCircle(g, mesh2d.Pt(5, 5), 10, 1); err != nil {
		t.Fatalf("FillCircle() error = %v", err)
	}

	n := ringSegments(10, 1)
	if got := g.VertexCount(); got != n+1 {
		t.Errorf("VertexCount() = %d, want %d (ring + center)", got, n+1)
	}
	if got := g.IndexCount(); got != 3*n {
		t.Errorf("IndexCount() = %d, want %d", got, 3*n)
	}

	// Every ring vertex sits on the circle.
	for i, v := range g.Vertices()[1:] {
		d := mesh2d.Pt(v.Pos[0], v.Pos[1]).Distance(mesh2d.Pt(5, 5))
		if math32.Abs(d-10) > 1e-4 {
			t.Errorf("ring vertex %d at distance %v, want 10", i, d)
		}
	}
}

func TestFillCircle_TighterToleranceRefines(t *testing.T) {
	e := New()
	coarse := mesh2d.NewGeometry(0, 0)
	fine := mesh2d.NewGeometry(0, 0)
	if err := e.FillCircle(coarse, mesh2d.Pt(0, 0), 20, 2); err != nil {
		t.Fatal(err)
	}
	if err := e.FillCircle(fine, mesh2d.Pt(0, 0), 20, 0.05); err != nil {
		t.Fatal(err)
	}
	if fine.IndexCount() <= coarse.IndexCount() {
		t.Errorf("fine mesh has %d indices, coarse has %d, want more at tighter tolerance",
			fine.IndexCount(), coarse.IndexCount())
	}
}

func TestFillCircle_DegenerateRadius(t *testing.T) {
	e := New()
	for _, r := range []float32{0, -5, math32.NaN(), math32.Inf(1)} {
		g := mesh2d.NewGeometry(0, 0)
		err := e.FillCircle(g, mesh2d.Pt(0, 0), r, 0.25)
		if !errors.Is(err, mesh2d.ErrDegenerateShape) {
			t.Errorf("FillCircle(radius=%v) error = %v, want ErrDegenerateShape", r, err)
		}
		if g.VertexCount() != 0 {
			t.Errorf("degenerate circle emitted %d vertices", g.VertexCount())
		}
	}
}

func TestFillEllipse(t *testing.T) {
	e := New()
	g := mesh2d.NewGeometry(0, 0)
	if err := e.FillEllipse(g, mesh2d.Pt(0, 0), 10, 4, 0.5); err != nil {
		t.Fatalf("FillEllipse() error = %v", err)
	}

	// All vertices stay inside the ellipse's bounding box.
	for i, v := range g.Vertices() {
		if math32.Abs(v.Pos[0]) > 10+1e-4 || math32.Abs(v.Pos[1]) > 4+1e-4 {
			t.Errorf("vertex %d at (%v, %v) outside bounding box", i, v.Pos[0], v.Pos[1])
		}
	}
}

func TestFillEllipse_DegenerateRadii(t *testing.T) {
	e := New()
	g := mesh2d.NewGeometry(0, 0)
	if err := e.FillEllipse(g, mesh2d.Pt(0, 0), 10, 0, 0.25); !errors.Is(err, mesh2d.ErrDegenerateShape) {
		t.Errorf("FillEllipse(radius2=0) error = %v, want ErrDegenerateShape", err)
	}
}

func TestStrokeCircle(t *testing.T) {
	e := New()
	g := mesh2d.NewGeometry(0, 0)
	stroke := mesh2d.DefaultStroke().WithWidth(2).WithJoin(mesh2d.LineJoinBevel)
	if err := e.StrokeCircle(g, mesh2d.Pt(0, 0), 10, 0.5, stroke); err != nil {
		t.Fatalf("StrokeCircle() error = %v", err)
	}

	// The ribbon stays within the annulus around the outline.
	for i, v := range g.Vertices() {
		d := mesh2d.Pt(v.Pos[0], v.Pos[1]).Length()
		if d < 9-1e-3 || d > 11+1e-3 {
			t.Errorf("vertex %d at distance %v, want within [9, 11]", i, d)
		}
	}
}

func TestStrokeCircle_DegenerateRadius(t *testing.T) {
	e := New()
	g := mesh2d.NewGeometry(0, 0)
	err := e.StrokeCircle(g, mesh2d.Pt(0, 0), -1, 0.25, mesh2d.DefaultStroke())
	if !errors.Is(err, mesh2d.ErrDegenerateShape) {
		t.Errorf("StrokeCircle(radius=-1) error = %v, want ErrDegenerateShape", err)
	}
}
