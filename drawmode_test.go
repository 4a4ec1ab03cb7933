package mesh2d

import "testing"

func TestDrawMode_Fill(t *testing.T) {
	m := Fill()
	if !m.IsFill() || m.IsLine() {
		t.Errorf("Fill() IsFill = %v, IsLine = %v", m.IsFill(), m.IsLine())
	}
	if m.Stroke() != DefaultStroke() {
		t.Errorf("Fill().Stroke() = %+v, want default", m.Stroke())
	}
}

func TestDrawMode_ZeroValueIsFill(t *testing.T) {
	var m DrawMode
	if !m.IsFill() {
		t.Error("zero DrawMode is not a fill")
	}
}

func TestDrawMode_Line(t *testing.T) {
	m := Line(3.5)
	if m.IsFill() || !m.IsLine() {
		t.Errorf("Line() IsFill = %v, IsLine = %v", m.IsFill(), m.IsLine())
	}
	s := m.Stroke()
	if s.Width != 3.5 {
		t.Errorf("stroke width = %v, want 3.5", s.Width)
	}
	if s.Cap != LineCapButt || s.Join != LineJoinMiter {
		t.Errorf("Line() stroke = %+v, want default cap and join", s)
	}
}

func TestDrawMode_LineWithStroke(t *testing.T) {
	want := RoundStroke().WithWidth(2)
	m := LineWithStroke(want)
	if !m.IsLine() {
		t.Error("LineWithStroke() is not a line mode")
	}
	if m.Stroke() != want {
		t.Errorf("Stroke() = %+v, want %+v", m.Stroke(), want)
	}
}
