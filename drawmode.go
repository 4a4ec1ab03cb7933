package mesh2d

// drawModeKind discriminates the two tessellation modes.
type drawModeKind int

const (
	drawModeFill drawModeKind = iota
	drawModeLine
)

// DrawMode selects how a shape is tessellated: as a filled interior or as
// a stroked outline. Construct values with [Fill], [Line] or
// [LineWithStroke]; the zero value is a fill.
type DrawMode struct {
	kind   drawModeKind
	stroke Stroke
}

// Fill returns a DrawMode that tessellates the shape interior.
func Fill() DrawMode {
	return DrawMode{kind: drawModeFill}
}

// Line returns a DrawMode that tessellates the shape outline with the
// given stroke width and default cap, join and miter limit.
func Line(width float32) DrawMode {
	return DrawMode{kind: drawModeLine, stroke: DefaultStroke().WithWidth(width)}
}

// LineWithStroke returns a DrawMode that tessellates the shape outline
// with full control over the stroke style.
func LineWithStroke(stroke Stroke) DrawMode {
	return DrawMode{kind: drawModeLine, stroke: stroke}
}

// IsFill reports whether the mode tessellates the shape interior.
func (m DrawMode) IsFill() bool {
	return m.kind == drawModeFill
}

// IsLine reports whether the mode tessellates the shape outline.
func (m DrawMode) IsLine() bool {
	return m.kind == drawModeLine
}

// Stroke returns the stroke style for a line mode. For fill modes it
// returns the default stroke.
func (m DrawMode) Stroke() Stroke {
	if m.kind == drawModeFill {
		return DefaultStroke()
	}
	return m.stroke
}
