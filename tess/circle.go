package tess

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/mesh2d"
)

// ringSegments returns the number of line segments needed to approximate
// a circle of the given radius within the tolerance. The chord of each
// segment deviates from the arc by at most the tolerance.
func ringSegments(radius, tolerance float32) int {
	if tolerance >= radius {
		return 4
	}
	// Maximum arc angle whose chord stays within tolerance.
	arg := 1 - tolerance/radius
	if arg < -1 {
		arg = -1
	}
	maxAngle := 2 * math32.Acos(arg)
	n := int(math32.Ceil(2 * math32.Pi / maxAngle))
	if n < 4 {
		n = 4
	}
	return n
}

// ellipseRing samples n points along an axis-aligned ellipse outline,
// counter-clockwise starting at the positive X axis.
func ellipseRing(center mesh2d.Point, radius1, radius2 float32, n int) []mesh2d.Point {
	points := make([]mesh2d.Point, n)
	step := 2 * math32.Pi / float32(n)
	for i := 0; i < n; i++ {
		angle := float32(i) * step
		points[i] = mesh2d.Point{
			X: center.X + radius1*math32.Cos(angle),
			Y: center.Y + radius2*math32.Sin(angle),
		}
	}
	return points
}

func validRadius(r float32) bool {
	return r > 0 && !math32.IsNaN(r) && !math32.IsInf(r, 0)
}

// FillCircle tessellates a filled circle as a triangle fan around the
// center.
func (e *Engine) FillCircle(sink mesh2d.GeometrySink, center mesh2d.Point, radius, tolerance float32) error {
	return e.FillEllipse(sink, center, radius, radius, tolerance)
}

// FillEllipse tessellates a filled axis-aligned ellipse as a triangle fan
// around the center.
func (e *Engine) FillEllipse(sink mesh2d.GeometrySink, center mesh2d.Point, radius1, radius2, tolerance float32) error {
	if !validRadius(radius1) || !validRadius(radius2) {
		return mesh2d.ErrDegenerateShape
	}
	n := ringSegments(math32.Max(radius1, radius2), tolerance)
	ring := ellipseRing(center, radius1, radius2, n)

	centerIdx := sink.AddFillVertex(mesh2d.FillVertex{Position: center})
	ringIdx := make([]uint32, n)
	for i, p := range ring {
		ringIdx[i] = sink.AddFillVertex(mesh2d.FillVertex{
			Position: p,
			Normal:   p.Sub(center).Normalize(),
		})
	}
	for i := 0; i < n; i++ {
		sink.AddTriangle(centerIdx, ringIdx[i], ringIdx[(i+1)%n])
	}
	slogger().Debug("ellipse filled", "segments", n)
	return nil
}

// StrokeCircle tessellates a stroked circle outline.
func (e *Engine) StrokeCircle(sink mesh2d.GeometrySink, center mesh2d.Point, radius, tolerance float32, stroke mesh2d.Stroke) error {
	return e.StrokeEllipse(sink, center, radius, radius, tolerance, stroke)
}

// StrokeEllipse tessellates a stroked axis-aligned ellipse outline as a
// closed ribbon.
func (e *Engine) StrokeEllipse(sink mesh2d.GeometrySink, center mesh2d.Point, radius1, radius2, tolerance float32, stroke mesh2d.Stroke) error {
	if !validRadius(radius1) || !validRadius(radius2) {
		return mesh2d.ErrDegenerateShape
	}
	n := ringSegments(math32.Max(radius1, radius2), tolerance)
	ring := ellipseRing(center, radius1, radius2, n)
	return e.StrokePolyline(sink, ring, true, stroke)
}
