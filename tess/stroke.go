package tess

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/mesh2d"
)

// strokeState carries per-call stroke expansion state: the output sink,
// the resolved style, and the accumulated advancement along the path.
type strokeState struct {
	sink  mesh2d.GeometrySink
	style mesh2d.Stroke
	halfW float32
}

// StrokePolyline expands a polyline into a triangle ribbon of the stroke
// width, with joins at interior vertices. Open paths receive caps at both
// ends; closed paths connect the last point back to the first with a join
// and no caps.
func (e *Engine) StrokePolyline(sink mesh2d.GeometrySink, points []mesh2d.Point, closed bool, stroke mesh2d.Stroke) error {
	if stroke.Width <= 0 || math32.IsNaN(stroke.Width) {
		return mesh2d.ErrDegenerateShape
	}
	pts := dedupeOpen(points)
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return mesh2d.ErrDegenerateShape
	}
	if stroke.MiterLimit <= 0 {
		stroke.MiterLimit = mesh2d.DefaultStroke().MiterLimit
	}

	s := &strokeState{sink: sink, style: stroke, halfW: stroke.Width / 2}

	// Advancement along the path at every point.
	adv := make([]float32, len(pts))
	for i := 1; i < len(pts); i++ {
		adv[i] = adv[i-1] + pts[i].Distance(pts[i-1])
	}

	// Segment quads.
	segs := len(pts) - 1
	if closed {
		segs = len(pts)
	}
	for i := 0; i < segs; i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		advB := adv[(i+1)%len(pts)]
		if closed && i == segs-1 {
			advB = adv[len(pts)-1] + b.Distance(a)
		}
		s.emitSegment(a, b, adv[i], advB)
	}

	// Joins at interior vertices; for closed loops every vertex is interior.
	for i := 1; i < len(pts)-1; i++ {
		s.emitJoin(pts[i], tangent(pts[i-1], pts[i]), tangent(pts[i], pts[i+1]), adv[i])
	}
	if closed {
		last := pts[len(pts)-1]
		first := pts[0]
		second := pts[1]
		s.emitJoin(last, tangent(pts[len(pts)-2], last), tangent(last, first), adv[len(pts)-1])
		s.emitJoin(first, tangent(last, first), tangent(first, second), 0)
	} else {
		s.emitCap(pts[0], tangent(pts[1], pts[0]), 0)
		n := len(pts)
		s.emitCap(pts[n-1], tangent(pts[n-2], pts[n-1]), adv[n-1])
	}

	slogger().Debug("polyline stroked", "points", len(pts), "closed", closed, "width", stroke.Width)
	return nil
}

// dedupeOpen removes consecutive duplicate points.
func dedupeOpen(points []mesh2d.Point) []mesh2d.Point {
	out := make([]mesh2d.Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// tangent returns the unit direction from a to b.
func tangent(a, b mesh2d.Point) mesh2d.Point {
	return b.Sub(a).Normalize()
}

// vertex appends one stroke vertex offset from p along the unit normal.
func (s *strokeState) vertex(p, unitNormal mesh2d.Point, scale, adv float32) uint32 {
	return s.sink.AddStrokeVertex(mesh2d.StrokeVertex{
		Position:    p.Add(unitNormal.Mul(scale)),
		Normal:      unitNormal,
		Advancement: adv,
	})
}

// emitSegment emits the two triangles covering one segment's ribbon quad.
func (s *strokeState) emitSegment(a, b mesh2d.Point, advA, advB float32) {
	n := tangent(a, b).Perp()
	a0 := s.vertex(a, n, s.halfW, advA)
	a1 := s.vertex(a, n, -s.halfW, advA)
	b0 := s.vertex(b, n, s.halfW, advB)
	b1 := s.vertex(b, n, -s.halfW, advB)
	s.sink.AddTriangle(a0, a1, b0)
	s.sink.AddTriangle(b0, a1, b1)
}

// emitJoin fills the wedge on the outer side of the turn at p between two
// segments with unit tangents t0 (incoming) and t1 (outgoing).
func (s *strokeState) emitJoin(p, t0, t1 mesh2d.Point, adv float32) {
	cross := t0.Cross(t1)
	if cross == 0 {
		// Collinear segments leave no wedge.
		return
	}

	// Outer side is the side away from the turn direction.
	side := float32(1)
	if cross > 0 {
		side = -1
	}
	u0 := t0.Perp().Mul(side)
	u1 := t1.Perp().Mul(side)

	center := s.sink.AddStrokeVertex(mesh2d.StrokeVertex{Position: p, Advancement: adv})
	switch s.style.Join {
	case mesh2d.LineJoinBevel:
		s.bevelJoin(center, p, u0, u1, adv)
	case mesh2d.LineJoinRound:
		s.roundJoin(center, p, u0, u1, adv)
	default:
		s.miterJoin(center, p, u0, u1, adv)
	}
}

func (s *strokeState) bevelJoin(center uint32, p, u0, u1 mesh2d.Point, adv float32) {
	i0 := s.vertex(p, u0, s.halfW, adv)
	i1 := s.vertex(p, u1, s.halfW, adv)
	s.sink.AddTriangle(center, i0, i1)
}

func (s *strokeState) miterJoin(center uint32, p, u0, u1 mesh2d.Point, adv float32) {
	bisector := u0.Add(u1).Normalize()
	cosHalf := bisector.Dot(u0)
	if cosHalf <= 0 || 1/cosHalf > s.style.MiterLimit {
		s.bevelJoin(center, p, u0, u1, adv)
		return
	}
	miterLen := s.halfW / cosHalf
	i0 := s.vertex(p, u0, s.halfW, adv)
	m := s.vertex(p, bisector, miterLen, adv)
	i1 := s.vertex(p, u1, s.halfW, adv)
	s.sink.AddTriangle(center, i0, m)
	s.sink.AddTriangle(center, m, i1)
}

func (s *strokeState) roundJoin(center uint32, p, u0, u1 mesh2d.Point, adv float32) {
	a0 := math32.Atan2(u0.Y, u0.X)
	delta := math32.Atan2(u0.Cross(u1), u0.Dot(u1))
	s.arcFan(center, p, a0, delta, adv)
}

// arcFan emits a triangle fan around p from angle a0 sweeping by delta at
// the stroke half-width radius.
func (s *strokeState) arcFan(center uint32, p mesh2d.Point, a0, delta, adv float32) {
	steps := arcSteps(s.halfW, math32.Abs(delta))
	prev := s.vertex(p, mesh2d.Pt(math32.Cos(a0), math32.Sin(a0)), s.halfW, adv)
	for k := 1; k <= steps; k++ {
		angle := a0 + delta*float32(k)/float32(steps)
		dir := mesh2d.Pt(math32.Cos(angle), math32.Sin(angle))
		cur := s.vertex(p, dir, s.halfW, adv)
		s.sink.AddTriangle(center, prev, cur)
		prev = cur
	}
}

// arcSteps returns the number of fan segments for an arc of the given
// radius and sweep, bounded by the default flattening tolerance.
func arcSteps(radius, sweep float32) int {
	if radius <= mesh2d.DefaultTolerance {
		return 1
	}
	arg := 1 - mesh2d.DefaultTolerance/radius
	maxAngle := 2 * math32.Acos(arg)
	steps := int(math32.Ceil(sweep / maxAngle))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// emitCap closes an open path end at p. The unit tangent u points outward,
// away from the path body.
func (s *strokeState) emitCap(p, u mesh2d.Point, adv float32) {
	n := u.Perp()
	switch s.style.Cap {
	case mesh2d.LineCapSquare:
		// Extend the ribbon by half the width beyond the endpoint.
		e := p.Add(u.Mul(s.halfW))
		a0 := s.vertex(p, n, s.halfW, adv)
		a1 := s.vertex(p, n, -s.halfW, adv)
		b0 := s.vertex(e, n, s.halfW, adv)
		b1 := s.vertex(e, n, -s.halfW, adv)
		s.sink.AddTriangle(a0, a1, b0)
		s.sink.AddTriangle(b0, a1, b1)
	case mesh2d.LineCapRound:
		// Half disc sweeping through the outward direction.
		center := s.sink.AddStrokeVertex(mesh2d.StrokeVertex{Position: p, Advancement: adv})
		a0 := math32.Atan2(n.Y, n.X)
		delta := float32(math32.Pi)
		if n.Cross(u) < 0 {
			delta = -delta
		}
		s.arcFan(center, p, a0, delta, adv)
	default:
		// Butt caps end flush with the endpoint.
	}
}
