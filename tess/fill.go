package tess

import (
	"fmt"

	"github.com/ByteArena/poly2tri-go"

	"github.com/gogpu/mesh2d"
)

// FillPolygon triangulates the interior of a closed polygon using
// poly2tri's constrained Delaunay sweep.
//
// Consecutive duplicate points are dropped before triangulation; fewer
// than three distinct points is a degenerate shape. Self-intersecting
// polygons are rejected by the sweep and surfaced as an error.
func (e *Engine) FillPolygon(sink mesh2d.GeometrySink, points []mesh2d.Point) (err error) {
	contour := dedupeClosed(points)
	if len(contour) < 3 {
		return mesh2d.ErrDegenerateShape
	}

	outline := make([]*poly2tri.Point, len(contour))
	for i, p := range contour {
		outline[i] = poly2tri.NewPoint(float64(p.X), float64(p.Y))
	}

	// poly2tri panics on malformed input (self-intersections, collinear
	// contours). Surface that as a tessellation error instead.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tess: polygon triangulation failed: %v: %w", r, mesh2d.ErrDegenerateShape)
		}
	}()

	swctx := poly2tri.NewSweepContext(outline, false)
	swctx.Triangulate()

	// The sweep returns triangles referencing the contour's points.
	// Vertices are appended lazily on first reference so shared corners
	// are emitted once.
	indexOf := make(map[*poly2tri.Point]uint32, len(outline))
	for _, p := range outline {
		indexOf[p] = sink.AddFillVertex(mesh2d.FillVertex{
			Position: mesh2d.Pt(float32(p.X), float32(p.Y)),
		})
	}
	triangles := swctx.GetTriangles()
	for _, tr := range triangles {
		var idx [3]uint32
		for i := 0; i < 3; i++ {
			p := tr.Points[i]
			j, ok := indexOf[p]
			if !ok {
				j = sink.AddFillVertex(mesh2d.FillVertex{
					Position: mesh2d.Pt(float32(p.X), float32(p.Y)),
				})
				indexOf[p] = j
			}
			idx[i] = j
		}
		sink.AddTriangle(idx[0], idx[1], idx[2])
	}
	slogger().Debug("polygon filled", "points", len(contour), "triangles", len(triangles))
	return nil
}

// dedupeClosed removes consecutive duplicate points, treating the list as
// a closed ring (a trailing point equal to the first is dropped too).
func dedupeClosed(points []mesh2d.Point) []mesh2d.Point {
	out := make([]mesh2d.Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
