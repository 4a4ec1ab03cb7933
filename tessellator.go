package mesh2d

import (
	"errors"
	"sync"
)

// Tessellator converts shape descriptions into triangles, emitting vertices
// and indices through a GeometrySink. Indices emitted via AddTriangle refer
// to vertices the tessellator added to the same sink.
//
// Implementations are provided by tessellation packages (e.g., mesh2d/tess).
// Users opt in via blank import:
//
//	import _ "github.com/gogpu/mesh2d/tess" // registers the default tessellator
//
// Tolerance is the maximum distance between a curve and its polyline
// approximation, in the same units as the input coordinates.
type Tessellator interface {
	// Name returns the tessellator name (e.g., "tess").
	Name() string

	// FillCircle tessellates a filled circle.
	FillCircle(sink GeometrySink, center Point, radius, tolerance float32) error

	// StrokeCircle tessellates a stroked circle outline.
	StrokeCircle(sink GeometrySink, center Point, radius, tolerance float32, stroke Stroke) error

	// FillEllipse tessellates a filled axis-aligned ellipse.
	FillEllipse(sink GeometrySink, center Point, radius1, radius2, tolerance float32) error

	// StrokeEllipse tessellates a stroked axis-aligned ellipse outline.
	StrokeEllipse(sink GeometrySink, center Point, radius1, radius2, tolerance float32, stroke Stroke) error

	// FillPolygon tessellates the interior of a closed polygon.
	// Returns ErrDegenerateShape for fewer than three points.
	FillPolygon(sink GeometrySink, points []Point) error

	// StrokePolyline tessellates a stroked polyline. When closed is true the
	// last point connects back to the first and no caps are emitted.
	// Returns ErrDegenerateShape for fewer than two points.
	StrokePolyline(sink GeometrySink, points []Point, closed bool, stroke Stroke) error
}

var (
	tessMu      sync.RWMutex
	tessellator Tessellator
)

// RegisterTessellator registers the tessellator used by MeshBuilder when
// none is supplied with WithTessellator.
//
// Only one tessellator can be registered. Subsequent calls replace the
// previous one. Typical usage via blank import in tessellation packages:
//
//	func init() {
//	    mesh2d.RegisterTessellator(tess.New())
//	}
func RegisterTessellator(t Tessellator) error {
	if t == nil {
		return errors.New("mesh2d: tessellator must not be nil")
	}
	tessMu.Lock()
	tessellator = t
	tessMu.Unlock()
	propagateLogger(t, Logger())
	return nil
}

// RegisteredTessellator returns the currently registered tessellator, or
// nil if none.
func RegisteredTessellator() Tessellator {
	tessMu.RLock()
	t := tessellator
	tessMu.RUnlock()
	return t
}
