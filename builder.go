package mesh2d

import "fmt"

// DefaultTolerance is the curve flattening tolerance used when a shape
// call passes a tolerance at or below zero.
const DefaultTolerance float32 = 0.25

// MeshBuilder accumulates tessellated shapes into one shared vertex and
// index buffer, then uploads the whole batch in a single Build call.
//
// Each shape method returns the builder for chaining. The first error
// encountered sticks: later shape calls become no-ops and Build returns
// it. A builder is consumed by Build and must not be reused.
//
// MeshBuilder is not safe for concurrent use.
type MeshBuilder struct {
	geometry  *Geometry
	tess      Tessellator
	tolerance float32
	consumed  bool
	err       error
}

// NewMeshBuilder creates an empty MeshBuilder.
func NewMeshBuilder(opts ...BuilderOption) *MeshBuilder {
	o := defaultBuilderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &MeshBuilder{
		geometry:  NewGeometry(o.vertexCap, o.indexCap),
		tess:      o.tessellator,
		tolerance: o.tolerance,
	}
}

// Err returns the first error encountered by a shape call, or nil.
func (b *MeshBuilder) Err() error {
	return b.err
}

// resolveTessellator returns the builder's tessellator, falling back to
// the registered one.
func (b *MeshBuilder) resolveTessellator() (Tessellator, error) {
	if b.tess != nil {
		return b.tess, nil
	}
	if t := RegisteredTessellator(); t != nil {
		return t, nil
	}
	return nil, ErrNoTessellator
}

// fail records the first error. Later shape calls keep the builder
// chainable but change nothing.
func (b *MeshBuilder) fail(err error) *MeshBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *MeshBuilder) ready() bool {
	return b.err == nil && !b.consumed
}

func (b *MeshBuilder) effectiveTolerance(tolerance float32) float32 {
	if tolerance > 0 {
		return tolerance
	}
	return b.tolerance
}

// Line appends a stroked open path through points with the given width.
// Equivalent to Polyline(Line(width), points).
func (b *MeshBuilder) Line(points []Point, width float32) *MeshBuilder {
	return b.Polyline(Line(width), points)
}

// Circle appends a circle at center with the given radius. The mode
// selects fill or stroke tessellation; tolerance bounds the curve
// subdivision error (values at or below zero use the builder default).
func (b *MeshBuilder) Circle(mode DrawMode, center Point, radius, tolerance float32) *MeshBuilder {
	if !b.ready() {
		return b
	}
	t, err := b.resolveTessellator()
	if err != nil {
		return b.fail(err)
	}
	tol := b.effectiveTolerance(tolerance)
	if mode.IsFill() {
		err = t.FillCircle(b.geometry, center, radius, tol)
	} else {
		err = t.StrokeCircle(b.geometry, center, radius, tol, mode.Stroke())
	}
	if err != nil {
		return b.fail(fmt.Errorf("mesh2d: circle: %w", err))
	}
	return b
}

// Ellipse appends an axis-aligned ellipse at center with horizontal
// radius radius1 and vertical radius radius2.
func (b *MeshBuilder) Ellipse(mode DrawMode, center Point, radius1, radius2, tolerance float32) *MeshBuilder {
	if !b.ready() {
		return b
	}
	t, err := b.resolveTessellator()
	if err != nil {
		return b.fail(err)
	}
	tol := b.effectiveTolerance(tolerance)
	if mode.IsFill() {
		err = t.FillEllipse(b.geometry, center, radius1, radius2, tol)
	} else {
		err = t.StrokeEllipse(b.geometry, center, radius1, radius2, tol, mode.Stroke())
	}
	if err != nil {
		return b.fail(fmt.Errorf("mesh2d: ellipse: %w", err))
	}
	return b
}

// Polyline appends an open path through points. Fill mode fills the
// path's interior; line mode strokes it with caps at both ends.
func (b *MeshBuilder) Polyline(mode DrawMode, points []Point) *MeshBuilder {
	return b.polylineInner(mode, points, false)
}

// Polygon appends a closed path through points (the last point connects
// back to the first). Line mode strokes it as a closed loop with joins
// at every vertex and no caps.
func (b *MeshBuilder) Polygon(mode DrawMode, points []Point) *MeshBuilder {
	return b.polylineInner(mode, points, true)
}

func (b *MeshBuilder) polylineInner(mode DrawMode, points []Point, closed bool) *MeshBuilder {
	if !b.ready() {
		return b
	}
	t, err := b.resolveTessellator()
	if err != nil {
		return b.fail(err)
	}
	if mode.IsFill() {
		err = t.FillPolygon(b.geometry, points)
	} else {
		err = t.StrokePolyline(b.geometry, points, closed, mode.Stroke())
	}
	if err != nil {
		return b.fail(fmt.Errorf("mesh2d: polyline: %w", err))
	}
	return b
}

// Triangles appends already-triangulated points directly, bypassing the
// tessellator. Each consecutive triple of points becomes one triangle;
// degenerate zero-area triangles are accepted.
//
// Triangles panics if len(points) is not a multiple of three. A partial
// triangle is a caller bug, not a runtime condition.
func (b *MeshBuilder) Triangles(points []Point) *MeshBuilder {
	if len(points)%3 != 0 {
		panic("mesh2d: Triangles requires a point count divisible by three")
	}
	if !b.ready() {
		return b
	}
	for i := 0; i < len(points); i += 3 {
		a := b.geometry.AddFillVertex(FillVertex{Position: points[i]})
		bb := b.geometry.AddFillVertex(FillVertex{Position: points[i+1]})
		c := b.geometry.AddFillVertex(FillVertex{Position: points[i+2]})
		b.geometry.AddTriangle(a, bb, c)
	}
	return b
}

// Build uploads the accumulated geometry to the context and returns the
// resulting immutable Mesh. The builder is consumed: any Build call after
// the first returns ErrBuilderConsumed, whether the first succeeded or
// not.
//
// Building an empty accumulator succeeds and yields a mesh whose slice
// spans zero indices; drawing it is a no-op.
func (b *MeshBuilder) Build(ctx Context) (*Mesh, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true
	if b.err != nil {
		return nil, b.err
	}
	if ctx == nil {
		return nil, ErrNilContext
	}

	buffer, slice, err := ctx.CreateVertexBuffer(b.geometry.Vertices(), b.geometry.Indices())
	if err != nil {
		return nil, fmt.Errorf("mesh2d: buffer upload failed: %w", err)
	}
	Logger().Debug("mesh built",
		"vertices", b.geometry.VertexCount(),
		"indices", b.geometry.IndexCount())
	return &Mesh{buffer: buffer, slice: slice}, nil
}
