package mesh2d

// DrawParam carries the per-draw instance state applied to a drawable.
// NewDrawParam returns the defaults: identity transform, white color.
type DrawParam struct {
	// Transform maps mesh coordinates to target coordinates.
	Transform Affine

	// Color tints the drawable. Defaults to opaque white (no tint).
	Color RGBA
}

// NewDrawParam returns a DrawParam with default settings.
func NewDrawParam() DrawParam {
	return DrawParam{
		Transform: Identity(),
		Color:     White,
	}
}

// WithTransform returns a copy of the DrawParam with the given transform.
func (p DrawParam) WithTransform(t Affine) DrawParam {
	p.Transform = t
	return p
}

// WithColor returns a copy of the DrawParam with the given color.
func (p DrawParam) WithColor(c RGBA) DrawParam {
	p.Color = c
	return p
}

// Drawable is the uniform interface for GPU-resident primitives that can
// be drawn into a Context.
type Drawable interface {
	// Draw renders the drawable with the given per-draw parameters.
	Draw(ctx Context, param DrawParam) error

	// SetBlendMode sets the compositing mode. Pass nil to restore the
	// context default.
	SetBlendMode(mode *BlendMode)

	// BlendMode returns the compositing mode, or nil when the drawable
	// uses the context default.
	BlendMode() *BlendMode
}

// Mesh is an immutable GPU-resident triangle mesh produced by
// [MeshBuilder.Build]. The vertex data cannot change after creation; only
// the blend mode is mutable. A Mesh can be drawn any number of times.
//
// Meshes sharing a builder share one GPU buffer. Close releases this
// mesh's reference to it.
type Mesh struct {
	buffer Buffer
	slice  Slice
	blend  *BlendMode
}

var _ Drawable = (*Mesh)(nil)

// Draw renders the mesh. The mesh's generated UVs are all zero, so the
// context samples its white texture and the tint color alone determines
// the output. Drawing an empty mesh is a no-op.
func (m *Mesh) Draw(ctx Context, param DrawParam) error {
	if m.slice.IsEmpty() {
		return nil
	}
	state := DrawState{
		Transform: param.Transform,
		Color:     param.Color,
		Texture:   ctx.WhiteTexture(),
	}
	if m.blend != nil {
		state.Blend = *m.blend
	}
	return ctx.Draw(m.buffer, m.slice, state)
}

// SetBlendMode sets the compositing mode used by subsequent draws.
// Pass nil to restore the context default.
func (m *Mesh) SetBlendMode(mode *BlendMode) {
	m.blend = mode
}

// BlendMode returns the mesh's compositing mode, or nil when the mesh
// uses the context default.
func (m *Mesh) BlendMode() *BlendMode {
	return m.blend
}

// Slice returns the index range this mesh draws.
func (m *Mesh) Slice() Slice {
	return m.slice
}

// Close releases the mesh's reference to its shared GPU buffer. The mesh
// must not be drawn afterwards.
func (m *Mesh) Close() {
	if m.buffer != nil {
		m.buffer.Release()
		m.buffer = nil
	}
}

// NewLine builds a mesh for a stroked open path through points.
func NewLine(ctx Context, points []Point, width float32) (*Mesh, error) {
	return NewMeshBuilder().Line(points, width).Build(ctx)
}

// NewCircle builds a mesh for a circle.
func NewCircle(ctx Context, mode DrawMode, center Point, radius, tolerance float32) (*Mesh, error) {
	return NewMeshBuilder().Circle(mode, center, radius, tolerance).Build(ctx)
}

// NewEllipse builds a mesh for an axis-aligned ellipse.
func NewEllipse(ctx Context, mode DrawMode, center Point, radius1, radius2, tolerance float32) (*Mesh, error) {
	return NewMeshBuilder().Ellipse(mode, center, radius1, radius2, tolerance).Build(ctx)
}

// NewPolyline builds a mesh for an open path through points.
func NewPolyline(ctx Context, mode DrawMode, points []Point) (*Mesh, error) {
	return NewMeshBuilder().Polyline(mode, points).Build(ctx)
}

// NewPolygon builds a mesh for a closed path through points.
func NewPolygon(ctx Context, mode DrawMode, points []Point) (*Mesh, error) {
	return NewMeshBuilder().Polygon(mode, points).Build(ctx)
}

// NewMeshFromTriangles builds a mesh directly from already-triangulated
// points. Panics if len(points) is not a multiple of three.
func NewMeshFromTriangles(ctx Context, points []Point) (*Mesh, error) {
	return NewMeshBuilder().Triangles(points).Build(ctx)
}
