package mesh2d

// GeometrySink receives tessellator output. Vertex adders return the index
// of the vertex just appended; AddTriangle records one triangle by vertex
// indices. Tessellators must only reference indices they received from the
// same sink.
type GeometrySink interface {
	AddFillVertex(v FillVertex) uint32
	AddStrokeVertex(v StrokeVertex) uint32
	AddTriangle(a, b, c uint32)
}

// Geometry accumulates tessellated vertices and triangle indices for one
// or more shapes sharing a vertex buffer. The zero value is ready to use.
type Geometry struct {
	vertices []Vertex
	indices  []uint32
}

// NewGeometry returns a Geometry with preallocated capacity for the given
// vertex and index counts.
func NewGeometry(vertexCap, indexCap int) *Geometry {
	return &Geometry{
		vertices: make([]Vertex, 0, vertexCap),
		indices:  make([]uint32, 0, indexCap),
	}
}

// AddFillVertex appends a fill vertex and returns its index.
func (g *Geometry) AddFillVertex(v FillVertex) uint32 {
	idx := uint32(len(g.vertices))
	g.vertices = append(g.vertices, vertexFromFill(v))
	return idx
}

// AddStrokeVertex appends a stroke vertex and returns its index.
func (g *Geometry) AddStrokeVertex(v StrokeVertex) uint32 {
	idx := uint32(len(g.vertices))
	g.vertices = append(g.vertices, vertexFromStroke(v))
	return idx
}

// AddVertex appends a raw vertex, preserving its texture coordinates, and
// returns its index.
func (g *Geometry) AddVertex(v Vertex) uint32 {
	idx := uint32(len(g.vertices))
	g.vertices = append(g.vertices, v)
	return idx
}

// AddTriangle records one triangle by vertex indices.
func (g *Geometry) AddTriangle(a, b, c uint32) {
	g.indices = append(g.indices, a, b, c)
}

// Vertices returns the accumulated vertices. The slice aliases internal
// storage and must not be mutated while the Geometry is still in use.
func (g *Geometry) Vertices() []Vertex {
	return g.vertices
}

// Indices returns the accumulated triangle indices, three per triangle.
func (g *Geometry) Indices() []uint32 {
	return g.indices
}

// VertexCount returns the number of accumulated vertices.
func (g *Geometry) VertexCount() int {
	return len(g.vertices)
}

// IndexCount returns the number of accumulated indices.
func (g *Geometry) IndexCount() int {
	return len(g.indices)
}

// Reset clears the geometry while keeping allocated capacity.
func (g *Geometry) Reset() {
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
}
