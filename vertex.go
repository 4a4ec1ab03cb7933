package mesh2d

import (
	"encoding/binary"
	"math"
)

// VertexStride is the size in bytes of one packed Vertex.
const VertexStride = 16

// Vertex is the GPU vertex layout shared by every mesh: a position and a
// texture coordinate, both in float32 pairs. Every builder path pins UV
// to (0, 0), including [MeshBuilder.Triangles], which takes bare points;
// the white texture sample leaves the tint color as the output. Only
// [Geometry.AddVertex] preserves caller-supplied texture coordinates.
type Vertex struct {
	Pos [2]float32
	UV  [2]float32
}

// FillVertex is a vertex emitted by fill tessellation. The normal points
// outward from the shape interior and is unused by the default layout.
type FillVertex struct {
	Position Point
	Normal   Point
}

// StrokeVertex is a vertex emitted by stroke tessellation. Advancement is
// the distance travelled along the stroked path, in path units.
type StrokeVertex struct {
	Position    Point
	Normal      Point
	Advancement float32
}

// vertexFromFill converts a fill-side vertex to the shared layout,
// discarding the normal.
func vertexFromFill(v FillVertex) Vertex {
	return Vertex{
		Pos: [2]float32{v.Position.X, v.Position.Y},
		UV:  [2]float32{0, 0},
	}
}

// vertexFromStroke converts a stroke-side vertex to the shared layout,
// discarding the normal and advancement.
func vertexFromStroke(v StrokeVertex) Vertex {
	return Vertex{
		Pos: [2]float32{v.Position.X, v.Position.Y},
		UV:  [2]float32{0, 0},
	}
}

// EncodeVertices packs vertices into little-endian bytes matching
// [VertexStride], ready for buffer upload.
func EncodeVertices(vertices []Vertex) []byte {
	data := make([]byte, len(vertices)*VertexStride)
	for i, v := range vertices {
		off := i * VertexStride
		binary.LittleEndian.PutUint32(data[off+0:], math.Float32bits(v.Pos[0]))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(v.Pos[1]))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(v.UV[0]))
		binary.LittleEndian.PutUint32(data[off+12:], math.Float32bits(v.UV[1]))
	}
	return data
}

// EncodeIndices packs indices into little-endian uint32 bytes.
func EncodeIndices(indices []uint32) []byte {
	data := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(data[i*4:], idx)
	}
	return data
}
