package mesh2d

import "github.com/gogpu/mesh2d/gpucore"

// Buffer is a ref-counted handle to an uploaded vertex/index buffer pair.
// Meshes built from the same MeshBuilder share one Buffer; each mesh holds
// a reference and releases it when the mesh is closed.
type Buffer interface {
	// ID returns the opaque buffer identifier.
	ID() gpucore.BufferID

	// Retain increments the reference count.
	Retain()

	// Release decrements the reference count. The backing GPU resources
	// are destroyed when the count reaches zero.
	Release()
}

// Slice addresses a contiguous index range within a shared Buffer.
// Start and Count are in indices, not bytes.
type Slice struct {
	Start uint32
	Count uint32
}

// IsEmpty reports whether the slice addresses no indices.
func (s Slice) IsEmpty() bool {
	return s.Count == 0
}

// DrawState carries everything a context needs to draw one mesh slice.
type DrawState struct {
	// Transform maps mesh coordinates to target coordinates.
	Transform Affine

	// Color modulates the mesh, premultiplied by the pipeline.
	Color RGBA

	// Texture is the texture sampled during the draw. InvalidID selects
	// the context's white texture.
	Texture gpucore.TextureID

	// Blend selects the compositing mode.
	Blend BlendMode
}

// Context is the graphics backend meshes are uploaded to and drawn with.
// The render subpackage provides a wgpu/hal implementation; tests supply
// their own.
type Context interface {
	// CreateVertexBuffer uploads vertices and indices and returns a
	// ref-counted buffer handle with an initial count of one, plus the
	// slice covering all uploaded indices.
	CreateVertexBuffer(vertices []Vertex, indices []uint32) (Buffer, Slice, error)

	// Draw renders one index range of a previously uploaded buffer.
	Draw(buffer Buffer, slice Slice, state DrawState) error

	// WhiteTexture returns the context's 1x1 white texture, used when a
	// draw specifies no texture.
	WhiteTexture() gpucore.TextureID
}
