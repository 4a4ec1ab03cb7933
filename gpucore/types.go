// Package gpucore defines shared GPU resource handles for mesh2d backends.
//
// Resources created by a graphics context are referred to by opaque IDs.
// Each backend implementation maintains a mapping between IDs and actual
// GPU resources. IDs are uint64 to accommodate various backend handle sizes.
package gpucore

// BufferID is an opaque handle to a GPU buffer.
type BufferID uint64

// TextureID is an opaque handle to a GPU texture.
type TextureID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0
