package mesh2d

// BlendMode selects how a drawn mesh is composited over the render target.
// All modes operate on premultiplied alpha, following WebGPU conventions.
type BlendMode uint8

const (
	// BlendAlpha is standard source-over compositing. This is the default.
	BlendAlpha BlendMode = iota

	// BlendAdd sums source and destination (additive blending).
	BlendAdd

	// BlendReplace overwrites the destination with the source.
	BlendReplace
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "alpha"
	case BlendAdd:
		return "add"
	case BlendReplace:
		return "replace"
	default:
		return "unknown"
	}
}
