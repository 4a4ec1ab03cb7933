package mesh2d

// BuilderOption configures a MeshBuilder during creation.
// Use functional options to customize builder behavior.
//
// Example:
//
//	// Default registered tessellator
//	b := mesh2d.NewMeshBuilder()
//
//	// Custom tessellator (dependency injection)
//	b := mesh2d.NewMeshBuilder(mesh2d.WithTessellator(myTess))
type BuilderOption func(*builderOptions)

// builderOptions holds optional configuration for MeshBuilder creation.
type builderOptions struct {
	tessellator Tessellator
	vertexCap   int
	indexCap    int
	tolerance   float32
}

// defaultBuilderOptions returns the default builder options.
func defaultBuilderOptions() builderOptions {
	return builderOptions{
		tessellator: nil, // Will be resolved from the registry at Build time
		tolerance:   DefaultTolerance,
	}
}

// WithTessellator sets a custom tessellator for the builder, bypassing the
// registered one.
func WithTessellator(t Tessellator) BuilderOption {
	return func(o *builderOptions) {
		o.tessellator = t
	}
}

// WithCapacity preallocates vertex and index storage. Useful when the
// approximate mesh size is known up front.
func WithCapacity(vertices, indices int) BuilderOption {
	return func(o *builderOptions) {
		o.vertexCap = vertices
		o.indexCap = indices
	}
}

// WithTolerance sets the curve flattening tolerance for circles and
// ellipses. Values at or below zero fall back to DefaultTolerance.
func WithTolerance(tolerance float32) BuilderOption {
	return func(o *builderOptions) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}
