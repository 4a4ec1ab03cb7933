package mesh2d

import "errors"

// Sentinel errors for mesh construction.
var (
	// ErrNoTessellator is returned by Build when no tessellator is
	// registered and none was supplied with WithTessellator.
	ErrNoTessellator = errors.New("mesh2d: no tessellator registered")

	// ErrDegenerateShape is returned when a shape has too few points or
	// collapses to zero area, leaving nothing to tessellate.
	ErrDegenerateShape = errors.New("mesh2d: degenerate shape")

	// ErrBuilderConsumed is returned when Build is called on a builder
	// that has already produced a mesh.
	ErrBuilderConsumed = errors.New("mesh2d: builder already consumed")

	// ErrNilContext is returned when a nil graphics context is passed to
	// Build or a convenience constructor.
	ErrNilContext = errors.New("mesh2d: nil context")
)
