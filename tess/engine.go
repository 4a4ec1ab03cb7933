package tess

import (
	"log/slog"

	"github.com/gogpu/mesh2d"
)

// Engine is the default mesh2d tessellator.
//
// The zero value is ready to use; Engine carries no per-call state and is
// safe for concurrent use from multiple builders.
type Engine struct{}

var _ mesh2d.Tessellator = (*Engine)(nil)

// New creates a tessellation engine.
func New() *Engine {
	return &Engine{}
}

// Name returns the engine name.
func (e *Engine) Name() string { return "tess" }

// SetLogger routes engine diagnostics to the given logger.
// Called by mesh2d.SetLogger via logger propagation.
func (e *Engine) SetLogger(l *slog.Logger) {
	setLogger(l)
}

func init() {
	if err := mesh2d.RegisterTessellator(New()); err != nil {
		mesh2d.Logger().Warn("tessellator registration failed", "err", err)
	}
}
