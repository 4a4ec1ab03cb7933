// Package tess implements the default tessellation engine for mesh2d.
//
// Filled polygons are triangulated with poly2tri's constrained Delaunay
// sweep. Circles and ellipses are flattened to polylines within a
// tolerance bound and fan-filled from the center. Strokes are expanded
// into triangle ribbons with configurable caps and joins.
//
// Importing the package registers the engine as the default tessellator:
//
//	import _ "github.com/gogpu/mesh2d/tess"
//
// Use [New] with [mesh2d.WithTessellator] to inject an instance
// explicitly instead.
package tess
