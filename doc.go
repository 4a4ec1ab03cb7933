// Package mesh2d assembles 2D vector shapes into GPU-ready triangle meshes.
//
// The package converts high-level shape descriptions (lines, circles,
// ellipses, polylines, polygons, raw triangle lists) into a single flat
// vertex/index buffer pair and wraps the uploaded buffer into an immutable,
// drawable [Mesh].
//
// # Building a mesh
//
// A [MeshBuilder] accumulates any number of shapes into one shared geometry
// buffer. Each shape method returns the builder so calls can be chained;
// Build performs the one-time GPU upload and yields the Mesh:
//
//	mb := mesh2d.NewMeshBuilder()
//	mesh, err := mb.
//	    Circle(mesh2d.Fill(), mesh2d.Pt(100, 100), 50, 0.5).
//	    Line([]mesh2d.Point{{0, 0}, {200, 200}}, 4).
//	    Build(ctx)
//
// Filled shapes and stroked outlines take structurally different
// tessellation paths; both converge on the common [Vertex] layout:
// position plus a degenerate UV pinned to zero (built-in shapes carry no
// texture mapping).
//
// # Collaborators
//
// Tessellation itself is external: the builder drives a [Tessellator],
// normally the engine in the tess subpackage (imported blank or injected
// via [WithTessellator]). GPU resources and draw submission are likewise
// external, reached through the [Context] contract; the render subpackage
// implements it on gogpu/wgpu.
//
// # Concurrency
//
// MeshBuilder requires exclusive access; serialize shape calls externally.
// A built Mesh is immutable (apart from its blend mode) and safe for
// concurrent reads. Cross-thread drawing follows the graphics context's own
// threading contract.
package mesh2d
