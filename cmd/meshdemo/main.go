// Command meshdemo tessellates a set of 2D shapes with mesh2d and reports
// the generated geometry. With -gpu it also uploads and draws the meshes
// on a standalone GPU device.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/mesh2d"
	"github.com/gogpu/mesh2d/gpucore"
	"github.com/gogpu/mesh2d/render"
	_ "github.com/gogpu/mesh2d/tess"
)

func main() {
	var (
		tolerance = flag.Float64("tolerance", 0.25, "curve flattening tolerance")
		useGPU    = flag.Bool("gpu", false, "upload meshes to a standalone GPU device")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		mesh2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	shapes := demoShapes(float32(*tolerance))
	for _, s := range shapes {
		log.Printf("%-16s %5d vertices %5d indices", s.name,
			len(s.vertices), len(s.indices))
	}

	if !*useGPU {
		return
	}

	dev, err := render.New(render.NullDeviceHandle{})
	if err != nil {
		log.Fatalf("GPU device: %v", err)
	}
	defer dev.Destroy()

	for _, s := range shapes {
		mesh, err := s.rebuild(dev)
		if err != nil {
			log.Fatalf("%s: %v", s.name, err)
		}
		log.Printf("%-16s uploaded, slice %d..%d", s.name,
			mesh.Slice().Start, mesh.Slice().Start+mesh.Slice().Count)
		mesh.Close()
	}
}

// shapeReport holds one demo shape's tessellated geometry and a way to
// rebuild it against a real context.
type shapeReport struct {
	name     string
	vertices []mesh2d.Vertex
	indices  []uint32
	rebuild  func(ctx mesh2d.Context) (*mesh2d.Mesh, error)
}

// countingContext captures uploaded geometry without a GPU.
type countingContext struct {
	vertices []mesh2d.Vertex
	indices  []uint32
}

type nopBuffer struct{}

func (nopBuffer) ID() gpucore.BufferID { return 0 }
func (nopBuffer) Retain()              {}
func (nopBuffer) Release()             {}

func (c *countingContext) CreateVertexBuffer(vertices []mesh2d.Vertex, indices []uint32) (mesh2d.Buffer, mesh2d.Slice, error) {
	c.vertices = vertices
	c.indices = indices
	return nopBuffer{}, mesh2d.Slice{Count: uint32(len(indices))}, nil
}

func (c *countingContext) Draw(mesh2d.Buffer, mesh2d.Slice, mesh2d.DrawState) error {
	return nil
}

func (c *countingContext) WhiteTexture() gpucore.TextureID { return 0 }

func demoShapes(tolerance float32) []shapeReport {
	builders := []struct {
		name  string
		build func(b *mesh2d.MeshBuilder) *mesh2d.MeshBuilder
	}{
		{"filled circle", func(b *mesh2d.MeshBuilder) *mesh2d.MeshBuilder {
			return b.Circle(mesh2d.Fill(), mesh2d.Pt(100, 100), 60, tolerance)
		}},
		{"stroked ellipse", func(b *mesh2d.MeshBuilder) *mesh2d.MeshBuilder {
			return b.Ellipse(mesh2d.LineWithStroke(mesh2d.RoundStroke().WithWidth(6)),
				mesh2d.Pt(260, 100), 80, 45, tolerance)
		}},
		{"star polygon", func(b *mesh2d.MeshBuilder) *mesh2d.MeshBuilder {
			return b.Polygon(mesh2d.Fill(), starPoints(mesh2d.Pt(100, 300), 70, 30, 5))
		}},
		{"zigzag line", func(b *mesh2d.MeshBuilder) *mesh2d.MeshBuilder {
			return b.Line([]mesh2d.Point{
				mesh2d.Pt(200, 260), mesh2d.Pt(240, 340),
				mesh2d.Pt(280, 260), mesh2d.Pt(320, 340),
			}, 8)
		}},
	}

	reports := make([]shapeReport, 0, len(builders))
	for _, item := range builders {
		build := item.build
		ctx := &countingContext{}
		mesh, err := build(mesh2d.NewMeshBuilder()).Build(ctx)
		if err != nil {
			log.Fatalf("%s: %v", item.name, err)
		}
		mesh.Close()
		reports = append(reports, shapeReport{
			name:     item.name,
			vertices: ctx.vertices,
			indices:  ctx.indices,
			rebuild: func(ctx mesh2d.Context) (*mesh2d.Mesh, error) {
				return build(mesh2d.NewMeshBuilder()).Build(ctx)
			},
		})
	}
	return reports
}

// starPoints returns the outline of a star with the given outer and inner
// radii and point count.
func starPoints(center mesh2d.Point, outer, inner float32, points int) []mesh2d.Point {
	out := make([]mesh2d.Point, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float32(i) * 3.14159265 / float32(points)
		out = append(out, mesh2d.Pt(0, -r).Rotate(angle).Add(center))
	}
	return out
}
