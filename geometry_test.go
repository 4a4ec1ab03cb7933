package mesh2d

import "testing"

func TestGeometry_SequentialIndices(t *testing.T) {
	g := NewGeometry(0, 0)

	i0 := g.AddFillVertex(FillVertex{Position: Pt(0, 0)})
	i1 := g.AddStrokeVertex(StrokeVertex{Position: Pt(1, 0), Advancement: 1})
	i2 := g.AddVertex(Vertex{Pos: [2]float32{0, 1}, UV: [2]float32{0.5, 0.5}})

	for i, got := range []uint32{i0, i1, i2} {
		if got != uint32(i) {
			t.Errorf("vertex %d index = %d, want %d", i, got, i)
		}
	}
	if g.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3", g.VertexCount())
	}
}

func TestGeometry_TessellatedUVPinnedToZero(t *testing.T) {
	g := NewGeometry(0, 0)
	g.AddFillVertex(FillVertex{Position: Pt(3, 4), Normal: Pt(0.6, 0.8)})
	g.AddStrokeVertex(StrokeVertex{Position: Pt(5, 6), Normal: Pt(0, 1), Advancement: 7})

	for i, v := range g.Vertices() {
		if v.UV != [2]float32{0, 0} {
			t.Errorf("vertex %d UV = %v, want (0, 0)", i, v.UV)
		}
	}
	if got := g.Vertices()[0].Pos; got != [2]float32{3, 4} {
		t.Errorf("fill vertex Pos = %v, want (3, 4)", got)
	}
	if got := g.Vertices()[1].Pos; got != [2]float32{5, 6} {
		t.Errorf("stroke vertex Pos = %v, want (5, 6)", got)
	}
}

func TestGeometry_AddVertexPreservesUV(t *testing.T) {
	g := NewGeometry(0, 0)
	g.AddVertex(Vertex{Pos: [2]float32{1, 2}, UV: [2]float32{0.25, 0.75}})
	if got := g.Vertices()[0].UV; got != [2]float32{0.25, 0.75} {
		t.Errorf("UV = %v, want (0.25, 0.75)", got)
	}
}

func TestGeometry_AddTriangle(t *testing.T) {
	g := NewGeometry(0, 0)
	g.AddTriangle(0, 1, 2)
	g.AddTriangle(2, 1, 3)

	want := []uint32{0, 1, 2, 2, 1, 3}
	got := g.Indices()
	if len(got) != len(want) {
		t.Fatalf("Indices() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Indices()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if g.IndexCount() != 6 {
		t.Errorf("IndexCount() = %d, want 6", g.IndexCount())
	}
}

func TestGeometry_Reset(t *testing.T) {
	g := NewGeometry(8, 12)
	g.AddFillVertex(FillVertex{Position: Pt(1, 1)})
	g.AddTriangle(0, 0, 0)

	g.Reset()
	if g.VertexCount() != 0 || g.IndexCount() != 0 {
		t.Errorf("after Reset: %d vertices, %d indices, want 0, 0", g.VertexCount(), g.IndexCount())
	}
	if cap(g.vertices) < 8 || cap(g.indices) < 12 {
		t.Errorf("Reset dropped capacity: %d, %d", cap(g.vertices), cap(g.indices))
	}
}
