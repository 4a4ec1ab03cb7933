package mesh2d

import (
	"errors"
	"testing"
)

func buildTriangleMesh(t *testing.T, ctx *fakeContext) *Mesh {
	t.Helper()
	mesh, err := NewMeshBuilder().
		Triangles([]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}).
		Build(ctx)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return mesh
}

func TestMesh_DrawPropagatesState(t *testing.T) {
	ctx := &fakeContext{}
	mesh := buildTriangleMesh(t, ctx)

	transform := Translate(10, 20)
	color := RGB(1, 0, 0)
	if err := mesh.Draw(ctx, NewDrawParam().WithTransform(transform).WithColor(color)); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if len(ctx.drawn) != 1 {
		t.Fatalf("draws = %d, want 1", len(ctx.drawn))
	}
	state := ctx.drawn[0]
	if state.Transform != transform {
		t.Errorf("Transform = %+v, want %+v", state.Transform, transform)
	}
	if state.Color != color {
		t.Errorf("Color = %+v, want %+v", state.Color, color)
	}
	if state.Texture != ctx.WhiteTexture() {
		t.Errorf("Texture = %v, want white texture %v", state.Texture, ctx.WhiteTexture())
	}
	if state.Blend != BlendAlpha {
		t.Errorf("Blend = %v, want BlendAlpha", state.Blend)
	}
	if ctx.drawSlices[0] != mesh.Slice() {
		t.Errorf("drawn slice = %+v, want %+v", ctx.drawSlices[0], mesh.Slice())
	}
}

func TestMesh_DrawDefaults(t *testing.T) {
	ctx := &fakeContext{}
	mesh := buildTriangleMesh(t, ctx)

	if err := mesh.Draw(ctx, NewDrawParam()); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	state := ctx.drawn[0]
	if !state.Transform.IsIdentity() {
		t.Errorf("default Transform = %+v, want identity", state.Transform)
	}
	if state.Color != White {
		t.Errorf("default Color = %+v, want White", state.Color)
	}
}

func TestMesh_BlendModeAccessors(t *testing.T) {
	ctx := &fakeContext{}
	mesh := buildTriangleMesh(t, ctx)

	if mesh.BlendMode() != nil {
		t.Errorf("BlendMode() = %v, want nil default", mesh.BlendMode())
	}

	mode := BlendAdd
	mesh.SetBlendMode(&mode)
	if got := mesh.BlendMode(); got == nil || *got != BlendAdd {
		t.Errorf("BlendMode() = %v, want BlendAdd", got)
	}
	if err := mesh.Draw(ctx, NewDrawParam()); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if ctx.drawn[0].Blend != BlendAdd {
		t.Errorf("Blend = %v, want BlendAdd", ctx.drawn[0].Blend)
	}

	mesh.SetBlendMode(nil)
	if mesh.BlendMode() != nil {
		t.Error("BlendMode() after reset is not nil")
	}
}

func TestMesh_DrawError(t *testing.T) {
	ctx := &fakeContext{}
	mesh := buildTriangleMesh(t, ctx)

	drawErr := errors.New("device lost")
	ctx.failDraw = drawErr
	if err := mesh.Draw(ctx, NewDrawParam()); !errors.Is(err, drawErr) {
		t.Errorf("Draw() error = %v, want %v", err, drawErr)
	}
}

func TestMesh_CloseReleasesBuffer(t *testing.T) {
	ctx := &fakeContext{}
	mesh := buildTriangleMesh(t, ctx)

	buf := mesh.buffer.(*fakeBuffer)
	if buf.refs != 1 {
		t.Fatalf("refs after build = %d, want 1", buf.refs)
	}
	mesh.Close()
	if buf.refs != 0 {
		t.Errorf("refs after Close = %d, want 0", buf.refs)
	}
	mesh.Close()
	if buf.refs != 0 {
		t.Errorf("refs after double Close = %d, want 0", buf.refs)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	fake := &fakeTessellator{}
	clearRegistry(t)
	if err := RegisterTessellator(fake); err != nil {
		t.Fatalf("RegisterTessellator() error = %v", err)
	}

	ctx := &fakeContext{}
	tests := []struct {
		name  string
		build func() (*Mesh, error)
		want  string
	}{
		{"NewLine", func() (*Mesh, error) {
			return NewLine(ctx, []Point{Pt(0, 0), Pt(1, 0)}, 2)
		}, "StrokePolyline"},
		{"NewCircle", func() (*Mesh, error) {
			return NewCircle(ctx, Fill(), Pt(0, 0), 5, 0)
		}, "FillCircle"},
		{"NewEllipse", func() (*Mesh, error) {
			return NewEllipse(ctx, Line(1), Pt(0, 0), 5, 3, 0)
		}, "StrokeEllipse"},
		{"NewPolyline", func() (*Mesh, error) {
			return NewPolyline(ctx, Fill(), []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)})
		}, "FillPolygon"},
		{"NewPolygon", func() (*Mesh, error) {
			return NewPolygon(ctx, Line(1), []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)})
		}, "StrokePolyline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake.calls = nil
			mesh, err := tt.build()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if mesh.Slice().IsEmpty() {
				t.Error("built mesh is empty")
			}
			if len(fake.calls) != 1 || fake.calls[0] != tt.want {
				t.Errorf("calls = %v, want [%s]", fake.calls, tt.want)
			}
		})
	}
}

func TestNewMeshFromTriangles(t *testing.T) {
	ctx := &fakeContext{}
	mesh, err := NewMeshFromTriangles(ctx, []Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)})
	if err != nil {
		t.Fatalf("NewMeshFromTriangles() error = %v", err)
	}
	if got := mesh.Slice().Count; got != 3 {
		t.Errorf("Slice().Count = %d, want 3", got)
	}
}

func TestDrawParam_With(t *testing.T) {
	base := NewDrawParam()
	moved := base.WithTransform(Translate(5, 5))
	tinted := base.WithColor(RGB(0, 1, 0))

	if !base.Transform.IsIdentity() || base.Color != White {
		t.Errorf("base mutated: %+v", base)
	}
	if moved.Transform.C != 5 || moved.Transform.F != 5 {
		t.Errorf("WithTransform = %+v, want translation by (5, 5)", moved.Transform)
	}
	if tinted.Color != RGB(0, 1, 0) {
		t.Errorf("WithColor = %+v, want green", tinted.Color)
	}
}
