// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/mesh2d"
)

func uniformFloat(t *testing.T, buf []byte, i int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
}

func TestMakeMeshUniform_Size(t *testing.T) {
	buf := makeMeshUniform(mesh2d.Identity(), mesh2d.White)
	if len(buf) != meshUniformSize {
		t.Fatalf("len = %d, want %d", len(buf), meshUniformSize)
	}
}

func TestMakeMeshUniform_Transform(t *testing.T) {
	buf := makeMeshUniform(mesh2d.Translate(10, 20), mesh2d.White)

	// Row-major 4x4 widening of the affine: translation lands in rows
	// 0 and 1, column 3.
	if got := uniformFloat(t, buf, 3); got != 10 {
		t.Errorf("m[0][3] = %v, want 10", got)
	}
	if got := uniformFloat(t, buf, 7); got != 20 {
		t.Errorf("m[1][3] = %v, want 20", got)
	}
	// Identity diagonal elsewhere.
	for _, i := range []int{0, 5, 10, 15} {
		if got := uniformFloat(t, buf, i); got != 1 {
			t.Errorf("diagonal element %d = %v, want 1", i, got)
		}
	}
}

func TestMakeMeshUniform_ColorPremultiplied(t *testing.T) {
	color := mesh2d.RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	buf := makeMeshUniform(mesh2d.Identity(), color)

	want := [4]float32{0.5, 0.25, 0, 0.5}
	for i, w := range want {
		if got := uniformFloat(t, buf, 16+i); got != w {
			t.Errorf("color[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestBlendState(t *testing.T) {
	if got := blendState(mesh2d.BlendReplace); got != nil {
		t.Errorf("blendState(BlendReplace) = %+v, want nil", got)
	}

	add := blendState(mesh2d.BlendAdd)
	if add == nil {
		t.Fatal("blendState(BlendAdd) = nil")
	}
	if add.Color.SrcFactor != gputypes.BlendFactorOne || add.Color.DstFactor != gputypes.BlendFactorOne {
		t.Errorf("additive color factors = %+v, want one/one", add.Color)
	}

	alpha := blendState(mesh2d.BlendAlpha)
	if alpha == nil {
		t.Fatal("blendState(BlendAlpha) = nil")
	}
	premul := gputypes.BlendStatePremultiplied()
	if *alpha != premul {
		t.Errorf("blendState(BlendAlpha) = %+v, want premultiplied", *alpha)
	}
}

func TestMeshVertexLayout(t *testing.T) {
	layouts := meshVertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("layouts = %d, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != mesh2d.VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, mesh2d.VertexStride)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("attributes = %d, want 2", len(l.Attributes))
	}
	if l.Attributes[0].Offset != 0 || l.Attributes[0].ShaderLocation != 0 {
		t.Errorf("position attribute = %+v", l.Attributes[0])
	}
	if l.Attributes[1].Offset != 8 || l.Attributes[1].ShaderLocation != 1 {
		t.Errorf("uv attribute = %+v", l.Attributes[1])
	}
}

func TestMeshBindingLayout(t *testing.T) {
	entries := meshBindingLayout()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	uniform := entries[0]
	if uniform.Binding != 0 || uniform.Buffer == nil {
		t.Errorf("binding 0 = %+v, want uniform buffer", uniform)
	}
	if uniform.Visibility != gputypes.ShaderStageVertex|gputypes.ShaderStageFragment {
		t.Errorf("uniform visibility = %v, want vertex|fragment", uniform.Visibility)
	}

	texture := entries[1]
	if texture.Binding != 1 || texture.Texture == nil {
		t.Errorf("binding 1 = %+v, want texture", texture)
	}
	if texture.Visibility != gputypes.ShaderStageFragment {
		t.Errorf("texture visibility = %v, want fragment", texture.Visibility)
	}

	sampler := entries[2]
	if sampler.Binding != 2 || sampler.Sampler == nil {
		t.Errorf("binding 2 = %+v, want sampler", sampler)
	}
	if sampler.Sampler != nil && sampler.Sampler.Type != gputypes.SamplerBindingTypeFiltering {
		t.Errorf("sampler type = %v, want filtering", sampler.Sampler.Type)
	}
}

func TestMeshShaderEmbedded(t *testing.T) {
	for _, entry := range []string{"vs_main", "fs_main", "MeshUniforms", "textureSample"} {
		if !strings.Contains(meshShaderSource, entry) {
			t.Errorf("embedded shader missing %q", entry)
		}
	}
	// The shader's bindings must cover the bind group layout.
	for _, binding := range []string{"@binding(0)", "@binding(1)", "@binding(2)"} {
		if !strings.Contains(meshShaderSource, binding) {
			t.Errorf("embedded shader missing %q", binding)
		}
	}
}
