// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/mesh2d"
)

// Embedded mesh shader source.
//
//go:embed shaders/mesh.wgsl
var meshShaderSource string

// meshVertexStride is the byte stride per vertex in the mesh pipeline.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	uv       (vec2<f32>) = 8 bytes  (location 1)
//
// Total = 16 bytes per vertex, matching mesh2d.VertexStride.
const meshVertexStride = mesh2d.VertexStride

// meshUniformSize is the byte size of the mesh uniform buffer.
// Layout: transform (mat4x4<f32>) = 64 bytes + color (vec4<f32>) = 16 bytes.
const meshUniformSize = 80

// meshPipeline manages GPU objects for indexed mesh rendering: the
// compiled shader, bind group layout, pipeline layout, and one render
// pipeline per blend mode.
//
// Architecture:
//
//	Device owns per-mesh buffers (vertex, index) and per-draw uniforms
//	meshPipeline owns shader, layouts, sampler, pipeline variants
//	bind groups are created per draw (uniform + texture + sampler)
type meshPipeline struct {
	device hal.Device

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout

	// Sampler shared by every mesh draw (linear filtering).
	sampler hal.Sampler

	// One pipeline variant per mesh2d.BlendMode.
	pipelines map[mesh2d.BlendMode]hal.RenderPipeline

	format      gputypes.TextureFormat
	sampleCount uint32
}

// newMeshPipeline creates the pipeline set for the given target format.
func newMeshPipeline(device hal.Device, format gputypes.TextureFormat, sampleCount uint32) (*meshPipeline, error) {
	p := &meshPipeline{
		device:      device,
		pipelines:   make(map[mesh2d.BlendMode]hal.RenderPipeline),
		format:      format,
		sampleCount: sampleCount,
	}
	if err := p.create(); err != nil {
		p.destroy()
		return nil, err
	}
	return p, nil
}

// create compiles the mesh shader and builds the render pipeline variants.
func (p *meshPipeline) create() error {
	if meshShaderSource == "" {
		return fmt.Errorf("mesh shader source is empty")
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "mesh_shader",
		Source: hal.ShaderSource{WGSL: meshShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile mesh shader: %w", err)
	}
	p.shader = shader

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "mesh_uniform_layout",
		Entries: meshBindingLayout(),
	})
	if err != nil {
		return fmt.Errorf("create mesh uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "mesh_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create mesh pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	sampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "mesh_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create mesh sampler: %w", err)
	}
	p.sampler = sampler

	for _, mode := range []mesh2d.BlendMode{mesh2d.BlendAlpha, mesh2d.BlendAdd, mesh2d.BlendReplace} {
		pipeline, err := p.createVariant(mode)
		if err != nil {
			return err
		}
		p.pipelines[mode] = pipeline
	}
	return nil
}

// createVariant builds one render pipeline with the blend state for mode.
func (p *meshPipeline) createVariant(mode mesh2d.BlendMode) (hal.RenderPipeline, error) {
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "mesh_pipeline_" + mode.String(),
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    meshVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					Blend:     blendState(mode),
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: p.sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create mesh pipeline (%s): %w", mode, err)
	}
	return pipeline, nil
}

// blendState maps a mesh2d blend mode to the GPU blend configuration.
// BlendReplace disables blending entirely.
func blendState(mode mesh2d.BlendMode) *gputypes.BlendState {
	switch mode {
	case mesh2d.BlendAdd:
		return &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case mesh2d.BlendReplace:
		return nil
	default:
		premul := gputypes.BlendStatePremultiplied()
		return &premul
	}
}

// pipeline returns the variant for mode, falling back to alpha blending.
func (p *meshPipeline) pipeline(mode mesh2d.BlendMode) hal.RenderPipeline {
	if pl, ok := p.pipelines[mode]; ok {
		return pl
	}
	return p.pipelines[mesh2d.BlendAlpha]
}

// destroy releases all pipeline resources in reverse creation order.
func (p *meshPipeline) destroy() {
	if p.device == nil {
		return
	}
	for mode, pl := range p.pipelines {
		if pl != nil {
			p.device.DestroyRenderPipeline(pl)
		}
		delete(p.pipelines, mode)
	}
	if p.sampler != nil {
		p.device.DestroySampler(p.sampler)
		p.sampler = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// meshBindingLayout returns the bind group layout entries for the mesh
// pipeline:
//
//	Binding 0: MeshUniforms (uniform buffer, vertex+fragment)
//	Binding 1: mesh texture (texture_2d, fragment)
//	Binding 2: sampler (fragment)
func meshBindingLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
		{
			Binding:    1,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    2,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}

// meshVertexLayout returns the vertex buffer layout for the mesh pipeline.
// Matches VertexInput in mesh.wgsl:
//
//	location 0: position (vec2<f32>)
//	location 1: uv       (vec2<f32>)
func meshVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: meshVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
			},
		},
	}
}

// makeMeshUniform packs the 80-byte uniform buffer for one draw.
// The 2D affine transform is widened to a 4x4 matrix:
//
//	a b 0 c
//	d e 0 f
//	0 0 1 0
//	0 0 0 1
func makeMeshUniform(transform mesh2d.Affine, color mesh2d.RGBA) []byte {
	buf := make([]byte, meshUniformSize)
	off := 0

	t := [16]float32{
		transform.A, transform.B, 0, transform.C,
		transform.D, transform.E, 0, transform.F,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	for _, v := range t {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}

	premul := color.Premultiply()
	for _, v := range [4]float32{premul.R, premul.G, premul.B, premul.A} {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	return buf
}
