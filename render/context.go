// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/mesh2d"
	"github.com/gogpu/mesh2d/gpucore"
)

// Config holds optional device configuration.
type Config struct {
	// Format is the render target texture format.
	// Default: BGRA8Unorm.
	Format gputypes.TextureFormat

	// SampleCount is the MSAA sample count of the render target.
	// Default: 1 (no multisampling).
	SampleCount uint32
}

// DefaultConfig returns the default device configuration.
func DefaultConfig() Config {
	return Config{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		SampleCount: 1,
	}
}

// Device is the wgpu/hal implementation of mesh2d.Context. It owns the
// mesh render pipeline, a table of uploaded mesh buffers, and the white
// fallback texture. Draws are recorded into a per-frame render pass
// between BeginFrame and EndFrame.
type Device struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	// owned is non-nil when this Device opened its own standalone
	// device instead of sharing one from a provider.
	owned *openedDevice

	pipeline *meshPipeline

	buffers    map[gpucore.BufferID]*meshBuffer
	nextBuffer uint64

	whiteTex  hal.Texture
	whiteView hal.TextureView

	frame  *frameState
	closed bool
}

// whiteTextureID is the fixed handle of the device's 1x1 white texture.
const whiteTextureID gpucore.TextureID = 1

var _ mesh2d.Context = (*Device)(nil)

// frameState holds resources recorded for the frame in flight. Per-draw
// uniform buffers and bind groups stay alive until the frame's command
// buffer has executed.
type frameState struct {
	encoder hal.CommandEncoder
	pass    hal.RenderPassEncoder

	uniforms   []hal.Buffer
	bindGroups []hal.BindGroup
}

// New creates a Device. When the provider exposes raw hal types the GPU
// device is shared with the host; otherwise a standalone Vulkan device is
// opened. Pass NullDeviceHandle to force standalone creation.
func New(provider DeviceHandle) (*Device, error) {
	cfg := DefaultConfig()
	if provider != nil {
		if format := provider.SurfaceFormat(); format != gputypes.TextureFormatUndefined {
			cfg.Format = format
		}
	}
	return NewWithConfig(provider, cfg)
}

// NewWithConfig creates a Device with explicit configuration.
func NewWithConfig(provider DeviceHandle, cfg Config) (*Device, error) {
	if cfg.Format == gputypes.TextureFormatUndefined {
		cfg.Format = DefaultConfig().Format
	}
	if cfg.SampleCount == 0 {
		cfg.SampleCount = DefaultConfig().SampleCount
	}

	d := &Device{
		buffers: make(map[gpucore.BufferID]*meshBuffer),
	}

	if provider != nil {
		if halDev, halQueue, ok := halFromProvider(provider); ok {
			d.device = halDev
			d.queue = halQueue
			slogger().Debug("using shared GPU device from provider")
		}
	}
	if d.device == nil {
		opened, err := openStandalone()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
		}
		d.owned = opened
		d.device = opened.device
		d.queue = opened.queue
	}

	pipeline, err := newMeshPipeline(d.device, cfg.Format, cfg.SampleCount)
	if err != nil {
		d.releaseDevice()
		return nil, err
	}
	d.pipeline = pipeline

	if err := d.createWhiteTexture(); err != nil {
		d.pipeline.destroy()
		d.releaseDevice()
		return nil, err
	}
	return d, nil
}

// createWhiteTexture uploads the 1x1 opaque white fallback texture that
// untextured mesh draws reference.
func (d *Device) createWhiteTexture() error {
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "mesh_white",
		Size:          hal.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("render: create white texture: %w", err)
	}

	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "mesh_white_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return fmt.Errorf("render: create white texture view: %w", err)
	}

	d.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		[]byte{255, 255, 255, 255},
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: 4, RowsPerImage: 1},
		&hal.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
	)

	d.whiteTex = tex
	d.whiteView = view
	return nil
}

// WhiteTexture returns the handle of the device's 1x1 white texture.
func (d *Device) WhiteTexture() gpucore.TextureID {
	return whiteTextureID
}

// textureView resolves a texture handle to the view bound for a draw.
// The zero handle falls back to the white texture. Caller holds the
// device mutex.
func (d *Device) textureView(id gpucore.TextureID) (hal.TextureView, error) {
	switch id {
	case gpucore.InvalidID, whiteTextureID:
		return d.whiteView, nil
	default:
		return nil, ErrUnknownTexture
	}
}

// CreateVertexBuffer uploads vertices and indices and returns a
// ref-counted buffer handle plus the slice covering all indices.
// Empty geometry allocates no GPU resources and yields an empty slice.
func (d *Device) CreateVertexBuffer(vertices []mesh2d.Vertex, indices []uint32) (mesh2d.Buffer, mesh2d.Slice, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, mesh2d.Slice{}, ErrDeviceClosed
	}

	d.nextBuffer++
	id := gpucore.BufferID(d.nextBuffer)
	mb := &meshBuffer{device: d, id: id, refs: 1}

	if len(indices) > 0 {
		vertBuf, err := d.createAndUploadBuffer(
			fmt.Sprintf("mesh_%d_vertices", id),
			mesh2d.EncodeVertices(vertices),
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return nil, mesh2d.Slice{}, fmt.Errorf("render: create vertex buffer: %w", err)
		}
		idxBuf, err := d.createAndUploadBuffer(
			fmt.Sprintf("mesh_%d_indices", id),
			mesh2d.EncodeIndices(indices),
			gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
		if err != nil {
			d.device.DestroyBuffer(vertBuf)
			return nil, mesh2d.Slice{}, fmt.Errorf("render: create index buffer: %w", err)
		}
		mb.vertBuf = vertBuf
		mb.idxBuf = idxBuf
	}

	d.buffers[id] = mb
	slice := mesh2d.Slice{Start: 0, Count: uint32(len(indices))}
	slogger().Debug("mesh buffer uploaded",
		"id", uint64(id), "vertices", len(vertices), "indices", len(indices))
	return mb, slice, nil
}

// createAndUploadBuffer creates a GPU buffer and writes data into it.
func (d *Device) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	d.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// BeginFrame starts recording draws into the given target view. Every
// BeginFrame must be paired with EndFrame.
func (d *Device) BeginFrame(view hal.TextureView) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDeviceClosed
	}
	if d.frame != nil {
		return ErrFrameActive
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "mesh_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("render: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("mesh_frame"); err != nil {
		return fmt.Errorf("render: begin encoding: %w", err)
	}

	pass := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "mesh_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{},
		}},
	})

	d.frame = &frameState{encoder: encoder, pass: pass}
	return nil
}

// Draw records one indexed draw of a previously uploaded mesh buffer into
// the current frame. Draw fails with ErrNoActiveFrame outside a frame.
func (d *Device) Draw(buffer mesh2d.Buffer, slice mesh2d.Slice, state mesh2d.DrawState) error {
	if slice.IsEmpty() {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDeviceClosed
	}
	if d.frame == nil {
		return ErrNoActiveFrame
	}

	mb, ok := buffer.(*meshBuffer)
	if !ok || mb.device != d {
		return ErrForeignBuffer
	}
	if mb.vertBuf == nil {
		return nil
	}

	view, err := d.textureView(state.Texture)
	if err != nil {
		return err
	}

	uniformData := makeMeshUniform(state.Transform, state.Color)
	uniformBuf, err := d.createAndUploadBuffer("mesh_draw_uniform", uniformData,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("render: create uniform buffer: %w", err)
	}

	bindGroup, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "mesh_draw_bind",
		Layout: d.pipeline.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: meshUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: view.NativeHandle(),
			}},
			{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: d.pipeline.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		d.device.DestroyBuffer(uniformBuf)
		return fmt.Errorf("render: create bind group: %w", err)
	}

	// Keep per-draw resources alive until the frame is submitted.
	d.frame.uniforms = append(d.frame.uniforms, uniformBuf)
	d.frame.bindGroups = append(d.frame.bindGroups, bindGroup)

	rp := d.frame.pass
	rp.SetPipeline(d.pipeline.pipeline(state.Blend))
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, mb.vertBuf, 0)
	rp.SetIndexBuffer(mb.idxBuf, gputypes.IndexFormatUint32, 0)
	rp.DrawIndexed(slice.Count, 1, slice.Start, 0, 0)
	return nil
}

// EndFrame finishes the render pass, submits the command buffer, and
// waits for the GPU to complete it.
func (d *Device) EndFrame() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.frame == nil {
		return ErrNoActiveFrame
	}
	frame := d.frame
	d.frame = nil
	defer d.destroyFrameResources(frame)

	frame.pass.End()

	cmdBuf, err := frame.encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("render: end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	fence, err := d.device.CreateFence()
	if err != nil {
		return fmt.Errorf("render: create fence: %w", err)
	}
	defer d.device.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("render: submit: %w", err)
	}
	fenceOK, err := d.device.Wait(fence, 1, 5*time.Second)
	if err != nil {
		return fmt.Errorf("render: wait for GPU: %w", err)
	}
	if !fenceOK {
		return fmt.Errorf("render: wait for GPU timed out")
	}
	return nil
}

// destroyFrameResources releases per-draw resources recorded this frame.
func (d *Device) destroyFrameResources(frame *frameState) {
	for _, bg := range frame.bindGroups {
		d.device.DestroyBindGroup(bg)
	}
	for _, buf := range frame.uniforms {
		d.device.DestroyBuffer(buf)
	}
}

// Destroy releases all GPU resources held by the device. Meshes built
// against this device must not be drawn afterwards.
func (d *Device) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true

	if d.frame != nil {
		d.frame.pass.End()
		d.frame.encoder.DiscardEncoding()
		d.destroyFrameResources(d.frame)
		d.frame = nil
	}
	for id, mb := range d.buffers {
		mb.destroyLocked()
		delete(d.buffers, id)
	}
	if d.whiteView != nil {
		d.device.DestroyTextureView(d.whiteView)
		d.whiteView = nil
	}
	if d.whiteTex != nil {
		d.device.DestroyTexture(d.whiteTex)
		d.whiteTex = nil
	}
	if d.pipeline != nil {
		d.pipeline.destroy()
		d.pipeline = nil
	}
	d.releaseDevice()
}

// releaseDevice tears down the standalone device if this Device owns one.
func (d *Device) releaseDevice() {
	if d.owned != nil {
		d.owned.destroy()
		d.owned = nil
	}
	d.device = nil
	d.queue = nil
}

// meshBuffer is the device-side Buffer implementation: one vertex/index
// buffer pair shared by every mesh built from one builder, reference
// counted so the GPU resources outlive the last mesh using them.
type meshBuffer struct {
	device  *Device
	id      gpucore.BufferID
	vertBuf hal.Buffer
	idxBuf  hal.Buffer
	refs    int
}

var _ mesh2d.Buffer = (*meshBuffer)(nil)

// ID returns the opaque buffer identifier.
func (b *meshBuffer) ID() gpucore.BufferID {
	return b.id
}

// Retain increments the reference count.
func (b *meshBuffer) Retain() {
	b.device.mu.Lock()
	defer b.device.mu.Unlock()
	b.refs++
}

// Release decrements the reference count and destroys the GPU buffers
// when it reaches zero.
func (b *meshBuffer) Release() {
	b.device.mu.Lock()
	defer b.device.mu.Unlock()
	if b.refs == 0 {
		return
	}
	b.refs--
	if b.refs > 0 || b.device.closed {
		return
	}
	b.destroyLocked()
	delete(b.device.buffers, b.id)
}

// destroyLocked releases the GPU buffers. Caller holds the device mutex.
func (b *meshBuffer) destroyLocked() {
	if b.vertBuf != nil {
		b.device.device.DestroyBuffer(b.vertBuf)
		b.vertBuf = nil
	}
	if b.idxBuf != nil {
		b.device.device.DestroyBuffer(b.idxBuf)
		b.idxBuf = nil
	}
}
