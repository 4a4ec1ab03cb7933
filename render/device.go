// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the primary integration point between mesh2d and GPU
// frameworks like gogpu. The host application implements DeviceHandle and
// passes it to render.New, allowing mesh2d to use the shared GPU device.
//
// Key principle: mesh2d RECEIVES the device from the host when one exists,
// it does not insist on creating its own. This enables:
//   - Shared GPU resources between mesh2d and the host application
//   - Zero device creation overhead in mesh2d
//   - Consistent resource management across the stack
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// mesh2d-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Passing it to New forces standalone device creation.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// halProvider is implemented by providers that expose raw wgpu/hal types,
// e.g. gogpu windows. Returning any avoids a hard dependency on hal in
// the provider's package.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// halFromProvider extracts hal.Device and hal.Queue from a provider, or
// reports that the provider exposes none.
func halFromProvider(provider DeviceHandle) (hal.Device, hal.Queue, bool) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, false
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, false
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, false
	}
	return device, queue, true
}

// openedDevice holds a standalone device opened by this package, together
// with the instance that owns it.
type openedDevice struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
}

// openStandalone creates an own Vulkan device. This is the fallback path
// when no external device is provided.
func openStandalone() (*openedDevice, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("render: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("render: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("render: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("render: open device: %w", err)
	}
	slogger().Info("GPU adapter selected", "name", selected.Info.Name)
	return &openedDevice{instance: instance, device: openDev.Device, queue: openDev.Queue}, nil
}

func (o *openedDevice) destroy() {
	if o.device != nil {
		o.device.Destroy()
		o.device = nil
	}
	if o.instance != nil {
		o.instance.Destroy()
		o.instance = nil
	}
}
