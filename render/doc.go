// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render implements the mesh2d graphics context on gogpu/wgpu.
//
// A [Device] uploads mesh geometry into GPU vertex/index buffers and
// records indexed draws into per-frame render passes. The device either
// receives a shared GPU device from a host application through a
// [DeviceHandle] provider, or opens a standalone Vulkan device when none
// is supplied.
//
// Typical frame loop:
//
//	dev, err := render.New(provider)
//	...
//	mesh, err := mesh2d.NewCircle(dev, mesh2d.Fill(), center, 40, 0.5)
//	...
//	if err := dev.BeginFrame(surfaceView); err != nil { ... }
//	err = mesh.Draw(dev, mesh2d.NewDrawParam().WithColor(red))
//	if err := dev.EndFrame(); err != nil { ... }
package render
