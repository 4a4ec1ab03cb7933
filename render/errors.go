// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Sentinel errors for render package.
var (
	// ErrNoDevice is returned when no GPU device could be acquired.
	ErrNoDevice = errors.New("render: no GPU device available")

	// ErrNoActiveFrame is returned when Draw is called outside a
	// BeginFrame/EndFrame pair.
	ErrNoActiveFrame = errors.New("render: no active frame")

	// ErrFrameActive is returned when BeginFrame is called while a frame
	// is already being recorded.
	ErrFrameActive = errors.New("render: frame already active")

	// ErrForeignBuffer is returned when a buffer handle from another
	// context is drawn on this device.
	ErrForeignBuffer = errors.New("render: buffer does not belong to this device")

	// ErrDeviceClosed is returned when operating on a destroyed device.
	ErrDeviceClosed = errors.New("render: device closed")

	// ErrUnknownTexture is returned when a draw references a texture
	// handle this device never created.
	ErrUnknownTexture = errors.New("render: unknown texture handle")
)
