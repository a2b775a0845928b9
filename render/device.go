// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the integration point between canvas and GPU frameworks
// like gogpu. The host application implements DeviceHandle and passes it to
// target constructors, allowing canvas to share the host's GPU device.
//
// Key principle: canvas RECEIVES the device from the host, it does NOT
// create one. This keeps GPU resources shared and device ownership with the
// host.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// canvas-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureView represents a view into a GPU texture. Views are what
// host-provided render targets hand back from TextureView.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
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

// AdapterInfo returns an empty descriptor for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// TextureTarget is a render target backed by a host-provided GPU texture.
// The host owns the device and the view; the target only describes them.
// A TextureTarget has no CPU pixels, so the software backend falls back to
// a detached pixmap when pointed at one.
type TextureTarget struct {
	device        DeviceHandle
	view          TextureView
	width, height int
	format        gputypes.TextureFormat
}

// NewTextureTarget wraps a host texture view as a render target. The pixel
// format comes from the device's surface format; a nil device reports
// TextureFormatUndefined.
func NewTextureTarget(device DeviceHandle, view TextureView, width, height int) *TextureTarget {
	format := gputypes.TextureFormatUndefined
	if device != nil {
		format = device.SurfaceFormat()
	}
	return &TextureTarget{
		device: device,
		view:   view,
		width:  width,
		height: height,
		format: format,
	}
}

// Width returns the target width in pixels.
func (t *TextureTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *TextureTarget) Height() int { return t.height }

// Format returns the pixel format of the host surface.
func (t *TextureTarget) Format() gputypes.TextureFormat { return t.format }

// TextureView returns the host texture view.
func (t *TextureTarget) TextureView() TextureView { return t.view }

// Pixels returns nil: the texture is not CPU-accessible.
func (t *TextureTarget) Pixels() []byte { return nil }

// Stride returns 0 for GPU-only targets.
func (t *TextureTarget) Stride() int { return 0 }

// Device returns the host device handle.
func (t *TextureTarget) Device() DeviceHandle { return t.device }

// Ensure TextureTarget implements RenderTarget.
var _ RenderTarget = (*TextureTarget)(nil)
