package render

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// Key principle: this package RECEIVES the device from the host, it does
// NOT create one. Hosts built on gogpu implement gpucontext.DeviceProvider
// already; DeviceHandle is an alias giving the interface a local name
// while staying compatible with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// ErrNoHALAccess is returned when a device provider does not expose the
// underlying wgpu HAL handles needed for texture allocation and upload.
var ErrNoHALAccess = errors.New("render: device provider does not expose HAL access")

// halAccess is implemented by providers that expose their raw wgpu HAL
// device and queue, such as gogpu application contexts.
type halAccess interface {
	HALDevice() hal.Device
	HALQueue() hal.Queue
}

// NewMirrorsFromProvider creates a mirror registry backed by a host device
// provider. The provider must expose the underlying HAL device and queue;
// hosts that only implement the plain gpucontext surface get
// ErrNoHALAccess.
func NewMirrorsFromProvider(provider DeviceHandle) (*Mirrors, error) {
	if provider == nil {
		return nil, ErrNoDevice
	}
	ha, ok := provider.(halAccess)
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, queue := ha.HALDevice(), ha.HALQueue()
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	return NewMirrors(device, queue), nil
}
