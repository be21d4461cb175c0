package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/ecoskey/vane"
)

var (
	samplerMu     sync.Mutex
	sharedSampler hal.Sampler
)

// FieldSampler returns the sampler shared process-wide by every flow
// field mirror: linear filtering with clamp-to-edge addressing on all
// three axes.
//
// The sampler is created on the first successful call and never rebuilt;
// later calls return the same handle and ignore the device argument.
// A failed creation is reported and may be retried.
func FieldSampler(device hal.Device) (hal.Sampler, error) {
	samplerMu.Lock()
	defer samplerMu.Unlock()

	if sharedSampler != nil {
		return sharedSampler, nil
	}
	if device == nil {
		return nil, ErrNoDevice
	}

	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "flow_field_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create flow field sampler: %w", err)
	}

	sharedSampler = sampler
	vane.Logger().Info("flow field sampler created")
	return sharedSampler, nil
}
