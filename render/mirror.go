package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/ecoskey/vane"
)

// Mirror errors.
var (
	// ErrNoDevice is returned when a registry or sampler is asked to
	// allocate GPU resources without a device or queue.
	ErrNoDevice = errors.New("render: no GPU device available")

	// ErrDegenerateExtent is returned when preparing a field whose grid
	// has a zero dimension. Backend behavior for zero-extent textures is
	// undefined, so such fields are rejected at this boundary and keep
	// whatever mirror was previously prepared.
	ErrDegenerateExtent = errors.New("render: flow field grid has a zero dimension")
)

// MirrorMissingError is returned by Get when no mirror has been prepared
// yet for a field identity. The caller may prepare and retry.
type MirrorMissingError struct {
	ID FieldID
}

func (e MirrorMissingError) Error() string {
	return fmt.Sprintf("render: no prepared mirror for flow field %d", uint64(e.ID))
}

// FieldID is the stable identity of a flow field, assigned by the asset
// collaborator that owns field lifecycles.
type FieldID uint64

// fieldTextureFormat is the fixed pixel format of every field texture:
// 4 channels x 16-bit float, matching the field's compressed texel layout.
const fieldTextureFormat = gputypes.TextureFormatRGBA16Float

// GPUFlowField is the render-side mirror of one flow field: a 3D texture
// and view sized to the field's grid, refreshed by full re-upload on every
// preparation pass.
type GPUFlowField struct {
	label string
	size  vane.Size3

	texture hal.Texture
	view    hal.TextureView
}

// Label returns the label of the source field at the last preparation pass.
func (g *GPUFlowField) Label() string {
	return g.label
}

// Size returns the grid extents of the mirrored field.
func (g *GPUFlowField) Size() vane.Size3 {
	return g.size
}

// Texture returns the mirror's 3D texture.
func (g *GPUFlowField) Texture() hal.Texture {
	return g.texture
}

// TextureView returns the view over the mirror's texture.
func (g *GPUFlowField) TextureView() hal.TextureView {
	return g.view
}

// Mirrors is an identity-keyed registry of GPU flow field mirrors.
//
// Prepare synchronizes one field per call; the registry lock makes passes
// for the same identity strictly sequential. A pass either fully completes
// (mirror installed, texture uploaded) or fully fails (prior mirror, if
// any, left untouched).
type Mirrors struct {
	mu      sync.Mutex
	device  hal.Device
	queue   hal.Queue
	entries map[FieldID]*GPUFlowField
}

// NewMirrors creates a mirror registry over the host's HAL device and
// queue. The registry borrows the handles; it never destroys the device.
func NewMirrors(device hal.Device, queue hal.Queue) *Mirrors {
	return &Mirrors{
		device:  device,
		queue:   queue,
		entries: make(map[FieldID]*GPUFlowField),
	}
}

// Prepare synchronizes the GPU mirror for a field identity from the
// field's current contents. It is driven by the asset collaborator's
// change notifications: edits made after a notification are not visible
// on the GPU until the next Prepare.
//
// If a mirror already exists for id and its grid size matches, its texture
// and view are reused; otherwise a fresh texture is allocated and the
// replaced one released. In both cases the field's full texel buffer is
// re-uploaded - there is no partial upload path.
//
// On failure the previously prepared mirror (if any) stays installed and
// the caller may retry on a later pass.
func (m *Mirrors) Prepare(id FieldID, field *vane.FlowField) (*GPUFlowField, error) {
	if m.device == nil || m.queue == nil {
		return nil, ErrNoDevice
	}

	size := field.Size()
	if size.IsEmpty() {
		vane.Logger().Warn("flow field grid has a zero dimension; mirror not prepared",
			"field", field.Label(), "id", uint64(id))
		return nil, ErrDegenerateExtent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	extent := hal.Extent3D{
		Width:              size.X,
		Height:             size.Y,
		DepthOrArrayLayers: size.Z,
	}

	prev := m.entries[id]
	reused := prev != nil && prev.size == size

	var texture hal.Texture
	var view hal.TextureView
	if reused {
		// Same extent: reallocation is expensive relative to re-upload,
		// so the previous allocation carries over to this pass.
		texture = prev.texture
		view = prev.view
		vane.Logger().Debug("reusing flow field texture",
			"field", field.Label(), "id", uint64(id))
	} else {
		var err error
		texture, view, err = m.createFieldTexture(field.Label(), extent)
		if err != nil {
			return nil, err
		}
	}

	err := m.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  texture,
			MipLevel: 0,
		},
		field.TexelBytes(),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  size.X * vane.TexelBytes,
			RowsPerImage: size.Y,
		},
		&extent,
	)
	if err != nil {
		if !reused {
			m.device.DestroyTextureView(view)
			m.device.DestroyTexture(texture)
		}
		return nil, fmt.Errorf("render: upload flow field texels: %w", err)
	}

	// The replaced allocation is released only once its successor is live.
	if prev != nil && !reused {
		m.device.DestroyTextureView(prev.view)
		m.device.DestroyTexture(prev.texture)
	}

	mirror := &GPUFlowField{
		label:   field.Label(),
		size:    size,
		texture: texture,
		view:    view,
	}
	m.entries[id] = mirror
	return mirror, nil
}

// createFieldTexture allocates the texture and view for one mirror.
// On view creation failure the texture is destroyed so no half-built
// resource pair escapes.
func (m *Mirrors) createFieldTexture(label string, extent hal.Extent3D) (hal.Texture, hal.TextureView, error) {
	texture, err := m.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension3D,
		Format:        fieldTextureFormat,
		Usage: gputypes.TextureUsageCopySrc |
			gputypes.TextureUsageCopyDst |
			gputypes.TextureUsageTextureBinding |
			gputypes.TextureUsageStorageBinding,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("render: create flow field texture: %w", err)
	}

	viewLabel := ""
	if label != "" {
		viewLabel = label + "_view"
	}
	view, err := m.device.CreateTextureView(texture, &hal.TextureViewDescriptor{
		Label:         viewLabel,
		Format:        fieldTextureFormat,
		Dimension:     gputypes.TextureViewDimension3D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		m.device.DestroyTexture(texture)
		return nil, nil, fmt.Errorf("render: create flow field texture view: %w", err)
	}
	return texture, view, nil
}

// Get returns the prepared mirror for a field identity.
// Returns MirrorMissingError if no preparation pass has completed for id.
func (m *Mirrors) Get(id FieldID) (*GPUFlowField, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mirror, ok := m.entries[id]
	if !ok {
		return nil, MirrorMissingError{ID: id}
	}
	return mirror, nil
}

// Discard releases the mirror for a field identity, if one exists.
// Call this when the asset collaborator removes the field.
func (m *Mirrors) Discard(id FieldID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mirror, ok := m.entries[id]
	if !ok {
		return
	}
	delete(m.entries, id)
	m.device.DestroyTextureView(mirror.view)
	m.device.DestroyTexture(mirror.texture)
}

// Len returns the number of prepared mirrors.
func (m *Mirrors) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close releases every prepared mirror. The registry remains usable;
// subsequent Prepare calls allocate fresh textures.
func (m *Mirrors) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, mirror := range m.entries {
		m.device.DestroyTextureView(mirror.view)
		m.device.DestroyTexture(mirror.texture)
		delete(m.entries, id)
	}
}
