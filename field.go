package vane

import (
	"encoding/binary"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/x448/float16"
)

// texelLanes is the number of half-precision lanes per texel: three
// momentum density components plus density.
const texelLanes = 4

// TexelBytes is the compressed size of one texel: 4 lanes x 2 bytes.
const TexelBytes = texelLanes * 2

// ErrSessionOpen is returned by Modify when an edit session is already
// open on the field. Two live scratch buffers for one field would silently
// diverge and lose writes on flush, so a second session is refused rather
// than queued.
var ErrSessionOpen = errors.New("vane: field already has an open edit session")

// FlowField is compressed volumetric flow storage: fixed grid extents and
// a flat array of texels, each texel holding a FlowVector encoded as four
// half-precision (16-bit float) lanes.
//
// A field is immutable except through an edit session opened with Modify.
// The texel array always holds exactly Size().Count() texels; it is never
// resized in place.
type FlowField struct {
	label string
	size  Size3

	// texels holds texelLanes half-float bit patterns per grid cell,
	// laid out by Size3.index.
	texels []uint16

	// sessionMu enforces the single-writer session discipline.
	sessionMu sync.Mutex

	// generation counts completed session flushes. It is the
	// change-notification signal consumed by asset collaborators.
	generation atomic.Uint64
}

// Zeroed allocates a field of the given size with every texel encoding the
// zero flow vector. Any size whose texel count fits in int is valid (see
// Size3.Count); a size with a zero dimension yields an empty texel array.
func Zeroed(size Size3) *FlowField {
	// The half-precision encoding of 0.0 is all-zero bits, so a fresh
	// slice is already a zero-filled field.
	return &FlowField{
		size:   size,
		texels: make([]uint16, texelLanes*size.Count()),
	}
}

// FromGenerator allocates a field of the given size and fills it from the
// generator through a single edit session.
func FromGenerator(size Size3, gen Generator) *FlowField {
	f := Zeroed(size)
	// The field is not shared yet, so the session cannot fail to open
	// and the fill callback never errors.
	_ = f.Modify(func(s *EditSession) error {
		s.FillFromGenerator(gen)
		return nil
	})
	return f
}

// WithLabel sets the field's descriptive label and returns the field for
// chaining. The label is optional and purely descriptive; it also names
// the GPU resources mirrored from this field.
func (f *FlowField) WithLabel(label string) *FlowField {
	f.label = label
	return f
}

// Label returns the field's descriptive label, or "" if none was set.
func (f *FlowField) Label() string {
	return f.label
}

// Size returns the field's grid extents.
func (f *FlowField) Size() Size3 {
	return f.size
}

// Generation returns the number of edit sessions that have flushed into
// this field. Collaborators compare generations across frames to decide
// when the GPU mirror must be re-synchronized.
func (f *FlowField) Generation() uint64 {
	return f.generation.Load()
}

// TexelBytes returns the compressed texel buffer as little-endian bytes,
// laid out as Size().Count() texels of TexelBytes bytes each. The result
// is a snapshot; it does not alias field storage.
//
// TexelBytes must not be called while an edit session is open.
func (f *FlowField) TexelBytes() []byte {
	buf := make([]byte, 2*len(f.texels))
	for i, bits := range f.texels {
		binary.LittleEndian.PutUint16(buf[2*i:], bits)
	}
	return buf
}

// Modify opens an edit session over the field and runs fn with it.
//
// The session decompresses the entire texel array into a full-precision
// scratch buffer; all reads and writes inside fn act on that buffer at
// full precision. When fn returns - normally, by early return, or by
// panic - the scratch buffer is recompressed into field storage and the
// field's generation advances. The flush is a scoped-resource guarantee,
// not an optimization: it runs on every exit path.
//
// At most one session may be open per field. Modify returns ErrSessionOpen
// if another session is live. The *EditSession is only valid inside fn;
// a retained session fails fast on use after Modify returns.
func (f *FlowField) Modify(fn func(*EditSession) error) error {
	if !f.sessionMu.TryLock() {
		return ErrSessionOpen
	}

	scratch := make([]FlowVector, f.size.Count())
	for i := range scratch {
		scratch[i] = decodeTexel(f.texels[texelLanes*i:])
	}
	s := &EditSession{size: f.size, scratch: scratch}

	defer func() {
		for i, v := range s.scratch {
			encodeTexel(f.texels[texelLanes*i:], v)
		}
		s.scratch = nil
		f.generation.Add(1)
		f.sessionMu.Unlock()
	}()

	return fn(s)
}

func decodeTexel(lanes []uint16) FlowVector {
	return FlowVector{
		Momentum: Vec3{
			X: float16.Frombits(lanes[0]).Float32(),
			Y: float16.Frombits(lanes[1]).Float32(),
			Z: float16.Frombits(lanes[2]).Float32(),
		},
		Density: float16.Frombits(lanes[3]).Float32(),
	}
}

func encodeTexel(lanes []uint16, v FlowVector) {
	lanes[0] = float16.Fromfloat32(v.Momentum.X).Bits()
	lanes[1] = float16.Fromfloat32(v.Momentum.Y).Bits()
	lanes[2] = float16.Fromfloat32(v.Momentum.Z).Bits()
	lanes[3] = float16.Fromfloat32(v.Density).Bits()
}

// EditSession grants exclusive decompressed read/write access to one
// field's storage for the duration of a Modify callback.
type EditSession struct {
	size    Size3
	scratch []FlowVector
}

// Size returns the grid extents of the field under edit.
func (s *EditSession) Size() Size3 {
	return s.size
}

// Get returns the flow vector at the given coordinate.
// Out-of-range coordinates panic.
func (s *EditSession) Get(c Coord) FlowVector {
	return s.scratch[s.size.index(c)]
}

// GetMut returns a pointer to the flow vector at the given coordinate for
// in-place mutation. Out-of-range coordinates panic.
func (s *EditSession) GetMut(c Coord) *FlowVector {
	return &s.scratch[s.size.index(c)]
}

// Set stores a flow vector at the given coordinate.
// Out-of-range coordinates panic.
func (s *EditSession) Set(c Coord, v FlowVector) {
	s.scratch[s.size.index(c)] = v
}

// FillFromGenerator visits every grid coordinate exactly once and stores
// the generator's output for the coordinate's centered world-space sample
// position: coord + 0.5 - size/2 per axis, in grid units.
//
// Coordinates are visited sequentially, so stateful generators need no
// internal synchronization. An empty grid is a no-op.
func (s *EditSession) FillFromGenerator(gen Generator) {
	center := s.size.Center()
	for z := uint32(0); z < s.size.Z; z++ {
		for y := uint32(0); y < s.size.Y; y++ {
			for x := uint32(0); x < s.size.X; x++ {
				pos := Vec3{
					X: float32(x) + 0.5,
					Y: float32(y) + 0.5,
					Z: float32(z) + 0.5,
				}.Sub(center)
				s.Set(Coord{X: x, Y: y, Z: z}, gen.Generate(pos))
			}
		}
	}
}
