// Package render mirrors flow fields into GPU textures for sampling.
//
// Each prepared field becomes a GPUFlowField: a 3D RGBA16Float texture and
// view sized to the field's grid. Mirrors are keyed by a stable FieldID
// supplied by the asset collaborator; a preparation pass re-uploads the
// field's full texel buffer and reuses the previous texture allocation
// whenever the grid size is unchanged, since reallocation is expensive
// relative to re-upload.
//
// A single process-wide sampler (linear filtering, clamp-to-edge
// addressing) is shared by every mirror; see FieldSampler.
//
// The package receives its GPU device and queue from the host - it never
// creates one. Hosts hand over either raw wgpu HAL handles (NewMirrors) or
// a gpucontext device provider (NewMirrorsFromProvider).
package render
