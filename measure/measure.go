// Package measure aggregates flow samples taken by simulated vanes into
// derived quantities: mean flow, momentum density, density, velocity, and
// spread statistics.
//
// Derived values are computed asynchronously from sampling, so consumers
// read them through Measured, which distinguishes "not yet computed" from
// a legitimate zero value.
package measure

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/ecoskey/vane"
)

// ErrNotMeasured is returned when reading a measured value before any
// sample pass has computed one.
var ErrNotMeasured = errors.New("measure: value has not been measured yet")

// Sample is a single flow reading taken at a world-space position.
type Sample struct {
	Flow     vane.FlowVector
	Position vane.Vec3
}

// MeanFlow returns the lane-wise average flow over the samples.
// Zero samples average to the zero flow vector.
func MeanFlow(samples []Sample) vane.FlowVector {
	if len(samples) == 0 {
		return vane.FlowVector{}
	}
	var sum vane.FlowVector
	for _, s := range samples {
		sum = sum.Add(s.Flow)
	}
	return sum.Div(float32(len(samples)))
}

// MomentumDensity returns the momentum density of the mean flow.
func MomentumDensity(samples []Sample) vane.Vec3 {
	return MeanFlow(samples).Momentum
}

// Density returns the density of the mean flow.
func Density(samples []Sample) float32 {
	return MeanFlow(samples).Density
}

// Velocity returns the velocity of the mean flow. The mean is taken over
// momentum and density first and the division happens once, so heavy slow
// flow and light fast flow weigh in by momentum rather than speed.
func Velocity(samples []Sample) vane.Vec3 {
	return MeanFlow(samples).Velocity()
}

// Stats holds mean and variance for the scalar quantities of a sample set.
type Stats struct {
	MeanDensity     float64
	VarianceDensity float64
	MeanSpeed       float64
	VarianceSpeed   float64
}

// ComputeStats returns mean and unbiased variance of density and speed
// over the samples. Zero samples yield zero statistics.
func ComputeStats(samples []Sample) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	densities := make([]float64, len(samples))
	speeds := make([]float64, len(samples))
	for i, s := range samples {
		densities[i] = float64(s.Flow.Density)
		speeds[i] = float64(s.Flow.Velocity().Length())
	}

	var out Stats
	out.MeanDensity, out.VarianceDensity = stat.MeanVariance(densities, nil)
	out.MeanSpeed, out.VarianceSpeed = stat.MeanVariance(speeds, nil)
	return out
}

// Measured holds the most recent value computed for one vane measure.
// The zero value reports ErrNotMeasured until the first Set.
//
// Measured is safe for concurrent use: the sampling pipeline writes,
// consumers read.
type Measured[T any] struct {
	mu    sync.RWMutex
	value T
	valid bool
}

// Set stores a freshly computed value.
func (m *Measured[T]) Set(value T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	m.valid = true
}

// Value returns the most recent value, or ErrNotMeasured if no value has
// been computed yet. A "not yet available" condition is reported rather
// than a default value so consumers cannot mistake it for a real reading.
func (m *Measured[T]) Value() (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.valid {
		var zero T
		return zero, ErrNotMeasured
	}
	return m.value, nil
}

// Reset clears the value, returning the measure to the unmeasured state.
func (m *Measured[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	m.value = zero
	m.valid = false
}
