package vane

// FlowVector describes the flow of a fluid at a given location.
//
// A FlowVector is comprised of two parts:
//   - momentum density (units: kg m/s m^-3)
//   - density          (units: kg     m^-3)
//
// This may seem like an odd choice compared to just tracking the fluid
// velocity, but it provides a fuller view of how the fluid is acting, and
// it is necessary because of the way flows are layered: adding one velocity
// to another makes no sense in practice - what if the amount of fluid
// flowing in direction A is much greater than that in direction B?
// Tracking momentum also makes it much more natural to calculate the force
// a fluid exerts on objects and surfaces.
//
// The zero value is the distinguished zero flow vector.
type FlowVector struct {
	// Momentum is the momentum density of the flow (kg m/s m^-3).
	Momentum Vec3

	// Density is the fluid density (kg m^-3).
	Density float32
}

// NewFlowVector returns a FlowVector with the given momentum density and
// density. This is the canonical constructor.
func NewFlowVector(momentumDensity Vec3, density float32) FlowVector {
	return FlowVector{Momentum: momentumDensity, Density: density}
}

// FromVelocity creates a FlowVector given the fluid's velocity and density.
//
// NewFlowVector should be preferred in most cases since it better
// represents how the fluid will interact with objects.
func FromVelocity(velocity Vec3, density float32) FlowVector {
	return NewFlowVector(velocity.Mul(density), density)
}

// Velocity returns the velocity of the fluid flow, equivalent to
// Momentum / Density (units: m/s).
//
// The division is unguarded: a zero density yields non-finite components
// under IEEE float semantics. This is part of the contract, not a defect.
func (v FlowVector) Velocity() Vec3 {
	return v.Momentum.Div(v.Density)
}

// Neg returns the negation of the flow vector, all four lanes included.
func (v FlowVector) Neg() FlowVector {
	return FlowVector{Momentum: v.Momentum.Neg(), Density: -v.Density}
}

// Add returns the lane-wise sum of two flow vectors.
func (v FlowVector) Add(w FlowVector) FlowVector {
	return FlowVector{
		Momentum: v.Momentum.Add(w.Momentum),
		Density:  v.Density + w.Density,
	}
}

// Sub returns the lane-wise difference of two flow vectors.
func (v FlowVector) Sub(w FlowVector) FlowVector {
	return FlowVector{
		Momentum: v.Momentum.Sub(w.Momentum),
		Density:  v.Density - w.Density,
	}
}

// Scale returns the flow vector with all four lanes multiplied by s.
func (v FlowVector) Scale(s float32) FlowVector {
	return FlowVector{Momentum: v.Momentum.Mul(s), Density: v.Density * s}
}

// Div returns the flow vector with all four lanes divided by s.
func (v FlowVector) Div(s float32) FlowVector {
	return FlowVector{Momentum: v.Momentum.Div(s), Density: v.Density / s}
}

// Approx reports whether two flow vectors are equal within epsilon per lane.
func (v FlowVector) Approx(w FlowVector, epsilon float32) bool {
	return v.Momentum.Approx(w.Momentum, epsilon) &&
		abs32(v.Density-w.Density) <= epsilon
}

// SumFlowVectors returns the lane-wise sum of all given flow vectors.
// An empty input sums to the zero vector.
func SumFlowVectors(vectors ...FlowVector) FlowVector {
	var sum FlowVector
	for _, v := range vectors {
		sum = sum.Add(v)
	}
	return sum
}
