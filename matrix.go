package vane

import "math"

// Affine3 represents a 3D affine transformation.
// It uses a 3x4 matrix in row-major order:
//
//	| XX  XY  XZ  TX |
//	| YX  YY  YZ  TY |
//	| ZX  ZY  ZZ  TZ |
//
// This represents the transformation:
//
//	x' = XX*x + XY*y + XZ*z + TX
//	y' = YX*x + YY*y + YZ*z + TY
//	z' = ZX*x + ZY*y + ZZ*z + TZ
type Affine3 struct {
	XX, XY, XZ, TX float32
	YX, YY, YZ, TY float32
	ZX, ZY, ZZ, TZ float32
}

// Identity3 returns the identity transformation.
func Identity3() Affine3 {
	return Affine3{
		XX: 1, YY: 1, ZZ: 1,
	}
}

// Translate3 creates a translation transform.
func Translate3(v Vec3) Affine3 {
	return Affine3{
		XX: 1, YY: 1, ZZ: 1,
		TX: v.X, TY: v.Y, TZ: v.Z,
	}
}

// Scale3 creates a per-axis scaling transform.
func Scale3(v Vec3) Affine3 {
	return Affine3{
		XX: v.X, YY: v.Y, ZZ: v.Z,
	}
}

// RotateX creates a rotation about the X axis (angle in radians).
func RotateX(angle float32) Affine3 {
	sin, cos := sincos32(angle)
	return Affine3{
		XX: 1,
		YY: cos, YZ: -sin,
		ZY: sin, ZZ: cos,
	}
}

// RotateY creates a rotation about the Y axis (angle in radians).
func RotateY(angle float32) Affine3 {
	sin, cos := sincos32(angle)
	return Affine3{
		XX: cos, XZ: sin,
		YY: 1,
		ZX: -sin, ZZ: cos,
	}
}

// RotateZ creates a rotation about the Z axis (angle in radians).
func RotateZ(angle float32) Affine3 {
	sin, cos := sincos32(angle)
	return Affine3{
		XX: cos, XY: -sin,
		YX: sin, YY: cos,
		ZZ: 1,
	}
}

// Multiply multiplies two transforms (m * other), so that applying the
// result is equivalent to applying other first, then m.
func (m Affine3) Multiply(other Affine3) Affine3 {
	return Affine3{
		XX: m.XX*other.XX + m.XY*other.YX + m.XZ*other.ZX,
		XY: m.XX*other.XY + m.XY*other.YY + m.XZ*other.ZY,
		XZ: m.XX*other.XZ + m.XY*other.YZ + m.XZ*other.ZZ,
		TX: m.XX*other.TX + m.XY*other.TY + m.XZ*other.TZ + m.TX,

		YX: m.YX*other.XX + m.YY*other.YX + m.YZ*other.ZX,
		YY: m.YX*other.XY + m.YY*other.YY + m.YZ*other.ZY,
		YZ: m.YX*other.XZ + m.YY*other.YZ + m.YZ*other.ZZ,
		TY: m.YX*other.TX + m.YY*other.TY + m.YZ*other.TZ + m.TY,

		ZX: m.ZX*other.XX + m.ZY*other.YX + m.ZZ*other.ZX,
		ZY: m.ZX*other.XY + m.ZY*other.YY + m.ZZ*other.ZY,
		ZZ: m.ZX*other.XZ + m.ZY*other.YZ + m.ZZ*other.ZZ,
		TZ: m.ZX*other.TX + m.ZY*other.TY + m.ZZ*other.TZ + m.TZ,
	}
}

// TransformPoint applies the transformation to a point, including
// translation.
func (m Affine3) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m.XX*p.X + m.XY*p.Y + m.XZ*p.Z + m.TX,
		Y: m.YX*p.X + m.YY*p.Y + m.YZ*p.Z + m.TY,
		Z: m.ZX*p.X + m.ZY*p.Y + m.ZZ*p.Z + m.TZ,
	}
}

// TransformVector applies the transformation to a direction vector
// (no translation).
func (m Affine3) TransformVector(p Vec3) Vec3 {
	return Vec3{
		X: m.XX*p.X + m.XY*p.Y + m.XZ*p.Z,
		Y: m.YX*p.X + m.YY*p.Y + m.YZ*p.Z,
		Z: m.ZX*p.X + m.ZY*p.Y + m.ZZ*p.Z,
	}
}

// Invert returns the inverse transform.
// Returns the identity transform if the linear part is not invertible.
func (m Affine3) Invert() Affine3 {
	det := m.XX*(m.YY*m.ZZ-m.YZ*m.ZY) -
		m.XY*(m.YX*m.ZZ-m.YZ*m.ZX) +
		m.XZ*(m.YX*m.ZY-m.YY*m.ZX)
	if abs32(det) < 1e-10 {
		return Identity3()
	}

	invDet := 1.0 / det
	inv := Affine3{
		XX: (m.YY*m.ZZ - m.YZ*m.ZY) * invDet,
		XY: (m.XZ*m.ZY - m.XY*m.ZZ) * invDet,
		XZ: (m.XY*m.YZ - m.XZ*m.YY) * invDet,

		YX: (m.YZ*m.ZX - m.YX*m.ZZ) * invDet,
		YY: (m.XX*m.ZZ - m.XZ*m.ZX) * invDet,
		YZ: (m.XZ*m.YX - m.XX*m.YZ) * invDet,

		ZX: (m.YX*m.ZY - m.YY*m.ZX) * invDet,
		ZY: (m.XY*m.ZX - m.XX*m.ZY) * invDet,
		ZZ: (m.XX*m.YY - m.XY*m.YX) * invDet,
	}

	// Inverse translation: -inv(L) * t.
	inv.TX = -(inv.XX*m.TX + inv.XY*m.TY + inv.XZ*m.TZ)
	inv.TY = -(inv.YX*m.TX + inv.YY*m.TY + inv.YZ*m.TZ)
	inv.TZ = -(inv.ZX*m.TX + inv.ZY*m.TY + inv.ZZ*m.TZ)
	return inv
}

// IsIdentity returns true if the transform is the identity.
func (m Affine3) IsIdentity() bool {
	return m == Identity3()
}

func sincos32(angle float32) (sin, cos float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}
