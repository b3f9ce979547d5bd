package dynamo

import "math"

// Matrix3 is row-major.
type Matrix3 [9]float64

func Diagonal(a, b, c float64) Matrix3 {
	return Matrix3{a, 0, 0, 0, b, 0, 0, 0, c}
}

// InertiaCoeffs builds a diagonal inertia tensor.
func InertiaCoeffs(ix, iy, iz float64) Matrix3 { return Diagonal(ix, iy, iz) }

// BlockInertia is the inertia tensor of a solid box with the given half sizes.
func BlockInertia(halfSize Vector3, mass float64) Matrix3 {
	sq := Vector3{halfSize.X * halfSize.X, halfSize.Y * halfSize.Y, halfSize.Z * halfSize.Z}
	return InertiaCoeffs(
		0.3*mass*(sq.Y+sq.Z),
		0.3*mass*(sq.X+sq.Z),
		0.3*mass*(sq.X+sq.Y),
	)
}

// SphereInertia is the inertia tensor of a solid sphere.
func SphereInertia(radius, mass float64) Matrix3 {
	c := 0.4 * mass * radius * radius
	return InertiaCoeffs(c, c, c)
}

func (m Matrix3) Transform(v Vector3) Vector3 {
	return Vector3{
		v.X*m[0] + v.Y*m[1] + v.Z*m[2],
		v.X*m[3] + v.Y*m[4] + v.Z*m[5],
		v.X*m[6] + v.Y*m[7] + v.Z*m[8],
	}
}

func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3]*o[col] + m[row*3+1]*o[3+col] + m[row*3+2]*o[6+col]
		}
	}
	return r
}

func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Inverse returns the inverse, or the zero matrix when m is singular.
func (m Matrix3) Inverse() Matrix3 {
	t4 := m[0] * m[4]
	t6 := m[0] * m[5]
	t8 := m[1] * m[3]
	t10 := m[2] * m[3]
	t12 := m[1] * m[6]
	t14 := m[2] * m[6]

	det := t4*m[8] - t6*m[7] - t8*m[8] + t10*m[7] + t12*m[5] - t14*m[4]
	if math.Abs(det) < 1e-12 {
		return Matrix3{}
	}
	inv := 1 / det

	return Matrix3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		-(m[1]*m[8] - m[2]*m[7]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		-(m[3]*m[8] - m[5]*m[6]) * inv,
		(m[0]*m[8] - t14) * inv,
		-(t6 - t10) * inv,
		(m[3]*m[7] - m[4]*m[6]) * inv,
		-(m[0]*m[7] - t12) * inv,
		(t4 - t8) * inv,
	}
}
