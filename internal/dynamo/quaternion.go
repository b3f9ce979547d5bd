package dynamo

import "math"

// Quaternion holds an orientation as r + i·x + j·y + k·z.
type Quaternion struct {
	R, I, J, K float64
}

func Identity() Quaternion { return Quaternion{R: 1} }

func (q Quaternion) Normalize() Quaternion {
	d := q.R*q.R + q.I*q.I + q.J*q.J + q.K*q.K
	if d < 1e-12 {
		return Identity()
	}
	d = 1 / math.Sqrt(d)
	return Quaternion{q.R * d, q.I * d, q.J * d, q.K * d}
}

func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		R: q.R*o.R - q.I*o.I - q.J*o.J - q.K*o.K,
		I: q.R*o.I + q.I*o.R + q.J*o.K - q.K*o.J,
		J: q.R*o.J + q.J*o.R + q.K*o.I - q.I*o.K,
		K: q.R*o.K + q.K*o.R + q.I*o.J - q.J*o.I,
	}
}

// AddScaledVector advances the orientation by an angular velocity v over scale.
func (q Quaternion) AddScaledVector(v Vector3, scale float64) Quaternion {
	w := Quaternion{0, v.X * scale, v.Y * scale, v.Z * scale}.Mul(q)
	return Quaternion{
		R: q.R + w.R*0.5,
		I: q.I + w.I*0.5,
		J: q.J + w.J*0.5,
		K: q.K + w.K*0.5,
	}
}

// Matrix returns the rotation matrix for a unit quaternion.
func (q Quaternion) Matrix() Matrix3 {
	return Matrix3{
		1 - (2*q.J*q.J + 2*q.K*q.K), 2*q.I*q.J - 2*q.K*q.R, 2*q.I*q.K + 2*q.J*q.R,
		2*q.I*q.J + 2*q.K*q.R, 1 - (2*q.I*q.I + 2*q.K*q.K), 2*q.J*q.K - 2*q.I*q.R,
		2*q.I*q.K - 2*q.J*q.R, 2*q.J*q.K + 2*q.I*q.R, 1 - (2*q.I*q.I + 2*q.J*q.J),
	}
}

// Rotate maps a body-space vector into world space.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	return q.Normalize().Matrix().Transform(v)
}
