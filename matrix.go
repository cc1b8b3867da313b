package blit

import "math"

// Matrix3x3 is a 2D affine transformation matrix in row-major order:
//
//	| m[0] m[1] m[2] |   | a  b  tx |
//	| m[3] m[4] m[5] | = | c  d  ty |
//	| m[6] m[7] m[8] |   | 0  0  1  |
//
// Entries are single-precision; the bake pipeline never needs more and the
// per-pixel loops stay in float32 throughout.
type Matrix3x3 [9]float32

// Identity returns the identity matrix.
func Identity() Matrix3x3 {
	return Matrix3x3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation returns a matrix translating by (tx, ty).
func Translation(tx, ty float32) Matrix3x3 {
	return Matrix3x3{
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	}
}

// Rotation returns a matrix rotating about the origin by angle radians,
// counter-clockwise positive.
func Rotation(angle float32) Matrix3x3 {
	sin, cos := math.Sincos(float64(angle))
	s := float32(sin)
	c := float32(cos)
	return Matrix3x3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Scale returns a matrix scaling by (sx, sy) about the origin.
func Scale(sx, sy float32) Matrix3x3 {
	return Matrix3x3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Multiply returns m * other. Transforms compose right to left: the result
// applies other first, then m.
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	a := &m
	b := &other
	return Matrix3x3{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],

		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],

		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}

// TransformPoint applies the matrix to the point (x, y).
func (m Matrix3x3) TransformPoint(x, y float32) (float32, float32) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// Inverse returns the inverse matrix. The second result is false when the
// matrix is singular (|det| < 1e-10), e.g. a zero scale on one axis.
func (m Matrix3x3) Inverse() (Matrix3x3, bool) {
	det := m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])

	if det > -1e-10 && det < 1e-10 {
		return Matrix3x3{}, false
	}
	invDet := 1.0 / det

	return Matrix3x3{
		(m[4]*m[8] - m[5]*m[7]) * invDet,
		(m[2]*m[7] - m[1]*m[8]) * invDet,
		(m[1]*m[5] - m[2]*m[4]) * invDet,

		(m[5]*m[6] - m[3]*m[8]) * invDet,
		(m[0]*m[8] - m[2]*m[6]) * invDet,
		(m[2]*m[3] - m[0]*m[5]) * invDet,

		(m[3]*m[7] - m[4]*m[6]) * invDet,
		(m[1]*m[6] - m[0]*m[7]) * invDet,
		(m[0]*m[4] - m[1]*m[3]) * invDet,
	}, true
}
