// Package geom provides the 3D point type and the rigid coordinate
// transform used when placing detector surfaces into binned grids.
//
// Points are gonum r3 vectors. Transforms are 4x4 row-major rigid
// transforms (rotation + translation), the same layout used for sensor
// poses elsewhere in this organisation's tooling.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a 3D point or displacement.
type Vec = r3.Vec

// Transform is a rigid transform as a 4x4 row-major matrix
// (m00..m03, m10..m13, m20..m23, m30..m33). Only the rotation and
// translation parts are used; the bottom row is implied (0,0,0,1).
type Transform struct {
	M [16]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{M: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Translate returns a pure translation by t.
func Translate(t Vec) Transform {
	return Transform{M: [16]float64{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	}}
}

// RotateZ returns a rotation by angle radians about the z axis.
func RotateZ(angle float64) Transform {
	c, s := math.Cos(angle), math.Sin(angle)
	return Transform{M: [16]float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Apply transforms the point p.
func (t Transform) Apply(p Vec) Vec {
	m := &t.M
	return Vec{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// Mul returns the composition t∘u: applying the result is equivalent to
// applying u first, then t.
func (t Transform) Mul(u Transform) Transform {
	var out Transform
	a, b := &t.M, &u.M
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[row*4+k] * b[k*4+col]
			}
			out.M[row*4+col] = sum
		}
	}
	return out
}

// Inverse returns the inverse transform. Valid only for rigid transforms:
// the rotation block is transposed and the translation negated through it.
func (t Transform) Inverse() Transform {
	m := &t.M
	// R^T
	inv := Transform{M: [16]float64{
		m[0], m[4], m[8], 0,
		m[1], m[5], m[9], 0,
		m[2], m[6], m[10], 0,
		0, 0, 0, 1,
	}}
	// -R^T * translation
	tr := inv.Apply(Vec{X: m[3], Y: m[7], Z: m[11]})
	inv.M[3] = -tr.X
	inv.M[7] = -tr.Y
	inv.M[11] = -tr.Z
	return inv
}
