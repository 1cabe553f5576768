// SPDX-License-Identifier: MIT
// Package matrix: rotation, scale, translation and view constructors.
//
// Conventions:
//   - Angles are radians, given as plain scalars.
//   - Right-handed coordinates; positive angles rotate counter-clockwise when
//     looking down the axis towards the origin.
//   - Matrices act on column vectors: p' = M·p.
//   - Trig is evaluated through scalar.SinCos, so float32 callers get the
//     float64 result rounded once.

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix2FromAngle returns the 2D rotation by theta radians.
func Matrix2FromAngle[S scalar.Float](theta S) Matrix2[S] {
	s, c := scalar.SinCos(theta)
	return NewMatrix2(
		c, s,
		-s, c,
	)
}

// Matrix2LookAt returns the matrix whose rows are up and dir, mapping dir
// onto the second axis when both are orthonormal.
func Matrix2LookAt[S scalar.Float](dir, up vector.Vector2[S]) Matrix2[S] {
	return Matrix2FromCols(up, dir).Transpose()
}

// Matrix3FromAngleX returns the rotation by theta around the x axis (pitch).
func Matrix3FromAngleX[S scalar.Float](theta S) Matrix3[S] {
	s, c := scalar.SinCos(theta)
	return NewMatrix3(
		1, 0, 0,
		0, c, s,
		0, -s, c,
	)
}

// Matrix3FromAngleY returns the rotation by theta around the y axis (yaw).
func Matrix3FromAngleY[S scalar.Float](theta S) Matrix3[S] {
	s, c := scalar.SinCos(theta)
	return NewMatrix3(
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	)
}

// Matrix3FromAngleZ returns the rotation by theta around the z axis (roll).
func Matrix3FromAngleZ[S scalar.Float](theta S) Matrix3[S] {
	s, c := scalar.SinCos(theta)
	return NewMatrix3(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// Matrix3FromEuler composes rotations around x (pitch), y (yaw) and z (roll):
// the result equals FromAngleZ(z)·FromAngleY(y)·FromAngleX(x), so x is
// applied first.
func Matrix3FromEuler[S scalar.Float](x, y, z S) Matrix3[S] {
	sx, cx := scalar.SinCos(x)
	sy, cy := scalar.SinCos(y)
	sz, cz := scalar.SinCos(z)

	return NewMatrix3(
		cy*cz, cy*sz, -sy,
		-cx*sz+sx*sy*cz, cx*cz+sx*sy*sz, sx*cy,
		sx*sz+cx*sy*cz, -sx*cz+cx*sy*sz, cx*cy,
	)
}

// Matrix3FromAxisAngle returns the rotation by angle around axis
// (Rodrigues' formula). axis must be unit length; it is not normalized here.
func Matrix3FromAxisAngle[S scalar.Float](axis vector.Vector3[S], angle S) Matrix3[S] {
	s, c := scalar.SinCos(angle)
	k := 1 - c
	x, y, z := axis[0], axis[1], axis[2]

	return NewMatrix3(
		k*x*x+c, k*x*y+s*z, k*x*z-s*y,
		k*x*y-s*z, k*y*y+c, k*y*z+s*x,
		k*x*z+s*y, k*y*z-s*x, k*z*z+c,
	)
}

// Matrix3LookAt returns the rotation whose rows are the orthonormal basis
// (side, up', dir) built from dir and up. The result maps dir onto +z.
func Matrix3LookAt[S scalar.Float](dir, up vector.Vector3[S]) Matrix3[S] {
	d := dir.Normalize()
	side := up.Cross(d).Normalize()
	u := d.Cross(side).Normalize()

	return Matrix3FromCols(side, u, d).Transpose()
}

// Matrix4FromTranslation returns the affine translation by t.
func Matrix4FromTranslation[S scalar.Float](t vector.Vector3[S]) Matrix4[S] {
	m := Identity4[S]()
	m[3] = t.Extend(1)

	return m
}

// Matrix4FromScale returns the affine non-uniform scale diag(s, 1).
func Matrix4FromScale[S scalar.Float](s vector.Vector3[S]) Matrix4[S] {
	return Matrix4FromDiagonal(s.Extend(1))
}

// Matrix4LookAt returns a right-handed view matrix: the camera at eye looks
// at center with up as the approximate up direction, and eye maps to the
// origin looking down -z.
func Matrix4LookAt[S scalar.Float](eye, center, up vector.Vector3[S]) Matrix4[S] {
	f := center.SubV(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return NewMatrix4(
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-eye.Dot(s), -eye.Dot(u), eye.Dot(f), 1,
	)
}
