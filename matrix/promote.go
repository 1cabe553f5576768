// SPDX-License-Identifier: MIT

package matrix

// ToMatrix3 embeds m in the upper-left corner of a 3×3 identity.
func (m Matrix2[S]) ToMatrix3() Matrix3[S] {
	return NewMatrix3(
		m[0][0], m[0][1], 0,
		m[1][0], m[1][1], 0,
		0, 0, 1,
	)
}

// ToMatrix4 embeds m in the upper-left corner of a 4×4 identity.
func (m Matrix2[S]) ToMatrix4() Matrix4[S] {
	return m.ToMatrix3().ToMatrix4()
}

// ToMatrix4 embeds m in the upper-left corner of a 4×4 identity, turning a
// linear map into an affine one with zero translation.
func (m Matrix3[S]) ToMatrix4() Matrix4[S] {
	return Matrix4FromCols(
		m[0].Extend(0),
		m[1].Extend(0),
		m[2].Extend(0),
		Identity4[S]()[3],
	)
}

// Truncate returns the upper-left 3×3 block, dropping the translation
// column and the projective row.
func (m Matrix4[S]) Truncate() Matrix3[S] {
	return Matrix3FromCols(m[0].Truncate(), m[1].Truncate(), m[2].Truncate())
}
