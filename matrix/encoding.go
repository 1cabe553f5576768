// SPDX-License-Identifier: MIT
// Package matrix: flat buffers and YAML.
//
// Both encodings are column-major:
//   - Slice() yields c0r0, c0r1, …, c1r0, … which is the layout GL-style
//     uniform uploads expect with transpose = false.
//   - YAML encodes a matrix as a sequence of N columns, each a sequence of N
//     scalars: [[c0r0, c0r1], [c1r0, c1r1]].
//
// Decoders validate shape (ErrDimensionMismatch) and finiteness (ErrNaNInf)
// and leave the destination untouched on failure.

package matrix

import (
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmath/scalar"
)

// flatten copies the N² elements of m in column-major order.
func flatten[S scalar.Float, E elementer[S]](m E) []S {
	n := m.Dim()
	out := make([]S, 0, n*n)
	var c, r int
	for c = 0; c < n; c++ {
		for r = 0; r < n; r++ {
			out = append(out, m.Elem(c, r))
		}
	}

	return out
}

// columnsOf splits a flat column-major buffer into n columns.
func columnsOf[S scalar.Float](m []S, n int) [][]S {
	cols := make([][]S, n)
	for j := range cols {
		cols[j] = m[j*n : (j+1)*n : (j+1)*n]
	}

	return cols
}

// checkFlat validates a flat buffer for an n×n matrix.
func checkFlat[S scalar.Float](xs []S, n int) error {
	if err := ValidateLen(len(xs), n); err != nil {
		return matrixErrorf(opFromSlice, err)
	}
	if err := ValidateFinite(xs...); err != nil {
		return matrixErrorf(opFromSlice, err)
	}

	return nil
}

// decodeColumns reads an n×n column sequence from node and returns it
// flattened, column-major.
func decodeColumns[S scalar.Float](node *yaml.Node, n int) ([]S, error) {
	var cols [][]S
	if err := node.Decode(&cols); err != nil {
		return nil, matrixErrorf(opYAML, err)
	}
	if err := ValidateColumns(cols, n); err != nil {
		return nil, matrixErrorf(opYAML, err)
	}
	flat := make([]S, 0, n*n)
	for _, c := range cols {
		flat = append(flat, c...)
	}
	if err := ValidateFinite(flat...); err != nil {
		return nil, matrixErrorf(opYAML, err)
	}

	return flat, nil
}

// ---------- Matrix2 ----------

// Slice returns a fresh column-major copy of the 4 elements.
func (m Matrix2[S]) Slice() []S { return flatten[S](m) }

// Matrix2FromSlice builds a matrix from 4 column-major scalars.
func Matrix2FromSlice[S scalar.Float](xs []S) (Matrix2[S], error) {
	if err := checkFlat(xs, 2); err != nil {
		return Matrix2[S]{}, err
	}

	return NewMatrix2(xs[0], xs[1], xs[2], xs[3]), nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Matrix2[S]) MarshalYAML() (interface{}, error) {
	return columnsOf(m.Slice(), 2), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Matrix2[S]) UnmarshalYAML(node *yaml.Node) error {
	flat, err := decodeColumns[S](node, 2)
	if err != nil {
		return err
	}
	*m, err = Matrix2FromSlice(flat)

	return err
}

// ---------- Matrix3 ----------

// Slice returns a fresh column-major copy of the 9 elements.
func (m Matrix3[S]) Slice() []S { return flatten[S](m) }

// Matrix3FromSlice builds a matrix from 9 column-major scalars.
func Matrix3FromSlice[S scalar.Float](xs []S) (Matrix3[S], error) {
	if err := checkFlat(xs, 3); err != nil {
		return Matrix3[S]{}, err
	}
	var m Matrix3[S]
	for j := range m {
		copy(m[j][:], xs[j*3:])
	}

	return m, nil
}

func (m Matrix3[S]) MarshalYAML() (interface{}, error) {
	return columnsOf(m.Slice(), 3), nil
}

func (m *Matrix3[S]) UnmarshalYAML(node *yaml.Node) error {
	flat, err := decodeColumns[S](node, 3)
	if err != nil {
		return err
	}
	*m, err = Matrix3FromSlice(flat)

	return err
}

// ---------- Matrix4 ----------

// Slice returns a fresh column-major copy of the 16 elements.
func (m Matrix4[S]) Slice() []S { return flatten[S](m) }

// Matrix4FromSlice builds a matrix from 16 column-major scalars.
func Matrix4FromSlice[S scalar.Float](xs []S) (Matrix4[S], error) {
	if err := checkFlat(xs, 4); err != nil {
		return Matrix4[S]{}, err
	}
	var m Matrix4[S]
	for j := range m {
		copy(m[j][:], xs[j*4:])
	}

	return m, nil
}

func (m Matrix4[S]) MarshalYAML() (interface{}, error) {
	return columnsOf(m.Slice(), 4), nil
}

func (m *Matrix4[S]) UnmarshalYAML(node *yaml.Node) error {
	flat, err := decodeColumns[S](node, 4)
	if err != nil {
		return err
	}
	*m, err = Matrix4FromSlice(flat)

	return err
}
