// SPDX-License-Identifier: MIT
// Package converters: golang.org/x/image adapters.
//
// Layout:
//   - f32.Mat3 / f64.Mat3: m[3*r + c] is row r, column c (row-major).
//   - f32.Mat4 / f64.Mat4: m[4*r + c].
//   - f32.Aff3 / f64.Aff3: the top two rows of a 3×3 affine matrix whose
//     implicit third row is (0, 0, 1).
//   - Vec2/3/4 share the [N]S layout with the vector package and convert
//     directly.

package converters

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// ---------- generic row-major kernels ----------

func rowMajor3[S scalar.Float](m matrix.Matrix3[S]) (out [9]S) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = m[c][r]
		}
	}

	return out
}

func fromRowMajor3[S scalar.Float](a [9]S) (m matrix.Matrix3[S]) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[c][r] = a[3*r+c]
		}
	}

	return m
}

func rowMajor4[S scalar.Float](m matrix.Matrix4[S]) (out [16]S) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = m[c][r]
		}
	}

	return out
}

func fromRowMajor4[S scalar.Float](a [16]S) (m matrix.Matrix4[S]) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c][r] = a[4*r+c]
		}
	}

	return m
}

// affine extracts the top two rows of an affine 3×3 matrix.
func affine[S scalar.Float](m matrix.Matrix3[S]) ([6]S, error) {
	if m[0][2] != 0 || m[1][2] != 0 || m[2][2] != 1 {
		return [6]S{}, fmt.Errorf("bottom row (%v, %v, %v): %w", m[0][2], m[1][2], m[2][2], ErrNotAffine)
	}
	rm := rowMajor3(m)

	return [6]S(rm[:6]), nil
}

func fromAffine[S scalar.Float](a [6]S) matrix.Matrix3[S] {
	return matrix.NewMatrix3(
		a[0], a[3], 0,
		a[1], a[4], 0,
		a[2], a[5], 1,
	)
}

// ---------- float32 ----------

// Matrix3ToF32 returns m in f32 row-major order.
func Matrix3ToF32(m matrix.Matrix3[float32]) f32.Mat3 { return f32.Mat3(rowMajor3(m)) }

// Matrix3FromF32 converts a row-major f32.Mat3.
func Matrix3FromF32(a f32.Mat3) matrix.Matrix3[float32] { return fromRowMajor3([9]float32(a)) }

// Matrix4ToF32 returns m in f32 row-major order.
func Matrix4ToF32(m matrix.Matrix4[float32]) f32.Mat4 { return f32.Mat4(rowMajor4(m)) }

// Matrix4FromF32 converts a row-major f32.Mat4.
func Matrix4FromF32(a f32.Mat4) matrix.Matrix4[float32] { return fromRowMajor4([16]float32(a)) }

// Matrix3ToAff3F32 returns the affine part of m. Returns ErrNotAffine unless
// the bottom row is exactly (0, 0, 1).
func Matrix3ToAff3F32(m matrix.Matrix3[float32]) (f32.Aff3, error) {
	a, err := affine(m)
	return f32.Aff3(a), err
}

// Matrix3FromAff3F32 completes a with the row (0, 0, 1).
func Matrix3FromAff3F32(a f32.Aff3) matrix.Matrix3[float32] { return fromAffine([6]float32(a)) }

func Vector2FromF32(v f32.Vec2) vector.Vector2[float32] { return vector.Vector2[float32](v) }
func Vector3FromF32(v f32.Vec3) vector.Vector3[float32] { return vector.Vector3[float32](v) }
func Vector4FromF32(v f32.Vec4) vector.Vector4[float32] { return vector.Vector4[float32](v) }

func Vector2ToF32(v vector.Vector2[float32]) f32.Vec2 { return f32.Vec2(v) }
func Vector3ToF32(v vector.Vector3[float32]) f32.Vec3 { return f32.Vec3(v) }
func Vector4ToF32(v vector.Vector4[float32]) f32.Vec4 { return f32.Vec4(v) }

// ---------- float64 ----------

// Matrix3ToF64 returns m in f64 row-major order.
func Matrix3ToF64(m matrix.Matrix3[float64]) f64.Mat3 { return f64.Mat3(rowMajor3(m)) }

// Matrix3FromF64 converts a row-major f64.Mat3.
func Matrix3FromF64(a f64.Mat3) matrix.Matrix3[float64] { return fromRowMajor3([9]float64(a)) }

// Matrix4ToF64 returns m in f64 row-major order.
func Matrix4ToF64(m matrix.Matrix4[float64]) f64.Mat4 { return f64.Mat4(rowMajor4(m)) }

// Matrix4FromF64 converts a row-major f64.Mat4.
func Matrix4FromF64(a f64.Mat4) matrix.Matrix4[float64] { return fromRowMajor4([16]float64(a)) }

// Matrix3ToAff3F64 returns the affine part of m, the form draw.Transformer
// consumes.
func Matrix3ToAff3F64(m matrix.Matrix3[float64]) (f64.Aff3, error) {
	a, err := affine(m)
	return f64.Aff3(a), err
}

// Matrix3FromAff3F64 completes a with the row (0, 0, 1).
func Matrix3FromAff3F64(a f64.Aff3) matrix.Matrix3[float64] { return fromAffine([6]float64(a)) }

func Vector2FromF64(v f64.Vec2) vector.Vector2[float64] { return vector.Vector2[float64](v) }
func Vector3FromF64(v f64.Vec3) vector.Vector3[float64] { return vector.Vector3[float64](v) }
func Vector4FromF64(v f64.Vec4) vector.Vector4[float64] { return vector.Vector4[float64](v) }

func Vector2ToF64(v vector.Vector2[float64]) f64.Vec2 { return f64.Vec2(v) }
func Vector3ToF64(v vector.Vector3[float64]) f64.Vec3 { return f64.Vec3(v) }
func Vector4ToF64(v vector.Vector4[float64]) f64.Vec4 { return f64.Vec4(v) }

// ---------- image transforms ----------

// Transform draws src onto dst through the 2D affine map m, which takes src
// pixel coordinates to dst pixel coordinates (column vectors (x, y, 1)).
// k selects the resampling kernel, e.g. draw.NearestNeighbor or
// draw.CatmullRom; op is draw.Src or draw.Over.
//
// Returns ErrNilImage for a nil image and ErrNotAffine for a projective m.
func Transform(dst draw.Image, src image.Image, m matrix.Matrix3[float64], k draw.Transformer, op draw.Op) error {
	if dst == nil || src == nil {
		return ErrNilImage
	}
	aff, err := Matrix3ToAff3F64(m)
	if err != nil {
		return fmt.Errorf("Transform: %w", err)
	}
	k.Transform(dst, aff, src, src.Bounds(), op, nil)

	return nil
}
