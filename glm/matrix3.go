// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit go-xr functionality.

package glm

import "errors"

// Matrix3 is a 3x3 matrix organized internally as column matrix.
type Matrix3 [9]float32

// Identity3 returns a new 3x3 identity matrix.
func Identity3() Matrix3 {
	m := Matrix3{}
	m.SetIdentity()
	return m
}

// Matrix3FromMatrix4 returns a new [Matrix3] from the upper 3x3 portion
// of the given [Matrix4].
func Matrix3FromMatrix4(src *Matrix4) Matrix3 {
	m := Matrix3{}
	m.SetFromMatrix4(src)
	return m
}

// Matrix3Translate2D returns a new [Matrix3] 2D affine transform matrix
// with the given translation.
func Matrix3Translate2D(x, y float32) Matrix3 {
	m := Identity3()
	m[6] = x
	m[7] = y
	return m
}

// Matrix3Scale2D returns a new [Matrix3] 2D affine transform matrix
// with the given scaling factors.
func Matrix3Scale2D(x, y float32) Matrix3 {
	m := Identity3()
	m[0] = x
	m[4] = y
	return m
}

// Matrix3Rotate2D returns a new [Matrix3] 2D affine transform matrix
// with the given counterclockwise rotation (in radians).
func Matrix3Rotate2D(angle float32) Matrix3 {
	s, c := Sincos(angle)
	m := Identity3()
	m[0] = c
	m[3] = -s
	m[1] = s
	m[4] = c
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float32) {
	m[0] = n11
	m[3] = n12
	m[6] = n13
	m[1] = n21
	m[4] = n22
	m[7] = n23
	m[2] = n31
	m[5] = n32
	m[8] = n33
}

// SetFromMatrix4 sets the elements of this matrix from the upper 3x3
// portion of the given [Matrix4].
func (m *Matrix3) SetFromMatrix4(src *Matrix4) {
	m.Set(
		src[0], src[4], src[8],
		src[1], src[5], src[9],
		src[2], src[6], src[10],
	)
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix3) SetIdentity() {
	m.Set(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// SetZero sets this matrix to all zeros.
func (m *Matrix3) SetZero() {
	m.Set(
		0, 0, 0,
		0, 0, 0,
		0, 0, 0,
	)
}

// FromArray sets this matrix's elements from the given array, starting at offset.
func (m *Matrix3) FromArray(array []float32, offset int) {
	copy(m[:], array[offset:])
}

// ToArray copies this matrix's elements to the given array, starting at offset.
func (m *Matrix3) ToArray(array []float32, offset int) {
	copy(array[offset:], m[:])
}

// MulMatrices sets this matrix as the matrix multiplication of a by b.
func (m *Matrix3) MulMatrices(a, b Matrix3) {
	a11 := a[0]
	a12 := a[3]
	a13 := a[6]
	a21 := a[1]
	a22 := a[4]
	a23 := a[7]
	a31 := a[2]
	a32 := a[5]
	a33 := a[8]

	b11 := b[0]
	b12 := b[3]
	b13 := b[6]
	b21 := b[1]
	b22 := b[4]
	b23 := b[7]
	b31 := b[2]
	b32 := b[5]
	b33 := b[8]

	m[0] = a11*b11 + a12*b21 + a13*b31
	m[3] = a11*b12 + a12*b22 + a13*b32
	m[6] = a11*b13 + a12*b23 + a13*b33

	m[1] = a21*b11 + a22*b21 + a23*b31
	m[4] = a21*b12 + a22*b22 + a23*b32
	m[7] = a21*b13 + a22*b23 + a23*b33

	m[2] = a31*b11 + a32*b21 + a33*b31
	m[5] = a31*b12 + a32*b22 + a33*b32
	m[8] = a31*b13 + a32*b23 + a33*b33
}

// Mul returns this matrix multiplied by the other given matrix.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	nm := Matrix3{}
	nm.MulMatrices(m, other)
	return nm
}

// SetMul sets this matrix to itself multiplied by the other given matrix.
func (m *Matrix3) SetMul(other Matrix3) {
	m.MulMatrices(*m, other)
}

// MulScalar multiplies each element of this matrix by the given scalar.
func (m *Matrix3) MulScalar(s float32) {
	for i := range m {
		m[i] *= s
	}
}

// MulVector2AsVector multiplies the given 2D vector by this matrix as a
// vector, without any translation.
func (m Matrix3) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(m[0]*v.X+m[3]*v.Y, m[1]*v.X+m[4]*v.Y)
}

// MulVector2AsPoint multiplies the given 2D point by this matrix,
// including the translation.
func (m Matrix3) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(m[0]*v.X+m[3]*v.Y+m[6], m[1]*v.X+m[4]*v.Y+m[7])
}

// ScaleCols returns this matrix with the columns multiplied by the
// corresponding components of the given vector.
func (m Matrix3) ScaleCols(v Vector3) Matrix3 {
	nm := m
	nm.SetScaleCols(v)
	return nm
}

// SetScaleCols multiplies the matrix columns by the corresponding
// components of the given vector.
func (m *Matrix3) SetScaleCols(v Vector3) {
	m[0] *= v.X
	m[3] *= v.Y
	m[6] *= v.Z
	m[1] *= v.X
	m[4] *= v.Y
	m[7] *= v.Z
	m[2] *= v.X
	m[5] *= v.Y
	m[8] *= v.Z
}

// Determinant returns the determinant of this matrix.
func (m *Matrix3) Determinant() float32 {
	return m[0]*m[4]*m[8] -
		m[0]*m[5]*m[7] -
		m[1]*m[3]*m[8] +
		m[1]*m[5]*m[6] +
		m[2]*m[3]*m[7] -
		m[2]*m[4]*m[6]
}

// SetInverse sets this matrix to the inverse of the given source matrix.
// If the source matrix cannot be inverted, this matrix is set to all zeros
// and an error is returned.
func (m *Matrix3) SetInverse(src Matrix3) error {
	n11 := src[0]
	n21 := src[1]
	n31 := src[2]
	n12 := src[3]
	n22 := src[4]
	n32 := src[5]
	n13 := src[6]
	n23 := src[7]
	n33 := src[8]

	t11 := n33*n22 - n32*n23
	t12 := n32*n13 - n33*n12
	t13 := n23*n12 - n22*n13

	det := n11*t11 + n21*t12 + n31*t13

	if det == 0 {
		m.SetZero()
		return errors.New("glm.Matrix3.SetInverse: cannot invert matrix, determinant is 0")
	}

	detInv := 1 / det

	m[0] = t11 * detInv
	m[1] = (n31*n23 - n33*n21) * detInv
	m[2] = (n32*n21 - n31*n22) * detInv
	m[3] = t12 * detInv
	m[4] = (n33*n11 - n31*n13) * detInv
	m[5] = (n31*n12 - n32*n11) * detInv
	m[6] = t13 * detInv
	m[7] = (n21*n13 - n23*n11) * detInv
	m[8] = (n22*n11 - n21*n12) * detInv
	return nil
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted, the zero matrix is returned.
func (m Matrix3) Inverse() Matrix3 {
	nm := Matrix3{}
	nm.SetInverse(m)
	return nm
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	nm := m
	nm[1], nm[3] = nm[3], nm[1]
	nm[2], nm[6] = nm[6], nm[2]
	nm[5], nm[7] = nm[7], nm[5]
	return nm
}

// SetNormalMatrix sets this matrix to the matrix that transforms normals
// for the given transformation matrix: the inverse transpose of its upper
// 3x3 portion. Returns an error if the matrix cannot be inverted.
func (m *Matrix3) SetNormalMatrix(src *Matrix4) error {
	m.SetFromMatrix4(src)
	err := m.SetInverse(*m)
	*m = m.Transpose()
	return err
}
