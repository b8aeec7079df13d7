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

// Matrix4 is a 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new 4x4 identity matrix.
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// NewLookAt returns a new [Matrix4] with the rotation basis looking from
// the given eye position toward the target position, using the given up
// vector. Only the rotation portion of the matrix is set.
func NewLookAt(eye, target, up Vector3) *Matrix4 {
	m := Identity4()
	m.SetLookAt(eye, target, up)
	return &m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetZero sets this matrix to all zeros.
func (m *Matrix4) SetZero() {
	m.Set(
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)
}

// FromArray sets this matrix's elements from the given array, starting at offset.
func (m *Matrix4) FromArray(array []float32, offset int) {
	copy(m[:], array[offset:])
}

// ToArray copies this matrix's elements to the given array, starting at offset.
func (m *Matrix4) ToArray(array []float32, offset int) {
	copy(array[offset:], m[:])
}

// Pos returns the position (translation) component of this matrix.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// SetPos sets the position (translation) component of this matrix
// from the given vector, leaving the rest of the matrix unchanged.
func (m *Matrix4) SetPos(v Vector3) {
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
}

// SetTranslation sets this matrix to a translation-only transform matrix
// with the given x, y and z translation values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetRotationX sets this matrix to a rotation matrix of the given angle
// (in radians) around the X axis.
func (m *Matrix4) SetRotationX(theta float32) {
	s, c := Sincos(theta)
	m.Set(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationY sets this matrix to a rotation matrix of the given angle
// (in radians) around the Y axis.
func (m *Matrix4) SetRotationY(theta float32) {
	s, c := Sincos(theta)
	m.Set(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationZ sets this matrix to a rotation matrix of the given angle
// (in radians) around the Z axis.
func (m *Matrix4) SetRotationZ(theta float32) {
	s, c := Sincos(theta)
	m.Set(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetRotationAxis sets this matrix to a rotation matrix of the given angle
// (in radians) around the given axis, which must be normalized.
func (m *Matrix4) SetRotationAxis(axis Vector3, angle float32) {
	s, c := Sincos(angle)
	t := 1 - c
	x := axis.X
	y := axis.Y
	z := axis.Z
	tx := t * x
	ty := t * y
	m.Set(
		tx*x+c, tx*y-s*z, tx*z+s*y, 0,
		tx*y+s*z, ty*y+c, ty*z-s*x, 0,
		tx*z-s*y, ty*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationFromEuler sets the rotation component of this matrix from the
// given Euler angles, in XYZ order. The rest of the matrix is set to identity.
func (m *Matrix4) SetRotationFromEuler(euler Vector3) {
	q := NewQuatEuler(euler)
	m.SetRotationFromQuat(q)
}

// SetRotationFromQuat sets the rotation component of this matrix from the
// given quaternion. The rest of the matrix is set to identity.
func (m *Matrix4) SetRotationFromQuat(q Quat) {
	x := q.X
	y := q.Y
	z := q.Z
	w := q.W
	x2 := x + x
	y2 := y + y
	z2 := z + z
	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2

	m.Set(
		1-(yy+zz), xy-wz, xz+wy, 0,
		xy+wz, 1-(xx+zz), yz-wx, 0,
		xz-wy, yz+wx, 1-(xx+yy), 0,
		0, 0, 0, 1,
	)
}

// SetScale sets this matrix to a scale transform matrix
// with the given x, y and z scale values.
func (m *Matrix4) SetScale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// SetScaleCols multiplies the matrix columns by the corresponding
// components of the given vector.
func (m *Matrix4) SetScaleCols(v Vector3) {
	x := v.X
	y := v.Y
	z := v.Z
	m[0] *= x
	m[4] *= y
	m[8] *= z
	m[1] *= x
	m[5] *= y
	m[9] *= z
	m[2] *= x
	m[6] *= y
	m[10] *= z
	m[3] *= x
	m[7] *= y
	m[11] *= z
}

// SetTransform sets this matrix to the transformation composed of the
// given position, quaternion rotation, and scale.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	m.SetRotationFromQuat(quat)
	m.SetScaleCols(scale)
	m.SetPos(pos)
}

// Decompose returns the position, quaternion rotation, and scale
// of this transformation matrix.
func (m *Matrix4) Decompose() (pos Vector3, quat Quat, scale Vector3) {
	var vx, vy, vz Vector3
	vx.SetFromMatrixCol(m, 0)
	vy.SetFromMatrixCol(m, 1)
	vz.SetFromMatrixCol(m, 2)
	sx := vx.Length()
	sy := vy.Length()
	sz := vz.Length()

	// if determinant is negative, we need to invert one scale
	det := m.Determinant()
	if det < 0 {
		sx = -sx
	}

	pos.X = m[12]
	pos.Y = m[13]
	pos.Z = m[14]

	// scale the rotation part
	invSX := 1 / sx
	invSY := 1 / sy
	invSZ := 1 / sz

	mat := *m
	mat[0] *= invSX
	mat[1] *= invSX
	mat[2] *= invSX
	mat[4] *= invSY
	mat[5] *= invSY
	mat[6] *= invSY
	mat[8] *= invSZ
	mat[9] *= invSZ
	mat[10] *= invSZ

	quat.SetFromRotationMatrix(&mat)

	scale.X = sx
	scale.Y = sy
	scale.Z = sz
	return
}

// ExtractRotation sets this matrix as the rotation-only portion of the
// given source transformation matrix, with the scale normalized out.
func (m *Matrix4) ExtractRotation(src *Matrix4) {
	var vtemp Vector3
	vtemp.SetFromMatrixCol(src, 0)
	scaleX := 1 / vtemp.Length()
	vtemp.SetFromMatrixCol(src, 1)
	scaleY := 1 / vtemp.Length()
	vtemp.SetFromMatrixCol(src, 2)
	scaleZ := 1 / vtemp.Length()

	m[0] = src[0] * scaleX
	m[1] = src[1] * scaleX
	m[2] = src[2] * scaleX
	m[4] = src[4] * scaleY
	m[5] = src[5] * scaleY
	m[6] = src[6] * scaleY
	m[8] = src[8] * scaleZ
	m[9] = src[9] * scaleZ
	m[10] = src[10] * scaleZ
}

// MulMatrices sets this matrix as the matrix multiplication of a by b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	a11 := a[0]
	a12 := a[4]
	a13 := a[8]
	a14 := a[12]
	a21 := a[1]
	a22 := a[5]
	a23 := a[9]
	a24 := a[13]
	a31 := a[2]
	a32 := a[6]
	a33 := a[10]
	a34 := a[14]
	a41 := a[3]
	a42 := a[7]
	a43 := a[11]
	a44 := a[15]

	b11 := b[0]
	b12 := b[4]
	b13 := b[8]
	b14 := b[12]
	b21 := b[1]
	b22 := b[5]
	b23 := b[9]
	b24 := b[13]
	b31 := b[2]
	b32 := b[6]
	b33 := b[10]
	b34 := b[14]
	b41 := b[3]
	b42 := b[7]
	b43 := b[11]
	b44 := b[15]

	m[0] = a11*b11 + a12*b21 + a13*b31 + a14*b41
	m[4] = a11*b12 + a12*b22 + a13*b32 + a14*b42
	m[8] = a11*b13 + a12*b23 + a13*b33 + a14*b43
	m[12] = a11*b14 + a12*b24 + a13*b34 + a14*b44

	m[1] = a21*b11 + a22*b21 + a23*b31 + a24*b41
	m[5] = a21*b12 + a22*b22 + a23*b32 + a24*b42
	m[9] = a21*b13 + a22*b23 + a23*b33 + a24*b43
	m[13] = a21*b14 + a22*b24 + a23*b34 + a24*b44

	m[2] = a31*b11 + a32*b21 + a33*b31 + a34*b41
	m[6] = a31*b12 + a32*b22 + a33*b32 + a34*b42
	m[10] = a31*b13 + a32*b23 + a33*b33 + a34*b43
	m[14] = a31*b14 + a32*b24 + a33*b34 + a34*b44

	m[3] = a41*b11 + a42*b21 + a43*b31 + a44*b41
	m[7] = a41*b12 + a42*b22 + a43*b32 + a44*b42
	m[11] = a41*b13 + a42*b23 + a43*b33 + a44*b43
	m[15] = a41*b14 + a42*b24 + a43*b34 + a44*b44
}

// Mul returns this matrix multiplied by the other given matrix.
func (m Matrix4) Mul(other *Matrix4) Matrix4 {
	nm := Matrix4{}
	nm.MulMatrices(&m, other)
	return nm
}

// SetMul sets this matrix to itself multiplied by the other given matrix.
func (m *Matrix4) SetMul(other *Matrix4) {
	m.MulMatrices(m, other)
}

// MulScalar multiplies each element of this matrix by the given scalar.
func (m *Matrix4) MulScalar(s float32) {
	for i := range m {
		m[i] *= s
	}
}

// MulVector3Array multiplies the given array of consecutive Vector3 values
// by this matrix, as points with implicit W = 1, in place.
func (m *Matrix4) MulVector3Array(array []float32) {
	var v1 Vector3
	for i := 0; i+2 < len(array); i += 3 {
		v1.FromSlice(array, i)
		v1 = v1.MulMatrix4(m)
		v1.ToSlice(array, i)
	}
}

// GetMaxScaleOnAxis returns the maximum scale value of the three axes.
func (m *Matrix4) GetMaxScaleOnAxis() float32 {
	scaleXSq := m[0]*m[0] + m[1]*m[1] + m[2]*m[2]
	scaleYSq := m[4]*m[4] + m[5]*m[5] + m[6]*m[6]
	scaleZSq := m[8]*m[8] + m[9]*m[9] + m[10]*m[10]
	return Sqrt(Max(scaleXSq, Max(scaleYSq, scaleZSq)))
}

// Determinant returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	n11 := m[0]
	n12 := m[4]
	n13 := m[8]
	n14 := m[12]
	n21 := m[1]
	n22 := m[5]
	n23 := m[9]
	n24 := m[13]
	n31 := m[2]
	n32 := m[6]
	n33 := m[10]
	n34 := m[14]
	n41 := m[3]
	n42 := m[7]
	n43 := m[11]
	n44 := m[15]

	return n41*(n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34) +
		n42*(n11*n23*n34-n11*n24*n33+n14*n21*n33-n13*n21*n34+n13*n24*n31-n14*n23*n31) +
		n43*(n11*n24*n32-n11*n22*n34-n14*n21*n32+n12*n21*n34+n14*n22*n31-n12*n24*n31) +
		n44*(-n13*n22*n31-n11*n23*n32+n11*n22*n33+n13*n21*n32-n12*n21*n33+n12*n23*n31)
}

// SetInverse sets this matrix to the inverse of the given source matrix.
// If the source matrix cannot be inverted, this matrix is set to all zeros
// and an error is returned.
func (m *Matrix4) SetInverse(src *Matrix4) error {
	n11 := src[0]
	n12 := src[4]
	n13 := src[8]
	n14 := src[12]
	n21 := src[1]
	n22 := src[5]
	n23 := src[9]
	n24 := src[13]
	n31 := src[2]
	n32 := src[6]
	n33 := src[10]
	n34 := src[14]
	n41 := src[3]
	n42 := src[7]
	n43 := src[11]
	n44 := src[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14

	if det == 0 {
		m.SetZero()
		return errors.New("glm.Matrix4.SetInverse: cannot invert matrix, determinant is 0")
	}

	detInv := 1 / det

	m[0] = t11 * detInv
	m[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * detInv
	m[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * detInv
	m[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * detInv

	m[4] = t12 * detInv
	m[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * detInv
	m[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * detInv
	m[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * detInv

	m[8] = t13 * detInv
	m[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * detInv
	m[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * detInv
	m[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * detInv

	m[12] = t14 * detInv
	m[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * detInv
	m[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * detInv
	m[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * detInv

	return nil
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted, the zero matrix and an error are returned.
func (m Matrix4) Inverse() (Matrix4, error) {
	nm := Matrix4{}
	err := nm.SetInverse(&m)
	return nm, err
}

// SetTranspose transposes this matrix in place.
func (m *Matrix4) SetTranspose() {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[6], m[9] = m[9], m[6]
	m[3], m[12] = m[12], m[3]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	nm := m
	nm.SetTranspose()
	return nm
}

// SetLookAt sets the rotation basis of this matrix looking from the given
// eye position toward the target position, using the given up vector.
// The translation component is left unchanged.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	z := eye.Sub(target)
	if z.LengthSquared() == 0 {
		// eye and target are in the same position
		z.Z = 1
	}
	z.SetNormal()

	x := up.Cross(z)
	if x.LengthSquared() == 0 {
		// up and z are parallel
		if Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z.SetNormal()
		x = up.Cross(z)
	}
	x.SetNormal()

	y := z.Cross(x)

	m[0] = x.X
	m[4] = y.X
	m[8] = z.X
	m[1] = x.Y
	m[5] = y.Y
	m[9] = z.Y
	m[2] = x.Z
	m[6] = y.Z
	m[10] = z.Z
}

// Projection matrices:

// SetFrustum sets this matrix to a perspective projection matrix with
// the given frustum parameters, following the OpenGL clip conventions
// (Z in [-1, 1], right-handed, looking down -Z).
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	fmn := far - near
	m.SetZero()
	m[0] = 2 * near / (right - left)
	m[5] = 2 * near / (top - bottom)
	m[8] = (right + left) / (right - left)
	m[9] = (top + bottom) / (top - bottom)
	m[10] = -(far + near) / fmn
	m[11] = -1
	m[14] = -(2 * far * near) / fmn
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the given vertical field of view in degrees, aspect ratio
// (width / height), and near and far plane z distances.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	ymax := near * Tan(DegToRad(fov*0.5))
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	m.SetFrustum(xmin, xmax, ymin, ymax, near, far)
}

// SetOrthographic sets this matrix to an orthographic projection matrix
// with the given view width and height (centered on the origin), and near
// and far plane z distances.
func (m *Matrix4) SetOrthographic(width, height, near, far float32) {
	fmn := far - near
	m.SetIdentity()
	m[0] = 2 / width
	m[5] = 2 / height
	m[10] = -2 / fmn
	m[14] = -(far + near) / fmn
}

// ProjectToNDC projects the given world point into normalized display
// coordinates, using this matrix as the combined projection and view matrix.
func (m *Matrix4) ProjectToNDC(pt Vector3) Vector3 {
	return pt.MulProjection(m)
}

// UnprojectFromNDC maps the given point in normalized display coordinates
// back into world coordinates, using this matrix as the combined projection
// and view matrix (its inverse performs the mapping).
// If the matrix cannot be inverted, the point is returned unchanged.
func (m *Matrix4) UnprojectFromNDC(pt Vector3) Vector3 {
	inv, err := m.Inverse()
	if err != nil {
		return pt
	}
	return pt.MulProjection(&inv)
}
