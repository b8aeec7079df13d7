// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit go-xr functionality.

package glm

// ArrayF32 is a slice of float32 with additional convenience methods
// for appending and accessing vector values. It is the interchange
// format for generated mesh geometry.
type ArrayF32 []float32

// NewArrayF32 creates a returns a new array of floats
// with the specified initial size and capacity.
func NewArrayF32(size, capacity int) ArrayF32 {
	return make(ArrayF32, size, capacity)
}

// Bytes returns the size of the array in bytes.
func (a ArrayF32) Bytes() int {
	return len(a) * 4
}

// Len returns the number of float32 elements in the array.
func (a ArrayF32) Len() int {
	return len(a)
}

// NumVectors returns the number of complete vectors of the given
// size (number of components) in the array.
func (a ArrayF32) NumVectors(vsize int) int {
	return len(a) / vsize
}

// Append appends any number of values to the array.
func (a *ArrayF32) Append(v ...float32) {
	*a = append(*a, v...)
}

// AppendVector2 appends any number of Vector2 to the array.
func (a *ArrayF32) AppendVector2(v ...Vector2) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y)
	}
}

// AppendVector3 appends any number of Vector3 to the array.
func (a *ArrayF32) AppendVector3(v ...Vector3) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y, v[i].Z)
	}
}

// AppendVector4 appends any number of Vector4 to the array.
func (a *ArrayF32) AppendVector4(v ...Vector4) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y, v[i].Z, v[i].W)
	}
}

// GetVector2 stores in the specified Vector2 the
// values from the array starting at the specified pos.
func (a ArrayF32) GetVector2(pos int, v *Vector2) {
	v.X = a[pos]
	v.Y = a[pos+1]
}

// GetVector3 stores in the specified Vector3 the
// values from the array starting at the specified pos.
func (a ArrayF32) GetVector3(pos int, v *Vector3) {
	v.X = a[pos]
	v.Y = a[pos+1]
	v.Z = a[pos+2]
}

// GetVector4 stores in the specified Vector4 the
// values from the array starting at the specified pos.
func (a ArrayF32) GetVector4(pos int, v *Vector4) {
	v.X = a[pos]
	v.Y = a[pos+1]
	v.Z = a[pos+2]
	v.W = a[pos+3]
}

// GetMatrix4 stores in the specified Matrix4 the
// values from the array starting at the specified pos.
func (a ArrayF32) GetMatrix4(pos int, m *Matrix4) {
	m.FromArray(a, pos)
}

// Set sets the values of the array starting at the specified pos
// from the specified values.
func (a ArrayF32) Set(pos int, v ...float32) {
	copy(a[pos:], v)
}

// SetVector2 sets the values of the array at the specified pos
// from the XY values of the specified Vector2.
func (a ArrayF32) SetVector2(pos int, v Vector2) {
	v.ToSlice(a, pos)
}

// SetVector3 sets the values of the array at the specified pos
// from the XYZ values of the specified Vector3.
func (a ArrayF32) SetVector3(pos int, v Vector3) {
	v.ToSlice(a, pos)
}

// SetVector4 sets the values of the array at the specified pos
// from the XYZW values of the specified Vector4.
func (a ArrayF32) SetVector4(pos int, v Vector4) {
	v.ToSlice(a, pos)
}

// ArrayU32 is a slice of uint32 with additional convenience methods,
// used for mesh triangle index lists.
type ArrayU32 []uint32

// NewArrayU32 creates a returns a new array of uint32
// with the specified initial size and capacity.
func NewArrayU32(size, capacity int) ArrayU32 {
	return make(ArrayU32, size, capacity)
}

// Bytes returns the size of the array in bytes.
func (a ArrayU32) Bytes() int {
	return len(a) * 4
}

// Len returns the number of uint32 elements in the array.
func (a ArrayU32) Len() int {
	return len(a)
}

// Append appends any number of values to the array.
func (a *ArrayU32) Append(v ...uint32) {
	*a = append(*a, v...)
}

// Set sets the values of the array starting at the specified pos
// from the specified values.
func (a ArrayU32) Set(pos int, v ...uint32) {
	copy(a[pos:], v)
}
