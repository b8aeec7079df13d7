// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"image"
	"testing"

	"github.com/go-xr/xr/base/tolassert"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func tolAssertEqualVector2(t *testing.T, tol float32, vt, va Vector2) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

func tolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

const standardTol = float32(1.0e-6)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetFromVector2i(Vector2i{8, 9})
	assert.Equal(t, Vector2{8, 9}, v)

	assert.Equal(t, image.Pt(8, 9), v.ToPoint())
	assert.Equal(t, fixed.P(8, 9), v.ToFixed())
}

func TestVector2Math(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)

	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(3, -8), a.Mul(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vector2{}, a.DivScalar(0))

	sv := a
	sv.SetAdd(b)
	assert.Equal(t, Vec2(4, 2), sv)
	sv.SetDivScalar(0)
	assert.Equal(t, Vector2{}, sv)

	assert.Equal(t, Vec2(1, -2), a.Min(b))
	assert.Equal(t, Vec2(3, 4), a.Max(b))

	cl := Vec2(5, -3)
	cl.Clamp(Vec2(0, 0), Vec2(4, 4))
	assert.Equal(t, Vec2(4, 0), cl)

	assert.Equal(t, float32(25), a.LengthSquared())
	assert.Equal(t, float32(5), a.Length())
	tolAssertEqualVector2(t, standardTol, Vec2(0.6, 0.8), a.Normal())

	assert.Equal(t, float32(-5), a.Dot(b))
	assert.Equal(t, float32(-10), a.Cross(b))

	assert.Equal(t, float32(5), Vec2(0, 0).DistanceTo(Vec2(3, 4)))
	assert.Equal(t, Vec2(2, 1), Vec2(1, 0).Lerp(Vec2(3, 2), 0.5))

	tolAssertEqualVector2(t, standardTol, Vec2(0, 1), Vec2(1, 0).Rotate(DegToRad(90)))
	tolAssertEqualVector2(t, standardTol, Vec2(1, 0), Vec2(0, 1).Rotate(DegToRad(-90)))
}

func TestVector3Math(t *testing.T) {
	a := Vec3(1, 2, 2)
	b := Vec3(2, -1, 0)

	assert.Equal(t, Vec3(3, 1, 2), a.Add(b))
	assert.Equal(t, Vec3(-1, 3, 2), a.Sub(b))
	assert.Equal(t, Vec3(2, -2, 0), a.Mul(b))
	assert.Equal(t, Vec3(0.5, 1, 1), a.DivScalar(2))
	assert.Equal(t, Vector3{}, a.DivScalar(0))

	assert.Equal(t, float32(9), a.LengthSquared())
	assert.Equal(t, float32(3), a.Length())
	tolAssertEqualVector3(t, standardTol, Vec3(1.0/3, 2.0/3, 2.0/3), a.Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())

	assert.Equal(t, float32(0), a.Dot(b))
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, Vec3(1, 0, 0), Vec3(0, 1, 0).Cross(Vec3(0, 0, 1)))

	tolassert.EqualTol(t, DegToRad(90), Vec3(1, 0, 0).AngleTo(Vec3(0, 1, 0)), standardTol)
	tolassert.EqualTol(t, DegToRad(180), Vec3(1, 0, 0).AngleTo(Vec3(-1, 0, 0)), standardTol)

	assert.Equal(t, Vec3(1, 1, 1), Vec3(0, 0, 0).Lerp(Vec3(2, 2, 2), 0.5))

	mn := Vec3(9, -9, 1)
	mn.SetMin(Vec3(0, 0, 0))
	assert.Equal(t, Vec3(0, -9, 0), mn)
}

func TestVector3MulQuat(t *testing.T) {
	zrot := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	tolAssertEqualVector3(t, standardTol, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(zrot))

	yrot := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	tolAssertEqualVector3(t, standardTol, Vec3(0, 0, -1), Vec3(1, 0, 0).MulQuat(yrot))

	// identity leaves the vector unchanged
	ident := Quat{}
	ident.SetIdentity()
	assert.Equal(t, Vec3(3, -2, 5), Vec3(3, -2, 5).MulQuat(ident))
}

func TestVector3Window(t *testing.T) {
	size := Vec2(200, 100)
	off := Vec2(0, 0)

	ctr := Vec3(0, 0, 0).NDCToWindow(size, off, 0, 1, true)
	tolAssertEqualVector3(t, standardTol, Vec3(100, 50, 0.5), ctr)

	// upper left in flipped (window) coordinates is NDC (-1, 1)
	ul := Vec3(-1, 1, 0).NDCToWindow(size, off, 0, 1, true)
	tolAssertEqualVector3(t, standardTol, Vec3(0, 0, 0.5), ul)

	back := ul.WindowToNDC(size, off, true)
	tolAssertEqualVector3(t, standardTol, Vec3(-1, 1, 0.5), back)
}

func TestVector4Math(t *testing.T) {
	a := Vec4(1, 2, 3, 4)
	b := Vec4(4, 3, 2, 1)

	assert.Equal(t, Vec4(5, 5, 5, 5), a.Add(b))
	assert.Equal(t, Vec4(-3, -1, 1, 3), a.Sub(b))
	assert.Equal(t, float32(20), a.Dot(b))

	assert.Equal(t, Vector4{}, a.DivScalar(0))
	sv := a
	sv.SetDivScalar(0)
	assert.Equal(t, Vec4(0, 0, 0, 1), sv)

	assert.Equal(t, Vec3(2, 4, 6), Vec4(4, 8, 12, 2).PerspDiv())

	v3 := Vector3FromVector4(Vec4(1, 2, 3, 9))
	assert.Equal(t, Vec3(1, 2, 3), v3)
	assert.Equal(t, Vec4(1, 2, 3, 7), Vector4FromVector3(Vec3(1, 2, 3), 7))
}

func TestVectorDims(t *testing.T) {
	v := Vec4(1, 2, 3, 4)
	for d := X; d < DimsN; d++ {
		assert.Equal(t, float32(d+1), v.Dim(d))
	}
	v.SetDim(Z, 9)
	assert.Equal(t, Vec4(1, 2, 9, 4), v)

	assert.Equal(t, "X", X.String())
	assert.Equal(t, "W", W.String())
	assert.Equal(t, Y, X.OtherDim())
	assert.Equal(t, X, Y.OtherDim())
}

func TestVectorSlice(t *testing.T) {
	array := make([]float32, 8)
	Vec3(1, 2, 3).ToSlice(array, 2)
	assert.Equal(t, []float32{0, 0, 1, 2, 3, 0, 0, 0}, array)

	v := Vector3{}
	v.FromSlice(array, 2)
	assert.Equal(t, Vec3(1, 2, 3), v)
}

func TestVector2i(t *testing.T) {
	a := Vec2i(3, 4)
	b := Vec2i(1, -2)
	assert.Equal(t, Vec2i(4, 2), a.Add(b))
	assert.Equal(t, Vec2i(2, 6), a.Sub(b))
	assert.Equal(t, Vec2i(3, -8), a.Mul(b))
	assert.Equal(t, Vec2i(1, -2), a.Min(b))
	assert.Equal(t, Vec2i(3, 4), a.Max(b))
	assert.Equal(t, Vec2i(-3, -4), a.Negate())
	assert.True(t, a.IsEqual(Vec2i(3, 4)))
	assert.False(t, a.IsEqual(b))
	assert.Equal(t, image.Pt(3, 4), a.ToPoint())

	cl := Vec2i(5, -3)
	cl.ClampScalar(0, 4)
	assert.Equal(t, Vec2i(4, 0), cl)
}

func TestVector3i(t *testing.T) {
	a := Vec3i(1, 2, 3)
	b := Vec3i(3, 2, 1)
	assert.Equal(t, Vec3i(4, 4, 4), a.Add(b))
	assert.Equal(t, Vec3i(-2, 0, 2), a.Sub(b))
	assert.Equal(t, Vec3i(1, 2, 1), a.Min(b))
	assert.Equal(t, Vec3i(3, 2, 3), a.Max(b))

	v := Vector3i{}
	v.SetFromVector3(Vec3(1.7, 2.3, -3.9))
	assert.Equal(t, Vec3i(1, 2, -3), v)
}
