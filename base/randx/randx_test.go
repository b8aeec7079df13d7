// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRandDeterminism(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSysRandRange(t *testing.T) {
	r := NewSysRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Float32()
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
		n := r.Int31n(10)
		assert.GreaterOrEqual(t, n, int32(0))
		assert.Less(t, n, int32(10))
	}
}

func TestGauss(t *testing.T) {
	r := NewSysRand(1)
	assert.Equal(t, 5.0, Gauss(5, 0, r))
	n := 10000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += Gauss(2, 0.5, r)
	}
	mean := sum / float64(n)
	assert.InDelta(t, 2.0, mean, 0.05)
}

func TestUniformRange(t *testing.T) {
	r := NewSysRand(3)
	for i := 0; i < 1000; i++ {
		v := UniformRange(-2, 3, r)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}
