// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides a source-independent random number interface,
// so that code can run against either the global rand stream or a
// private, deterministically seeded source (the synthetic scene driver
// and tests use the latter).
package randx

import "math/rand"

// Rand is the subset of the standard rand.Rand methods used here,
// supporting either the global rand generator or a separate source.
type Rand interface {
	// Seed initializes the generator to a deterministic state.
	// Seed must not be called concurrently with any other method.
	Seed(seed int64)

	// Intn returns, as an int, a non-negative pseudo-random number in [0,n).
	// It panics if n <= 0.
	Intn(n int) int

	// Int31n returns, as an int32, a non-negative pseudo-random number in [0,n).
	// It panics if n <= 0.
	Int31n(n int32) int32

	// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
	Float32() float32

	// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
	Float64() float64

	// NormFloat64 returns a normally distributed float64
	// with mean = 0 and stddev = 1.
	NormFloat64() float64

	// Perm returns, as a slice of n ints, a pseudo-random permutation
	// of the integers in [0,n).
	Perm(n int) []int

	// Shuffle pseudo-randomizes the order of n elements using
	// the given swap function. It panics if n < 0.
	Shuffle(n int, swap func(i, j int))
}

// SysRand implements [Rand] using either a private rand.Rand source,
// or, if Rand is nil, the global rand stream.
type SysRand struct {

	// if non-nil, this random number source is used instead of the global one
	Rand *rand.Rand
}

// NewGlobalRand returns a new [SysRand] using the global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new [SysRand] with a private
// rand.Rand source initialized with the given seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new private rand.Rand source using the given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

func (r *SysRand) Seed(seed int64) {
	if r.Rand == nil {
		rand.Seed(seed)
		return
	}
	r.Rand.Seed(seed)
}

func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

func (r *SysRand) Int31n(n int32) int32 {
	if r.Rand == nil {
		return rand.Int31n(n)
	}
	return r.Rand.Int31n(n)
}

func (r *SysRand) Float32() float32 {
	if r.Rand == nil {
		return rand.Float32()
	}
	return r.Rand.Float32()
}

func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

func (r *SysRand) NormFloat64() float64 {
	if r.Rand == nil {
		return rand.NormFloat64()
	}
	return r.Rand.NormFloat64()
}

func (r *SysRand) Perm(n int) []int {
	if r.Rand == nil {
		return rand.Perm(n)
	}
	return r.Rand.Perm(n)
}

func (r *SysRand) Shuffle(n int, swap func(i, j int)) {
	if r.Rand == nil {
		rand.Shuffle(n, swap)
		return
	}
	r.Rand.Shuffle(n, swap)
}
