// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// Gauss returns a gaussian (normally) distributed random number
// with the given mean and sigma. A sigma <= 0 returns the mean.
func Gauss(mean, sigma float64, rnd Rand) float64 {
	if sigma <= 0 {
		return mean
	}
	return mean + sigma*rnd.NormFloat64()
}

// UniformRange returns a uniformly distributed random number
// in the half-open interval [lo,hi).
func UniformRange(lo, hi float64, rnd Rand) float64 {
	return lo + (hi-lo)*rnd.Float64()
}
