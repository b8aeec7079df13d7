// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

// Dims is a list of vector dimension (component) names.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
	DimsN
)

func (d Dims) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case W:
		return "W"
	}
	return "DimsN"
}

// OtherDim returns the other dimension for 2D X,Y.
func (d Dims) OtherDim() Dims {
	switch d {
	case X:
		return Y
	default:
		return X
	}
}
