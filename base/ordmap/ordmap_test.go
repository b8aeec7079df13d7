// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdMap(t *testing.T) {
	om := New[string, int]()
	om.Add("one", 1)
	om.Add("two", 2)
	om.Add("three", 3)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, 2, om.ValueByKey("two"))
	assert.Equal(t, 1, om.IndexByKey("two"))
	assert.Equal(t, "three", om.KeyByIndex(2))
	assert.True(t, om.HasKey("one"))
	assert.False(t, om.HasKey("four"))

	v, ok := om.ValueByKeyTry("three")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = om.ValueByKeyTry("four")
	assert.False(t, ok)

	// replacing retains order
	om.Add("two", 22)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, 22, om.ValueByIndex(1))

	assert.True(t, om.DeleteKey("one"))
	assert.False(t, om.DeleteKey("one"))
	assert.Equal(t, 2, om.Len())
	assert.Equal(t, []string{"two", "three"}, om.Keys())
	assert.Equal(t, []int{22, 3}, om.Values())
	assert.Equal(t, 0, om.IndexByKey("two"))

	om.Reset()
	assert.Equal(t, 0, om.Len())
}

func TestOrdMapZero(t *testing.T) {
	var om Map[int, string]
	om.Add(5, "five")
	assert.Equal(t, 1, om.Len())
	assert.Equal(t, "five", om.ValueByKey(5))
	var nilMap *Map[int, string]
	assert.Equal(t, 0, nilMap.Len())
}
