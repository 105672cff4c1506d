// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/numkit/avl"
)

func TestCopyKeysAndDiff(t *testing.T) {
	source := avl.New[string, float64](strings.Compare, false)
	source.Insert("x", 1.5)
	source.Insert("y", 2.5)
	source.Insert("z", 3.5)

	destination := avl.New[string, struct{}](strings.Compare, false)
	avl.CopyKeys(destination, source)

	assert.Equal(t, []string{"x", "y", "z"}, destination.Keys(), "copied keys")
	assert.False(t, destination.Find("y").HasValue(), "copied node has value")
	assert.Equal(t, 3, source.Count(), "source count")

	assigned := avl.New[string, int](strings.Compare, false)
	assigned.Insert("x", 0)

	avl.Diff(destination, assigned, avl.ReleaseNone)

	assert.Equal(t, []string{"y", "z"}, destination.Keys(), "remaining keys")
	assert.Nil(t, destination.Check(), "check")
	assert.Equal(t, []string{"x"}, assigned.Keys(), "subtrahend unchanged")
}

func TestDiffDisjoint(t *testing.T) {
	a := avl.New[int, struct{}](avl.Ordered[int], false)
	b := avl.New[int, struct{}](avl.Ordered[int], false)
	for i := 0; i < 20; i += 1 {
		a.InsertKey(2 * i)
		b.InsertKey(2*i + 1)
	}

	avl.Diff(a, b, avl.ReleaseBoth)
	assert.Equal(t, 20, a.Count(), "count")

	// remove every multiple of four
	c := avl.New[int, struct{}](avl.Ordered[int], false)
	for i := 0; i < 40; i += 4 {
		c.InsertKey(i)
	}
	avl.Diff(a, c, avl.ReleaseBoth)
	assert.Equal(t, 10, a.Count(), "count")
	for _, key := range a.Keys() {
		assert.Equal(t, 2, key%4, "key: %d", key)
	}
	assert.Nil(t, a.Check(), "check")
}

func TestCopyKeysIntoPopulated(t *testing.T) {
	source := avl.New[int, string](avl.Ordered[int], false)
	destination := avl.New[int, string](avl.Ordered[int], false)
	for i := 1; i <= 5; i += 1 {
		source.Insert(i, "source")
	}
	destination.Insert(3, "kept")
	destination.Insert(9, "other")

	avl.CopyKeys(destination, source)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 9}, destination.Keys(), "keys")
	assert.Equal(t, "kept", destination.Find(3).Value(), "existing value")
	assert.Nil(t, destination.Check(), "check")
}
