// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/numkit/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	if 12 != c1.Add(7) {
		t.Errorf("counter is not 12 after adding: %d", c1.Uint64())
	}
}

func TestNew(t *testing.T) {
	c := counter.New()
	assert.Equal(t, uint64(1), c.Uint64(), "new counter")
	assert.False(t, c.IsZero(), "zero")
	assert.Equal(t, uint64(2), c.Increment(), "increment")
}

func TestPercentage(t *testing.T) {
	c := counter.New()
	c.Add(2)
	assert.Equal(t, 75.0, c.Percentage(4), "percentage")
	assert.Equal(t, 0.0, c.Percentage(0), "empty total")
}
