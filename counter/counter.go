// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - occurrence tallies stored as tree values
package counter

// Counter - number of times an item was seen
// just a 64 bit unsigned integer
type Counter uint64

// New - a counter that has already seen one item
func New() *Counter {
	c := Counter(1)
	return &c
}

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	*ic += 1
	return uint64(*ic)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	*ic += Counter(n)
	return uint64(*ic)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return uint64(*ic)
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == *ic
}

// Percentage - the counter as a percentage of total
func (ic *Counter) Percentage(total uint64) float64 {
	if 0 == total {
		return 0
	}
	return float64(*ic) * 100 / float64(total)
}
