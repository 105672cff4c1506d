// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package frequency - tally of observed values with descriptive
// statistics
package frequency

import (
	"github.com/bitmark-inc/numkit/avl"
	"github.com/bitmark-inc/numkit/counter"
)

// Table - distinct values and their counts
//
// values are ordered exactly, NaN must not be added
type Table struct {
	tree  *avl.Tree[float64, *counter.Counter]
	total uint64
}

// New - create an empty frequency table
func New() *Table {
	return &Table{
		tree: avl.New[float64, *counter.Counter](avl.Ordered[float64], false),
	}
}

// Add - count one occurrence of x
func (t *Table) Add(x float64) {
	if p := t.tree.Find(x); nil != p {
		p.Value().Increment()
	} else {
		t.tree.Insert(x, counter.New())
	}
	t.total += 1
}

// Count - occurrences of x
func (t *Table) Count(x float64) uint64 {
	p := t.tree.Find(x)
	if nil == p {
		return 0
	}
	return p.Value().Uint64()
}

// Distinct - number of different values
func (t *Table) Distinct() int {
	return t.tree.Count()
}

// Total - number of values added
func (t *Table) Total() uint64 {
	return t.total
}

// Values - every value added, in ascending order
func (t *Table) Values() []float64 {
	values := make([]float64, 0, t.total)
	t.tree.InOrder(func(p *avl.Node[float64, *counter.Counter]) {
		for i := uint64(0); i < p.Value().Uint64(); i += 1 {
			values = append(values, p.Key())
		}
	})
	return values
}

// Modes - the highest count above one and the values that have it in
// ascending order, a zero count means the data is amodal
func (t *Table) Modes() (uint64, []float64) {
	highest := uint64(1)
	t.tree.InOrder(func(p *avl.Node[float64, *counter.Counter]) {
		if n := p.Value().Uint64(); n > highest {
			highest = n
		}
	})
	if highest <= 1 {
		return 0, nil
	}

	modes := []float64{}
	t.tree.InOrder(func(p *avl.Node[float64, *counter.Counter]) {
		if p.Value().Uint64() == highest {
			modes = append(modes, p.Key())
		}
	})
	return highest, modes
}

// Statistics - summary of all values added
func (t *Table) Statistics() (*Statistics, error) {
	return Summarise(t.Values())
}

// Destroy - release all entries
func (t *Table) Destroy() {
	t.tree.Destroy()
	t.total = 0
}
