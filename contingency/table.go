// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contingency - cross tabulation of key/value word pairs
package contingency

import (
	"strings"

	"github.com/bitmark-inc/numkit/avl"
	"github.com/bitmark-inc/numkit/counter"
	"github.com/bitmark-inc/numkit/fault"
)

// DefaultDelimiter - separates records in column mode
const DefaultDelimiter = ';'

// one row of the table
type row struct {
	count      counter.Counter                     // occurrences of the key word
	attributes *avl.Tree[string, *counter.Counter] // value → count
}

// destroys the attribute tree of a removed row
type rowReleaser struct{}

func (rowReleaser) ReleaseKey(string) {}
func (rowReleaser) ReleaseValue(r *row) {
	r.attributes.Destroy()
}

// Table - histograms of keys (rows) and values (columns)
type Table struct {
	columns   bool
	delimiter rune

	keys   *avl.Tree[string, *row]
	values *avl.Tree[string, *counter.Counter]
	total  uint64

	// reader state
	key     string
	haveKey bool
	header  []string
	column  int
	inBody  bool
}

// New - create an empty table
//
// in row mode words alternate key then value; in column mode the words
// before the first delimiter are the keys and each following record
// gives one value per key in order
func New(columns bool, delimiter rune) (*Table, error) {
	if ' ' == delimiter || '\t' == delimiter || '\n' == delimiter || '\r' == delimiter {
		return nil, fault.ErrInvalidDelimiter
	}
	keys := avl.New[string, *row](strings.Compare, false)
	keys.SetReleaser(rowReleaser{})
	return &Table{
		columns:   columns,
		delimiter: delimiter,
		keys:      keys,
		values:    avl.New[string, *counter.Counter](strings.Compare, false),
	}, nil
}

// count a key word
func (t *Table) addKey(key string) {
	if p := t.keys.Find(key); nil != p {
		p.Value().count.Increment()
		return
	}
	t.keys.Insert(key, &row{
		count:      1,
		attributes: avl.New[string, *counter.Counter](strings.Compare, false),
	})
}

// count a value word and pair it with its key
func (t *Table) addValue(key string, value string) {
	if p := t.values.Find(value); nil != p {
		p.Value().Increment()
	} else {
		t.values.Insert(value, counter.New())
	}
	t.total += 1

	r := t.keys.Find(key).Value()
	if p := r.attributes.Find(value); nil != p {
		p.Value().Increment()
	} else {
		r.attributes.Insert(value, counter.New())
	}
}

// Keys - row labels in ascending order
func (t *Table) Keys() []string {
	return t.keys.Keys()
}

// Values - column labels in ascending order
func (t *Table) Values() []string {
	return t.values.Keys()
}

// KeyCount - number of times a key word was read
func (t *Table) KeyCount(key string) uint64 {
	p := t.keys.Find(key)
	if nil == p {
		return 0
	}
	return p.Value().count.Uint64()
}

// ValueTotal - number of pairs with this value
func (t *Table) ValueTotal(value string) uint64 {
	p := t.values.Find(value)
	if nil == p {
		return 0
	}
	return p.Value().Uint64()
}

// Cell - number of pairs with this key and value
func (t *Table) Cell(key string, value string) uint64 {
	p := t.keys.Find(key)
	if nil == p {
		return 0
	}
	q := p.Value().attributes.Find(value)
	if nil == q {
		return 0
	}
	return q.Value().Uint64()
}

// RowTotal - number of pairs with this key
func (t *Table) RowTotal(key string) uint64 {
	p := t.keys.Find(key)
	if nil == p {
		return 0
	}
	n := counter.Counter(0)
	p.Value().attributes.InOrder(func(q *avl.Node[string, *counter.Counter]) {
		n.Add(q.Value().Uint64())
	})
	return n.Uint64()
}

// Total - number of pairs
func (t *Table) Total() uint64 {
	return t.total
}

// Destroy - release all rows and columns
func (t *Table) Destroy() {
	t.keys.Destroy()
	t.values.Destroy()
	t.total = 0
}
