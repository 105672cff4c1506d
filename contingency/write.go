// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contingency

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/numkit/avl"
	"github.com/bitmark-inc/numkit/counter"
)

const (
	cellFormat = "%-15.15s"
	separator  = "|"
)

// keeps the first write error
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) printf(format string, arguments ...interface{}) {
	if nil == w.err {
		_, w.err = fmt.Fprintf(w.w, format, arguments...)
	}
}

func (w *writer) cell(s string) {
	w.printf(cellFormat+separator, s)
}

// Write - print the table with percentages of each row total and a
// final row of column totals
func (t *Table) Write(w io.Writer, precision int) error {
	out := &writer{w: w}

	values := t.Values()

	out.cell("Rank")
	for _, v := range values {
		out.cell(v)
	}
	out.printf("Total\n")

	t.keys.InOrder(func(p *avl.Node[string, *row]) {
		attributes := p.Value().attributes
		n := t.RowTotal(p.Key())

		out.cell(p.Key())
		for _, v := range values {
			c := uint64(0)
			pc := 0.0
			if q := attributes.Find(v); nil != q {
				c = q.Value().Uint64()
				pc = q.Value().Percentage(n)
			}
			out.cell(fmt.Sprintf("%d (%.*f%%)", c, precision, pc))
		}
		out.printf("%d (%.*f%%)\n", n, precision, 100.0)
	})

	out.cell("Total")
	t.values.InOrder(func(p *avl.Node[string, *counter.Counter]) {
		c := p.Value()
		out.cell(fmt.Sprintf("%d (%.*f%%)", c.Uint64(), precision, c.Percentage(t.total)))
	})
	out.printf("%d (%.*f%%)\n", t.total, precision, 100.0)

	return out.err
}
