// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package symtab_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/numkit/avl"
	"github.com/bitmark-inc/numkit/fault"
	"github.com/bitmark-inc/numkit/symtab"
)

func makeTable(names ...string) *symtab.Table {
	t := symtab.New()
	for _, name := range names {
		t.Cell(name)
	}
	return t
}

func TestCellStability(t *testing.T) {
	table := symtab.New()

	x := table.Cell("x")
	y := table.Cell("y")
	for i := 0; i < 100; i += 1 {
		table.Cell(strings.Repeat("v", i+1))
	}

	assert.Same(t, x, table.Cell("x"), "x moved")
	assert.Same(t, y, table.Cell("y"), "y moved")
	assert.NotSame(t, x, y, "shared cell")
	assert.Equal(t, 102, table.Count(), "count")

	name, ok := table.Name(y)
	assert.True(t, ok, "reverse lookup")
	assert.Equal(t, "y", name, "name")

	_, ok = table.Name(new(float64))
	assert.False(t, ok, "foreign cell")

	_, ok = table.Lookup("z")
	assert.False(t, ok, "absent name")
}

func TestAssign(t *testing.T) {
	table := makeTable("a", "b", "c")

	warnings, err := table.Assign([]string{"a=5,b=2.5", "c=-1", "d=7"}, nil)
	assert.Nil(t, err, "assign error")
	assert.Equal(t, []string{"d"}, warnings, "warnings")

	a, _ := table.Lookup("a")
	b, _ := table.Lookup("b")
	c, _ := table.Lookup("c")
	assert.Equal(t, 5.0, *a, "a")
	assert.Equal(t, 2.5, *b, "b")
	assert.Equal(t, -1.0, *c, "c")
	assert.Equal(t, "a=5,b=2.5,c=-1", table.String(), "string")
}

func TestAssignMissingValues(t *testing.T) {
	table := makeTable("x", "y", "z")

	controlled := avl.New[string, struct{}](strings.Compare, false)
	controlled.InsertKey("x")

	_, err := table.Assign([]string{}, controlled)
	assert.Equal(t, fault.ErrMissingValues, errors.Cause(err), "cause")
	assert.Contains(t, err.Error(), "y, z", "missing list")

	_, err = table.Assign([]string{"y=1", "z=2"}, controlled)
	assert.Nil(t, err, "all assigned")

	// controlled keys are not modified
	assert.Equal(t, []string{"x"}, controlled.Keys(), "controlled")
}

func TestAssignErrors(t *testing.T) {
	table := makeTable("a")

	for _, s := range []string{"a", "a=", "=4"} {
		_, err := table.Assign([]string{s}, nil)
		assert.Equal(t, fault.ErrMissingEquals, errors.Cause(err), "assignment: %q", s)
	}

	_, err := table.Assign([]string{"a=five"}, nil)
	assert.Equal(t, fault.ErrInvalidNumber, errors.Cause(err), "bad number")
}

func TestDestroy(t *testing.T) {
	table := makeTable("p", "q")
	table.Destroy()
	assert.Equal(t, 0, table.Count(), "count")
	assert.Equal(t, []string{}, table.Names(), "names")
}
