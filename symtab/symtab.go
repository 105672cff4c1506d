// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package symtab - variable names bound to stable numeric cells
//
// every name maps to one cell for the lifetime of the table so that
// compiled expressions can hold the cell directly; a reverse index
// maps a cell back to its name for printing
package symtab

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/avl"
	"github.com/bitmark-inc/numkit/fault"
)

// Table - forward and reverse variable index
type Table struct {
	names *avl.Tree[string, *float64]
	cells *avl.Tree[*float64, string]
}

// order cells by address, heap objects do not move
func compareCell(a *float64, b *float64) int {
	x := uintptr(unsafe.Pointer(a))
	y := uintptr(unsafe.Pointer(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func printName[V any](w io.Writer, name string, _ V, _ bool) {
	io.WriteString(w, name)
}

// New - create an empty symbol table
func New() *Table {
	return &Table{
		names: avl.New[string, *float64](strings.Compare, false),
		cells: avl.New[*float64, string](compareCell, false),
	}
}

// Cell - the cell for a name, created on first use
func (t *Table) Cell(name string) *float64 {
	if p := t.names.Find(name); nil != p {
		return p.Value()
	}
	cell := new(float64)
	t.names.Insert(name, cell)
	t.cells.Insert(cell, name)
	return cell
}

// Lookup - the cell for an existing name
func (t *Table) Lookup(name string) (*float64, bool) {
	p := t.names.Find(name)
	if nil == p {
		return nil, false
	}
	return p.Value(), true
}

// Name - the name that owns a cell
func (t *Table) Name(cell *float64) (string, bool) {
	p := t.cells.Find(cell)
	if nil == p {
		return "", false
	}
	return p.Value(), true
}

// Names - all names in ascending order
func (t *Table) Names() []string {
	return t.names.Keys()
}

// Count - number of names
func (t *Table) Count() int {
	return t.names.Count()
}

// Assign - set cells from "name=value" lists
//
// each argument is a comma separated list of assignments.  Names not
// in the table are returned as warnings.  Every name in the table must
// either be assigned or be present in controlled (which may be nil),
// otherwise the error lists the unassigned names.
func (t *Table) Assign(assignments []string, controlled *avl.Tree[string, struct{}]) ([]string, error) {

	missing := avl.New[string, struct{}](strings.Compare, false)
	missing.SetPrint(printName[struct{}], ", ")
	defer missing.Empty()

	avl.CopyKeys(missing, t.names)
	if nil != controlled {
		avl.Diff(missing, controlled, avl.ReleaseNone)
	}

	warnings := []string{}
	for _, list := range assignments {
		for _, item := range strings.Split(list, ",") {
			if "" == item {
				continue
			}
			name, value, err := split(item)
			if nil != err {
				return warnings, err
			}

			cell, ok := t.Lookup(name)
			if !ok {
				warnings = append(warnings, name)
				continue
			}
			*cell = value
			_ = missing.Remove(name, avl.ReleaseNone)
		}
	}

	if !missing.IsEmpty() {
		buffer := &bytes.Buffer{}
		if err := missing.Infix(buffer); nil != err {
			return warnings, err
		}
		return warnings, errors.Wrapf(fault.ErrMissingValues, "for: %s", buffer.String())
	}
	return warnings, nil
}

func split(item string) (string, float64, error) {
	n := strings.IndexByte(item, '=')
	if n <= 0 || n == len(item)-1 {
		return "", 0, errors.Wrapf(fault.ErrMissingEquals, "in: %q", item)
	}
	name := item[:n]
	value, err := strconv.ParseFloat(item[n+1:], 64)
	if nil != err {
		return "", 0, errors.Wrapf(fault.ErrInvalidNumber, "%s: %q", name, item[n+1:])
	}
	return name, value, nil
}

// Destroy - release all names and cells
func (t *Table) Destroy() {
	t.names.Destroy()
	t.cells.Empty()
}

// String - the current assignments
func (t *Table) String() string {
	s := make([]string, 0, t.names.Count())
	t.names.InOrder(func(p *avl.Node[string, *float64]) {
		s = append(s, fmt.Sprintf("%s=%g", p.Key(), *p.Value()))
	})
	return strings.Join(s, ",")
}
