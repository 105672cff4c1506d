// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package expression

import (
	"fmt"
	"math"
	"strings"

	"github.com/bitmark-inc/numkit/avl"
	"github.com/bitmark-inc/numkit/fault"
	"github.com/bitmark-inc/numkit/symtab"
)

// Evaluate - run the postfix code with the current variable values
func (e *Expression) Evaluate() (float64, error) {
	stack := e.stack[:0]

	for _, t := range e.postfix {
		switch t.kind {
		case numberToken:
			stack = append(stack, t.number)

		case variableToken:
			stack = append(stack, *t.cell)

		case functionToken:
			n := len(stack)
			if n < 1 {
				return 0, fault.ErrMalformedExpression
			}
			stack[n-1] = t.function.f(stack[n-1])

		case operatorToken:
			n := len(stack)
			if n < 2 {
				return 0, fault.ErrMalformedExpression
			}
			a := stack[n-2]
			b := stack[n-1]
			switch t.operator {
			case '+':
				a += b
			case '-':
				a -= b
			case '*':
				a *= b
			case '/':
				a /= b
			case '^':
				a = math.Pow(a, b)
			}
			stack[n-2] = a
			stack = stack[:n-1]
		}
	}
	e.stack = stack

	if 1 != len(stack) {
		return 0, fault.ErrMalformedExpression
	}
	return stack[0], nil
}

// Postfix - the compiled code: operators bare, numbers and functions
// between bars and variables by name
func (e *Expression) Postfix() string {
	var b strings.Builder
	for _, t := range e.postfix {
		switch t.kind {
		case operatorToken:
			b.WriteByte(t.operator)
		case numberToken:
			fmt.Fprintf(&b, "|%f|", t.number)
		case functionToken:
			fmt.Fprintf(&b, "|%s|", t.function.name)
		case variableToken:
			name, _ := e.variables.Name(t.cell)
			b.WriteString(name)
		}
	}
	return b.String()
}

// Variables - the symbol table holding the variable cells
func (e *Expression) Variables() *symtab.Table {
	return e.variables
}

// Assign - set variables from "name=value" lists, see symtab.Table.Assign
func (e *Expression) Assign(assignments []string, controlled *avl.Tree[string, struct{}]) ([]string, error) {
	return e.variables.Assign(assignments, controlled)
}

// Destroy - release the variables
func (e *Expression) Destroy() {
	e.variables.Destroy()
	e.postfix = nil
	e.stack = nil
}
