// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package expression

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/fault"
	"github.com/bitmark-inc/numkit/symtab"
)

// Expression - compiled postfix code and its variables
type Expression struct {
	postfix   []token
	variables *symtab.Table
	stack     []float64
}

// what the previous item was, to detect unary signs
type previous int

const (
	atStart   previous = iota
	atOpen    previous = iota
	atOperand previous = iota
	atBinary  previous = iota
)

// pending operator or open parenthesis
type pending struct {
	operator byte      // 0 for an open parenthesis
	function *function // non-nil for "name("
}

func (s pending) isOpen() bool {
	return 0 == s.operator
}

// Parse - compile an infix expression
func Parse(text string) (*Expression, error) {

	e := &Expression{
		postfix:   make([]token, 0, len(text)),
		variables: symtab.New(),
	}
	stack := make([]pending, 0, 16)
	prev := atStart

	for i := 0; i < len(text); {
		c := text[i]

		switch {
		case isSpace(c):
			i += 1

		case isDigit(c) || isDecimalSeparator(c):
			n, width, err := scanNumber(text[i:])
			if nil != err {
				return nil, errors.Wrapf(err, "at position: %d", i)
			}
			e.emit(token{kind: numberToken, number: n})
			i += width
			prev = atOperand

		case isLetter(c):
			j := i + 1
			for j < len(text) && (isLetter(text[j]) || isDigit(text[j])) {
				j += 1
			}
			name := text[i:j]
			i = j

			if value, ok := constants[name]; ok {
				e.emit(token{kind: numberToken, number: value})
				prev = atOperand
				break
			}

			fn, ok := functions[name]
			if !ok {
				e.emit(token{kind: variableToken, cell: e.variables.Cell(name)})
				prev = atOperand
				break
			}

			for i < len(text) && isSpace(text[i]) {
				i += 1
			}
			if i >= len(text) || '(' != text[i] {
				return nil, errors.Wrapf(fault.ErrFunctionArgument, "function: %s", name)
			}
			i += 1
			stack = append(stack, pending{function: fn})
			prev = atOpen

		case isOperator(c):
			i += 1
			if atOperand != prev {
				if '+' != c && '-' != c {
					return nil, errors.Wrapf(fault.ErrMalformedExpression, "operator: %q without left operand", c)
				}
				// unary sign: 0 ± operand
				e.emit(token{kind: numberToken, number: 0})
				stack = append(stack, pending{operator: c})
				prev = atBinary
				break
			}

			// operate first with higher or equal priority
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.isOpen() || priority(c) > priority(top.operator) {
					break
				}
				e.emit(token{kind: operatorToken, operator: top.operator})
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, pending{operator: c})
			prev = atBinary

		case '(' == c:
			i += 1
			stack = append(stack, pending{})
			prev = atOpen

		case ')' == c:
			i += 1
			for {
				if 0 == len(stack) {
					return nil, errors.Wrapf(fault.ErrUnbalancedParentheses, "extra: ')' at position: %d", i-1)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.isOpen() {
					if nil != top.function {
						e.emit(token{kind: functionToken, function: top.function})
					}
					break
				}
				e.emit(token{kind: operatorToken, operator: top.operator})
			}
			prev = atOperand

		default:
			return nil, errors.Wrapf(fault.ErrInvalidCharacter, "%q at position: %d", c, i)
		}
	}

	// put all remaining operators
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.isOpen() {
			return nil, errors.Wrap(fault.ErrUnbalancedParentheses, "missing: ')'")
		}
		e.emit(token{kind: operatorToken, operator: top.operator})
	}

	if 0 == len(e.postfix) {
		return nil, fault.ErrEmptyExpression
	}
	return e, nil
}

func (e *Expression) emit(t token) {
	e.postfix = append(e.postfix, t)
}

// digits [separator digits] [exponent]
func scanNumber(s string) (float64, int, error) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i += 1
	}
	if i < len(s) && isDecimalSeparator(s[i]) {
		i += 1
		for i < len(s) && isDigit(s[i]) {
			i += 1
		}
	}

	// exponent only when digits follow
	if i < len(s) && ('e' == s[i] || 'E' == s[i]) {
		j := i + 1
		if j < len(s) && ('+' == s[j] || '-' == s[j]) {
			j += 1
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j += 1
			}
			i = j
		}
	}

	text := strings.Replace(s[:i], ",", ".", 1)
	n, err := strconv.ParseFloat(text, 64)
	if nil != err {
		return 0, 0, errors.Wrapf(fault.ErrInvalidNumber, "%q", s[:i])
	}
	return n, i, nil
}
