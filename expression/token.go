// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package expression

import (
	"math"
)

type kind uint8

const (
	operatorToken kind = iota
	numberToken   kind = iota
	functionToken kind = iota
	variableToken kind = iota
)

type function struct {
	name string // as shown in postfix output
	f    func(float64) float64
}

var functions = map[string]*function{
	"cos":   {name: "cos", f: math.Cos},
	"sin":   {name: "sin", f: math.Sin},
	"tan":   {name: "tan", f: math.Tan},
	"ln":    {name: "ln", f: math.Log},
	"log":   {name: "log", f: math.Log10},
	"log10": {name: "log", f: math.Log10},
	"log2":  {name: "log2", f: math.Log2},
}

var constants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
}

// a single item of postfix code
type token struct {
	kind     kind
	operator byte
	number   float64
	function *function
	cell     *float64
}

func priority(operator byte) int {
	switch operator {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	default:
		return 0
	}
}

func isOperator(c byte) bool {
	return 0 != priority(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDecimalSeparator(c byte) bool {
	return '.' == c || ',' == c
}

func isSpace(c byte) bool {
	return ' ' == c || '\t' == c || '\n' == c || '\r' == c
}
