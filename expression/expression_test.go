// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package expression_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/numkit/expression"
	"github.com/bitmark-inc/numkit/fault"
)

func TestEvaluate(t *testing.T) {
	items := []struct {
		text  string
		value float64
	}{
		{"1+2", 3},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"2^3^2", 64},
		{"10-4-3", 3},
		{"8/2/2", 2},
		{"-3+5", 2},
		{"+3", 3},
		{"2*-3", -6},
		{"-2^2", -4},
		{"2^-1+1", 1.5},
		{"3,5+0.5", 4},
		{" 1.5e2 / 3 ", 50},
		{".5*4", 2},
		{"cos(0)", 1},
		{"ln(e)", 1},
		{"log(1000)", 3},
		{"log10(100)", 2},
		{"log2(8)", 3},
		{"sin(pi/2)*2", 2},
		{"-(2+3)", -5},
	}

	for i, item := range items {
		e, err := expression.Parse(item.text)
		if !assert.Nil(t, err, "%d: parse: %q", i, item.text) {
			continue
		}
		value, err := e.Evaluate()
		assert.Nil(t, err, "%d: evaluate: %q", i, item.text)
		assert.InDelta(t, item.value, value, 1e-12, "%d: value of: %q", i, item.text)
	}
}

func TestVariables(t *testing.T) {
	e, err := expression.Parse("a*x^2 + b*x + c")
	assert.Nil(t, err, "parse")

	assert.Equal(t, []string{"a", "b", "c", "x"}, e.Variables().Names(), "names")

	warnings, err := e.Assign([]string{"a=1,b=-3", "c=2", "x=5"}, nil)
	assert.Nil(t, err, "assign")
	assert.Empty(t, warnings, "warnings")

	value, err := e.Evaluate()
	assert.Nil(t, err, "evaluate")
	assert.Equal(t, 12.0, value, "value")

	// re-evaluate through the stable cell
	x, ok := e.Variables().Lookup("x")
	assert.True(t, ok, "lookup")
	*x = 1
	value, err = e.Evaluate()
	assert.Nil(t, err, "evaluate")
	assert.Equal(t, 0.0, value, "root")
}

func TestLongNames(t *testing.T) {
	e, err := expression.Parse("width*height2")
	assert.Nil(t, err, "parse")
	assert.Equal(t, []string{"height2", "width"}, e.Variables().Names(), "names")

	_, err = e.Assign([]string{"width=3,height2=4"}, nil)
	assert.Nil(t, err, "assign")
	value, err := e.Evaluate()
	assert.Nil(t, err, "evaluate")
	assert.Equal(t, 12.0, value, "value")
}

func TestPostfix(t *testing.T) {
	e, err := expression.Parse("2*x+cos(y)-log10(z)")
	assert.Nil(t, err, "parse")
	assert.Equal(t, "|2.000000|x*y|cos|+z|log|-", e.Postfix(), "postfix")

	e, err = expression.Parse("-ln(1)")
	assert.Nil(t, err, "parse")
	assert.Equal(t, "|0.000000||1.000000||ln|-", e.Postfix(), "postfix")
}

func TestParseErrors(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{"(1+2", fault.ErrUnbalancedParentheses},
		{"1+2)", fault.ErrUnbalancedParentheses},
		{"cos(1", fault.ErrUnbalancedParentheses},
		{"1 # 2", fault.ErrInvalidCharacter},
		{"x = 3", fault.ErrInvalidCharacter},
		{"cos 1", fault.ErrFunctionArgument},
		{"*3", fault.ErrMalformedExpression},
		{"2+*3", fault.ErrMalformedExpression},
		{".", fault.ErrInvalidNumber},
		{"", fault.ErrEmptyExpression},
		{"  ", fault.ErrEmptyExpression},
	}

	for i, item := range items {
		_, err := expression.Parse(item.text)
		assert.Equal(t, item.err, errors.Cause(err), "%d: parse: %q", i, item.text)
	}
}

func TestMalformed(t *testing.T) {
	for _, text := range []string{"1+", "2 3", "()"} {
		e, err := expression.Parse(text)
		if nil != err {
			assert.Equal(t, fault.ErrEmptyExpression, err, "parse: %q", text)
			continue
		}
		_, err = e.Evaluate()
		assert.Equal(t, fault.ErrMalformedExpression, err, "evaluate: %q", text)
	}
}

func TestDivisionByZero(t *testing.T) {
	e, err := expression.Parse("1/0")
	assert.Nil(t, err, "parse")
	value, err := e.Evaluate()
	assert.Nil(t, err, "evaluate")
	assert.True(t, math.IsInf(value, 1), "value: %f", value)
}
