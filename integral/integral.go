// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package integral - numerical approximation of definite integrals
package integral

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/expression"
	"github.com/bitmark-inc/numkit/fault"
)

// Integrand - an expression in one integration variable
type Integrand struct {
	expr *expression.Expression
	x    *float64
}

// New - bind the integration variable of an expression
func New(expr *expression.Expression, variable string) (*Integrand, error) {
	x, ok := expr.Variables().Lookup(variable)
	if !ok {
		return nil, errors.Wrapf(fault.ErrMissingVariableX, "variable: %s", variable)
	}
	return &Integrand{
		expr: expr,
		x:    x,
	}, nil
}

// At - value of the integrand at x
func (f *Integrand) At(x float64) (float64, error) {
	*f.x = x
	return f.expr.Evaluate()
}

// Step - width of one of n intervals
func Step(a float64, b float64, n int) float64 {
	return (b - a) / float64(n)
}

func check(n int) error {
	if n <= 0 {
		return fault.ErrInvalidIntervals
	}
	return nil
}

// sum f over n points starting at x0
func (f *Integrand) sum(x0 float64, step float64, n int) (float64, error) {
	total := 0.0
	x := x0
	for i := 0; i < n; i += 1 {
		y, err := f.At(x)
		if nil != err {
			return 0, err
		}
		total += y
		x += step
	}
	return total, nil
}

// Difference - step × (f(b) - f(a))
func (f *Integrand) Difference(a float64, b float64, n int) (float64, error) {
	if err := check(n); nil != err {
		return 0, err
	}
	fb, err := f.At(b)
	if nil != err {
		return 0, err
	}
	fa, err := f.At(a)
	if nil != err {
		return 0, err
	}
	return Step(a, b, n) * (fb - fa), nil
}

// Right - right Riemann sum
func (f *Integrand) Right(a float64, b float64, n int) (float64, error) {
	if err := check(n); nil != err {
		return 0, err
	}
	step := Step(a, b, n)
	total, err := f.sum(a+step, step, n)
	return total * step, err
}

// Left - left Riemann sum
func (f *Integrand) Left(a float64, b float64, n int) (float64, error) {
	if err := check(n); nil != err {
		return 0, err
	}
	step := Step(a, b, n)
	total, err := f.sum(a, step, n)
	return total * step, err
}

// Middle - midpoint rule
func (f *Integrand) Middle(a float64, b float64, n int) (float64, error) {
	if err := check(n); nil != err {
		return 0, err
	}
	step := Step(a, b, n)
	total, err := f.sum(a+step/2, step, n)
	return total * step, err
}

// Trapezoid - trapezoidal rule
func (f *Integrand) Trapezoid(a float64, b float64, n int) (float64, error) {
	if err := check(n); nil != err {
		return 0, err
	}
	step := Step(a, b, n)
	inner, err := f.sum(a+step, step, n-1)
	if nil != err {
		return 0, err
	}
	fa, err := f.At(a)
	if nil != err {
		return 0, err
	}
	fb, err := f.At(b)
	if nil != err {
		return 0, err
	}
	return (fa/2 + inner + fb/2) * step, nil
}

// Simpson - Simpson's rule, n must be even
func (f *Integrand) Simpson(a float64, b float64, n int) (float64, error) {
	if err := check(n); nil != err {
		return 0, err
	}
	if 0 != n%2 {
		return 0, fault.ErrOddIntervals
	}
	step := Step(a, b, n)
	total, err := f.At(a)
	if nil != err {
		return 0, err
	}
	for i := 1; i < n; i += 1 {
		y, err := f.At(a + float64(i)*step)
		if nil != err {
			return 0, err
		}
		if 0 != i%2 {
			total += 4 * y
		} else {
			total += 2 * y
		}
	}
	fb, err := f.At(b)
	if nil != err {
		return 0, err
	}
	total += fb
	return total * step / 3, nil
}
