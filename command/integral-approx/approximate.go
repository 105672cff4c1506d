// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/avl"
	"github.com/bitmark-inc/numkit/expression"
	"github.com/bitmark-inc/numkit/fault"
	"github.com/bitmark-inc/numkit/integral"
)

// the variable of integration
const integrationVariable = "x"

// the leading a b n expression arguments
const fixedArguments = 4

// a named approximation method
type rule struct {
	title       string
	approximate func(float64, float64, int) (float64, error)
}

type bounds struct {
	a float64
	b float64
	n int
}

func parseBounds(arguments []string) (*bounds, error) {
	a, err := strconv.ParseFloat(arguments[0], 64)
	if nil != err {
		return nil, errors.Wrapf(fault.ErrInvalidNumber, "a: %q", arguments[0])
	}
	b, err := strconv.ParseFloat(arguments[1], 64)
	if nil != err {
		return nil, errors.Wrapf(fault.ErrInvalidNumber, "b: %q", arguments[1])
	}
	n, err := strconv.Atoi(arguments[2])
	if nil != err {
		return nil, errors.Wrapf(fault.ErrInvalidNumber, "n: %q", arguments[2])
	}
	if n <= 0 {
		return nil, errors.Wrapf(fault.ErrInvalidIntervals, "n: %d", n)
	}
	return &bounds{a: a, b: b, n: n}, nil
}

// approximate the integral of arguments[3] over [a, b] with n
// intervals by each of the supported rules
func approximate(log *logger.L, stdout io.Writer, stderr io.Writer, options *Configuration, arguments []string) error {

	if len(arguments) < fixedArguments {
		return fault.ErrMissingArguments
	}

	r, err := parseBounds(arguments)
	if nil != err {
		return err
	}

	expr, err := expression.Parse(arguments[3])
	if nil != err {
		return err
	}
	defer expr.Destroy()

	f, err := integral.New(expr, integrationVariable)
	if nil != err {
		return err
	}

	// x is set by the integration, so need not be assigned
	controlled := avl.New[string, struct{}](strings.Compare, false)
	defer controlled.Destroy()
	controlled.InsertKey(integrationVariable)

	assignments := make([]string, 0, len(options.Variables)+len(arguments)-fixedArguments)
	assignments = append(assignments, options.Variables...)
	assignments = append(assignments, arguments[fixedArguments:]...)

	warnings, err := expr.Assign(assignments, controlled)
	for _, name := range warnings {
		log.Warnf("unused variable: %s", name)
		fmt.Fprintf(stderr, "warning: variable: %q is not in the expression\n", name)
	}
	if nil != err {
		return err
	}

	log.Debugf("a: %g  b: %g  n: %d  expression: %q", r.a, r.b, r.n, arguments[3])

	p := options.Precision
	fmt.Fprintf(stdout, "%s\n", expr.Postfix())
	fmt.Fprintf(stdout, "%.*f %.*f %d %.*f\n", p, r.a, p, r.b, r.n, p, integral.Step(r.a, r.b, r.n))

	rules := []rule{
		{"RI - LI = ", f.Difference},
		{"RI: ", f.Right},
		{"LI: ", f.Left},
		{"MI: ", f.Middle},
		{"Trapezoidal Rule: ", f.Trapezoid},
	}
	if 0 == r.n%2 {
		rules = append(rules, rule{"Simpson Rule: ", f.Simpson})
	}

	for _, item := range rules {
		value, err := item.approximate(r.a, r.b, r.n)
		if nil != err {
			return err
		}
		log.Infof("%s%g", item.title, value)
		if _, err := fmt.Fprintf(stdout, "%s%.*f\n", item.title, p, value); nil != err {
			return err
		}
	}
	return nil
}
