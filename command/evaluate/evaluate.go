// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/numkit/expression"
	"github.com/bitmark-inc/numkit/fault"
)

// evaluate the expression in arguments[0] with the assignments that
// follow it; configured variables are assigned first so the command
// line overrides them
func evaluate(log *logger.L, stdout io.Writer, stderr io.Writer, options *Configuration, arguments []string) error {

	if len(arguments) < 1 {
		return fault.ErrMissingArguments
	}

	expr, err := expression.Parse(arguments[0])
	if nil != err {
		return err
	}
	defer expr.Destroy()

	log.Debugf("expression: %q  variables: %v", arguments[0], expr.Variables().Names())

	assignments := make([]string, 0, len(options.Variables)+len(arguments)-1)
	assignments = append(assignments, options.Variables...)
	assignments = append(assignments, arguments[1:]...)

	warnings, err := expr.Assign(assignments, nil)
	for _, name := range warnings {
		log.Warnf("unused variable: %s", name)
		fmt.Fprintf(stderr, "warning: variable: %q is not in the expression\n", name)
	}
	if nil != err {
		return err
	}

	if options.Verbose {
		fmt.Fprintf(stdout, "%s\n", expr.Postfix())
	}

	result, err := expr.Evaluate()
	if nil != err {
		return err
	}
	log.Infof("%s = %g", expr.Variables(), result)

	_, err = fmt.Fprintf(stdout, "%.*f\n", options.Precision, result)
	return err
}
