// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/numkit/configuration"
	"github.com/bitmark-inc/numkit/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const usage = `usage: %s [OPTION]... a b n expression [a=5]...
computes the definite integral of expression in x from a to b using n
intervals by the right, left, middle, trapezoid and Simpson rules

  -h, --help               this message
  -V, --version            show version
  -p, --precision=N        printing precision of floating-point numbers, default is 6
  -c, --config-file=FILE   Lua configuration file

use -- before the arguments when a starts with '-'
`

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "precision", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		usageError(program, "getoptions error: %s", err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		fmt.Printf(usage, program)
		return
	}

	if len(arguments) < fixedArguments {
		usageError(program, "need to inform a, b, n and expression")
	}

	configurationFile := ""
	switch n := len(options["config-file"]); n {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		usageError(program, "only one config-file option is allowed, %d were detected", n)
	}

	masterConfiguration, err := getConfiguration(program, configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["precision"]) > 0 {
		masterConfiguration.Precision, err = configuration.ParsePrecision(options["precision"][0])
		if nil != err {
			usageError(program, "%s", err)
		}
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic logger setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", masterConfiguration)

	err = approximate(log, os.Stdout, os.Stderr, masterConfiguration, arguments)
	if nil != err {
		log.Errorf("approximate error: %s", err)
		fault.Criticalf("approximate: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
}

// report a command line error and exit with status 2
func usageError(program string, format string, arguments ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", program, fmt.Sprintf(format, arguments...))
	fmt.Fprintf(os.Stderr, "Try '%s --help' for more information.\n", program)
	exitwithstatus.Exit(2)
}
