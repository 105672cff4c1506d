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

const usage = `usage: %s [OPTION]... [FILE]...
prints the contingency table of the key and value words in each FILE,
or standard input if none is given

  -h, --help               this message
  -V, --version            show version
  -c, --column             the first record holds the keys, each following
                           record one value per key
  -d, --delimiter=CHAR     record delimiter for --column, default is ';'
  -p, --precision=N        printing precision of percentages, default is 1
  -F, --config-file=FILE   Lua configuration file
`

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "column", HasArg: getoptions.NO_ARGUMENT, Short: 'c'},
		{Long: "delimiter", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "precision", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'F'},
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
	if len(options["column"]) > 0 {
		masterConfiguration.Columns = true
	}
	if len(options["delimiter"]) > 0 {
		if _, err := delimiter(options["delimiter"][0]); nil != err {
			usageError(program, "%s", err)
		}
		masterConfiguration.Delimiter = options["delimiter"][0]
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

	err = tabulate(log, os.Stdin, os.Stdout, masterConfiguration, arguments)
	if nil != err {
		log.Errorf("tabulate error: %s", err)
		fault.Criticalf("tabulate: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
}

// report a command line error and exit with status 2
func usageError(program string, format string, arguments ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", program, fmt.Sprintf(format, arguments...))
	fmt.Fprintf(os.Stderr, "Try '%s --help' for more information.\n", program)
	exitwithstatus.Exit(2)
}
