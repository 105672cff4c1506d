// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/contingency"
)

// read word pairs from each file, or from stdin if there are none,
// and print the cross tabulation
func tabulate(log *logger.L, stdin io.Reader, stdout io.Writer, options *Configuration, files []string) error {

	d, err := delimiter(options.Delimiter)
	if nil != err {
		return err
	}

	table, err := contingency.New(options.Columns, d)
	if nil != err {
		return err
	}
	defer table.Destroy()

	if 0 == len(files) {
		log.Debug("reading: stdin")
		if err := table.Read(stdin); nil != err {
			return err
		}
	}

	for _, name := range files {
		log.Debugf("reading: %q", name)
		if err := readFile(name, table); nil != err {
			return err
		}
	}

	log.Infof("keys: %d  values: %d  total: %d", len(table.Keys()), len(table.Values()), table.Total())

	return table.Write(stdout, options.Precision)
}

func readFile(name string, table *contingency.Table) error {
	f, err := os.Open(name)
	if nil != err {
		return errors.Wrap(err, "file not found")
	}
	defer f.Close()

	return table.Read(f)
}
