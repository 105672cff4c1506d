// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/numkit/fault"
)

func pad(s string) string {
	return s + strings.Repeat(" ", 15-len(s)) + "|"
}

func run(options *Configuration, input string, files ...string) (string, error) {
	stdout := &bytes.Buffer{}
	err := tabulate(logger.New(category), strings.NewReader(input), stdout, options, files)
	return stdout.String(), err
}

func TestTabulateRows(t *testing.T) {
	options := &Configuration{Precision: 1, Delimiter: ";"}

	out, err := run(options, "yes,no\nyes,yes\n")
	assert.Nil(t, err, "tabulate error")

	expected := pad("Rank") + pad("no") + pad("yes") + "Total\n" +
		pad("yes") + pad("1 (50.0%)") + pad("1 (50.0%)") + "2 (100.0%)\n" +
		pad("Total") + pad("1 (50.0%)") + pad("1 (50.0%)") + "2 (100.0%)\n"
	assert.Equal(t, expected, out, "table")
}

func TestTabulateColumns(t *testing.T) {
	options := &Configuration{Precision: 0, Columns: true, Delimiter: "#"}

	out, err := run(options, "colour#red#blue#red")
	assert.Nil(t, err, "tabulate error")

	lines := strings.Split(out, "\n")
	assert.Equal(t, pad("Rank")+pad("blue")+pad("red")+"Total", lines[0], "header")
	assert.Equal(t, pad("colour")+pad("1 (33%)")+pad("2 (67%)")+"3 (100%)", lines[1], "row")
}

func TestTabulateFiles(t *testing.T) {
	d := t.TempDir()
	f1 := filepath.Join(d, "one.txt")
	f2 := filepath.Join(d, "two.txt")
	if err := os.WriteFile(f1, []byte("cat,small\n"), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	if err := os.WriteFile(f2, []byte("dog,large\n"), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}

	options := &Configuration{Precision: 1, Delimiter: ";"}

	out, err := run(options, "ignored,words", f1, f2)
	assert.Nil(t, err, "tabulate error")
	lines := strings.Split(out, "\n")
	assert.Equal(t, pad("Rank")+pad("large")+pad("small")+"Total", lines[0], "header")
	assert.Equal(t, pad("cat")+pad("0 (0.0%)")+pad("1 (100.0%)")+"1 (100.0%)", lines[1], "cat")
	assert.Equal(t, pad("dog")+pad("1 (100.0%)")+pad("0 (0.0%)")+"1 (100.0%)", lines[2], "dog")

	_, err = run(options, "", filepath.Join(d, "absent.txt"))
	assert.NotNil(t, err, "missing file")
}

func TestTabulateErrors(t *testing.T) {
	options := &Configuration{Precision: 1, Delimiter: ";;"}
	_, err := run(options, "a b")
	assert.Equal(t, fault.ErrInvalidDelimiter, errors.Cause(err), "long delimiter")

	options = &Configuration{Precision: 1, Delimiter: " "}
	_, err = run(options, "a b")
	assert.Equal(t, fault.ErrInvalidDelimiter, errors.Cause(err), "space delimiter")

	options = &Configuration{Precision: 1, Columns: true, Delimiter: ";"}
	_, err = run(options, ";a")
	assert.Equal(t, fault.ErrNoColumnKeys, errors.Cause(err), "no header")
}

func TestGetConfiguration(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "contingency.conf")
	content := `
local M = {}
M.columns = true
M.delimiter = "|"
M.logging = { file = arg.program .. "-test.log" }
return M
`
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}

	options, err := getConfiguration("contingency-table", fileName)
	assert.Nil(t, err, "configuration error")
	assert.True(t, options.Columns, "columns")
	assert.Equal(t, "|", options.Delimiter, "delimiter")
	assert.Equal(t, defaultPrecision, options.Precision, "default precision")
	assert.Equal(t, "contingency-table-test.log", options.Logging.File, "log file")
}
