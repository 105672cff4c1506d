// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/numkit/fault"
)

const sample = "2 4 4 4\n5 5 7 9\n"

func run(options *Configuration, input string, files ...string) (string, error) {
	stdout := &bytes.Buffer{}
	err := summarise(logger.New(category), strings.NewReader(input), stdout, options, files)
	return stdout.String(), err
}

func TestSummariseText(t *testing.T) {
	options := &Configuration{Precision: 2, Format: formatText}

	out, err := run(options, sample)
	assert.Nil(t, err, "summarise error")

	expected := "Mean: 5.00\n" +
		"SD: 2.14\n" +
		"Range: 7.00\n" +
		"Variance: 4.58\n" +
		"CV: 42.80%\n" +
		"Median: 4.50\n" +
		"Q1: 4.00\n" +
		"Q3: 6.00\n" +
		"IQR: 2.00\n" +
		"   3 4.00\n"
	assert.Equal(t, expected, out, "text report")
}

func TestSummariseVerboseBimodal(t *testing.T) {
	options := &Configuration{Precision: 1, Verbose: true, Format: formatText}

	out, err := run(options, "3 1 3 2 1")
	assert.Nil(t, err, "summarise error")

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Values: 1.0 1.0 2.0 3.0 3.0", lines[0], "values")
	assert.Equal(t, "   2 1.0", lines[10], "first mode")
	assert.Equal(t, "   2 3.0", lines[11], "second mode")
}

func TestSummariseAmodal(t *testing.T) {
	options := &Configuration{Precision: 0, Format: formatText}

	out, err := run(options, "1 2 3")
	assert.Nil(t, err, "summarise error")
	assert.True(t, strings.HasSuffix(out, "IQR: 2\nAmodal\n"), "amodal: %q", out)
}

func TestSummariseJSON(t *testing.T) {
	options := &Configuration{Precision: 2, Format: formatJSON}

	out, err := run(options, sample)
	assert.Nil(t, err, "summarise error")

	r := report{}
	err = json.Unmarshal([]byte(out), &r)
	assert.Nil(t, err, "unmarshal error")
	assert.Nil(t, r.Values, "values only when verbose")
	assert.Equal(t, 8, r.Statistics.Count, "count")
	assert.Equal(t, 2.14, r.Statistics.SD, "sd")
	assert.False(t, r.Amodal, "amodal")
	assert.Equal(t, uint64(3), r.Modes.Count, "mode count")
	assert.Equal(t, []float64{4}, r.Modes.Values, "mode values")
}

func TestSummariseYAML(t *testing.T) {
	options := &Configuration{Precision: 2, Verbose: true, Format: formatYAML}

	out, err := run(options, "1 2")
	assert.Nil(t, err, "summarise error")

	r := report{}
	err = yaml.Unmarshal([]byte(out), &r)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, []float64{1, 2}, r.Values, "values")
	assert.Equal(t, 1.5, r.Statistics.Mean, "mean")
	assert.True(t, r.Amodal, "amodal")
	assert.Nil(t, r.Modes, "no modes")
}

func TestSummariseFiles(t *testing.T) {
	d := t.TempDir()
	f1 := filepath.Join(d, "one.txt")
	f2 := filepath.Join(d, "two.txt")
	if err := os.WriteFile(f1, []byte("height: 4\nheight: 4\n"), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	if err := os.WriteFile(f2, []byte("height: 2\n"), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}

	options := &Configuration{Precision: 0, Verbose: true, Format: formatText}

	out, err := run(options, "99", f1, f2)
	assert.Nil(t, err, "summarise error")
	assert.True(t, strings.HasPrefix(out, "Values: 2 4 4\n"), "stdin ignored: %q", out)

	_, err = run(options, "", filepath.Join(d, "absent.txt"))
	assert.NotNil(t, err, "missing file")
}

func TestSummariseNoData(t *testing.T) {
	options := &Configuration{Precision: 2, Format: formatText}

	_, err := run(options, "no numbers here")
	assert.Equal(t, fault.ErrNoData, err, "no data")
}

func TestCheckFormat(t *testing.T) {
	format, err := checkFormat("JSON")
	assert.Nil(t, err, "json")
	assert.Equal(t, formatJSON, format, "lower case")

	_, err = checkFormat("xml")
	assert.Equal(t, fault.ErrInvalidFormat, errors.Cause(err), "xml")
}
