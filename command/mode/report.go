// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/numkit/frequency"
)

// the most frequent values
type modes struct {
	Count  uint64    `json:"count" yaml:"count"`
	Values []float64 `json:"values" yaml:"values"`
}

type report struct {
	Values     []float64             `json:"values,omitempty" yaml:"values,omitempty"`
	Statistics *frequency.Statistics `json:"statistics" yaml:"statistics"`
	Amodal     bool                  `json:"amodal" yaml:"amodal"`
	Modes      *modes                `json:"modes,omitempty" yaml:"modes,omitempty"`
}

// read numbers from each file, or from stdin if there are none, and
// print their statistics and modes
func summarise(log *logger.L, stdin io.Reader, stdout io.Writer, options *Configuration, files []string) error {

	table := frequency.New()
	defer table.Destroy()

	if 0 == len(files) {
		log.Debug("reading: stdin")
		if err := frequency.ReadNumbers(stdin, table.Add); nil != err {
			return err
		}
	}

	for _, name := range files {
		log.Debugf("reading: %q", name)
		if err := readFile(name, table); nil != err {
			return err
		}
	}

	log.Infof("values: %d  distinct: %d", table.Total(), table.Distinct())

	statistics, err := table.Statistics()
	if nil != err {
		return err
	}

	r := &report{
		Statistics: statistics,
	}
	if options.Verbose {
		r.Values = table.Values()
	}
	count, values := table.Modes()
	if 0 == len(values) {
		r.Amodal = true
	} else {
		r.Modes = &modes{
			Count:  count,
			Values: values,
		}
	}

	switch options.Format {
	case formatJSON:
		return printJson(stdout, r)
	case formatYAML:
		return printYaml(stdout, r)
	default:
		return printText(stdout, options.Precision, r)
	}
}

func readFile(name string, table *frequency.Table) error {
	f, err := os.Open(name)
	if nil != err {
		return errors.Wrap(err, "file not found")
	}
	defer f.Close()

	return frequency.ReadNumbers(f, table.Add)
}

func printText(handle io.Writer, precision int, r *report) error {
	b := &textWriter{w: handle, precision: precision}

	if nil != r.Values {
		b.printf("Values:")
		for _, v := range r.Values {
			b.printf(" %.*f", precision, v)
		}
		b.printf("\n")
	}

	s := r.Statistics
	b.line("Mean", s.Mean, "")
	b.line("SD", s.SD, "")
	b.line("Range", s.Range, "")
	b.line("Variance", s.Variance, "")
	b.line("CV", s.CV, "%")
	b.line("Median", s.Median, "")
	b.line("Q1", s.Q1, "")
	b.line("Q3", s.Q3, "")
	b.line("IQR", s.IQR, "")

	if r.Amodal {
		b.printf("Amodal\n")
	} else {
		for _, v := range r.Modes.Values {
			b.printf("%4d %.*f\n", r.Modes.Count, precision, v)
		}
	}
	return b.err
}

// keeps the first write error
type textWriter struct {
	w         io.Writer
	precision int
	err       error
}

func (b *textWriter) printf(format string, arguments ...interface{}) {
	if nil == b.err {
		_, b.err = fmt.Fprintf(b.w, format, arguments...)
	}
}

func (b *textWriter) line(title string, value float64, suffix string) {
	b.printf("%s: %.*f%s\n", title, b.precision, value, suffix)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}

func printYaml(handle io.Writer, message interface{}) error {

	encoder := yaml.NewEncoder(handle)
	encoder.SetIndent(2)
	if err := encoder.Encode(message); nil != err {
		return err
	}
	return encoder.Close()
}
