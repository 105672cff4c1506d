// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/configuration"
	"github.com/bitmark-inc/numkit/contingency"
	"github.com/bitmark-inc/numkit/fault"
)

const (
	defaultPrecision = 1
	defaultDelimiter = string(contingency.DefaultDelimiter)
)

// Configuration - settings that a configuration file may override
type Configuration struct {
	Precision int                  `gluamapper:"precision" json:"precision"`
	Columns   bool                 `gluamapper:"columns" json:"columns"`
	Delimiter string               `gluamapper:"delimiter" json:"delimiter"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration, fileName may be empty
func getConfiguration(program string, fileName string) (*Configuration, error) {

	options := &Configuration{
		Precision: defaultPrecision,
		Columns:   false,
		Delimiter: defaultDelimiter,
		Logging:   configuration.LogDefaults(program),
	}

	variables := map[string]string{
		"program": filepath.Base(program),
	}
	if err := configuration.Load(fileName, options, &options.Logging, variables); nil != err {
		return nil, err
	}

	if options.Precision < 0 {
		return nil, errors.Wrapf(fault.ErrInvalidPrecision, "precision: %d", options.Precision)
	}

	if _, err := delimiter(options.Delimiter); nil != err {
		return nil, err
	}

	return options, nil
}

// the record delimiter must be a single character
func delimiter(s string) (rune, error) {
	if 1 != utf8.RuneCountInString(s) {
		return 0, errors.Wrapf(fault.ErrInvalidDelimiter, "delimiter: %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
