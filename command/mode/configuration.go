// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/configuration"
	"github.com/bitmark-inc/numkit/fault"
)

const (
	defaultPrecision = 2
	defaultFormat    = formatText
)

// output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Configuration - settings that a configuration file may override
type Configuration struct {
	Precision int                  `gluamapper:"precision" json:"precision"`
	Verbose   bool                 `gluamapper:"verbose" json:"verbose"`
	Format    string               `gluamapper:"format" json:"format"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration, fileName may be empty
func getConfiguration(program string, fileName string) (*Configuration, error) {

	options := &Configuration{
		Precision: defaultPrecision,
		Verbose:   false,
		Format:    defaultFormat,
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

	format, err := checkFormat(options.Format)
	if nil != err {
		return nil, err
	}
	options.Format = format

	return options, nil
}

func checkFormat(format string) (string, error) {
	format = strings.ToLower(format)
	switch format {
	case formatText, formatJSON, formatYAML:
		return format, nil
	default:
		return "", errors.Wrapf(fault.ErrInvalidFormat, "format: %q", format)
	}
}
