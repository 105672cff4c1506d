// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/fault"
)

// Load - read an optional configuration file into config then fix up
// logging
//
// with no file, relative log paths are under DataDirectory(),
// otherwise they are relative to the configuration file's directory
func Load(fileName string, config interface{}, logging *logger.Configuration, variables map[string]string) error {

	base := DataDirectory()
	if "" != fileName {
		fileName, err := filepath.Abs(filepath.Clean(fileName))
		if nil != err {
			return err
		}
		if err := ParseConfigurationFile(fileName, config, variables); nil != err {
			return err
		}
		base = filepath.Dir(fileName)
	}

	return PrepareLogging(logging, base)
}

// ParsePrecision - number of decimal places from an option value
func ParsePrecision(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if nil != err || n < 0 {
		return 0, errors.Wrapf(fault.ErrInvalidPrecision, "precision: %q", s)
	}
	return n, nil
}
