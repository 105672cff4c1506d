// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
)

// basic defaults (the log directory is relative to DataDirectory())
const (
	applicationName = "numkit"

	defaultLogDirectory = "log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// LogDefaults - the logging setup used when a configuration file
// does not override it
func LogDefaults(program string) logger.Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return logger.Configuration{
		Directory: defaultLogDirectory,
		File:      filepath.Base(program) + ".log",
		Size:      defaultLogSize,
		Count:     defaultLogCount,
		Console:   false,
		Levels:    levels,
	}
}

// DataDirectory - per user directory that relative log paths are
// resolved against
func DataDirectory() string {
	dir, err := os.UserCacheDir()
	if nil != err {
		dir = os.TempDir()
	}
	return filepath.Join(dir, applicationName)
}

// PrepareLogging - make the log directory absolute with respect to
// base, check the file is a plain name and create the directory
func PrepareLogging(logging *logger.Configuration, base string) error {
	switch filepath.Dir(logging.File) {
	case "", ".":
	default:
		return errors.Errorf("log file: %q is not plain name", logging.File)
	}

	logging.Directory = EnsureAbsolute(base, logging.Directory)
	return os.MkdirAll(logging.Directory, 0700)
}
