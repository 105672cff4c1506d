// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the final messages of a failing tool
var log *logger.L

// destination used before Initialise or after Finalise
var fallback io.Writer = os.Stderr

// Initialise - open the PANIC channel
//
// logger.Initialise must have been called first
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - record why a tool is about to exit, tagged with the
// caller's source position
func Criticalf(format string, arguments ...interface{}) {
	critical(located(2, format, arguments...))
}

// Panicf - record a broken invariant then panic
func Panicf(format string, arguments ...interface{}) {
	critical(located(2, format, arguments...))
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	critical(message)
	if nil != log {
		time.Sleep(100 * time.Millisecond) // let the logger drain
	}
	panic(message)
}

// PanicIfError - panic with "<operation> failed with error: <err>" if
// err is not nil
func PanicIfError(operation string, err error) {
	if nil == err {
		return
	}
	Panic(fmt.Sprintf("%s failed with error: %v", operation, err))
}

// prefix a message with the file and line skip frames up
func located(skip int, format string, arguments ...interface{}) string {
	message := fmt.Sprintf(format, arguments...)
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return message
	}
	return fmt.Sprintf("(%q:%d) %s", file, line, message)
}

func critical(message string) {
	if nil == log {
		fmt.Fprintf(fallback, "*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}
