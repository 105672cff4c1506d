// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceFactor         = InvariantError("balance factor is inconsistent")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrEmptyExpression       = InvalidError("expression is empty")
	ErrFunctionArgument      = InvalidError("function argument must be in parentheses")
	ErrInvalidCharacter      = InvalidError("invalid character in expression")
	ErrInvalidDelimiter      = InvalidError("delimiter must be one non-space character")
	ErrInvalidFormat         = InvalidError("output format is invalid")
	ErrInvalidIntervals      = InvalidError("number of intervals must be positive")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidNumber         = InvalidError("invalid number")
	ErrInvalidPrecision      = InvalidError("precision must not be negative")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrKeyOrder              = InvariantError("keys are out of order")
	ErrMalformedExpression   = InvalidError("malformed expression")
	ErrMissingArguments      = InvalidError("missing arguments")
	ErrMissingEquals         = InvalidError("equality \"=\" not found")
	ErrMissingValues         = InvalidError("missing values")
	ErrMissingVariableX      = NotFoundError("variable x not found")
	ErrNoData                = ProcessError("no data")
	ErrNoColumnKeys          = InvalidError("column mode needs keys before the first delimiter")
	ErrNodeCount             = InvariantError("node count is inconsistent")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrOddIntervals          = InvalidError("simpson rule needs an even number of intervals")
	ErrParentLink            = InvariantError("parent link is inconsistent")
	ErrUnbalancedParentheses = InvalidError("unbalanced parentheses")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := errors.Cause(e).(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := errors.Cause(e).(InvariantError); return ok }
func IsErrNotFound(e error) bool  { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := errors.Cause(e).(ProcessError); return ok }
