// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The global "arg"
// table holds the configuration file name at index zero and any
// named variables supplied by the caller, e.g. arg.program
//
// also provides the common logging defaults for the tools
package configuration
