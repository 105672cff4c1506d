// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Descriptive statistics program
//
// This program collects every number found in its input files into a
// frequency table and prints the mean, standard deviation, range,
// variance, coefficient of variation, median, quartiles and the most
// frequent values.  A Lua configuration file can set the defaults, for
// example:
//
//   local M = {}
//   M.precision = 3
//   M.format = "yaml"
//   M.logging = {
//       directory = "log",
//       file = arg.program .. ".log",
//       levels = { DEFAULT = "info" },
//   }
//   return M
package main
