// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package expression - infix arithmetic compiled to postfix form
//
// supported syntax:
//
//   numbers    12  3.5  3,5  1e-3
//   constants  e  pi
//   variables  alphanumeric names starting with a letter
//   functions  cos sin tan ln log log10 log2, argument in parentheses
//   operators  + - (priority 1)  * / (priority 2)  ^ (priority 3)
//
// all operators are left associative; a leading "+" or "-" (at the
// start, after "(" or after another operator) is unary and applies to
// the operand that follows.  Variables are cells in a symtab.Table and
// keep their address so an expression can be evaluated repeatedly after
// assigning new values.
package expression
