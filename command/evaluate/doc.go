// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Expression calculator
//
// Evaluates an infix expression after assigning its variables from
// "name=value" arguments.
package main
