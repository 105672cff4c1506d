// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree with parent pointers
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Any number of readers may share a tree while no
//       mutation is in progress.
//
// The ordering of keys is supplied as a comparison function when the
// tree is created; it must be a consistent total order.
//
// Rebalancing walks up the parent pointers from the point of change,
// so neither insert nor delete has to re-descend from the root.
// Balance factors are kept as height(right) - height(left).
//
// Delete moves nodes rather than copying data, so a node found by
// Find stays valid until that node itself is removed.
package avl
