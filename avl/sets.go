// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CopyKeys - insert every key of source into destination without a
// value, source is not changed
func CopyKeys[K any, V any, W any](destination *Tree[K, W], source *Tree[K, V]) {
	copyKeys(destination, source.root)
}

func copyKeys[K any, V any, W any](destination *Tree[K, W], p *Node[K, V]) {
	if nil == p {
		return
	}
	copyKeys(destination, p.left)
	copyKeys(destination, p.right)
	destination.InsertKey(p.key)
}

// Diff - remove from a every key that is also in b
//
// release selects what is handed to the releaser of a for each
// removed node; keys of b that are not in a are ignored, a and b
// must be different trees
func Diff[K any, V any, W any](a *Tree[K, V], b *Tree[K, W], release Release) {
	diff(a, b.root, release)
}

func diff[K any, V any, W any](a *Tree[K, V], p *Node[K, W], release Release) {
	if nil == p {
		return
	}
	diff(a, p.left, release)
	diff(a, p.right, release)
	_ = a.Remove(p.key, release) // absent keys are not an error here
}
