// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Destroy - remove all nodes, every key and every stored value is
// given to the releaser
func (tree *Tree[K, V]) Destroy() {
	tree.clear(tree.root, ReleaseBoth)
	tree.root = nil
	tree.count = 0
}

// Empty - remove all nodes, keys and values are left to their owner
func (tree *Tree[K, V]) Empty() {
	tree.clear(tree.root, ReleaseNone)
	tree.root = nil
	tree.count = 0
}

// internal: post-order release of a sub-tree
func (tree *Tree[K, V]) clear(p *Node[K, V], release Release) {
	if nil == p {
		return
	}
	tree.clear(p.left, release)
	tree.clear(p.right, release)
	tree.release(p, release)
	tree.freeNode(p)
}
