// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a specific item, nil if not in the tree
func (tree *Tree[K, V]) Find(key K) *Node[K, V] {
	node, _ := tree.search(key, tree.root, nil)
	return node
}

// internal: also returns the last node visited, which is the parent
// a new node with this key would be attached to
func (tree *Tree[K, V]) search(key K, p *Node[K, V], parent *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p {
		return nil, parent
	}

	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		return tree.search(key, p.left, p)
	case c > 0: // key > p.key
		return tree.search(key, p.right, p)
	default:
		return p, parent
	}
}
