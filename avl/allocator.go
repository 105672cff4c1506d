// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/numkit/fault"
)

// Node - a node in the tree
type Node[K any, V any] struct {
	left     *Node[K, V] // left sub-tree
	right    *Node[K, V] // right sub-tree
	up       *Node[K, V] // points to parent node
	key      K           // key part for ordering
	value    V           // value part for data storage
	hasValue bool        // false if only a key was stored
	balance  int         // -1, 0, +1
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V, hasValue bool) *Node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panicf("node pool corrupt: %d free nodes but empty list", tree.freeNodes)
		}
		return &Node[K, V]{
			key:      key,
			value:    value,
			hasValue: hasValue,
			balance:  0,
		}
	}
	p := tree.pool
	tree.pool = p.up
	p.key = key
	p.value = value
	p.hasValue = hasValue
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool of this tree
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.up = tree.pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.hasValue = false
	node.balance = 0
	tree.freeNodes += 1

	tree.pool = node
}

// Pooled - number of reclaimed nodes waiting to be reused
func (tree *Tree[K, V]) Pooled() int {
	return tree.freeNodes
}
