// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// put p1 where p was under the parent up (or at the root)
func (tree *Tree[K, V]) replaceChild(up *Node[K, V], p *Node[K, V], p1 *Node[K, V]) {
	if nil == up {
		tree.root = p1
	} else if p == up.left {
		up.left = p1
	} else {
		up.right = p1
	}
	if nil != p1 {
		p1.up = up
	}
}

// single left rotation, p.right becomes the sub-tree root
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	tree.replaceChild(p.up, p, p1)
	p1.left = p
	p.up = p1
	return p1
}

// single right rotation, p.left becomes the sub-tree root
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	tree.replaceChild(p.up, p, p1)
	p1.right = p
	p.up = p1
	return p1
}

// rebalance a node whose right sub-tree is two higher than its left
// returns the new root of the sub-tree
func (tree *Tree[K, V]) balanceRightHeavy(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	if p1.balance >= 0 {
		// single RR rotation
		b := p1.balance
		tree.rotateLeft(p)
		p.balance = 1 - b
		p1.balance = b - 1
		return p1
	}

	// double RL rotation
	p2 := p1.left
	b := p2.balance
	tree.rotateRight(p1)
	tree.rotateLeft(p)
	if +1 == b {
		p.balance = -1
	} else {
		p.balance = 0
	}
	if -1 == b {
		p1.balance = 1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2
}

// rebalance a node whose left sub-tree is two higher than its right
// returns the new root of the sub-tree
func (tree *Tree[K, V]) balanceLeftHeavy(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	if p1.balance <= 0 {
		// single LL rotation
		b := p1.balance
		tree.rotateRight(p)
		p.balance = -1 - b
		p1.balance = b + 1
		return p1
	}

	// double LR rotation
	p2 := p1.right
	b := p2.balance
	tree.rotateLeft(p1)
	tree.rotateRight(p)
	if -1 == b {
		p.balance = 1
	} else {
		p.balance = 0
	}
	if +1 == b {
		p1.balance = -1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2
}
