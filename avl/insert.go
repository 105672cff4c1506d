// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a key and value into the tree
//
// returns the node holding the key; if the key was already present
// the value is only replaced when the tree was created with replace
// set
func (tree *Tree[K, V]) Insert(key K, value V) *Node[K, V] {
	return tree.insert(key, value, true)
}

// InsertKey - insert a key without any value
func (tree *Tree[K, V]) InsertKey(key K) *Node[K, V] {
	var value V
	return tree.insert(key, value, false)
}

// internal routine for insert
func (tree *Tree[K, V]) insert(key K, value V, hasValue bool) *Node[K, V] {
	p, up := tree.search(key, tree.root, nil)
	if nil != p {
		if !tree.replace {
			return p
		}

		// the stored key is kept, the caller's copy is redundant
		tree.releaseKey(key)
		if p.hasValue {
			tree.releaseValue(p.value)
		}
		p.value = value
		p.hasValue = hasValue
		return p
	}

	p = tree.newNode(key, value, hasValue)
	p.up = up
	tree.count += 1

	if nil == up {
		tree.root = p
		return p
	}
	if tree.compare(key, up.key) < 0 {
		up.left = p
	} else {
		up.right = p
	}

	tree.insertRetrace(p)
	return p
}

// walk up from a newly attached node adjusting balances, at most one
// rotation is needed
func (tree *Tree[K, V]) insertRetrace(p *Node[K, V]) {
	for up := p.up; nil != up; p, up = up, up.up {
		if p == up.left {
			// left branch has grown
			switch up.balance {
			case +1:
				up.balance = 0
				return
			case 0:
				up.balance = -1
			default:
				tree.balanceLeftHeavy(up)
				return
			}
		} else {
			// right branch has grown
			switch up.balance {
			case -1:
				up.balance = 0
				return
			case 0:
				up.balance = +1
			default:
				tree.balanceRightHeavy(up)
				return
			}
		}
	}
}
