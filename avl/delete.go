// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/numkit/fault"
)

// Remove - removes a specific item from the tree
//
// returns fault.ErrKeyNotFound and leaves the tree unchanged if the
// key is not present
func (tree *Tree[K, V]) Remove(key K, release Release) error {
	p := tree.Find(key)
	if nil == p {
		return fault.ErrKeyNotFound
	}
	tree.RemoveNode(p, release)
	return nil
}

// RemoveNode - remove a node previously returned by this tree
func (tree *Tree[K, V]) RemoveNode(q *Node[K, V], release Release) {

	var p *Node[K, V] // lowest node whose sub-tree has shrunk
	leftShrunk := false

	if nil != q.left && nil != q.right {
		// the in-order predecessor takes the place of q
		r := q.left.last()
		if r == q.left {
			p = r
			leftShrunk = true
		} else {
			p = r.up
			p.right = r.left
			if nil != r.left {
				r.left.up = p
			}
			r.left = q.left
			r.left.up = r
		}
		r.right = q.right
		r.right.up = r
		r.balance = q.balance
		tree.replaceChild(q.up, q, r)
	} else {
		r := q.left
		if nil == r {
			r = q.right
		}
		p = q.up
		if nil != p {
			leftShrunk = q == p.left
		}
		tree.replaceChild(p, q, r)
	}

	tree.deleteRetrace(p, leftShrunk)

	tree.release(q, release)
	tree.freeNode(q) // return deleted node to pool
	tree.count -= 1
}

// walk up from a node with one shorter sub-tree adjusting balances
//
// unlike insert a rotation may leave the sub-tree shorter than it
// was, in which case the walk continues
func (tree *Tree[K, V]) deleteRetrace(p *Node[K, V], leftShrunk bool) {
	for nil != p {
		up := p.up
		upLeft := nil != up && p == up.left

		if leftShrunk {
			switch p.balance {
			case -1:
				p.balance = 0
			case 0:
				p.balance = +1
				return
			default:
				if 0 != tree.balanceRightHeavy(p).balance {
					return
				}
			}
		} else {
			switch p.balance {
			case +1:
				p.balance = 0
			case 0:
				p.balance = -1
				return
			default:
				if 0 != tree.balanceLeftHeavy(p).balance {
					return
				}
			}
		}

		p = up
		leftShrunk = upLeft
	}
}
