// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K any, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Height - number of nodes on the longest path from the root
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func height[K any, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// Check - verify key order, balance factors, parent links and the
// node count
func (tree *Tree[K, V]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return errors.Wrapf(fault.ErrParentLink, "root: %v has parent: %v", tree.root.key, tree.root.up.key)
	}
	n := 0
	if _, err := tree.check(tree.root, nil, nil, &n); nil != err {
		return err
	}
	if n != tree.count {
		return errors.Wrapf(fault.ErrNodeCount, "count: %d  nodes: %d", tree.count, n)
	}
	return nil
}

// internal: returns the height of the sub-tree; low and high are the
// nearest ancestors that bound the keys of p
func (tree *Tree[K, V]) check(p *Node[K, V], low *Node[K, V], high *Node[K, V], n *int) (int, error) {
	if nil == p {
		return 0, nil
	}
	*n += 1

	if nil != low && tree.compare(low.key, p.key) >= 0 {
		return 0, errors.Wrapf(fault.ErrKeyOrder, "key: %v not above: %v", p.key, low.key)
	}
	if nil != high && tree.compare(p.key, high.key) >= 0 {
		return 0, errors.Wrapf(fault.ErrKeyOrder, "key: %v not below: %v", p.key, high.key)
	}
	for _, child := range []*Node[K, V]{p.left, p.right} {
		if nil != child && child.up != p {
			return 0, errors.Wrapf(fault.ErrParentLink, "key: %v has wrong parent", child.key)
		}
	}

	lh, err := tree.check(p.left, low, p, n)
	if nil != err {
		return 0, err
	}
	rh, err := tree.check(p.right, p, high, n)
	if nil != err {
		return 0, err
	}

	if p.balance != rh-lh || p.balance < -1 || p.balance > 1 {
		return 0, errors.Wrapf(fault.ErrBalanceFactor, "key: %v  right: %d  left: %d  balance: %d", p.key, rh, lh, p.balance)
	}
	if lh > rh {
		return 1 + lh, nil
	}
	return 1 + rh, nil
}

// MustCheck - Check and abort on any inconsistency
func (tree *Tree[K, V]) MustCheck() {
	if err := tree.Check(); nil != err {
		fault.Panicf("avl: inconsistent tree: %s", err)
	}
}
