// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// InOrder - visit all nodes in ascending key order
func (tree *Tree[K, V]) InOrder(visit func(*Node[K, V])) {
	inOrder(tree.root, visit)
}

func inOrder[K any, V any](p *Node[K, V], visit func(*Node[K, V])) {
	if nil == p {
		return
	}
	inOrder(p.left, visit)
	visit(p)
	inOrder(p.right, visit)
}

// PreOrder - visit each node before its sub-trees
func (tree *Tree[K, V]) PreOrder(visit func(*Node[K, V])) {
	preOrder(tree.root, visit)
}

func preOrder[K any, V any](p *Node[K, V], visit func(*Node[K, V])) {
	if nil == p {
		return
	}
	visit(p)
	preOrder(p.left, visit)
	preOrder(p.right, visit)
}

// PostOrder - visit each node after its sub-trees
func (tree *Tree[K, V]) PostOrder(visit func(*Node[K, V])) {
	postOrder(tree.root, visit)
}

func postOrder[K any, V any](p *Node[K, V], visit func(*Node[K, V])) {
	if nil == p {
		return
	}
	postOrder(p.left, visit)
	postOrder(p.right, visit)
	visit(p)
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.InOrder(func(p *Node[K, V]) {
		keys = append(keys, p.key)
	})
	return keys
}

// to collect the first write error of a traversal
type printer[K any, V any] struct {
	w   io.Writer
	t   *Tree[K, V]
	err error
}

func (pr *printer[K, V]) node(p *Node[K, V]) {
	if nil != pr.t.format {
		pr.t.format(pr.w, p.key, p.value, p.hasValue)
	}
}

func (pr *printer[K, V]) separator() {
	if nil == pr.err && "" != pr.t.separator {
		_, pr.err = io.WriteString(pr.w, pr.t.separator)
	}
}

// Infix - print all nodes in ascending order with the separator
// between them
func (tree *Tree[K, V]) Infix(w io.Writer) error {
	pr := &printer[K, V]{w: w, t: tree}
	last := tree.Last()
	tree.InOrder(func(p *Node[K, V]) {
		pr.node(p)
		if p != last {
			pr.separator()
		}
	})
	return pr.err
}

// Prefix - print all nodes in pre-order with the separator between
// them
func (tree *Tree[K, V]) Prefix(w io.Writer) error {
	pr := &printer[K, V]{w: w, t: tree}
	tree.PreOrder(func(p *Node[K, V]) {
		if p != tree.root {
			pr.separator()
		}
		pr.node(p)
	})
	return pr.err
}

// Postfix - print all nodes in post-order with the separator between
// them
func (tree *Tree[K, V]) Postfix(w io.Writer) error {
	pr := &printer[K, V]{w: w, t: tree}
	tree.PostOrder(func(p *Node[K, V]) {
		pr.node(p)
		if p != tree.root {
			pr.separator()
		}
	})
	return pr.err
}

// Dump - one line per node in ascending order showing the links and
// balance, for debugging
func (tree *Tree[K, V]) Dump(w io.Writer) error {
	var err error
	tree.InOrder(func(p *Node[K, V]) {
		if nil != err {
			return
		}
		_, err = fmt.Fprintf(w, "%p %v [%+d] (%p, %p) ^%p\n", p, p.key, p.balance, p.left, p.right, p.up)
	})
	return err
}
