// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"
)

// FormatFunc - write a single key/value to the output for the
// traversal printing routines
type FormatFunc[K any, V any] func(w io.Writer, key K, value V, hasValue bool)

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root    *Node[K, V]
	count   int
	compare func(K, K) int

	// if true an insert of an existing key replaces its value
	replace bool

	// traversal printing
	format    FormatFunc[K, V]
	separator string

	// owner of keys and values, may be nil
	releaser Releaser[K, V]

	// reclaimed nodes
	pool      *Node[K, V]
	freeNodes int
}

// New - create an initially empty tree
//
// compare must return a negative number, zero or a positive number
// when its first argument is less than, equal to or greater than its
// second argument
func New[K any, V any](compare func(K, K) int, replace bool) *Tree[K, V] {
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
		replace: replace,
	}
}

// SetPrint - set the format function and separator used by Infix,
// Prefix and Postfix
func (tree *Tree[K, V]) SetPrint(format FormatFunc[K, V], separator string) {
	tree.format = format
	tree.separator = separator
}

// SetReleaser - set the hooks that are given keys and values that
// the tree no longer holds
func (tree *Tree[K, V]) SetReleaser(releaser Releaser[K, V]) {
	tree.releaser = releaser
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Replaces - true if duplicate inserts replace the value
func (tree *Tree[K, V]) Replaces() bool {
	return tree.replace
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item, the zero value if
// the node holds only a key
func (p *Node[K, V]) Value() V {
	return p.value
}

// HasValue - true if a value was stored with the key
func (p *Node[K, V]) HasValue() bool {
	return p.hasValue
}

// SetValue - store a value directly in a node found by the caller,
// the previous value is not released
func (p *Node[K, V]) SetValue(value V) {
	p.value = value
	p.hasValue = true
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[K, V]) Balance() int {
	return p.balance
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
