// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Release - which parts of a removed node are handed to the releaser
type Release uint8

// release policies
const (
	ReleaseNone  Release = 0
	ReleaseKey   Release = 1 << 0
	ReleaseValue Release = 1 << 1
	ReleaseBoth          = ReleaseKey | ReleaseValue
)

// Releaser - receives keys and values the tree has finished with
type Releaser[K any, V any] interface {
	ReleaseKey(key K)
	ReleaseValue(value V)
}

func (tree *Tree[K, V]) releaseKey(key K) {
	if nil != tree.releaser {
		tree.releaser.ReleaseKey(key)
	}
}

func (tree *Tree[K, V]) releaseValue(value V) {
	if nil != tree.releaser {
		tree.releaser.ReleaseValue(value)
	}
}

// hand back the parts of a node selected by the policy
func (tree *Tree[K, V]) release(p *Node[K, V], release Release) {
	if 0 != release&ReleaseValue && p.hasValue {
		tree.releaseValue(p.value)
	}
	if 0 != release&ReleaseKey {
		tree.releaseKey(p.key)
	}
}
