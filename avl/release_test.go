// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/numkit/avl"
	"github.com/bitmark-inc/numkit/avl/mocks"
)

func TestRemoveReleasePolicy(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockReleaser(ctl)
	tree := avl.New[string, string](strings.Compare, false)
	tree.SetReleaser(m)

	tree.Insert("both", "value-both")
	tree.Insert("key", "value-key")
	tree.Insert("value", "value-value")
	tree.Insert("none", "value-none")
	tree.InsertKey("bare")

	m.EXPECT().ReleaseKey("both").Times(1)
	m.EXPECT().ReleaseValue("value-both").Times(1)
	m.EXPECT().ReleaseKey("key").Times(1)
	m.EXPECT().ReleaseValue("value-value").Times(1)
	m.EXPECT().ReleaseKey("bare").Times(1)

	assert.Nil(t, tree.Remove("both", avl.ReleaseBoth), "remove")
	assert.Nil(t, tree.Remove("key", avl.ReleaseKey), "remove")
	assert.Nil(t, tree.Remove("value", avl.ReleaseValue), "remove")
	assert.Nil(t, tree.Remove("none", avl.ReleaseNone), "remove")

	// no value present so only the key is released
	assert.Nil(t, tree.Remove("bare", avl.ReleaseBoth), "remove")

	assert.True(t, tree.IsEmpty(), "empty")
}

func TestDuplicateInsertKeepsFirst(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockReleaser(ctl)
	tree := avl.New[string, string](strings.Compare, false)
	tree.SetReleaser(m)

	m.EXPECT().ReleaseKey(gomock.Any()).Times(0)
	m.EXPECT().ReleaseValue(gomock.Any()).Times(0)

	p1 := tree.Insert("k", "first")
	p2 := tree.Insert("k", "second")

	assert.Equal(t, p1, p2, "node")
	assert.Equal(t, "first", p2.Value(), "value")
	assert.Equal(t, 1, tree.Count(), "count")
	assert.False(t, tree.Replaces(), "replaces")
}

func TestDuplicateInsertReplaces(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockReleaser(ctl)
	tree := avl.New[string, string](strings.Compare, true)
	tree.SetReleaser(m)

	p1 := tree.Insert("k", "first")

	gomock.InOrder(
		m.EXPECT().ReleaseKey("k").Times(1),
		m.EXPECT().ReleaseValue("first").Times(1),
	)
	p2 := tree.Insert("k", "second")

	assert.Equal(t, p1, p2, "node")
	assert.Equal(t, "second", p2.Value(), "value")
	assert.Equal(t, 1, tree.Count(), "count")
	assert.True(t, tree.Replaces(), "replaces")
}

func TestDestroyAndEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockReleaser(ctl)
	tree := avl.New[string, string](strings.Compare, false)
	tree.SetReleaser(m)

	for _, k := range []string{"a", "b", "c"} {
		tree.Insert(k, "v"+k)
		m.EXPECT().ReleaseKey(k).Times(1)
		m.EXPECT().ReleaseValue("v" + k).Times(1)
	}
	tree.InsertKey("d")
	m.EXPECT().ReleaseKey("d").Times(1)

	tree.Destroy()
	assert.True(t, tree.IsEmpty(), "empty after destroy")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Equal(t, 4, tree.Pooled(), "pooled")

	// pooled nodes are reused and Empty releases nothing
	tree.Insert("x", "vx")
	tree.Insert("y", "vy")
	assert.Equal(t, 2, tree.Pooled(), "pooled")

	tree.Empty()
	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 4, tree.Pooled(), "pooled")
	assert.Nil(t, tree.Check(), "check")
}
