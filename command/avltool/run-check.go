// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/numkit/avl"
)

type checkResult struct {
	Keys      int `json:"keys"`
	Distinct  int `json:"distinct"`
	MaxHeight int `json:"max_height"`
	Removed   int `json:"removed"`
	Pooled    int `json:"pooled"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var keys []string
	if n := c.Int("random"); n > 0 {
		keys = randomKeys(n, c.Int64("seed"))
	} else {
		k, err := m.keys(c.Args())
		if nil != err {
			return err
		}
		keys = k
	}

	removeOrder := make([]string, len(keys))
	copy(removeOrder, keys)
	if c.Bool("reverse") {
		for i, j := 0, len(removeOrder)-1; i < j; i, j = i+1, j-1 {
			removeOrder[i], removeOrder[j] = removeOrder[j], removeOrder[i]
		}
	}

	result, err := check(m, keys, removeOrder)
	if nil != err {
		return err
	}
	return printJson(m.w, result)
}

// insert all keys then remove them verifying the tree after each step
func check(m *metadata, keys []string, removeOrder []string) (*checkResult, error) {

	tree := stringTree(nil, " ")
	defer tree.Destroy()

	result := &checkResult{
		Keys: len(keys),
	}

	for i, k := range keys {
		tree.InsertKey(k)
		if err := tree.Check(); nil != err {
			return nil, errors.Wrapf(err, "insert: %d  key: %q", i, k)
		}
		if h := tree.Height(); h > result.MaxHeight {
			result.MaxHeight = h
		}
		if m.verbose {
			fmt.Fprintf(m.e, "insert: %q\n", k)
			tree.Print(m.e, false)
		}
	}
	result.Distinct = tree.Count()

	for i, k := range removeOrder {
		if nil == tree.Find(k) {
			continue
		}
		if err := tree.Remove(k, avl.ReleaseNone); nil != err {
			return nil, errors.Wrapf(err, "remove: %d  key: %q", i, k)
		}
		if err := tree.Check(); nil != err {
			return nil, errors.Wrapf(err, "remove: %d  key: %q", i, k)
		}
		result.Removed += 1
		if m.verbose {
			fmt.Fprintf(m.e, "remove: %q\n", k)
			tree.Print(m.e, false)
		}
	}
	result.Pooled = tree.Pooled()

	if !tree.IsEmpty() {
		return nil, errors.Errorf("tree not empty: %d nodes remain", tree.Count())
	}
	return result, nil
}

func randomKeys(n int, seed int64) []string {
	r := rand.New(rand.NewSource(seed))
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("%08x", r.Uint32())
	}
	return keys
}
