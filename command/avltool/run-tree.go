// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTree(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := m.keys(c.Args())
	if nil != err {
		return err
	}

	depth := 0
	count := 0
	if m.numeric {
		tree, err := numericTree(keys, " ")
		if nil != err {
			return err
		}
		depth = tree.Print(m.w, false)
		count = tree.Count()
		tree.Destroy()
	} else {
		tree := stringTree(keys, " ")
		depth = tree.Print(m.w, false)
		count = tree.Count()
		tree.Destroy()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "nodes: %d  depth: %d\n", count, depth)
	}
	return nil
}
