// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/numkit/avl"
)

const (
	orderInfix   = "infix"
	orderPrefix  = "prefix"
	orderPostfix = "postfix"
)

func runSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	order := c.String("order")
	separator := c.String("separator")

	keys, err := m.keys(c.Args())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "keys: %d  order: %s\n", len(keys), order)
	}

	if m.numeric {
		tree, err := numericTree(keys, separator)
		if nil != err {
			return err
		}
		return printOrder(m.w, tree, order)
	}
	return printOrder(m.w, stringTree(keys, separator), order)
}

func printOrder[K any](w io.Writer, tree *avl.Tree[K, struct{}], order string) error {
	defer tree.Destroy()

	var err error
	switch order {
	case orderInfix:
		err = tree.Infix(w)
	case orderPrefix:
		err = tree.Prefix(w)
	case orderPostfix:
		err = tree.Postfix(w)
	default:
		return fmt.Errorf("order: %q can only be infix/prefix/postfix", order)
	}
	if nil != err {
		return err
	}

	_, err = fmt.Fprintln(w)
	return err
}
