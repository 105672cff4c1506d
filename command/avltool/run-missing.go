// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/numkit/avl"
)

func runMissing(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	required := []string{}
	for _, list := range c.StringSlice("required") {
		for _, k := range strings.Split(list, ",") {
			if "" != k {
				required = append(required, k)
			}
		}
	}
	if 0 == len(required) {
		return fmt.Errorf("required keys are missing")
	}

	keys, err := m.keys(c.Args())
	if nil != err {
		return err
	}

	requiredTree := stringTree(required, ",")
	defer requiredTree.Destroy()
	supplied := stringTree(keys, ",")
	defer supplied.Destroy()

	// missing = required - supplied
	missing := avl.New[string, struct{}](strings.Compare, false)
	missing.SetPrint(printKey[string], ",")
	defer missing.Destroy()

	avl.CopyKeys(missing, requiredTree)
	avl.Diff(missing, supplied, avl.ReleaseNone)

	if m.verbose {
		fmt.Fprintf(m.e, "required: %d  supplied: %d  missing: %d\n", requiredTree.Count(), supplied.Count(), missing.Count())
	}

	out := struct {
		Missing []string `json:"missing"`
	}{
		Missing: missing.Keys(),
	}
	return printJson(m.w, out)
}
