// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	numeric bool
	verbose bool
	r       io.Reader
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "exercise an AVL tree built from keys on the command line or stdin"
	app.Version = version
	app.HideVersion = true

	app.Writer = stdout
	app.ErrWriter = stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " order keys as numbers instead of strings",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "print the distinct keys in a tree traversal order",
			ArgsUsage: "[KEY...]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: orderInfix,
					Usage: " traversal `ORDER` [infix|prefix|postfix]",
				},
				cli.StringFlag{
					Name:  "separator, s",
					Value: ",",
					Usage: " `SEPARATOR` printed between keys",
				},
			},
			Action: runSort,
		},
		{
			Name:      "tree",
			Usage:     "print an ASCII graphic of the tree",
			ArgsUsage: "[KEY...]",
			Flags:     []cli.Flag{},
			Action:    runTree,
		},
		{
			Name:      "missing",
			Usage:     "print the required keys that were not supplied",
			ArgsUsage: "[KEY...]\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "required, r",
					Value: &cli.StringSlice{},
					Usage: "*comma separated required `KEYS` (repeatable, use one form: -r or --required)",
				},
			},
			Action: runMissing,
		},
		{
			Name:      "check",
			Usage:     "insert then remove the keys verifying the tree after each step",
			ArgsUsage: "[KEY...]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "random, R",
					Value: 0,
					Usage: " use `COUNT` random keys instead of arguments",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: " random number `SEED`",
				},
				cli.BoolFlag{
					Name:  "reverse",
					Usage: " remove keys in reverse order",
				},
			},
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display avltool version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			numeric: c.GlobalBool("numeric"),
			verbose: c.GlobalBool("verbose"),
			r:       stdin,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
