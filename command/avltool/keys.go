// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/avl"
	"github.com/bitmark-inc/numkit/fault"
)

// the command line keys, or the words of stdin if there are none
func (m *metadata) keys(arguments []string) ([]string, error) {
	if 0 != len(arguments) {
		return arguments, nil
	}

	keys := []string{}
	scanner := bufio.NewScanner(m.r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		keys = append(keys, scanner.Text())
	}
	return keys, scanner.Err()
}

func numbers(keys []string) ([]float64, error) {
	n := make([]float64, len(keys))
	for i, k := range keys {
		x, err := strconv.ParseFloat(k, 64)
		if nil != err {
			return nil, errors.Wrapf(fault.ErrInvalidNumber, "key: %q", k)
		}
		n[i] = x
	}
	return n, nil
}

func printKey[K any](w io.Writer, key K, _ struct{}, _ bool) {
	fmt.Fprint(w, key)
}

// a key only tree that ignores duplicates
func newTree[K any](keys []K, compare func(K, K) int, separator string) *avl.Tree[K, struct{}] {
	tree := avl.New[K, struct{}](compare, false)
	tree.SetPrint(printKey[K], separator)
	for _, k := range keys {
		tree.InsertKey(k)
	}
	return tree
}

func stringTree(keys []string, separator string) *avl.Tree[string, struct{}] {
	return newTree(keys, strings.Compare, separator)
}

func numericTree(keys []string, separator string) (*avl.Tree[float64, struct{}], error) {
	n, err := numbers(keys)
	if nil != err {
		return nil, err
	}
	return newTree(n, avl.Ordered[float64], separator), nil
}
