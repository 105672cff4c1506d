// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package frequency

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/numkit/fault"
)

// ReadNumbers - call add for every number in the input, other text is
// skipped
//
// a number is an optional sign, digits with an optional "." or ","
// decimal separator and an optional exponent
func ReadNumbers(r io.Reader, add func(float64)) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanNumbers)
	for scanner.Scan() {
		word := bytes.Replace(scanner.Bytes(), []byte{','}, []byte{'.'}, 1)
		x, err := strconv.ParseFloat(string(word), 64)
		if nil != err {
			return errors.Wrapf(fault.ErrInvalidNumber, "%q", scanner.Text())
		}
		add(x)
	}
	return scanner.Err()
}

// split function for bufio.Scanner that returns number tokens
func scanNumbers(data []byte, atEOF bool) (int, []byte, error) {
	for start := 0; start < len(data); start += 1 {
		n, digits, more := numberLength(data[start:])
		if more && !atEOF {
			return start, nil, nil // request more data
		}
		if digits > 0 {
			return start + n, data[start : start+n], nil
		}
	}
	return len(data), nil, nil
}

// length and digit count of a number at the start of data, more is set
// when the number could continue after the end of data
func numberLength(data []byte) (int, int, bool) {
	i := 0
	if i < len(data) && ('+' == data[i] || '-' == data[i]) {
		i += 1
	}
	digits := 0
	for i < len(data) && isDigit(data[i]) {
		i += 1
		digits += 1
	}
	if i < len(data) && ('.' == data[i] || ',' == data[i]) {
		i += 1
		for i < len(data) && isDigit(data[i]) {
			i += 1
			digits += 1
		}
	}
	if i == len(data) {
		return i, digits, true
	}
	if 0 == digits {
		return 0, 0, false
	}

	if 'e' == data[i] || 'E' == data[i] {
		j := i + 1
		if j < len(data) && ('+' == data[j] || '-' == data[j]) {
			j += 1
		}
		if j == len(data) {
			return i, digits, true
		}
		if isDigit(data[j]) {
			for j < len(data) && isDigit(data[j]) {
				j += 1
			}
			return j, digits, j == len(data)
		}
	}
	return i, digits, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
