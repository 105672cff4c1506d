// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contingency

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/bitmark-inc/numkit/fault"
)

// Read - add the words of one input
//
// a word starts with a letter and continues with letters, digits and
// spaces; trailing spaces are dropped and any other character ends it
func (t *Table) Read(r io.Reader) error {
	t.haveKey = false
	t.header = t.header[:0]
	t.column = 0
	t.inBody = false

	br := bufio.NewReader(r)
	var word strings.Builder
	inWord := false

	for {
		c, _, err := br.ReadRune()
		if io.EOF == err {
			break
		}
		if nil != err {
			return err
		}

		if inWord && (unicode.IsLetter(c) || unicode.IsDigit(c) || ' ' == c) {
			word.WriteRune(c)
			continue
		}
		if inWord {
			if err := t.word(strings.TrimRight(word.String(), " ")); nil != err {
				return err
			}
			word.Reset()
			inWord = false
		}

		if unicode.IsLetter(c) {
			word.WriteRune(c)
			inWord = true
		} else if t.columns && c == t.delimiter {
			t.inBody = true
			t.column = 0
		}
	}

	if inWord {
		return t.word(strings.TrimRight(word.String(), " "))
	}
	return nil
}

func (t *Table) word(w string) error {
	if !t.columns {
		if !t.haveKey {
			t.addKey(w)
			t.key = w
			t.haveKey = true
		} else {
			t.addValue(t.key, w)
			t.haveKey = false
		}
		return nil
	}

	if !t.inBody {
		t.addKey(w)
		t.header = append(t.header, w)
		return nil
	}
	if 0 == len(t.header) {
		return fault.ErrNoColumnKeys
	}
	t.addValue(t.header[t.column%len(t.header)], w)
	t.column += 1
	return nil
}
