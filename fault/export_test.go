// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"io"
)

// SetFallback - redirect messages written without a PANIC channel
func SetFallback(w io.Writer) func() {
	saved := fallback
	fallback = w
	return func() {
		fallback = saved
	}
}
