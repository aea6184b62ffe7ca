// SPDX-License-Identifier: MIT

package mergetree

import "github.com/cockroachdb/errors"

// assertf panics with an assertion failure when cond does not hold.
// Only invariant violations go through here; nothing in this package
// reports recoverable errors.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
