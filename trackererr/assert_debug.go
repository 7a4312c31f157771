// Copyright 2024 The Pauli Tracker Authors
// This file is part of pauli-tracker.
//
// pauli-tracker is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pauli-tracker is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with pauli-tracker. If not, see <http://www.gnu.org/licenses/>.

//go:build debug

package trackererr

import (
	"fmt"

	"github.com/go-stack/stack"
)

// AssertInvariant panics with the caller's location when cond is false.
// A mismatched X/Z stack length discovered mid-gate is a bug, not a
// recoverable condition; the debug build fails loudly at the exact site.
func AssertInvariant(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	panic(fmt.Sprintf("invariant broken at %v: %s", stack.Caller(1), msg))
}
