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

// Package trackererr defines the error taxonomy shared by the storage
// backends and the trackers. All errors are synchronous and recoverable at
// the call site; gate functions never return one (an absent qubit under a
// gate is a no-op, the identity absorbs).
package trackererr

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound reports a Remove/Measure on a missing qubit index (Get
	// reports absence through its bool result instead).
	ErrNotFound = errors.New("qubit not found")

	// ErrPreconditionViolated reports a storage call that breaks the
	// backend's invariant: a BufferedVector insert at an occupied key or a
	// BufferedVector remove of a non-last key. WrapStorage and the stacked
	// transpose also return it for stacks of inconsistent length.
	ErrPreconditionViolated = errors.New("storage precondition violated")

	// ErrIO is reserved for the serialization boundary: a codec mismatch
	// discovered while decoding. The in-memory core never returns it.
	ErrIO = errors.New("codec failure")
)

// NotFound wraps ErrNotFound with the offending qubit index and a stack.
func NotFound(qubit uint) error {
	return errors.Wrapf(ErrNotFound, "qubit %d", qubit)
}

// PreconditionViolated wraps ErrPreconditionViolated with a description of
// the violated invariant and a stack.
func PreconditionViolated(format string, args ...interface{}) error {
	return errors.Wrapf(ErrPreconditionViolated, format, args...)
}
