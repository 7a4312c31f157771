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

// Package boolvec implements the dense boolean vector that backs a single
// Pauli's X/Z rows and, stacked, a whole PauliStack's frames. Two concrete
// representations are interchangeable at the API edge: Dense (one bool per
// byte, cheap to hand across an FFI boundary) and Packed (64-bit words, the
// default hot-path representation).
package boolvec

// Vec is the common contract both representations satisfy. Reading past Len
// and combining vectors of unequal length are both caller-checked
// preconditions (spec: "undefined" on the wire format this is distilled
// from) and panic here rather than returning an error.
type Vec interface {
	Get(i int) bool
	Set(i int, v bool)
	Len() int
	IsEmpty() bool
	Resize(n int, fill bool)
	ClearAll()
	Xor(other Vec)
	And(other Vec)
	Or(other Vec)
	Clone() Vec
	Equal(other Vec) bool
}

func lenMismatch(a, b int) {
	if a != b {
		panic("boolvec: operands have different lengths")
	}
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic("boolvec: index out of range")
	}
}
