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

// Package bitword holds the small word-size arithmetic helpers shared by
// boolvec and transpose. Adapted from erigon-lib/common/math's integer
// helpers, narrowed to what a packed 64-bit-word bit vector actually needs.
package bitword

import "golang.org/x/exp/constraints"

const WordBits = 64

// CeilDiv returns ceil(x/y), or 0 if y == 0.
func CeilDiv[T constraints.Integer](x, y T) T {
	if y == 0 {
		return 0
	}
	return (x + y - 1) / y
}

// WordsFor returns the number of 64-bit words needed to hold n bits.
func WordsFor(n int) int {
	return CeilDiv(n, WordBits)
}

// WordIndex splits a bit index into its word index and in-word offset.
func WordIndex(i int) (word, offset int) {
	return i / WordBits, i % WordBits
}

// TailMask returns a mask selecting the low n%WordBits used bits of the
// last word of an n-bit vector (all 64 bits if n is a multiple of WordBits).
func TailMask(n int) uint64 {
	rem := n % WordBits
	if rem == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(rem)) - 1
}
