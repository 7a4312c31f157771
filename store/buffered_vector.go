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

package store

import (
	"github.com/taeruh/pauli-tracker/trackererr"
)

// BufferedVector is the dense backend: entries[k] addresses qubit k
// directly. Inserting below the current length or removing a non-last key
// violates that addressing invariant and fails; inserting past the current
// length pads the gap with default entries.
type BufferedVector[E any] struct {
	entries []E
	zero    func() E
}

// NewBufferedVector returns an empty BufferedVector backend. zero
// constructs the default entry used for Init and gap padding.
func NewBufferedVector[E any](zero func() E) *BufferedVector[E] {
	return &BufferedVector[E]{zero: zero}
}

func (b *BufferedVector[E]) Get(qubit uint) (E, bool) {
	if qubit >= uint(len(b.entries)) {
		var none E
		return none, false
	}
	return b.entries[qubit], true
}

func (b *BufferedVector[E]) GetMut(qubit uint) (*E, bool) {
	if qubit >= uint(len(b.entries)) {
		return nil, false
	}
	return &b.entries[qubit], true
}

// Insert appends at key == len, pads with defaults for key > len, and
// fails for key < len (that position is already occupied).
func (b *BufferedVector[E]) Insert(qubit uint, entry E) error {
	n := uint(len(b.entries))
	if qubit < n {
		return trackererr.PreconditionViolated(
			"buffered vector: insert at occupied key %d (len %d)", qubit, n)
	}
	for q := n; q < qubit; q++ {
		b.entries = append(b.entries, b.zero())
	}
	b.entries = append(b.entries, entry)
	return nil
}

// Remove only succeeds on the last index; removing from the middle would
// shift every later qubit's address.
func (b *BufferedVector[E]) Remove(qubit uint) (E, error) {
	n := uint(len(b.entries))
	var none E
	if n == 0 || qubit >= n {
		return none, trackererr.NotFound(qubit)
	}
	if qubit != n-1 {
		return none, trackererr.PreconditionViolated(
			"buffered vector: remove of non-last key %d (len %d)", qubit, n)
	}
	e := b.entries[n-1]
	b.entries[n-1] = none
	b.entries = b.entries[:n-1]
	return e, nil
}

func (b *BufferedVector[E]) Len() int      { return len(b.entries) }
func (b *BufferedVector[E]) IsEmpty() bool { return len(b.entries) == 0 }

// Init pre-populates qubits 0..n-1 with default entries.
func (b *BufferedVector[E]) Init(n uint) {
	for uint(len(b.entries)) < n {
		b.entries = append(b.entries, b.zero())
	}
}

// Range iterates in index order.
func (b *BufferedVector[E]) Range(f func(qubit uint, entry *E) bool) {
	for i := range b.entries {
		if !f(uint(i), &b.entries[i]) {
			return
		}
	}
}
