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
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/taeruh/pauli-tracker/trackererr"
)

// Map is the sparse hash-map backend. Entries live in a Go map; a roaring
// bitmap tracks the occupied qubit indices so Range and the codecs iterate
// in ascending qubit order without a sort pass per call.
type Map[E any] struct {
	entries  map[uint]*E
	occupied *roaring.Bitmap
	zero     func() E
}

// NewMap returns an empty Map backend. zero constructs the default entry
// used by Init.
func NewMap[E any](zero func() E) *Map[E] {
	return &Map[E]{
		entries:  make(map[uint]*E),
		occupied: roaring.New(),
		zero:     zero,
	}
}

func (m *Map[E]) Get(qubit uint) (E, bool) {
	if e, ok := m.entries[qubit]; ok {
		return *e, true
	}
	var none E
	return none, false
}

func (m *Map[E]) GetMut(qubit uint) (*E, bool) {
	e, ok := m.entries[qubit]
	return e, ok
}

// Insert installs entry at qubit, replacing any previous entry.
func (m *Map[E]) Insert(qubit uint, entry E) error {
	m.entries[qubit] = &entry
	m.occupied.Add(uint32(qubit))
	return nil
}

func (m *Map[E]) Remove(qubit uint) (E, error) {
	e, ok := m.entries[qubit]
	if !ok {
		var none E
		return none, trackererr.NotFound(qubit)
	}
	delete(m.entries, qubit)
	m.occupied.Remove(uint32(qubit))
	return *e, nil
}

func (m *Map[E]) Len() int      { return len(m.entries) }
func (m *Map[E]) IsEmpty() bool { return len(m.entries) == 0 }

// Init pre-populates qubits 0..n-1 with default entries.
func (m *Map[E]) Init(n uint) {
	for q := uint(0); q < n; q++ {
		_ = m.Insert(q, m.zero())
	}
}

// Range iterates in ascending qubit order.
func (m *Map[E]) Range(f func(qubit uint, entry *E) bool) {
	it := m.occupied.Iterator()
	for it.HasNext() {
		q := uint(it.Next())
		if !f(q, m.entries[q]) {
			return
		}
	}
}
