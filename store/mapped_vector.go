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

// MappedVector keeps payloads dense while allowing arbitrary qubit keys:
// frames holds the entries, position maps a qubit index to its slot in
// frames, and inversePosition maps the slot back to the qubit index.
// Invariants: the three have equal length and
// position[inversePosition[i]] == i for every slot i. Only Insert and
// Remove rebuild them; Remove is a swap-remove with the last slot.
type MappedVector[E any] struct {
	frames          []E
	inversePosition []uint
	position        map[uint]int
	zero            func() E
}

// NewMappedVector returns an empty MappedVector backend. zero constructs
// the default entry used by Init.
func NewMappedVector[E any](zero func() E) *MappedVector[E] {
	return &MappedVector[E]{position: make(map[uint]int), zero: zero}
}

func (m *MappedVector[E]) Get(qubit uint) (E, bool) {
	if i, ok := m.position[qubit]; ok {
		return m.frames[i], true
	}
	var none E
	return none, false
}

func (m *MappedVector[E]) GetMut(qubit uint) (*E, bool) {
	if i, ok := m.position[qubit]; ok {
		return &m.frames[i], true
	}
	return nil, false
}

// Insert installs entry at qubit: replaces in place if the key is already
// present, otherwise pushes a new slot and records its position.
func (m *MappedVector[E]) Insert(qubit uint, entry E) error {
	if i, ok := m.position[qubit]; ok {
		m.frames[i] = entry
		return nil
	}
	m.position[qubit] = len(m.frames)
	m.frames = append(m.frames, entry)
	m.inversePosition = append(m.inversePosition, qubit)
	return nil
}

// Remove swap-removes: the last slot moves into the vacated one and its
// position entry is rewritten to point there.
func (m *MappedVector[E]) Remove(qubit uint) (E, error) {
	i, ok := m.position[qubit]
	if !ok {
		var none E
		return none, trackererr.NotFound(qubit)
	}
	last := len(m.frames) - 1
	e := m.frames[i]
	m.frames[i] = m.frames[last]
	m.inversePosition[i] = m.inversePosition[last]
	var none E
	m.frames[last] = none
	m.frames = m.frames[:last]
	m.inversePosition = m.inversePosition[:last]
	if i != last {
		m.position[m.inversePosition[i]] = i
	}
	delete(m.position, qubit)
	return e, nil
}

func (m *MappedVector[E]) Len() int      { return len(m.frames) }
func (m *MappedVector[E]) IsEmpty() bool { return len(m.frames) == 0 }

// Init pre-populates qubits 0..n-1 with default entries.
func (m *MappedVector[E]) Init(n uint) {
	for q := uint(0); q < n; q++ {
		_ = m.Insert(q, m.zero())
	}
}

// Range iterates in slot (insertion) order.
func (m *MappedVector[E]) Range(f func(qubit uint, entry *E) bool) {
	for i := range m.frames {
		if !f(m.inversePosition[i], &m.frames[i]) {
			return
		}
	}
}
