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

// Package store maps qubit indices to per-qubit payloads. Three backends
// with different trade-offs implement the same contract: Map (sparse,
// unordered keys, sorted iteration via an occupancy bitmap), BufferedVector
// (dense, position-keyed, tail-only removal) and MappedVector (dense
// payload array with an indirection map, swap-remove).
package store

// Base is the capability set every backend provides. Get on a missing
// qubit returns the zero payload and false; gate-level callers treat that
// as the identity Pauli and skip the update.
type Base[E any] interface {
	Get(qubit uint) (E, bool)
	GetMut(qubit uint) (*E, bool)
	Insert(qubit uint, entry E) error
	Remove(qubit uint) (E, error)
	Len() int
	IsEmpty() bool
}

// Full backends additionally support pre-population and ordered iteration.
// Range yields (qubit, *entry) pairs until f returns false; Map and
// BufferedVector iterate in ascending qubit order, MappedVector in slot
// order (insertion order until a swap-remove moves the last slot into a
// vacated one).
type Full[E any] interface {
	Base[E]
	Init(n uint)
	Range(f func(qubit uint, entry *E) bool)
}

// Keys collects the qubit indices of s in its iteration order.
func Keys[E any](s Full[E]) []uint {
	keys := make([]uint, 0, s.Len())
	s.Range(func(qubit uint, _ *E) bool {
		keys = append(keys, qubit)
		return true
	})
	return keys
}
