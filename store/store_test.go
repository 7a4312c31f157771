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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/taeruh/pauli-tracker/pauli"
	"github.com/taeruh/pauli-tracker/trackererr"
)

func zeroPauli() pauli.Pauli { return pauli.I }

func backends() map[string]func() Full[pauli.Pauli] {
	return map[string]func() Full[pauli.Pauli]{
		"map":      func() Full[pauli.Pauli] { return NewMap(zeroPauli) },
		"buffered": func() Full[pauli.Pauli] { return NewBufferedVector(zeroPauli) },
		"mapped":   func() Full[pauli.Pauli] { return NewMappedVector(zeroPauli) },
	}
}

func TestContract(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			s := mk()
			require.True(t, s.IsEmpty())

			require.NoError(t, s.Insert(0, pauli.X))
			require.NoError(t, s.Insert(1, pauli.Z))
			require.Equal(t, 2, s.Len())

			p, ok := s.Get(0)
			require.True(t, ok)
			require.Equal(t, pauli.X, p)
			_, ok = s.Get(7)
			require.False(t, ok)

			e, ok := s.GetMut(1)
			require.True(t, ok)
			*e = pauli.Y
			p, _ = s.Get(1)
			require.Equal(t, pauli.Y, p)

			got, err := s.Remove(1)
			require.NoError(t, err)
			require.Equal(t, pauli.Y, got)
			require.Equal(t, 1, s.Len())

			_, err = s.Remove(9)
			require.ErrorIs(t, err, trackererr.ErrNotFound)
		})
	}
}

func TestInitAndRange(t *testing.T) {
	for name, mk := range backends() {
		t.Run(name, func(t *testing.T) {
			s := mk()
			s.Init(4)
			require.Equal(t, 4, s.Len())
			require.Equal(t, []uint{0, 1, 2, 3}, Keys(s))
			s.Range(func(qubit uint, e *pauli.Pauli) bool {
				require.Equal(t, pauli.I, *e)
				return true
			})
		})
	}
}

func TestMapRangeIsSorted(t *testing.T) {
	s := NewMap(zeroPauli)
	for _, q := range []uint{9, 2, 17, 0, 5} {
		require.NoError(t, s.Insert(q, pauli.X))
	}
	require.Equal(t, []uint{0, 2, 5, 9, 17}, Keys(s))
}

func TestBufferedVectorPreconditions(t *testing.T) {
	s := NewBufferedVector(zeroPauli)
	s.Init(3)

	err := s.Insert(0, pauli.X)
	require.ErrorIs(t, err, trackererr.ErrPreconditionViolated)

	_, err = s.Remove(0)
	require.ErrorIs(t, err, trackererr.ErrPreconditionViolated)

	// Inserting past the end pads the gap with defaults.
	require.NoError(t, s.Insert(5, pauli.Y))
	require.Equal(t, 6, s.Len())
	p, ok := s.Get(4)
	require.True(t, ok)
	require.Equal(t, pauli.I, p)
	p, _ = s.Get(5)
	require.Equal(t, pauli.Y, p)

	got, err := s.Remove(5)
	require.NoError(t, err)
	require.Equal(t, pauli.Y, got)
}

func TestMappedVectorSwapRemove(t *testing.T) {
	s := NewMappedVector(zeroPauli)
	require.NoError(t, s.Insert(10, pauli.X))
	require.NoError(t, s.Insert(20, pauli.Y))
	require.NoError(t, s.Insert(30, pauli.Z))

	got, err := s.Remove(10)
	require.NoError(t, err)
	require.Equal(t, pauli.X, got)
	require.Equal(t, 2, s.Len())

	// The swapped-in entry is still addressable by its own key.
	p, ok := s.Get(30)
	require.True(t, ok)
	require.Equal(t, pauli.Z, p)
	p, ok = s.Get(20)
	require.True(t, ok)
	require.Equal(t, pauli.Y, p)
	_, ok = s.Get(10)
	require.False(t, ok)

	// Sparse keys and re-insertion keep the indirection consistent.
	require.NoError(t, s.Insert(10, pauli.I))
	require.Equal(t, 3, s.Len())
	got, err = s.Remove(20)
	require.NoError(t, err)
	require.Equal(t, pauli.Y, got)
	p, _ = s.Get(10)
	require.Equal(t, pauli.I, p)
}

func TestGateNoOpConvention(t *testing.T) {
	// Errors carry their cause for the caller; a gate-level caller only
	// checks the ok bool and skips, so Get must not allocate errors.
	s := NewMap(zeroPauli)
	_, ok := s.Get(42)
	require.False(t, ok)
	_, err := s.Remove(42)
	require.Equal(t, trackererr.ErrNotFound, errors.Cause(err))
}
