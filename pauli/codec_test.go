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

package pauli

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPauliJSON(t *testing.T) {
	for _, p := range []Pauli{I, Z, X, Y} {
		enc, err := p.MarshalJSON()
		require.NoError(t, err)
		require.Equal(t, `"`+p.String()+`"`, string(enc))

		var back Pauli
		require.NoError(t, back.UnmarshalJSON(enc))
		require.Equal(t, p, back)
	}
	var p Pauli
	require.Error(t, p.UnmarshalJSON([]byte(`"W"`)))
}

func TestPauliBinary(t *testing.T) {
	for _, p := range []Pauli{I, Z, X, Y} {
		enc, err := p.MarshalBinary()
		require.NoError(t, err)
		var back Pauli
		require.NoError(t, back.UnmarshalBinary(enc))
		require.Equal(t, p, back)
	}
}

func TestStackJSONLayout(t *testing.T) {
	s := NewStack(true)
	s.Push(X)
	s.Push(Y)
	enc, err := s.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"x":[true,true],"z":[false,true]}`, string(enc))

	var back Stack
	require.NoError(t, back.UnmarshalJSON(enc))
	require.True(t, s.Equal(&back))
}

func TestStackRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		paulis := rapid.SliceOfN(
			rapid.SampledFrom([]Pauli{I, Z, X, Y}), 0, 100).Draw(t, "frames")
		s := NewStack(true)
		for _, p := range paulis {
			s.Push(p)
		}

		jenc, err := s.MarshalJSON()
		require.NoError(t, err)
		var jback Stack
		require.NoError(t, jback.UnmarshalJSON(jenc))
		require.True(t, s.Equal(&jback))

		benc, err := s.MarshalBinary()
		require.NoError(t, err)
		var bback Stack
		require.NoError(t, bback.UnmarshalBinary(benc))
		require.True(t, s.Equal(&bback))
	})
}
