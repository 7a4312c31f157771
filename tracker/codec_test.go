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

package tracker

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/taeruh/pauli-tracker/config"
	"github.com/taeruh/pauli-tracker/pauli"
	"github.com/taeruh/pauli-tracker/store"
)

func trackedFrames(backend config.Backend) *Frames {
	f := InitFrames(3, NewStorage(backend, ZeroStack))
	f.TrackX(0)
	f.Cx(0, 1)
	f.TrackZ(2)
	f.H(1)
	return f
}

func framesEqual(t *testing.T, a, b *Frames) {
	require.Equal(t, a.FramesNum(), b.FramesNum())
	sa, sb := a.AsStorage(), b.AsStorage()
	require.Equal(t, store.Keys(sa), store.Keys(sb))
	sa.Range(func(qubit uint, e *pauli.Stack) bool {
		o, ok := sb.Get(qubit)
		require.True(t, ok)
		require.True(t, e.Equal(&o), "qubit %d", qubit)
		return true
	})
}

func TestFramesRoundTrip(t *testing.T) {
	for _, backend := range []config.Backend{
		config.BackendMap, config.BackendBufferedVector, config.BackendMappedVector,
	} {
		t.Run(string(backend), func(t *testing.T) {
			f := trackedFrames(backend)

			enc, err := f.MarshalJSON()
			require.NoError(t, err)
			back := NewFrames(NewStorage(backend, ZeroStack))
			require.NoError(t, back.UnmarshalJSON(enc))
			framesEqual(t, f, back)

			benc, err := f.MarshalBinary()
			require.NoError(t, err)
			bback := NewFrames(NewStorage(backend, ZeroStack))
			require.NoError(t, bback.UnmarshalBinary(benc))
			framesEqual(t, f, bback)
		})
	}
}

func TestFramesJSONLayout(t *testing.T) {
	f := InitFrames(1, store.NewMap(ZeroStack))
	f.TrackX(0)
	enc, err := f.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t,
		`{"storage":{"0":{"x":[true],"z":[false]}},"frames_num":1}`,
		string(enc))
}

func TestLiveRoundTrip(t *testing.T) {
	l := InitLive[pauli.Pauli, *pauli.Pauli](2, store.NewMap(ZeroPauli))
	l.TrackY(0)
	l.Cx(0, 1)

	enc, err := json.Marshal(l)
	require.NoError(t, err)
	back := NewLive[pauli.Pauli, *pauli.Pauli](store.NewMap(ZeroPauli))
	require.NoError(t, back.UnmarshalJSON(enc))
	for q := uint(0); q < 2; q++ {
		want, _ := l.AsStorage().Get(q)
		got, ok := back.AsStorage().Get(q)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	benc, err := l.MarshalBinary()
	require.NoError(t, err)
	bback := NewLive[pauli.Pauli, *pauli.Pauli](store.NewMap(ZeroPauli))
	require.NoError(t, bback.UnmarshalBinary(benc))
	got, ok := bback.AsStorage().Get(1)
	require.True(t, ok)
	require.Equal(t, pauli.X, got)
}

func TestFromConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("backend = \"buffered\"\ninit_qubits = 2\n"))
	require.NoError(t, err)

	f := FramesFromConfig(cfg)
	f.TrackX(0)
	require.Equal(t, uint(1), f.FramesNum())
	_, ok := f.AsStorage().Get(1)
	require.True(t, ok)

	l := LiveFromConfig(cfg)
	l.TrackZ(1)
	p, err := l.Measure(1)
	require.NoError(t, err)
	require.Equal(t, pauli.Z, p)
}
