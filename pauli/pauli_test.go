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
)

func TestEncoding(t *testing.T) {
	cases := []struct {
		p    Pauli
		x, z bool
		enc  uint8
		name string
	}{
		{I, false, false, 0, "I"},
		{Z, false, true, 1, "Z"},
		{X, true, false, 2, "X"},
		{Y, true, true, 3, "Y"},
	}
	for _, c := range cases {
		require.Equal(t, c.x, c.p.X(), c.name)
		require.Equal(t, c.z, c.p.Z(), c.name)
		require.Equal(t, c.enc, c.p.Encoding(), c.name)
		require.Equal(t, c.name, c.p.String())
		require.Equal(t, c.p, FromXZ(c.x, c.z))
	}
}

func TestMul(t *testing.T) {
	require.Equal(t, Y, X.Mul(Z))
	require.Equal(t, Y, Z.Mul(X))
	require.Equal(t, Z, X.Mul(Y))
	require.Equal(t, X, Z.Mul(Y))
	for _, p := range []Pauli{I, Z, X, Y} {
		require.Equal(t, p, p.Mul(I))
		require.Equal(t, I, p.Mul(p))
	}
}

func TestTupleConversion(t *testing.T) {
	for _, p := range []Pauli{I, Z, X, Y} {
		require.Equal(t, p, FromPauli(p).ToPauli())
	}
	tu := Tuple{X: true}
	tu.Set(Y)
	require.Equal(t, Tuple{X: true, Z: true}, tu)
	require.Equal(t, Y, tu.Get())
}

func TestStackPushPop(t *testing.T) {
	for _, packed := range []bool{false, true} {
		s := NewStack(packed)
		s.Push(X)
		s.Push(Y)
		s.Push(I)
		require.Equal(t, 3, s.Len())
		require.Equal(t, X, s.Get(0))
		require.Equal(t, Y, s.Get(1))

		p, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, I, p)
		p, ok = s.Pop()
		require.True(t, ok)
		require.Equal(t, Y, p)
		p, ok = s.Pop()
		require.True(t, ok)
		require.Equal(t, X, p)
		_, ok = s.Pop()
		require.False(t, ok)
	}
}

func TestStackPad(t *testing.T) {
	s := NewStack(true)
	s.Push(Z)
	s.PadTo(4)
	require.Equal(t, 4, s.Len())
	require.Equal(t, Z, s.Get(0))
	for i := 1; i < 4; i++ {
		require.Equal(t, I, s.Get(i))
	}
	s.PadTo(2)
	require.Equal(t, 4, s.Len(), "PadTo never truncates")
}

func TestStackXorMatchesMul(t *testing.T) {
	a := NewStack(true)
	b := NewStack(true)
	frames := []struct{ u, v Pauli }{{X, Z}, {Y, Y}, {I, X}, {Z, I}}
	for _, f := range frames {
		a.Push(f.u)
		b.Push(f.v)
	}
	a.Xor(b)
	for i, f := range frames {
		require.Equal(t, f.u.Mul(f.v), a.Get(i), "frame %d", i)
	}
}

func TestStackSwapRows(t *testing.T) {
	s := NewStack(true)
	s.Push(X)
	s.Push(Z)
	s.SwapRows()
	require.Equal(t, Z, s.Get(0))
	require.Equal(t, X, s.Get(1))

	o := NewStack(true)
	o.Push(Y)
	o.Push(I)
	s.SwapWith(o)
	require.Equal(t, Y, s.Get(0))
	require.Equal(t, Z, o.Get(0))
}
