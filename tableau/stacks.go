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

package tableau

import (
	"github.com/taeruh/pauli-tracker/pauli"
	"github.com/taeruh/pauli-tracker/trackererr"
)

// The stack-wise gates below are the single-Pauli rules of single.go and
// double.go applied to every frame at once: each bit-pair update becomes a
// whole-vector XOR, each row exchange a pointer swap. Callers (the Frames
// tracker) must have padded the operand stacks to a common length first.

func checkStack(s *pauli.Stack) {
	trackererr.AssertInvariant(s.X().Len() == s.Z().Len(),
		"stack rows diverged: x=%d z=%d", s.X().Len(), s.Z().Len())
}

// IdStack covers the identity-like gates (id, x, y, z): a pure Pauli
// applied to the state never changes the tracked frame.
func IdStack(s *pauli.Stack) {
	checkStack(s)
}

// HStack swaps the X and Z rows of every frame.
func HStack(s *pauli.Stack) {
	checkStack(s)
	s.SwapRows()
}

// SStack XORs the X row into the Z row (X <-> Y on every frame).
func SStack(s *pauli.Stack) {
	checkStack(s)
	s.Z().Xor(s.X())
}

// SxStack XORs the Z row into the X row (Z <-> Y on every frame).
func SxStack(s *pauli.Stack) {
	checkStack(s)
	s.X().Xor(s.Z())
}

func SdgStack(s *pauli.Stack)  { SStack(s) }
func SzStack(s *pauli.Stack)   { SStack(s) }
func SzdgStack(s *pauli.Stack) { SStack(s) }
func SxdgStack(s *pauli.Stack) { SxStack(s) }
func SyStack(s *pauli.Stack)   { HStack(s) }
func SydgStack(s *pauli.Stack) { HStack(s) }
func HxyStack(s *pauli.Stack)  { SStack(s) }
func HyzStack(s *pauli.Stack)  { SxStack(s) }

// ShStack applies H then S, matching Sh = S∘H on single Paulis.
func ShStack(s *pauli.Stack) {
	HStack(s)
	SStack(s)
}

// HsStack applies S then H, matching Hs = H∘S on single Paulis.
func HsStack(s *pauli.Stack) {
	SStack(s)
	HStack(s)
}

// ShsStack applies S, H, S in sequence.
func ShsStack(s *pauli.Stack) {
	SStack(s)
	HStack(s)
	SStack(s)
}

// CxStack: the control's X row XORs onto the target's X row, the target's
// Z row onto the control's Z row. The two updates touch disjoint rows, so
// no copy of the pre-gate state is needed.
func CxStack(control, target *pauli.Stack) {
	checkStack(control)
	checkStack(target)
	target.X().Xor(control.X())
	control.Z().Xor(target.Z())
}

// CzStack: each side's Z row absorbs the other's X row.
func CzStack(a, b *pauli.Stack) {
	checkStack(a)
	checkStack(b)
	a.Z().Xor(b.X())
	b.Z().Xor(a.X())
}

// CyStack: the control's Z row absorbs the target's X and Z rows before
// the target rows absorb the control's X row, so every XOR reads pre-gate
// values.
func CyStack(control, target *pauli.Stack) {
	checkStack(control)
	checkStack(target)
	control.Z().Xor(target.X())
	control.Z().Xor(target.Z())
	target.Z().Xor(control.X())
	target.X().Xor(control.X())
}

// SwapStack exchanges both rows between the two stacks.
func SwapStack(a, b *pauli.Stack) {
	checkStack(a)
	checkStack(b)
	a.SwapWith(b)
}

// IswapStack is SWAP·CZ·(S⊗S), composed exactly like Iswap.
func IswapStack(a, b *pauli.Stack) {
	SStack(a)
	SStack(b)
	CzStack(a, b)
	SwapStack(a, b)
}

func IswapdgStack(a, b *pauli.Stack) { IswapStack(a, b) }

// MoveXToXStack XORs the source's X row onto the destination's X row and
// clears the source row.
func MoveXToXStack(source, destination *pauli.Stack) {
	checkStack(source)
	checkStack(destination)
	destination.X().Xor(source.X())
	source.X().ClearAll()
}

// MoveXToZStack XORs the source's X row onto the destination's Z row.
func MoveXToZStack(source, destination *pauli.Stack) {
	checkStack(source)
	checkStack(destination)
	destination.Z().Xor(source.X())
	source.X().ClearAll()
}

// MoveZToXStack XORs the source's Z row onto the destination's X row.
func MoveZToXStack(source, destination *pauli.Stack) {
	checkStack(source)
	checkStack(destination)
	destination.X().Xor(source.Z())
	source.Z().ClearAll()
}

// MoveZToZStack XORs the source's Z row onto the destination's Z row.
func MoveZToZStack(source, destination *pauli.Stack) {
	checkStack(source)
	checkStack(destination)
	destination.Z().Xor(source.Z())
	source.Z().ClearAll()
}
