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

import "github.com/taeruh/pauli-tracker/boolvec"

// Stack is a PauliStack: the collection of all frames tracked for a single
// qubit, stored as two parallel bit-vectors (X-row, Z-row). The invariant
// len(X) == len(Z) holds at rest; callers resizing one side before the
// other (e.g. mid-gate) are responsible for restoring it before the stack
// is read again.
type Stack struct {
	x, z boolvec.Vec
}

// NewStack returns an empty Stack. If packed is true the backing vectors
// use the word-packed representation (the default); otherwise the
// byte-per-bit Dense representation is used, matching the FFI/interop edge.
func NewStack(packed bool) *Stack {
	if packed {
		return &Stack{x: boolvec.NewPacked(), z: boolvec.NewPacked()}
	}
	return &Stack{x: boolvec.NewDense(), z: boolvec.NewDense()}
}

// NewStackFrom wraps a caller-supplied (X, Z) vector pair. The two vectors
// must be of the same concrete type and length.
func NewStackFrom(x, z boolvec.Vec) *Stack {
	if x.Len() != z.Len() {
		panic("pauli: Stack requires equal-length X and Z vectors")
	}
	return &Stack{x: x, z: z}
}

func (s *Stack) X() boolvec.Vec { return s.x }
func (s *Stack) Z() boolvec.Vec { return s.z }

// Len returns the number of frames (equivalently frames_num for this
// qubit), trusting the at-rest invariant len(X) == len(Z).
func (s *Stack) Len() int { return s.x.Len() }

func (s *Stack) IsEmpty() bool { return s.x.IsEmpty() }

// PadTo grows both rows to exactly n frames, padding with zero (identity)
// frames. It is a no-op if the stack already has at least n frames; it
// never truncates, since lazy padding only ever catches a stack up to the
// tracker's global frame count.
func (s *Stack) PadTo(n int) {
	if s.x.Len() < n {
		s.x.Resize(n, false)
	}
	if s.z.Len() < n {
		s.z.Resize(n, false)
	}
}

// Push appends one frame encoding p to the stack.
func (s *Stack) Push(p Pauli) {
	n := s.x.Len()
	s.x.Resize(n+1, false)
	s.z.Resize(n+1, false)
	s.x.Set(n, p.X())
	s.z.Set(n, p.Z())
}

// Pop removes and returns the last frame, or (I, false) if the stack is
// empty.
func (s *Stack) Pop() (Pauli, bool) {
	n := s.x.Len()
	if n == 0 {
		return I, false
	}
	p := FromXZ(s.x.Get(n-1), s.z.Get(n-1))
	s.x.Resize(n-1, false)
	s.z.Resize(n-1, false)
	return p, true
}

// Get returns the Pauli tracked at frame i.
func (s *Stack) Get(i int) Pauli {
	return FromXZ(s.x.Get(i), s.z.Get(i))
}

// SwapRows exchanges the X and Z rows. This is the stack-wise Hadamard
// conjugation: every frame's (x, z) pair swaps at once.
func (s *Stack) SwapRows() {
	s.x, s.z = s.z, s.x
}

// SwapWith exchanges both rows with another stack, the stack-wise SWAP gate.
func (s *Stack) SwapWith(o *Stack) {
	s.x, o.x = o.x, s.x
	s.z, o.z = o.z, s.z
}

// Xor distributes single-Pauli multiplication across every frame: the
// equivalent of applying Mul frame-by-frame, done with two vector-wide XORs.
func (s *Stack) Xor(other *Stack) {
	s.x.Xor(other.x)
	s.z.Xor(other.z)
}

func (s *Stack) Clone() *Stack {
	return &Stack{x: s.x.Clone(), z: s.z.Clone()}
}

func (s *Stack) Equal(other *Stack) bool {
	return s.x.Equal(other.x) && s.z.Equal(other.z)
}
