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

// Package tableau defines how each named Clifford gate conjugates an
// encoded Pauli, modulo global phase. Every gate rule is a fixed permutation
// on the (x, z) bit pair(s); the move operations, which clear their source
// row, are not permutations. The stack-wise variants in stacks.go lift the same
// rules across all frames at once with whole-vector XORs and row swaps.
//
// Phases are never tracked, so the dagger of every single-qubit rotation
// acts identically to the rotation itself (S and Sdg both exchange X and
// Y), and gates that differ only by a Pauli factor share a rule.
package tableau

import (
	"github.com/taeruh/pauli-tracker/pauli"
)

// Id leaves the Pauli unchanged. X, Y and Z do too: conjugation by a Pauli
// can only flip signs, which the tracker ignores. They exist so the gate
// surface mirrors the circuit instruction set one-to-one.
func Id(p pauli.Pauli) pauli.Pauli { return p }
func X(p pauli.Pauli) pauli.Pauli  { return p }
func Y(p pauli.Pauli) pauli.Pauli  { return p }
func Z(p pauli.Pauli) pauli.Pauli  { return p }

// H swaps the X and Z rows: (x, z) -> (z, x).
func H(p pauli.Pauli) pauli.Pauli {
	return pauli.FromXZ(p.Z(), p.X())
}

// S exchanges X and Y, fixing Z: z' = z XOR x.
func S(p pauli.Pauli) pauli.Pauli {
	return pauli.FromXZ(p.X(), p.Z() != p.X())
}

// Sdg, Sz and Szdg all act as S modulo phase.
func Sdg(p pauli.Pauli) pauli.Pauli  { return S(p) }
func Sz(p pauli.Pauli) pauli.Pauli   { return S(p) }
func Szdg(p pauli.Pauli) pauli.Pauli { return S(p) }

// Sx exchanges Z and Y, fixing X: x' = x XOR z.
func Sx(p pauli.Pauli) pauli.Pauli {
	return pauli.FromXZ(p.X() != p.Z(), p.Z())
}

func Sxdg(p pauli.Pauli) pauli.Pauli { return Sx(p) }

// Sy exchanges X and Z, fixing Y; the same permutation as H modulo phase.
func Sy(p pauli.Pauli) pauli.Pauli   { return H(p) }
func Sydg(p pauli.Pauli) pauli.Pauli { return H(p) }

// Hxy exchanges X and Y, fixing Z; the same permutation as S modulo phase.
func Hxy(p pauli.Pauli) pauli.Pauli { return S(p) }

// Hyz exchanges Y and Z, fixing X; the same permutation as Sx modulo phase.
func Hyz(p pauli.Pauli) pauli.Pauli { return Sx(p) }

// Sh, Hs and Shs are compositions, not independent table entries, so the
// identities hs = h∘s, sh = s∘h and shs = s∘h∘s hold by construction.
func Sh(p pauli.Pauli) pauli.Pauli  { return S(H(p)) }
func Hs(p pauli.Pauli) pauli.Pauli  { return H(S(p)) }
func Shs(p pauli.Pauli) pauli.Pauli { return S(H(S(p))) }
