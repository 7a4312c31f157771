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
)

// Cx conjugates (control, target): the control's X row copies onto the
// target's X row, the target's Z row copies onto the control's Z row.
func Cx(control, target pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	return pauli.FromXZ(control.X(), control.Z() != target.Z()),
		pauli.FromXZ(target.X() != control.X(), target.Z())
}

// Cz conjugates symmetrically: each side's Z row absorbs the other's X row.
func Cz(a, b pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	return pauli.FromXZ(a.X(), a.Z() != b.X()),
		pauli.FromXZ(b.X(), b.Z() != a.X())
}

// Cy conjugates (control, target). An X on the control propagates a Y onto
// the target; an X or Z on the target propagates a Z onto the control. All
// three updates read the pre-gate rows.
func Cy(control, target pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	return pauli.FromXZ(control.X(),
			control.Z() != (target.X() != target.Z())),
		pauli.FromXZ(target.X() != control.X(), target.Z() != control.X())
}

// Swap exchanges the two Paulis.
func Swap(a, b pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	return b, a
}

// Iswap is SWAP·CZ·(S⊗S), derived from the composition rather than
// transcribed as its own table. Iswapdg shares the rule: the S factors are
// the only daggered parts and S and Sdg coincide modulo phase.
func Iswap(a, b pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	a, b = S(a), S(b)
	a, b = Cz(a, b)
	return Swap(a, b)
}

func Iswapdg(a, b pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	return Iswap(a, b)
}

// MoveXToX transfers the source's X row onto the destination's X row by
// XOR and clears the source row. The move gates implement qubit-merging
// primitives (e.g. lattice-surgery patch merges) where a correction must
// migrate wholesale to another wire.
func MoveXToX(source, destination pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	return pauli.FromXZ(false, source.Z()),
		pauli.FromXZ(destination.X() != source.X(), destination.Z())
}

// MoveXToZ transfers the source's X row onto the destination's Z row.
func MoveXToZ(source, destination pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	return pauli.FromXZ(false, source.Z()),
		pauli.FromXZ(destination.X(), destination.Z() != source.X())
}

// MoveZToX transfers the source's Z row onto the destination's X row.
func MoveZToX(source, destination pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	return pauli.FromXZ(source.X(), false),
		pauli.FromXZ(destination.X() != source.Z(), destination.Z())
}

// MoveZToZ transfers the source's Z row onto the destination's Z row.
func MoveZToZ(source, destination pauli.Pauli) (pauli.Pauli, pauli.Pauli) {
	return pauli.FromXZ(source.X(), false),
		pauli.FromXZ(destination.X(), destination.Z() != source.Z())
}
