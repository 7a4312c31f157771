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

// Package pauli holds the single-qubit Pauli encoding (Pauli, Tuple) and the
// multi-frame PauliStack built on top of boolvec. None of these types know
// about circuits or qubits beyond the single bit-pair (or bit-vector pair)
// they encode; the gate conjugations live in package tableau.
package pauli

import "fmt"

// Pauli is a single encoded Pauli operator: two bits (x, z) packed as
// 2*x + z, so that I=0b00, Z=0b01, X=0b10, Y=0b11.
type Pauli uint8

const (
	I Pauli = 0
	Z Pauli = 1
	X Pauli = 2
	Y Pauli = 3
)

// FromXZ builds the encoded Pauli for the given (x, z) bit pair.
func FromXZ(x, z bool) Pauli {
	var p Pauli
	if x {
		p |= X
	}
	if z {
		p |= Z
	}
	return p
}

func (p Pauli) X() bool { return p&X != 0 }
func (p Pauli) Z() bool { return p&Z != 0 }

// Encoding returns the tableau_encoding integer 2*x+z in {0,1,2,3}.
func (p Pauli) Encoding() uint8 { return uint8(p) }

// Mul returns the product of two Paulis modulo global phase: bitwise XOR of
// their (x, z) representations.
func (p Pauli) Mul(q Pauli) Pauli { return p ^ q }

func (p Pauli) String() string {
	switch p {
	case I:
		return "I"
	case Z:
		return "Z"
	case X:
		return "X"
	case Y:
		return "Y"
	default:
		return fmt.Sprintf("Pauli(%d)", uint8(p))
	}
}

// Get and Set let *Pauli satisfy the EntryPtr constraint used by Live
// trackers, so the same gate code serves the packed and the tuple payload.
func (p *Pauli) Get() Pauli  { return *p }
func (p *Pauli) Set(v Pauli) { *p = v }

// Tuple is the unpacked (x, z) payload variant used by Live trackers
// configured with the explicit-tuple entry kind (PauliTuple in the original
// monomorphized API).
type Tuple struct {
	X bool `json:"x"`
	Z bool `json:"z"`
}

// ToPauli packs the tuple into the 2-bit encoding.
func (t Tuple) ToPauli() Pauli { return FromXZ(t.X, t.Z) }

// FromPauli unpacks the 2-bit encoding into an (x, z) tuple.
func FromPauli(p Pauli) Tuple { return Tuple{X: p.X(), Z: p.Z()} }

// Mul is the tuple-valued equivalent of Pauli.Mul.
func (t Tuple) Mul(o Tuple) Tuple {
	return Tuple{X: t.X != o.X, Z: t.Z != o.Z}
}

func (t *Tuple) Get() Pauli  { return t.ToPauli() }
func (t *Tuple) Set(v Pauli) { *t = FromPauli(v) }

// EntryPtr constrains the payload kinds a Live tracker can hold: a pointer
// to the payload that can be read as, and overwritten from, an encoded
// Pauli.
type EntryPtr[E any] interface {
	*E
	Get() Pauli
	Set(Pauli)
}
