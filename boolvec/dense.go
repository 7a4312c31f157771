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

package boolvec

// Dense is a one-bool-per-byte vector. It exists for the interop edge,
// where a byte-per-element layout is cheaper to hand across an FFI boundary
// than an unpacking/packing step.
type Dense struct {
	bits []bool
}

// NewDense returns an empty Dense vector.
func NewDense() *Dense { return &Dense{} }

// NewDenseFilled returns a Dense vector of length n, all set to fill.
func NewDenseFilled(n int, fill bool) *Dense {
	d := &Dense{bits: make([]bool, n)}
	if fill {
		for i := range d.bits {
			d.bits[i] = true
		}
	}
	return d
}

func (d *Dense) Get(i int) bool {
	checkIndex(i, len(d.bits))
	return d.bits[i]
}

func (d *Dense) Set(i int, v bool) {
	checkIndex(i, len(d.bits))
	d.bits[i] = v
}

func (d *Dense) Len() int      { return len(d.bits) }
func (d *Dense) IsEmpty() bool { return len(d.bits) == 0 }

func (d *Dense) Resize(n int, fill bool) {
	if n <= len(d.bits) {
		d.bits = d.bits[:n]
		return
	}
	grown := make([]bool, n)
	copy(grown, d.bits)
	for i := len(d.bits); i < n; i++ {
		grown[i] = fill
	}
	d.bits = grown
}

// ClearAll zeroes every bit, keeping the length.
func (d *Dense) ClearAll() {
	for i := range d.bits {
		d.bits[i] = false
	}
}

func (d *Dense) other(v Vec) *Dense {
	o, ok := v.(*Dense)
	if !ok {
		panic("boolvec: Dense operand required")
	}
	lenMismatch(len(d.bits), o.Len())
	return o
}

func (d *Dense) Xor(v Vec) {
	o := d.other(v)
	for i := range d.bits {
		d.bits[i] = d.bits[i] != o.bits[i]
	}
}

func (d *Dense) And(v Vec) {
	o := d.other(v)
	for i := range d.bits {
		d.bits[i] = d.bits[i] && o.bits[i]
	}
}

func (d *Dense) Or(v Vec) {
	o := d.other(v)
	for i := range d.bits {
		d.bits[i] = d.bits[i] || o.bits[i]
	}
}

func (d *Dense) Clone() Vec {
	c := make([]bool, len(d.bits))
	copy(c, d.bits)
	return &Dense{bits: c}
}

func (d *Dense) Equal(v Vec) bool {
	o, ok := v.(*Dense)
	if !ok || len(o.bits) != len(d.bits) {
		return false
	}
	for i := range d.bits {
		if d.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}
