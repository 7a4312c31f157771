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

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/taeruh/pauli-tracker/internal/bitword"
)

// Packed is the default hot-path representation: a 64-bit-word bit vector,
// little-endian within each word. It wraps bits-and-blooms/bitset, adding
// the resize-with-fill and raw-word-view semantics this library needs that
// the general-purpose bitset type doesn't provide on its own.
type Packed struct {
	bs     *bitset.BitSet
	length int
}

// NewPacked returns an empty Packed vector.
func NewPacked() *Packed {
	return &Packed{bs: bitset.New(0)}
}

// PackedFromWords builds a Packed vector of bitLen bits directly over the
// given 64-bit words, the inverse of RawWords. The slice is not copied; the
// unused tail bits of the last word must be zero.
func PackedFromWords(data []uint64, bitLen int) *Packed {
	return &Packed{bs: bitset.FromWithLength(uint(bitLen), data), length: bitLen}
}

// NewPackedFilled returns a Packed vector of length n, all bits set to fill.
func NewPackedFilled(n int, fill bool) *Packed {
	p := &Packed{bs: bitset.New(uint(n)), length: n}
	if fill {
		for i := 0; i < n; i++ {
			p.bs.Set(uint(i))
		}
	}
	return p
}

func (p *Packed) Get(i int) bool {
	checkIndex(i, p.length)
	return p.bs.Test(uint(i))
}

func (p *Packed) Set(i int, v bool) {
	checkIndex(i, p.length)
	if v {
		p.bs.Set(uint(i))
	} else {
		p.bs.Clear(uint(i))
	}
}

func (p *Packed) Len() int      { return p.length }
func (p *Packed) IsEmpty() bool { return p.length == 0 }

// Resize rebuilds the backing word slice to exactly the number of words a
// length-n vector needs, masking off the unused tail bits of the final word
// so that two equal-length Packed vectors always compare/XOR/AND/OR
// correctly word-for-word.
func (p *Packed) Resize(n int, fill bool) {
	newWords := bitword.WordsFor(n)
	data := append([]uint64(nil), p.bs.Bytes()...)
	switch {
	case len(data) < newWords:
		data = append(data, make([]uint64, newWords-len(data))...)
	case len(data) > newWords:
		data = data[:newWords]
	}
	if len(data) > 0 {
		data[len(data)-1] &= bitword.TailMask(n)
	}
	old := p.length
	p.bs = bitset.FromWithLength(uint(n), data)
	p.length = n
	if n > old && fill {
		for i := old; i < n; i++ {
			p.bs.Set(uint(i))
		}
	}
}

// ClearAll zeroes every bit, keeping the length.
func (p *Packed) ClearAll() {
	p.bs.ClearAll()
}

func (p *Packed) other(v Vec) *Packed {
	o, ok := v.(*Packed)
	if !ok {
		panic("boolvec: Packed operand required")
	}
	lenMismatch(p.length, o.length)
	return o
}

func (p *Packed) Xor(v Vec) { p.bs.InPlaceSymmetricDifference(p.other(v).bs) }
func (p *Packed) And(v Vec) { p.bs.InPlaceIntersection(p.other(v).bs) }
func (p *Packed) Or(v Vec)  { p.bs.InPlaceUnion(p.other(v).bs) }

func (p *Packed) Clone() Vec {
	return &Packed{bs: p.bs.Clone(), length: p.length}
}

func (p *Packed) Equal(v Vec) bool {
	o, ok := v.(*Packed)
	if !ok || o.length != p.length {
		return false
	}
	return p.bs.Equal(o.bs)
}

// RawWords is the zero-copy raw view named in the external-interface
// surface (RawVec<word>): the backing 64-bit words plus the logical bit
// length, which can differ from len(data)*64 when the last word is only
// partially used.
func (p *Packed) RawWords() (data []uint64, bitLen int) {
	return p.bs.Bytes(), p.length
}
