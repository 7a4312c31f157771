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

// Package transpose rotates a (qubit × frame) bit matrix into a
// (frame × qubit) one: the per-qubit stacks a Frames tracker accumulates
// become per-frame correction vectors, which is the shape a scheduler
// consumes. When the stacks are word-packed, the rotation runs on 64×64
// bit blocks instead of single bits.
package transpose

import (
	"github.com/taeruh/pauli-tracker/boolvec"
	"github.com/taeruh/pauli-tracker/internal/bitword"
	"github.com/taeruh/pauli-tracker/pauli"
	"github.com/taeruh/pauli-tracker/store"
	"github.com/taeruh/pauli-tracker/trackererr"
)

// Stacked transposes the storage's (qubit × frame) bit matrix. The result
// is a BufferedVector keyed by frame index; entry i is the stack of
// per-qubit bits at frame i, qubits ordered by the input's iteration
// order. Every input stack must have both rows of length exactly
// numFrames (Frames.IntoStorage pads to exactly this shape).
func Stacked(in store.Full[pauli.Stack], numFrames uint) (*store.BufferedVector[pauli.Stack], error) {
	var (
		xRows, zRows []boolvec.Vec
		badQubit     uint
		bad          bool
	)
	in.Range(func(qubit uint, s *pauli.Stack) bool {
		if s.X().Len() != int(numFrames) || s.Z().Len() != int(numFrames) {
			badQubit, bad = qubit, true
			return false
		}
		xRows = append(xRows, s.X())
		zRows = append(zRows, s.Z())
		return true
	})
	if bad {
		return nil, trackererr.PreconditionViolated(
			"stacked transpose: stack at qubit %d does not have exactly %d frames",
			badQubit, numFrames)
	}

	numBits := len(xRows)
	packed := true
	for _, r := range append(append([]boolvec.Vec(nil), xRows...), zRows...) {
		if _, ok := r.(*boolvec.Packed); !ok {
			packed = false
			break
		}
	}

	var xT, zT []boolvec.Vec
	if packed {
		xT = transposePacked(xRows, numBits, int(numFrames))
		zT = transposePacked(zRows, numBits, int(numFrames))
	} else {
		xT = transposeBits(xRows, numBits, int(numFrames))
		zT = transposeBits(zRows, numBits, int(numFrames))
	}

	out := store.NewBufferedVector(func() pauli.Stack { return *pauli.NewStack(packed) })
	for i := 0; i < int(numFrames); i++ {
		if err := out.Insert(uint(i), *pauli.NewStackFrom(xT[i], zT[i])); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// transposePacked rotates numRows×numCols on whole 64-bit words: gather a
// 64×64 block, transpose it in registers, scatter it into the output rows.
func transposePacked(rows []boolvec.Vec, numRows, numCols int) []boolvec.Vec {
	rowWords := bitword.WordsFor(numCols)
	outWords := bitword.WordsFor(numRows)
	words := make([][]uint64, numRows)
	for j, r := range rows {
		words[j], _ = r.(*boolvec.Packed).RawWords()
	}
	out := make([][]uint64, numCols)
	for i := range out {
		out[i] = make([]uint64, outWords)
	}

	var block [64]uint64
	for jb := 0; jb < outWords; jb++ {
		for ib := 0; ib < rowWords; ib++ {
			for r := 0; r < 64; r++ {
				j := jb*64 + r
				if j < numRows && ib < len(words[j]) {
					block[r] = words[j][ib]
				} else {
					block[r] = 0
				}
			}
			transpose64(&block)
			for c := 0; c < 64; c++ {
				if i := ib*64 + c; i < numCols {
					out[i][jb] = block[c]
				}
			}
		}
	}

	vecs := make([]boolvec.Vec, numCols)
	for i := range vecs {
		vecs[i] = boolvec.PackedFromWords(out[i], numRows)
	}
	return vecs
}

// transposeBits is the representation-agnostic fallback used when any
// input row is in the byte-per-bit form.
func transposeBits(rows []boolvec.Vec, numRows, numCols int) []boolvec.Vec {
	vecs := make([]boolvec.Vec, numCols)
	for i := range vecs {
		vecs[i] = boolvec.NewDenseFilled(numRows, false)
	}
	for j, r := range rows {
		for i := 0; i < numCols; i++ {
			if r.Get(i) {
				vecs[i].Set(j, true)
			}
		}
	}
	return vecs
}

// transpose64 transposes a 64×64 bit block in place, treating a[r] bit c
// as matrix element (r, c) with little-endian columns. Standard mask-and-
// shift block transpose, halving the block size each round.
func transpose64(a *[64]uint64) {
	j := uint(32)
	m := uint64(0x00000000FFFFFFFF)
	for j != 0 {
		for k := uint(0); k < 64; k = (k + j + 1) &^ j {
			t := ((a[k] >> j) ^ a[k+j]) & m
			a[k+j] ^= t
			a[k] ^= t << j
		}
		j >>= 1
		m ^= m << j
	}
}
