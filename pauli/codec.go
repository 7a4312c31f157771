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
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/ugorji/go/codec"
)

var cborHandle codec.CborHandle

// MarshalJSON renders the Pauli as its canonical one-letter name, the
// "plain serialization of the data structure" spec.md §1/§6 asks for.
func (p Pauli) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Pauli) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "I":
		*p = I
	case "Z":
		*p = Z
	case "X":
		*p = X
	case "Y":
		*p = Y
	default:
		return fmt.Errorf("pauli: invalid Pauli literal %q", s)
	}
	return nil
}

// MarshalBinary encodes the Pauli as a single CBOR byte via the teacher's
// binary-codec dependency.
func (p Pauli) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf, &cborHandle)
	if err := enc.Encode(p.Encoding()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Pauli) UnmarshalBinary(data []byte) error {
	var v uint8
	dec := codec.NewDecoderBytes(data, &cborHandle)
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if v > uint8(Y) {
		return fmt.Errorf("pauli: invalid encoding %d", v)
	}
	*p = Pauli(v)
	return nil
}

// jsonStack is the wire layout from spec.md §6: PauliStacks serialize as
// {"x": [bits], "z": [bits]} with plain booleans.
type jsonStack struct {
	X []bool `json:"x"`
	Z []bool `json:"z"`
}

func (s *Stack) toBits() jsonStack {
	js := jsonStack{X: make([]bool, s.x.Len()), Z: make([]bool, s.z.Len())}
	for i := range js.X {
		js.X[i] = s.x.Get(i)
	}
	for i := range js.Z {
		js.Z[i] = s.z.Get(i)
	}
	return js
}

func (js jsonStack) toStack(packed bool) *Stack {
	st := NewStack(packed)
	st.x.Resize(len(js.X), false)
	st.z.Resize(len(js.Z), false)
	for i, b := range js.X {
		st.x.Set(i, b)
	}
	for i, b := range js.Z {
		st.z.Set(i, b)
	}
	return st
}

func (s *Stack) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toBits())
}

// UnmarshalJSON rebuilds the stack using the packed representation; callers
// needing Dense should construct via NewStackFrom and Push instead.
func (s *Stack) UnmarshalJSON(data []byte) error {
	var js jsonStack
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	*s = *js.toStack(true)
	return nil
}

func (s *Stack) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf, &cborHandle)
	if err := enc.Encode(s.toBits()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Stack) UnmarshalBinary(data []byte) error {
	var js jsonStack
	dec := codec.NewDecoderBytes(data, &cborHandle)
	if err := dec.Decode(&js); err != nil {
		return err
	}
	*s = *js.toStack(true)
	return nil
}
