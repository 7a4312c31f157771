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

package store

import (
	"bytes"
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"

	"github.com/taeruh/pauli-tracker/trackererr"
)

// cborHandle is shared by every backend's binary codec. Canonical mode
// keeps the encoding deterministic so equal stores encode identically.
var cborHandle = func() *codec.CborHandle {
	h := new(codec.CborHandle)
	h.Canonical = true
	return h
}()

// mapWire is the stable binary layout of a Map: qubit keys in ascending
// order, entries parallel to them.
type mapWire[E any] struct {
	Qubits  []uint `json:"qubits"`
	Entries []*E   `json:"entries"`
}

// mappedWire is the stable layout of a MappedVector; the position map is
// derivable from inverse_position and is rebuilt on decode.
type mappedWire[E any] struct {
	Frames          []*E   `json:"frames"`
	InversePosition []uint `json:"inverse_position"`
}

// MarshalJSON encodes the Map as a JSON object keyed by decimal qubit
// index, in ascending qubit order (the roaring occupancy bitmap supplies
// the order, so equal maps encode byte-identically).
func (m *Map[E]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	it := m.occupied.Iterator()
	for it.HasNext() {
		q := uint(it.Next())
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteByte('"')
		buf.WriteString(strconv.FormatUint(uint64(q), 10))
		buf.WriteString(`":`)
		entry, err := json.Marshal(m.entries[q])
		if err != nil {
			return nil, err
		}
		buf.Write(entry)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Map[E]) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(trackererr.ErrIO, err.Error())
	}
	if m.entries == nil {
		*m = *NewMap[E](m.zero)
	}
	for key, msg := range raw {
		q, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return errors.Wrapf(trackererr.ErrIO, "map key %q", key)
		}
		var e E
		if err := json.Unmarshal(msg, &e); err != nil {
			return errors.Wrap(trackererr.ErrIO, err.Error())
		}
		_ = m.Insert(uint(q), e)
	}
	return nil
}

func (m *Map[E]) toWire() mapWire[E] {
	w := mapWire[E]{
		Qubits:  make([]uint, 0, len(m.entries)),
		Entries: make([]*E, 0, len(m.entries)),
	}
	it := m.occupied.Iterator()
	for it.HasNext() {
		q := uint(it.Next())
		w.Qubits = append(w.Qubits, q)
		w.Entries = append(w.Entries, m.entries[q])
	}
	return w
}

func (m *Map[E]) MarshalBinary() ([]byte, error) {
	return cborEncode(m.toWire())
}

func (m *Map[E]) UnmarshalBinary(data []byte) error {
	var w mapWire[E]
	if err := cborDecode(data, &w); err != nil {
		return err
	}
	if len(w.Qubits) != len(w.Entries) {
		return errors.Wrap(trackererr.ErrIO, "map: key/entry count mismatch")
	}
	if m.entries == nil {
		*m = *NewMap[E](m.zero)
	}
	for i, q := range w.Qubits {
		_ = m.Insert(q, *w.Entries[i])
	}
	return nil
}

// MarshalJSON encodes the BufferedVector as a plain JSON array; the key of
// each entry is its position.
func (b *BufferedVector[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ptrs())
}

func (b *BufferedVector[E]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(trackererr.ErrIO, err.Error())
	}
	b.entries = b.entries[:0]
	for _, msg := range raw {
		var e E
		if err := json.Unmarshal(msg, &e); err != nil {
			return errors.Wrap(trackererr.ErrIO, err.Error())
		}
		b.entries = append(b.entries, e)
	}
	return nil
}

func (b *BufferedVector[E]) ptrs() []*E {
	ps := make([]*E, len(b.entries))
	for i := range b.entries {
		ps[i] = &b.entries[i]
	}
	return ps
}

func (b *BufferedVector[E]) MarshalBinary() ([]byte, error) {
	return cborEncode(b.ptrs())
}

func (b *BufferedVector[E]) UnmarshalBinary(data []byte) error {
	var ps []*E
	if err := cborDecode(data, &ps); err != nil {
		return err
	}
	b.entries = b.entries[:0]
	for _, p := range ps {
		b.entries = append(b.entries, *p)
	}
	return nil
}

func (m *MappedVector[E]) toWire() mappedWire[E] {
	w := mappedWire[E]{
		Frames:          make([]*E, len(m.frames)),
		InversePosition: append([]uint(nil), m.inversePosition...),
	}
	for i := range m.frames {
		w.Frames[i] = &m.frames[i]
	}
	return w
}

func (m *MappedVector[E]) fromWire(w mappedWire[E]) error {
	if len(w.Frames) != len(w.InversePosition) {
		return errors.Wrap(trackererr.ErrIO,
			"mapped vector: frames/inverse_position length mismatch")
	}
	m.frames = m.frames[:0]
	m.inversePosition = m.inversePosition[:0]
	m.position = make(map[uint]int, len(w.Frames))
	for i, p := range w.Frames {
		m.frames = append(m.frames, *p)
		m.inversePosition = append(m.inversePosition, w.InversePosition[i])
		m.position[w.InversePosition[i]] = i
	}
	return nil
}

func (m *MappedVector[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.toWire())
}

func (m *MappedVector[E]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Frames          []json.RawMessage `json:"frames"`
		InversePosition []uint            `json:"inverse_position"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(trackererr.ErrIO, err.Error())
	}
	w := mappedWire[E]{InversePosition: raw.InversePosition}
	for _, msg := range raw.Frames {
		var e E
		if err := json.Unmarshal(msg, &e); err != nil {
			return errors.Wrap(trackererr.ErrIO, err.Error())
		}
		w.Frames = append(w.Frames, &e)
	}
	return m.fromWire(w)
}

func (m *MappedVector[E]) MarshalBinary() ([]byte, error) {
	return cborEncode(m.toWire())
}

func (m *MappedVector[E]) UnmarshalBinary(data []byte) error {
	var w mappedWire[E]
	if err := cborDecode(data, &w); err != nil {
		return err
	}
	return m.fromWire(w)
}

func cborEncode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, cborHandle).Encode(v); err != nil {
		return nil, errors.Wrap(trackererr.ErrIO, err.Error())
	}
	return buf.Bytes(), nil
}

func cborDecode(data []byte, v interface{}) error {
	if err := codec.NewDecoderBytes(data, cborHandle).Decode(v); err != nil {
		return errors.Wrap(trackererr.ErrIO, err.Error())
	}
	return nil
}

// Fingerprint hashes a storage's content in iteration order. It exists for
// logging and test diagnostics: two stores with equal content (and equal
// iteration order) fingerprint identically.
func Fingerprint[E any](s Full[E]) uint64 {
	d := xxhash.New()
	var scratch [8]byte
	s.Range(func(qubit uint, entry *E) bool {
		binary.LittleEndian.PutUint64(scratch[:], uint64(qubit))
		_, _ = d.Write(scratch[:])
		if enc, err := json.Marshal(entry); err == nil {
			_, _ = d.Write(enc)
		}
		return true
	})
	return d.Sum64()
}
