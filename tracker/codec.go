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

package tracker

import (
	"bytes"
	"encoding"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"

	"github.com/taeruh/pauli-tracker/trackererr"
)

var cborHandle = func() *codec.CborHandle {
	h := new(codec.CborHandle)
	h.Canonical = true
	return h
}()

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

// The trackers serialize as an object holding their storage (plus
// frames_num for Frames). Decoding needs a storage of the right concrete
// backend to decode into, so Unmarshal requires a tracker constructed over
// the desired (empty) backend first; the codec then fills it in place.

type framesWire struct {
	Storage   json.RawMessage `json:"storage"`
	FramesNum uint            `json:"frames_num"`
}

func (f *Frames) MarshalJSON() ([]byte, error) {
	f.checkUsable()
	f.padAll()
	raw, err := json.Marshal(f.storage)
	if err != nil {
		return nil, errors.Wrap(trackererr.ErrIO, err.Error())
	}
	return json.Marshal(framesWire{Storage: raw, FramesNum: f.framesNum})
}

func (f *Frames) UnmarshalJSON(data []byte) error {
	f.checkUsable()
	var w framesWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Wrap(trackererr.ErrIO, err.Error())
	}
	u, ok := f.storage.(json.Unmarshaler)
	if !ok {
		return errors.Wrap(trackererr.ErrIO, "storage backend cannot decode JSON")
	}
	if err := u.UnmarshalJSON(w.Storage); err != nil {
		return err
	}
	f.framesNum = w.FramesNum
	return nil
}

type framesBinWire struct {
	Storage   []byte
	FramesNum uint
}

func (f *Frames) MarshalBinary() ([]byte, error) {
	f.checkUsable()
	f.padAll()
	m, ok := f.storage.(encoding.BinaryMarshaler)
	if !ok {
		return nil, errors.Wrap(trackererr.ErrIO, "storage backend cannot encode binary")
	}
	raw, err := m.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cborEncode(framesBinWire{Storage: raw, FramesNum: f.framesNum})
}

func (f *Frames) UnmarshalBinary(data []byte) error {
	f.checkUsable()
	var w framesBinWire
	if err := cborDecode(data, &w); err != nil {
		return err
	}
	u, ok := f.storage.(encoding.BinaryUnmarshaler)
	if !ok {
		return errors.Wrap(trackererr.ErrIO, "storage backend cannot decode binary")
	}
	if err := u.UnmarshalBinary(w.Storage); err != nil {
		return err
	}
	f.framesNum = w.FramesNum
	return nil
}

type liveWire struct {
	Storage json.RawMessage `json:"storage"`
}

func (l *Live[E, P]) MarshalJSON() ([]byte, error) {
	l.checkUsable()
	raw, err := json.Marshal(l.storage)
	if err != nil {
		return nil, errors.Wrap(trackererr.ErrIO, err.Error())
	}
	return json.Marshal(liveWire{Storage: raw})
}

func (l *Live[E, P]) UnmarshalJSON(data []byte) error {
	l.checkUsable()
	var w liveWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Wrap(trackererr.ErrIO, err.Error())
	}
	u, ok := l.storage.(json.Unmarshaler)
	if !ok {
		return errors.Wrap(trackererr.ErrIO, "storage backend cannot decode JSON")
	}
	return u.UnmarshalJSON(w.Storage)
}

func (l *Live[E, P]) MarshalBinary() ([]byte, error) {
	l.checkUsable()
	m, ok := l.storage.(encoding.BinaryMarshaler)
	if !ok {
		return nil, errors.Wrap(trackererr.ErrIO, "storage backend cannot encode binary")
	}
	return m.MarshalBinary()
}

func (l *Live[E, P]) UnmarshalBinary(data []byte) error {
	l.checkUsable()
	u, ok := l.storage.(encoding.BinaryUnmarshaler)
	if !ok {
		return errors.Wrap(trackererr.ErrIO, "storage backend cannot decode binary")
	}
	return u.UnmarshalBinary(data)
}
