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

// Package config describes how a tracker is wired: which storage backend,
// how many qubits to preallocate, whether the debug trace is on. The
// package decodes TOML from caller-supplied bytes or an io.Reader and never
// touches the filesystem itself.
package config

import (
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Backend names a storage backend kind.
type Backend string

const (
	BackendMap            Backend = "map"
	BackendBufferedVector Backend = "buffered"
	BackendMappedVector   Backend = "mapped"
)

func (b Backend) valid() bool {
	switch b {
	case BackendMap, BackendBufferedVector, BackendMappedVector:
		return true
	}
	return false
}

// Tracker is the decoded tracker configuration.
type Tracker struct {
	// Backend selects the storage backend; defaults to "map".
	Backend Backend `toml:"backend"`
	// InitQubits preallocates qubits 0..InitQubits with default entries.
	InitQubits uint `toml:"init_qubits"`
	// Trace enables the per-gate debug log.
	Trace bool `toml:"trace"`
}

// Default returns the configuration used when no TOML is supplied.
func Default() Tracker {
	return Tracker{Backend: BackendMap}
}

// Parse decodes a Tracker from TOML bytes, applying defaults for absent
// fields and rejecting unknown backend names.
func Parse(data []byte) (Tracker, error) {
	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Tracker{}, errors.Wrap(err, "config: decode")
	}
	if !c.Backend.valid() {
		return Tracker{}, errors.Errorf("config: unknown backend %q", c.Backend)
	}
	return c, nil
}

// Read decodes a Tracker from an io.Reader. The caller owns the reader;
// this package never opens files.
func Read(r io.Reader) (Tracker, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Tracker{}, errors.Wrap(err, "config: read")
	}
	return Parse(data)
}
