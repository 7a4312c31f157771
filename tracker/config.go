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
	"github.com/taeruh/pauli-tracker/config"
	"github.com/taeruh/pauli-tracker/pauli"
	"github.com/taeruh/pauli-tracker/store"
)

// NewStorage builds the storage backend a config names, with the given
// default-entry constructor.
func NewStorage[E any](backend config.Backend, zero func() E) store.Full[E] {
	switch backend {
	case config.BackendBufferedVector:
		return store.NewBufferedVector(zero)
	case config.BackendMappedVector:
		return store.NewMappedVector(zero)
	default:
		return store.NewMap(zero)
	}
}

func configOptions(cfg config.Tracker, opts []Option) []Option {
	if cfg.Trace {
		opts = append([]Option{WithTrace()}, opts...)
	}
	return opts
}

// FramesFromConfig builds a Frames tracker as described by cfg.
func FramesFromConfig(cfg config.Tracker, opts ...Option) *Frames {
	return InitFrames(cfg.InitQubits,
		NewStorage(cfg.Backend, ZeroStack), configOptions(cfg, opts)...)
}

// LiveFromConfig builds a Live tracker with the packed Pauli payload as
// described by cfg.
func LiveFromConfig(cfg config.Tracker, opts ...Option) *Live[pauli.Pauli, *pauli.Pauli] {
	return InitLive[pauli.Pauli, *pauli.Pauli](cfg.InitQubits,
		NewStorage(cfg.Backend, ZeroPauli), configOptions(cfg, opts)...)
}
