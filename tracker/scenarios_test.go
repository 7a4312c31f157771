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
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taeruh/pauli-tracker/pauli"
	"github.com/taeruh/pauli-tracker/store"
)

// CircuitTest replays a recorded gate sequence against a tracker and
// checks the resulting corrections. See testdata/scenarios.json for the
// format: a named map of circuits, each a list of ops plus the expected
// per-qubit outcome.
type CircuitTest struct {
	json ctJSON
}

func (ct *CircuitTest) UnmarshalJSON(in []byte) error {
	return json.Unmarshal(in, &ct.json)
}

type ctJSON struct {
	Init    uint         `json:"init"`
	Engine  string       `json:"engine"` // "live" or "frames"
	Ops     []ctOp       `json:"ops"`
	Measure []ctExpected `json:"measure"`
}

type ctOp struct {
	Op     string `json:"op"`
	Qubits []uint `json:"qubits"`
}

type ctExpected struct {
	Qubit uint    `json:"qubit"`
	Pauli string  `json:"pauli,omitempty"` // live engines
	X     []uint8 `json:"x,omitempty"`     // frames engines
	Z     []uint8 `json:"z,omitempty"`
}

func (ct *CircuitTest) Run(t *testing.T) {
	switch ct.json.Engine {
	case "live":
		ct.runLive(t)
	case "frames":
		ct.runFrames(t)
	default:
		t.Fatalf("unknown engine %q", ct.json.Engine)
	}
}

func (ct *CircuitTest) runLive(t *testing.T) {
	l := InitLive[pauli.Pauli, *pauli.Pauli](ct.json.Init, store.NewMap(ZeroPauli))
	for _, op := range ct.json.Ops {
		switch op.Op {
		case "track_x":
			l.TrackX(op.Qubits[0])
		case "track_y":
			l.TrackY(op.Qubits[0])
		case "track_z":
			l.TrackZ(op.Qubits[0])
		case "new_qubit":
			require.NoError(t, l.NewQubit(op.Qubits[0]))
		default:
			if len(op.Qubits) == 2 {
				applyDoubleLive(l, op.Op, op.Qubits[0], op.Qubits[1])
			} else {
				applySingleLive(l, op.Op, op.Qubits[0])
			}
		}
	}
	for _, want := range ct.json.Measure {
		got, err := l.Measure(want.Qubit)
		require.NoError(t, err)
		require.Equal(t, want.Pauli, got.String(), "qubit %d", want.Qubit)
	}
}

func (ct *CircuitTest) runFrames(t *testing.T) {
	f := InitFrames(ct.json.Init, store.NewMap(ZeroStack))
	out := store.NewMap(ZeroStack)
	for _, op := range ct.json.Ops {
		switch op.Op {
		case "track_x":
			f.TrackX(op.Qubits[0])
		case "track_y":
			f.TrackY(op.Qubits[0])
		case "track_z":
			f.TrackZ(op.Qubits[0])
		case "new_qubit":
			require.NoError(t, f.NewQubit(op.Qubits[0]))
		case "measure_and_store":
			require.NoError(t, f.MeasureAndStore(op.Qubits[0], out))
		case "measure_and_store_all":
			require.NoError(t, f.MeasureAndStoreAll(out))
		default:
			if len(op.Qubits) == 2 {
				applyDoubleFrames(f, op.Op, op.Qubits[0], op.Qubits[1])
			} else {
				applySingleFrames(f, op.Op, op.Qubits[0])
			}
		}
	}
	for _, want := range ct.json.Measure {
		s, ok := out.Get(want.Qubit)
		require.True(t, ok, "qubit %d not measured", want.Qubit)
		require.Equal(t, bitsToBools(want.X), xBits(s), "qubit %d x", want.Qubit)
		require.Equal(t, bitsToBools(want.Z), zBits(s), "qubit %d z", want.Qubit)
	}
}

func bitsToBools(bits []uint8) []bool {
	out := make([]bool, len(bits))
	for i, b := range bits {
		out[i] = b != 0
	}
	return out
}

func TestCircuitScenarios(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.json"))
	require.NoError(t, err)

	tests := make(map[string]*CircuitTest)
	require.NoError(t, json.Unmarshal(data, &tests))

	names := make([]string, 0, len(tests))
	for name := range tests {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t.Run(name, tests[name].Run)
	}
}
