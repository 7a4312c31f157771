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

package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNilReceiversAreNoOps(t *testing.T) {
	var lg *Logger
	require.NotPanics(t, func() {
		lg.Gate("h", 0)
		lg.Track("X", 1, 2)
		lg.Measure(3)
	})

	var m *Metrics
	require.NotPanics(t, func() {
		m.QubitAdded()
		m.QubitRemoved()
		m.FrameTracked(5)
	})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.QubitAdded()
	m.QubitAdded()
	m.QubitRemoved()
	m.FrameTracked(7)

	require.Equal(t, float64(1), testutil.ToFloat64(m.ActiveQubits))
	require.Equal(t, float64(7), testutil.ToFloat64(m.FramesNum))
}
