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

// Package telemetry provides the debug trace logger and the size gauges the
// trackers report into. Everything here is optional: a nil *Logger is a
// valid no-op receiver, and the gauges register against a caller-supplied
// prometheus.Registerer rather than the global default.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper over a zap.Logger that tolerates a nil receiver,
// so trackers built without tracing carry a nil *Logger and skip the call
// without a branch at every gate site.
type Logger struct {
	l *zap.Logger
}

// NewLogger wraps an existing zap.Logger.
func NewLogger(l *zap.Logger) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{l: l}
}

// NewDevelopmentLogger builds a console logger at debug level. Used by the
// trace flag on trackers; not intended for production wiring.
func NewDevelopmentLogger() *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	l, err := cfg.Build()
	if err != nil {
		return nil
	}
	return &Logger{l: l}
}

// Gate logs one applied gate. No-op on a nil receiver.
func (lg *Logger) Gate(name string, qubits ...uint) {
	if lg == nil {
		return
	}
	lg.l.Debug("gate", zap.String("name", name), zap.Uints("qubits", qubits))
}

// Track logs one tracked Pauli and the resulting frame count.
func (lg *Logger) Track(pauli string, qubit uint, framesNum uint) {
	if lg == nil {
		return
	}
	lg.l.Debug("track",
		zap.String("pauli", pauli),
		zap.Uint("qubit", qubit),
		zap.Uint("frames_num", framesNum))
}

// Measure logs one measurement.
func (lg *Logger) Measure(qubit uint) {
	if lg == nil {
		return
	}
	lg.l.Debug("measure", zap.Uint("qubit", qubit))
}

// Metrics is the gauge pair the trackers update on insert/remove and on
// each tracked frame. A nil *Metrics is a valid no-op receiver.
type Metrics struct {
	ActiveQubits prometheus.Gauge
	FramesNum    prometheus.Gauge
}

// NewMetrics builds and registers the tracker gauges against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ActiveQubits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pauli_tracker",
			Name:      "active_qubits",
			Help:      "Number of qubits currently held in tracker storage",
		}),
		FramesNum: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pauli_tracker",
			Name:      "frames_num",
			Help:      "Number of frames tracked so far",
		}),
	}
	reg.MustRegister(m.ActiveQubits, m.FramesNum)
	return m
}

// QubitAdded bumps the active-qubit gauge.
func (m *Metrics) QubitAdded() {
	if m == nil {
		return
	}
	m.ActiveQubits.Inc()
}

// QubitRemoved drops the active-qubit gauge.
func (m *Metrics) QubitRemoved() {
	if m == nil {
		return
	}
	m.ActiveQubits.Dec()
}

// FrameTracked records the new global frame count.
func (m *Metrics) FrameTracked(framesNum uint) {
	if m == nil {
		return
	}
	m.FramesNum.Set(float64(framesNum))
}
