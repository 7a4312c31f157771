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

// Package tracker implements the two tracking engines. Live keeps one
// running Pauli per qubit and hands it out at measurement; Frames keeps a
// stack of Pauli frames per qubit, one frame per recorded measurement, and
// applies every Clifford gate to all frames at once through the stack-wise
// tableau.
//
// Gate calls never fail: a gate addressing a qubit the storage doesn't
// hold is a no-op, since an untracked qubit carries the identity and the
// identity absorbs. Only Insert/Remove-shaped operations (NewQubit,
// Measure and friends) return errors.
package tracker

import (
	"github.com/taeruh/pauli-tracker/pauli"
	"github.com/taeruh/pauli-tracker/telemetry"
)

// ZeroPauli, ZeroTuple and ZeroStack are the default-entry constructors
// handed to the storage backends: a fresh entry always carries the
// identity correction.
func ZeroPauli() pauli.Pauli { return pauli.I }
func ZeroTuple() pauli.Tuple { return pauli.Tuple{} }
func ZeroStack() pauli.Stack { return *pauli.NewStack(true) }

// ZeroStackDense is the byte-per-bit variant of ZeroStack, for trackers
// whose stacks must stay in the interop representation.
func ZeroStackDense() pauli.Stack { return *pauli.NewStack(false) }

type options struct {
	log     *telemetry.Logger
	metrics *telemetry.Metrics
}

// Option configures a tracker at construction time.
type Option func(*options)

// WithTrace enables the per-gate debug log on a development logger. Debug
// tooling only; the trace is not part of the tracking semantics.
func WithTrace() Option {
	return func(o *options) { o.log = telemetry.NewDevelopmentLogger() }
}

// WithLogger routes the per-gate trace through a caller-owned logger.
func WithLogger(l *telemetry.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics wires the tracker's size gauges.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
