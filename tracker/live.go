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
	"fmt"

	"github.com/taeruh/pauli-tracker/pauli"
	"github.com/taeruh/pauli-tracker/store"
	"github.com/taeruh/pauli-tracker/tableau"
)

// Live tracks one running Pauli per qubit. E is the payload representation
// (pauli.Pauli packed, pauli.Tuple unpacked); P is its pointer form, which
// the gate code reads and writes through.
type Live[E any, P pauli.EntryPtr[E]] struct {
	storage store.Full[E]
	used    bool
	opts    options
}

// NewLive wraps an existing storage as a Live tracker.
func NewLive[E any, P pauli.EntryPtr[E]](storage store.Full[E], opts ...Option) *Live[E, P] {
	return &Live[E, P]{storage: storage, opts: buildOptions(opts)}
}

// InitLive pre-populates qubits 0..n-1 with identity entries and wraps the
// storage.
func InitLive[E any, P pauli.EntryPtr[E]](n uint, storage store.Full[E], opts ...Option) *Live[E, P] {
	storage.Init(n)
	l := NewLive[E, P](storage, opts...)
	for i := uint(0); i < n; i++ {
		l.opts.metrics.QubitAdded()
	}
	return l
}

func (l *Live[E, P]) String() string {
	return fmt.Sprintf("live qubits:%d", l.storage.Len())
}

func (l *Live[E, P]) checkUsable() {
	if l.used {
		panic("tracker: Live used after IntoStorage")
	}
}

// NewQubit starts tracking qubit with the identity correction.
func (l *Live[E, P]) NewQubit(qubit uint) error {
	l.checkUsable()
	var zero E
	if err := l.storage.Insert(qubit, zero); err != nil {
		return err
	}
	l.opts.metrics.QubitAdded()
	return nil
}

// Measure removes and returns the tracked Pauli for qubit.
func (l *Live[E, P]) Measure(qubit uint) (E, error) {
	l.checkUsable()
	l.opts.log.Measure(qubit)
	e, err := l.storage.Remove(qubit)
	if err == nil {
		l.opts.metrics.QubitRemoved()
	}
	return e, err
}

// AsStorage borrows the underlying storage; the borrow is only valid while
// the tracker is not mutated.
func (l *Live[E, P]) AsStorage() store.Full[E] {
	l.checkUsable()
	return l.storage
}

// IntoStorage consumes the tracker and hands its storage out. The tracker
// panics on any further use, mirroring the move-out semantics of the
// ownership contract.
func (l *Live[E, P]) IntoStorage() store.Full[E] {
	l.checkUsable()
	s := l.storage
	l.storage = nil
	l.used = true
	return s
}

func (l *Live[E, P]) track(p pauli.Pauli, qubit uint) {
	l.checkUsable()
	l.opts.log.Track(p.String(), qubit, 0)
	e, ok := l.storage.GetMut(qubit)
	if !ok {
		return
	}
	P(e).Set(P(e).Get().Mul(p))
}

// TrackX multiplies an X correction onto qubit. TrackY and TrackZ are
// analogous.
func (l *Live[E, P]) TrackX(qubit uint) { l.track(pauli.X, qubit) }
func (l *Live[E, P]) TrackY(qubit uint) { l.track(pauli.Y, qubit) }
func (l *Live[E, P]) TrackZ(qubit uint) { l.track(pauli.Z, qubit) }

func (l *Live[E, P]) single(name string, qubit uint, f func(pauli.Pauli) pauli.Pauli) {
	l.checkUsable()
	l.opts.log.Gate(name, qubit)
	e, ok := l.storage.GetMut(qubit)
	if !ok {
		return
	}
	P(e).Set(f(P(e).Get()))
}

func (l *Live[E, P]) double(name string, a, b uint, f func(x, y pauli.Pauli) (pauli.Pauli, pauli.Pauli)) {
	l.checkUsable()
	if a == b {
		panic("tracker: two-qubit gate needs distinct qubits")
	}
	l.opts.log.Gate(name, a, b)
	ea, oka := l.storage.GetMut(a)
	eb, okb := l.storage.GetMut(b)
	if !oka || !okb {
		return
	}
	pa, pb := P(ea), P(eb)
	ra, rb := f(pa.Get(), pb.Get())
	pa.Set(ra)
	pb.Set(rb)
}

func (l *Live[E, P]) Id(q uint)   { l.single("id", q, tableau.Id) }
func (l *Live[E, P]) X(q uint)    { l.single("x", q, tableau.X) }
func (l *Live[E, P]) Y(q uint)    { l.single("y", q, tableau.Y) }
func (l *Live[E, P]) Z(q uint)    { l.single("z", q, tableau.Z) }
func (l *Live[E, P]) H(q uint)    { l.single("h", q, tableau.H) }
func (l *Live[E, P]) S(q uint)    { l.single("s", q, tableau.S) }
func (l *Live[E, P]) Sdg(q uint)  { l.single("sdg", q, tableau.Sdg) }
func (l *Live[E, P]) Sz(q uint)   { l.single("sz", q, tableau.Sz) }
func (l *Live[E, P]) Szdg(q uint) { l.single("szdg", q, tableau.Szdg) }
func (l *Live[E, P]) Sx(q uint)   { l.single("sx", q, tableau.Sx) }
func (l *Live[E, P]) Sxdg(q uint) { l.single("sxdg", q, tableau.Sxdg) }
func (l *Live[E, P]) Sy(q uint)   { l.single("sy", q, tableau.Sy) }
func (l *Live[E, P]) Sydg(q uint) { l.single("sydg", q, tableau.Sydg) }
func (l *Live[E, P]) Hxy(q uint)  { l.single("hxy", q, tableau.Hxy) }
func (l *Live[E, P]) Hyz(q uint)  { l.single("hyz", q, tableau.Hyz) }
func (l *Live[E, P]) Sh(q uint)   { l.single("sh", q, tableau.Sh) }
func (l *Live[E, P]) Hs(q uint)   { l.single("hs", q, tableau.Hs) }
func (l *Live[E, P]) Shs(q uint)  { l.single("shs", q, tableau.Shs) }

func (l *Live[E, P]) Cx(control, target uint) { l.double("cx", control, target, tableau.Cx) }
func (l *Live[E, P]) Cy(control, target uint) { l.double("cy", control, target, tableau.Cy) }
func (l *Live[E, P]) Cz(a, b uint)            { l.double("cz", a, b, tableau.Cz) }
func (l *Live[E, P]) Swap(a, b uint)          { l.double("swap", a, b, tableau.Swap) }
func (l *Live[E, P]) Iswap(a, b uint)         { l.double("iswap", a, b, tableau.Iswap) }
func (l *Live[E, P]) Iswapdg(a, b uint)       { l.double("iswapdg", a, b, tableau.Iswapdg) }

func (l *Live[E, P]) MoveXToX(source, destination uint) {
	l.double("move_x_to_x", source, destination, tableau.MoveXToX)
}

func (l *Live[E, P]) MoveXToZ(source, destination uint) {
	l.double("move_x_to_z", source, destination, tableau.MoveXToZ)
}

func (l *Live[E, P]) MoveZToX(source, destination uint) {
	l.double("move_z_to_x", source, destination, tableau.MoveZToX)
}

func (l *Live[E, P]) MoveZToZ(source, destination uint) {
	l.double("move_z_to_z", source, destination, tableau.MoveZToZ)
}
