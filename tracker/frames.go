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

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/taeruh/pauli-tracker/pauli"
	"github.com/taeruh/pauli-tracker/store"
	"github.com/taeruh/pauli-tracker/tableau"
	"github.com/taeruh/pauli-tracker/trackererr"
)

// Frames tracks a stack of Pauli frames per qubit, one frame per recorded
// measurement. framesNum is the number of frames tracked so far; stacks
// are padded to it lazily, on the next touch of their qubit, so a stack
// shorter than framesNum logically ends in identity frames.
type Frames struct {
	storage   store.Full[pauli.Stack]
	framesNum uint
	used      bool
	opts      options
}

// NewFrames wraps an empty storage as a Frames tracker.
func NewFrames(storage store.Full[pauli.Stack], opts ...Option) *Frames {
	return &Frames{storage: storage, opts: buildOptions(opts)}
}

// InitFrames pre-populates qubits 0..n-1 with empty stacks and wraps the
// storage.
func InitFrames(n uint, storage store.Full[pauli.Stack], opts ...Option) *Frames {
	storage.Init(n)
	f := NewFrames(storage, opts...)
	for i := uint(0); i < n; i++ {
		f.opts.metrics.QubitAdded()
	}
	return f
}

// NewUnchecked re-wraps a pre-built storage as a Frames tracker with the
// given frame count. The caller vouches that every stack in the storage
// has length exactly framesNum; nothing is validated. Use WrapStorage for
// the checked variant.
func NewUnchecked(storage store.Full[pauli.Stack], framesNum uint, opts ...Option) *Frames {
	return &Frames{storage: storage, framesNum: framesNum, opts: buildOptions(opts)}
}

// WrapStorage is NewUnchecked with the precondition enforced: every stack
// must already have length exactly framesNum.
func WrapStorage(storage store.Full[pauli.Stack], framesNum uint, opts ...Option) (*Frames, error) {
	var err error
	storage.Range(func(qubit uint, s *pauli.Stack) bool {
		if s.X().Len() != int(framesNum) || s.Z().Len() != int(framesNum) {
			err = trackererr.PreconditionViolated(
				"wrap storage: stack at qubit %d has length x=%d z=%d, want %d",
				qubit, s.X().Len(), s.Z().Len(), framesNum)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return NewUnchecked(storage, framesNum, opts...), nil
}

func (f *Frames) String() string {
	return fmt.Sprintf("frames_num:%d qubits:%d", f.framesNum, f.storage.Len())
}

// FramesNum returns the number of frames tracked so far.
func (f *Frames) FramesNum() uint { return f.framesNum }

func (f *Frames) checkUsable() {
	if f.used {
		panic("tracker: Frames used after IntoStorage")
	}
}

// NewQubit starts tracking qubit with an identity stack padded to the
// current frame count.
func (f *Frames) NewQubit(qubit uint) error {
	f.checkUsable()
	s := ZeroStack()
	s.PadTo(int(f.framesNum))
	if err := f.storage.Insert(qubit, s); err != nil {
		return err
	}
	f.opts.metrics.QubitAdded()
	return nil
}

// Measure removes and returns the tracked stack for qubit. The returned
// stack keeps its physical length; frames past its end are identity.
func (f *Frames) Measure(qubit uint) (pauli.Stack, error) {
	f.checkUsable()
	f.opts.log.Measure(qubit)
	s, err := f.storage.Remove(qubit)
	if err == nil {
		f.opts.metrics.QubitRemoved()
	}
	return s, err
}

// MeasureAndStore measures qubit and inserts the result into out at the
// same qubit index. The out storage picks the insertion semantics (hash
// map overwrite, buffered-vector padding, mapped-vector push).
func (f *Frames) MeasureAndStore(qubit uint, out store.Base[pauli.Stack]) error {
	s, err := f.Measure(qubit)
	if err != nil {
		return err
	}
	if err := out.Insert(qubit, s); err != nil {
		return errors.Wrapf(err, "store measurement of qubit %d", qubit)
	}
	return nil
}

// MeasureAndStoreAll measures every tracked qubit, in the storage's
// iteration order, into out. Per-qubit failures are aggregated; qubits
// whose insert fails stay measured (their stacks are dropped).
func (f *Frames) MeasureAndStoreAll(out store.Base[pauli.Stack]) error {
	f.checkUsable()
	var err error
	for _, qubit := range store.Keys(f.storage) {
		err = multierr.Append(err, f.MeasureAndStore(qubit, out))
	}
	return err
}

// AsStorage borrows the underlying storage; the borrow is only valid while
// the tracker is not mutated.
func (f *Frames) AsStorage() store.Full[pauli.Stack] {
	f.checkUsable()
	return f.storage
}

// IntoStorage pads every stack to the tracker's frame count and hands the
// storage out, consuming the tracker. Because of the padding, the result
// satisfies the stacked-transpose precondition as-is. The tracker panics
// on any further use.
func (f *Frames) IntoStorage() store.Full[pauli.Stack] {
	f.checkUsable()
	f.padAll()
	s := f.storage
	f.storage = nil
	f.used = true
	return s
}

func (f *Frames) padAll() {
	n := int(f.framesNum)
	f.storage.Range(func(_ uint, s *pauli.Stack) bool {
		s.PadTo(n)
		return true
	})
}

func (f *Frames) track(p pauli.Pauli, qubit uint) {
	f.checkUsable()
	s, ok := f.storage.GetMut(qubit)
	if !ok {
		return
	}
	s.PadTo(int(f.framesNum))
	s.Push(p)
	f.framesNum++
	f.opts.log.Track(p.String(), qubit, f.framesNum)
	f.opts.metrics.FrameTracked(f.framesNum)
}

// TrackX records a new frame carrying an X correction on qubit; every
// other qubit's frame is identity. TrackY and TrackZ are analogous. An
// untracked qubit is a no-op and records no frame.
func (f *Frames) TrackX(qubit uint) { f.track(pauli.X, qubit) }
func (f *Frames) TrackY(qubit uint) { f.track(pauli.Y, qubit) }
func (f *Frames) TrackZ(qubit uint) { f.track(pauli.Z, qubit) }

func (f *Frames) single(name string, qubit uint, g func(*pauli.Stack)) {
	f.checkUsable()
	f.opts.log.Gate(name, qubit)
	s, ok := f.storage.GetMut(qubit)
	if !ok {
		return
	}
	s.PadTo(int(f.framesNum))
	g(s)
}

func (f *Frames) double(name string, a, b uint, g func(x, y *pauli.Stack)) {
	f.checkUsable()
	if a == b {
		panic("tracker: two-qubit gate needs distinct qubits")
	}
	f.opts.log.Gate(name, a, b)
	sa, oka := f.storage.GetMut(a)
	sb, okb := f.storage.GetMut(b)
	if !oka || !okb {
		return
	}
	sa.PadTo(int(f.framesNum))
	sb.PadTo(int(f.framesNum))
	g(sa, sb)
}

func (f *Frames) Id(q uint)   { f.single("id", q, tableau.IdStack) }
func (f *Frames) X(q uint)    { f.single("x", q, tableau.IdStack) }
func (f *Frames) Y(q uint)    { f.single("y", q, tableau.IdStack) }
func (f *Frames) Z(q uint)    { f.single("z", q, tableau.IdStack) }
func (f *Frames) H(q uint)    { f.single("h", q, tableau.HStack) }
func (f *Frames) S(q uint)    { f.single("s", q, tableau.SStack) }
func (f *Frames) Sdg(q uint)  { f.single("sdg", q, tableau.SdgStack) }
func (f *Frames) Sz(q uint)   { f.single("sz", q, tableau.SzStack) }
func (f *Frames) Szdg(q uint) { f.single("szdg", q, tableau.SzdgStack) }
func (f *Frames) Sx(q uint)   { f.single("sx", q, tableau.SxStack) }
func (f *Frames) Sxdg(q uint) { f.single("sxdg", q, tableau.SxdgStack) }
func (f *Frames) Sy(q uint)   { f.single("sy", q, tableau.SyStack) }
func (f *Frames) Sydg(q uint) { f.single("sydg", q, tableau.SydgStack) }
func (f *Frames) Hxy(q uint)  { f.single("hxy", q, tableau.HxyStack) }
func (f *Frames) Hyz(q uint)  { f.single("hyz", q, tableau.HyzStack) }
func (f *Frames) Sh(q uint)   { f.single("sh", q, tableau.ShStack) }
func (f *Frames) Hs(q uint)   { f.single("hs", q, tableau.HsStack) }
func (f *Frames) Shs(q uint)  { f.single("shs", q, tableau.ShsStack) }

func (f *Frames) Cx(control, target uint) { f.double("cx", control, target, tableau.CxStack) }
func (f *Frames) Cy(control, target uint) { f.double("cy", control, target, tableau.CyStack) }
func (f *Frames) Cz(a, b uint)            { f.double("cz", a, b, tableau.CzStack) }
func (f *Frames) Swap(a, b uint)          { f.double("swap", a, b, tableau.SwapStack) }
func (f *Frames) Iswap(a, b uint)         { f.double("iswap", a, b, tableau.IswapStack) }
func (f *Frames) Iswapdg(a, b uint)       { f.double("iswapdg", a, b, tableau.IswapdgStack) }

func (f *Frames) MoveXToX(source, destination uint) {
	f.double("move_x_to_x", source, destination, tableau.MoveXToXStack)
}

func (f *Frames) MoveXToZ(source, destination uint) {
	f.double("move_x_to_z", source, destination, tableau.MoveXToZStack)
}

func (f *Frames) MoveZToX(source, destination uint) {
	f.double("move_z_to_x", source, destination, tableau.MoveZToXStack)
}

func (f *Frames) MoveZToZ(source, destination uint) {
	f.double("move_z_to_z", source, destination, tableau.MoveZToZStack)
}
