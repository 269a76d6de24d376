// This file is part of Sounder.
//
// Sounder is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Sounder is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Sounder.  If not, see <https://www.gnu.org/licenses/>.

// Package trace records the output pin stream. The Recorder keeps the most
// recent samples in a ring buffer, for inspection from the debugger, and
// folds every sample into a rolling hash so that two runs can be compared
// for pin-exact equality without storing either in full.
package trace

import (
	"crypto/sha1"
	"fmt"
	"hash"

	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/hardware/signal"
)

// DefaultDepth is the ring buffer depth used by NewRecorder when the caller
// has no particular requirement.
const DefaultDepth = 4096

// Recorder implements the signal.Monitor interface.
type Recorder struct {
	digest hash.Hash

	// ring buffer of the most recent samples. next is the slot the next
	// sample will land in; total counts every sample ever seen
	buffer []signal.Sample
	next   int
	total  uint64

	ended bool
}

// NewRecorder creates a Recorder keeping the most recent depth samples. A
// depth of zero or less selects DefaultDepth.
func NewRecorder(depth int) *Recorder {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Recorder{
		digest: sha1.New(),
		buffer: make([]signal.Sample, depth),
	}
}

// pack a sample into a fixed-width encoding for hashing. the tick is not
// included: it is implied by the sample's position in the stream and
// including it would make otherwise identical runs hash differently after
// a reset
func pack(smp signal.Sample) [2]byte {
	var b [2]byte
	b[0] = byte(smp.Tx)
	if smp.RxOut {
		b[1] |= 0b00000001
	}
	if smp.RngPwm {
		b[1] |= 0b00000010
	}
	if smp.Tone {
		b[1] |= 0b00000100
	}
	for i, l := range smp.Bus {
		if l {
			b[1] |= 0b00001000 << i
		}
	}
	return b
}

// Signal implements the signal.Monitor interface.
func (rec *Recorder) Signal(smp signal.Sample) error {
	if rec.ended {
		return curated.Errorf("trace: sample after End()")
	}

	b := pack(smp)
	_, _ = rec.digest.Write(b[:])

	rec.buffer[rec.next] = smp
	rec.next = (rec.next + 1) % len(rec.buffer)
	rec.total++

	return nil
}

// End implements the signal.Monitor interface.
func (rec *Recorder) End() error {
	rec.ended = true
	return nil
}

// Hash returns the rolling hash of every sample seen so far, in a form
// suitable for printing and comparison.
func (rec *Recorder) Hash() string {
	return fmt.Sprintf("%x", rec.digest.Sum(nil))
}

// Total returns the number of samples seen so far, including any that have
// since fallen out of the ring buffer.
func (rec *Recorder) Total() uint64 {
	return rec.total
}

// Last returns the most recent n samples, oldest first. If fewer than n
// samples are available then every available sample is returned.
func (rec *Recorder) Last(n int) []signal.Sample {
	if uint64(n) > rec.total {
		n = int(rec.total)
	}
	if n > len(rec.buffer) {
		n = len(rec.buffer)
	}

	r := make([]signal.Sample, n)
	for i := 0; i < n; i++ {
		idx := (rec.next - n + i + len(rec.buffer)) % len(rec.buffer)
		r[i] = rec.buffer[idx]
	}
	return r
}

// lastTick is the tick counter of the most recent sample. returns false if
// no sample has been recorded yet.
func (rec *Recorder) lastTick() (uint64, bool) {
	if rec.total == 0 {
		return 0, false
	}
	idx := (rec.next - 1 + len(rec.buffer)) % len(rec.buffer)
	return rec.buffer[idx].Tick, true
}

// String returns a one-line summary of the recording.
func (rec *Recorder) String() string {
	tick, ok := rec.lastTick()
	if !ok {
		return "no samples"
	}
	return fmt.Sprintf("%d samples to tick %d [%s]", rec.total, tick, rec.Hash())
}
