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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/seaward/sounder/hardware"
	"github.com/seaward/sounder/test"
	"github.com/seaward/sounder/wavwriter"
)

func TestUnknownPin(t *testing.T) {
	_, err := wavwriter.New("out.wav", "nosuchpin", 0)
	test.ExpectFailure(t, err)
}

func TestRender(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "gate.wav")

	aw, err := wavwriter.New(fn, wavwriter.PinRngPwm, 100)
	test.ExpectSuccess(t, err)

	snd := hardware.NewSounder()
	snd.Attach(aw)
	snd.Pinger.Input.Trigger = true
	test.ExpectSuccess(t, snd.RunForTicks(100000))
	test.ExpectSuccess(t, snd.End())

	// the file must decode as a valid mono 8-bit WAV with one frame per
	// hundred derived-clock ticks
	f, err := os.Open(fn)
	test.ExpectSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.Equate(t, dec.IsValidFile(), true)

	buf, err := dec.FullPCMBuffer()
	test.ExpectSuccess(t, err)
	test.Equate(t, buf.Format.NumChannels, 1)
	test.Equate(t, len(buf.Data), 1000)

	// the gate rises a thousand ticks into the window so the stream must
	// contain both levels
	seenHigh := false
	seenLow := false
	for _, v := range buf.Data {
		if v > 128 {
			seenHigh = true
		} else {
			seenLow = true
		}
	}
	test.Equate(t, seenHigh, true)
	test.Equate(t, seenLow, true)
}
