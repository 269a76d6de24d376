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

// Package wavwriter renders one output pin to disk as a WAV file, for
// inspection in any audio editor or waveform viewer. Note that sample data
// is buffered in memory in its entirety and written on End(). It is
// therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/hardware/clocks"
	"github.com/seaward/sounder/hardware/signal"
	"github.com/seaward/sounder/logger"
)

// Valid pin names for the Pin argument of New().
const (
	PinTx     = "TX"
	PinRxOut  = "RXOUT"
	PinRngPwm = "RNGPWM"
	PinTone   = "TONE"
)

// sample levels for the 8-bit WAV stream. a released tri-state line sits at
// the mid-scale level, distinct from both driven levels
const (
	levelLow      = 0
	levelHigh     = 255
	levelReleased = 128
)

// WavWriter implements the signal.Monitor interface.
type WavWriter struct {
	filename string
	pin      string

	// only every decimate'th tick is rendered. the derived clock is far too
	// fast for a WAV file at full rate
	decimate int
	phase    int

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// pin argument is one of the Pin* constants; decimate of zero or less
// selects a default suitable for the derived clock rate.
func New(filename string, pin string, decimate int) (*WavWriter, error) {
	pin = strings.ToUpper(pin)
	switch pin {
	case PinTx, PinRxOut, PinRngPwm, PinTone:
	default:
		return nil, curated.Errorf("wavwriter: unknown pin: %s", pin)
	}

	if decimate <= 0 {
		decimate = 256
	}

	return &WavWriter{
		filename: filename,
		pin:      pin,
		decimate: decimate,
		buffer:   make([]int, 0, 1024),
	}, nil
}

func (aw *WavWriter) level(smp signal.Sample) int {
	switch aw.pin {
	case PinTx:
		switch smp.Tx {
		case signal.TxHigh:
			return levelHigh
		case signal.TxLow:
			return levelLow
		}
		return levelReleased
	case PinRxOut:
		if smp.RxOut {
			return levelHigh
		}
	case PinRngPwm:
		if smp.RngPwm {
			return levelHigh
		}
	case PinTone:
		if smp.Tone {
			return levelHigh
		}
	}
	return levelLow
}

// Signal implements the signal.Monitor interface.
func (aw *WavWriter) Signal(smp signal.Sample) error {
	aw.phase++
	if aw.phase < aw.decimate {
		return nil
	}
	aw.phase = 0

	aw.buffer = append(aw.buffer, aw.level(smp))
	return nil
}

// End implements the signal.Monitor interface. The WAV file is created and
// written in full here.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	rate := int(clocks.DerivedHz) / aw.decimate
	enc := wav.NewEncoder(f, rate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "writing %s pin to %s", aw.pin, aw.filename)

	if err := enc.Close(); err != nil {
		_ = f.Close()
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
