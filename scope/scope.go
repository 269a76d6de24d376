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

// Package scope streams output pin samples over a websocket, one JSON frame
// per decimated tick. Point any websocket client at /scope and watch the
// instrument's pins while it runs. Clients that cannot keep up lose frames
// rather than stalling the run.
package scope

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/hardware/signal"
	"github.com/seaward/sounder/logger"
)

// Frame is the JSON message sent to every connected client.
type Frame struct {
	Tick   uint64  `json:"tick"`
	Tx     string  `json:"tx"`
	RxOut  bool    `json:"rxout"`
	RngPwm bool    `json:"rngpwm"`
	Tone   bool    `json:"tone"`
	Bus    [3]bool `json:"bus"`
}

// per-client frame buffer depth. a slow client loses frames once its buffer
// is full
const clientBacklog = 64

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Scope implements the signal.Monitor interface.
type Scope struct {
	decimate int
	phase    int

	crit    sync.Mutex
	clients map[chan Frame]bool
	ended   bool
}

// NewScope creates a Scope sending every decimate'th sample to connected
// clients. A decimate of zero or less selects a default suitable for
// watching a run in real time.
func NewScope(decimate int) *Scope {
	if decimate <= 0 {
		decimate = 1000
	}
	return &Scope{
		decimate: decimate,
		clients:  make(map[chan Frame]bool),
	}
}

// ServeHTTP implements the http.Handler interface, upgrading the request to
// a websocket and streaming frames until the client disconnects or the run
// ends. Mount at /scope (or anywhere else) on any http server.
func (scp *Scope) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf("scope", "upgrade: %v", err)
		return
	}

	frames := make(chan Frame, clientBacklog)

	scp.crit.Lock()
	if scp.ended {
		scp.crit.Unlock()
		_ = conn.Close()
		return
	}
	scp.clients[frames] = true
	scp.crit.Unlock()

	logger.Logf("scope", "client connected from %s", r.RemoteAddr)

	// the read pump exists only to notice the client going away
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				scp.drop(frames)
				return
			}
		}
	}()

	for frm := range frames {
		if err := conn.WriteJSON(frm); err != nil {
			scp.drop(frames)
			break
		}
	}

	_ = conn.Close()
}

// drop a client's frame channel. safe to call more than once for the same
// channel.
func (scp *Scope) drop(frames chan Frame) {
	scp.crit.Lock()
	defer scp.crit.Unlock()
	if scp.clients[frames] {
		delete(scp.clients, frames)
		close(frames)
	}
}

// Signal implements the signal.Monitor interface.
func (scp *Scope) Signal(smp signal.Sample) error {
	scp.phase++
	if scp.phase < scp.decimate {
		return nil
	}
	scp.phase = 0

	frm := Frame{
		Tick:   smp.Tick,
		Tx:     smp.Tx.String(),
		RxOut:  smp.RxOut,
		RngPwm: smp.RngPwm,
		Tone:   smp.Tone,
		Bus:    smp.Bus,
	}

	scp.crit.Lock()
	defer scp.crit.Unlock()

	if scp.ended {
		return curated.Errorf("scope: sample after End()")
	}

	for frames := range scp.clients {
		select {
		case frames <- frm:
		default:
			// client buffer full. frame lost, run unaffected
		}
	}

	return nil
}

// End implements the signal.Monitor interface. Every connected client is
// disconnected.
func (scp *Scope) End() error {
	scp.crit.Lock()
	defer scp.crit.Unlock()

	scp.ended = true
	for frames := range scp.clients {
		delete(scp.clients, frames)
		close(frames)
	}

	return nil
}
