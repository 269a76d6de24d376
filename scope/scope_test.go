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

package scope_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/seaward/sounder/hardware"
	"github.com/seaward/sounder/scope"
	"github.com/seaward/sounder/test"
)

func TestStream(t *testing.T) {
	scp := scope.NewScope(100)

	srv := httptest.NewServer(scp)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.ExpectSuccess(t, err)
	defer conn.Close()

	// let the server register the client before samples start flowing
	time.Sleep(10 * time.Millisecond)

	snd := hardware.NewSounder()
	snd.Attach(scp)
	snd.Pinger.Input.Trigger = true
	test.ExpectSuccess(t, snd.RunForTicks(2000))

	frm := scope.Frame{}
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	test.ExpectSuccess(t, conn.ReadJSON(&frm))
	test.Equate(t, frm.Tick, 99)

	// tick 99 is 99 window ticks into a triggered run: mid transmit
	// envelope, gate not yet risen
	test.Equate(t, frm.Tx == "Z", false)
	test.Equate(t, frm.RngPwm, false)

	// the gate rises a thousand ticks into the window. skip forward to the
	// first frame after that
	for frm.Tick < 1099 {
		test.ExpectSuccess(t, conn.ReadJSON(&frm))
	}
	test.Equate(t, frm.Tick, 1099)
	test.Equate(t, frm.RngPwm, true)
}

func TestStreamNoClients(t *testing.T) {
	// a scope with no connected clients absorbs samples without error
	scp := scope.NewScope(10)

	snd := hardware.NewSounder()
	snd.Attach(scp)
	test.ExpectSuccess(t, snd.RunForTicks(1000))
	test.ExpectSuccess(t, snd.End())
}

func TestSignalAfterEnd(t *testing.T) {
	scp := scope.NewScope(1)
	test.ExpectSuccess(t, scp.End())

	snd := hardware.NewSounder()
	snd.Attach(scp)
	test.ExpectFailure(t, snd.Step())
}
