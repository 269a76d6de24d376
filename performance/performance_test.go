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

package performance_test

import (
	"strings"
	"testing"

	"github.com/seaward/sounder/performance"
	"github.com/seaward/sounder/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileNone))

	p, err = performance.ParseProfile("both")
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileCPU|performance.ProfileMem))

	_, err = performance.ParseProfile("everything")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	output := strings.Builder{}
	err := performance.Check(&output, performance.ProfileNone, "100ms")
	test.ExpectSuccess(t, err)
	test.Equate(t, strings.Contains(output.String(), "ticks/sec"), true)
}

func TestCheckBadDuration(t *testing.T) {
	output := strings.Builder{}
	err := performance.Check(&output, performance.ProfileNone, "not a duration")
	test.ExpectFailure(t, err)
}
