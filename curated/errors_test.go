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

package curated_test

import (
	"errors"
	"testing"

	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/test"
)

func TestIdentity(t *testing.T) {
	const pattern = "wavwriter: %v"

	e := curated.Errorf(pattern, "no such file")
	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, pattern), true)
	test.Equate(t, curated.Is(e, "wavwriter: %s"), false)

	// uncurated errors are never matched
	f := errors.New("no such file")
	test.Equate(t, curated.IsAny(f), false)
	test.Equate(t, curated.Is(f, pattern), false)
	test.Equate(t, curated.Has(f, pattern), false)
}

func TestChains(t *testing.T) {
	const inner = "debugger: %v"
	const outer = "sounder: %v"

	e := curated.Errorf(inner, "no such command")
	f := curated.Errorf(outer, e)

	test.Equate(t, curated.Is(f, outer), true)
	test.Equate(t, curated.Is(f, inner), false)
	test.Equate(t, curated.Has(f, inner), true)
	test.Equate(t, curated.Has(f, outer), true)
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent parts are removed by the Error() function
	e := curated.Errorf("scope: %v", curated.Errorf("scope: %v", "address in use"))
	test.Equate(t, e.Error(), "scope: address in use")

	// non-duplicate parts are preserved
	f := curated.Errorf("sounder: %v", curated.Errorf("scope: %v", "address in use"))
	test.Equate(t, f.Error(), "sounder: scope: address in use")
}
