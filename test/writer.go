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

package test

import (
	"strings"
	"testing"
)

// Writer is an implementation of the io.Writer interface. It captures
// anything written to it for later comparison.
type Writer struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear the captured output.
func (tw *Writer) Clear() {
	tw.buffer.Reset()
}

// String returns the captured output.
func (tw *Writer) String() string {
	return tw.buffer.String()
}

// Compare the captured output with the expected string.
func (tw *Writer) Compare(t *testing.T, expected string) {
	t.Helper()
	if tw.buffer.String() != expected {
		t.Errorf("writer comparison failed (%q - wanted %q)", tw.buffer.String(), expected)
	}
}
