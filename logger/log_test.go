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

package logger_test

import (
	"testing"

	"github.com/seaward/sounder/logger"
	"github.com/seaward/sounder/test"
)

func TestCollation(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Log("test", "this is a test")
	logger.Write(tw)
	tw.Compare(t, "test: this is a test\n")

	// adjacent duplicates are folded into a repeat count
	logger.Log("test", "this is a test")
	tw.Clear()
	logger.Write(tw)
	tw.Compare(t, "test: this is a test (repeat x2)\n")

	logger.Log("test2", "this is another test")
	tw.Clear()
	logger.Write(tw)
	tw.Compare(t, "test: this is a test (repeat x2)\ntest2: this is another test\n")

	// tail of one entry
	tw.Clear()
	logger.Tail(tw, 1)
	tw.Compare(t, "test2: this is another test\n")
}

func TestEcho(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}
	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Logf("test", "tick %d", 392)
	tw.Compare(t, "test: tick 392\n")
}
