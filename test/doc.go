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

// Package test contains helper functions that remove common testing
// boilerplate.
//
// The Equate() function compares like-typed values for equality. For
// convenience some types can be compared against int (a literal number is of
// type int and it is tedious to cast it at every call site).
//
// ExpectSuccess() and ExpectFailure() interpret their argument generically:
// nil and false mean failure for ExpectSuccess() and success for
// ExpectFailure(). A nil error is a success, in keeping with how errors
// usually work.
//
// The Writer type implements io.Writer and can be used to capture output for
// comparison with the Compare() function.
package test
