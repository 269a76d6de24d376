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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. Like fmt.Errorf() it
// takes a formatting pattern and placeholder values. Unlike fmt.Errorf() the
// pattern is retained and can be asked about later with the Is() and Has()
// functions:
//
//	e := curated.Errorf("scope: %v", err)
//
//	if curated.Is(e, "scope: %v") {
//		...
//	}
//
// Is() matches the outermost pattern only; Has() looks for the pattern
// anywhere in the error chain. IsAny() says whether the error is curated at
// all, which is a convenient way of distinguishing expected errors from
// unexpected ones.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. Parts are sub-strings separated by ": ", as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan). Normalisation
// means packages can wrap errors liberally without the result reading like
// an echo:
//
//	scope: scope: address in use
//
// becomes
//
//	scope: address in use
package curated
