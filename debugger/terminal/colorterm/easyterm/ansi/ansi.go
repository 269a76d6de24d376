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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
)

// ansi color.
var colors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
var attributes = map[string]int{
	"bold":      1,
	"underline": 4,
}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// Pens is the table of bright colors to be used for text.
var Pens map[string]string

// DimPens is the table of muted colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// cursor control sequences.
const (
	ClearLine         = "\033[2K"
	CursorStore       = "\033[s"
	CursorRestore     = "\033[u"
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
)

// CursorMove returns the sequence moving the cursor n characters forward
// (positive) or backward (negative).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

// penBuild creates the ANSI sequence for a pen of the given color and
// brightness.
func penBuild(color string, bright bool) string {
	target := targetPen
	if bright {
		target = targetBrightPen
	}
	return fmt.Sprintf("\033[%d%dm", target, colors[color])
}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	for color := range colors {
		Pens[color] = penBuild(color, true)
		DimPens[color] = penBuild(color, false)
	}

	for attribute, code := range attributes {
		PenStyles[attribute] = fmt.Sprintf("\033[%dm", code)
	}
}
