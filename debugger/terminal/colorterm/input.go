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

package colorterm

import (
	"unicode"

	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/debugger/terminal"
	"github.com/seaward/sounder/debugger/terminal/colorterm/easyterm"
	"github.com/seaward/sounder/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]rune, 0, 255)
	cursor := 0
	history := len(ct.commandHistory)

	// historyHold stores the latest input when scrolling through history,
	// so nothing typed so far is lost by a stray cursor-up
	historyHold := make([]rune, 0, 255)

	// the redraw method is: store cursor position, clear the line, output
	// prompt and input buffer, restore cursor position. for this to work
	// the cursor must first be placed at the end of the prompt
	ct.TermPrint("\r")
	ct.TermPrint(ansi.CursorMove(len(prompt.String())))

	for {
		ct.TermPrint(ansi.CursorStore)
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint("\r")
		ct.TermPrint(ansi.PenStyles["bold"])
		ct.TermPrint(prompt.String())
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
		ct.TermPrint(ansi.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			ct.TermPrint("\n")

			s := string(input)
			if len(s) > 0 {
				if len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s {
					ct.commandHistory = append(ct.commandHistory, s)
				}
			}
			return s, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						historyHold = historyHold[:0]
						historyHold = append(historyHold, input...)
					}
					history--
					input = append(input[:0], []rune(ct.commandHistory[history])...)
					ct.TermPrint(ansi.CursorMove(len(input) - cursor))
					cursor = len(input)
				}

			case easyterm.CursorDown:
				if history < len(ct.commandHistory) {
					history++
					if history == len(ct.commandHistory) {
						input = append(input[:0], historyHold...)
					} else {
						input = append(input[:0], []rune(ct.commandHistory[history])...)
					}
					ct.TermPrint(ansi.CursorMove(len(input) - cursor))
					cursor = len(input)
				}

			case easyterm.CursorForward:
				if cursor < len(input) {
					ct.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				ct.TermPrint(ansi.CursorBackwardOne)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				ct.TermPrint(ansi.CursorForwardOne)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}
