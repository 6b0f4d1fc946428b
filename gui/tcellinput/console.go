// This file is part of GopherZX.
//
// GopherZX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherZX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherZX.  If not, see <https://www.gnu.org/licenses/>.

package tcellinput

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Console is an io.Writer that displays the most recent lines written to it
// on a tcell screen.
type Console struct {
	screen tcell.Screen
	style  tcell.Style
	lines  []string

	// incomplete line waiting for a newline
	partial strings.Builder
}

// NewConsole is the preferred method of initialisation for the Console type.
// The screen should be the screen returned by TcellInput.Screen().
func NewConsole(screen tcell.Screen) *Console {
	return &Console{
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// Write implements the io.Writer interface. The screen is redrawn when the
// data contains at least one complete line.
func (con *Console) Write(p []byte) (int, error) {
	redraw := false

	for _, b := range string(p) {
		switch b {
		case '\n':
			con.lines = append(con.lines, con.partial.String())
			con.partial.Reset()
			redraw = true
		case '\r':
		default:
			con.partial.WriteRune(b)
		}
	}

	if redraw {
		con.draw()
	}

	return len(p), nil
}

func (con *Console) draw() {
	w, h := con.screen.Size()

	// the screen never needs more lines than it can show
	if len(con.lines) > h {
		con.lines = con.lines[len(con.lines)-h:]
	}

	con.screen.Clear()
	for y, l := range con.lines {
		x := 0
		for _, r := range l {
			if x >= w {
				break
			}
			con.screen.SetContent(x, y, r, nil, con.style)
			x++
		}
	}
	con.screen.Show()
}
