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

package terminput

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 0x03 // end-of-text character
	keyBackspace      = 0x08
	keyTab            = 0x09
	keyLineFeed       = 0x0a
	keyCarriageReturn = 0x0d
	keyEsc            = 0x1b
	keyDelete         = 0x7f
)

// list of ASCII codes that can follow keyEsc
const (
	escCSI = '['
	escSS3 = 'O'
)

// list of final bytes of CSI sequences
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	cursorEnd      = 'F'
	cursorHome     = 'H'
	csiTilde       = '~'
)
