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

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/gopherzx/userinput"
)

// SS3 sequences. ESC O P to ESC O S for F1 to F4 in most terminals
var ss3Keys = map[byte]userinput.Scancode{
	'P':            userinput.ScancodeF1,
	'Q':            userinput.ScancodeF2,
	'R':            userinput.ScancodeF3,
	'S':            userinput.ScancodeF4,
	cursorUp:       userinput.ScancodeUp,
	cursorDown:     userinput.ScancodeDown,
	cursorForward:  userinput.ScancodeRight,
	cursorBackward: userinput.ScancodeLeft,
	cursorHome:     userinput.ScancodeHome,
	cursorEnd:      userinput.ScancodeEnd,
}

// CSI sequences with a final byte other than tilde
var csiKeys = map[byte]userinput.Scancode{
	cursorUp:       userinput.ScancodeUp,
	cursorDown:     userinput.ScancodeDown,
	cursorForward:  userinput.ScancodeRight,
	cursorBackward: userinput.ScancodeLeft,
	cursorHome:     userinput.ScancodeHome,
	cursorEnd:      userinput.ScancodeEnd,
	'P':            userinput.ScancodeF1,
	'Q':            userinput.ScancodeF2,
	'R':            userinput.ScancodeF3,
	'S':            userinput.ScancodeF4,
}

// CSI sequences ending with tilde, indexed by the first parameter
var csiTildeKeys = map[int]userinput.Scancode{
	1:  userinput.ScancodeHome,
	2:  userinput.ScancodeInsert,
	3:  userinput.ScancodeDelete,
	4:  userinput.ScancodeEnd,
	5:  userinput.ScancodePageUp,
	6:  userinput.ScancodePageDown,
	7:  userinput.ScancodeHome,
	8:  userinput.ScancodeEnd,
	11: userinput.ScancodeF1,
	12: userinput.ScancodeF2,
	13: userinput.ScancodeF3,
	14: userinput.ScancodeF4,
	15: userinput.ScancodeF5,
	17: userinput.ScancodeF6,
	18: userinput.ScancodeF7,
	19: userinput.ScancodeF8,
	20: userinput.ScancodeF9,
	21: userinput.ScancodeF10,
	23: userinput.ScancodeF11,
	24: userinput.ScancodeF12,
}

// decode the bytes read from the terminal and push the resulting events onto
// the queue. the buffer is assumed to hold complete sequences. a terminal
// writes an escape sequence with a single write so this is normally true
func decode(q *userinput.Queue, b []byte) {
	for len(b) > 0 {
		n := decodeOne(q, b)
		b = b[n:]
	}
}

// decode the sequence at the start of the buffer. returns the number of bytes
// consumed, which is always at least one
func decodeOne(q *userinput.Queue, b []byte) int {
	switch b[0] {
	case keyInterrupt:
		q.Push(userinput.EventQuit{})
		return 1
	case keyCarriageReturn, keyLineFeed:
		q.PushKey(userinput.ScancodeReturn)
		return 1
	case keyTab:
		q.PushKey(userinput.ScancodeTab)
		return 1
	case keyBackspace, keyDelete:
		q.PushKey(userinput.ScancodeBackspace)
		return 1
	case keyEsc:
		return decodeEsc(q, b)
	}

	// control characters. ctrl-a is 0x01, ctrl-z is 0x1a
	if b[0] < 0x20 {
		if b[0] >= 0x01 && b[0] <= 0x1a {
			q.PushKey(userinput.ScancodeA+userinput.Scancode(b[0]-0x01), userinput.ScancodeLCtrl)
		} else {
			q.Push(userinput.EventOther{})
		}
		return 1
	}

	r, n := utf8.DecodeRune(b)
	pushRune(q, r)
	return n
}

func pushRune(q *userinput.Queue, r rune, modifiers ...userinput.Scancode) {
	code, shift, ok := userinput.ScancodeFromRune(r)
	if !ok {
		q.Push(userinput.EventOther{})
		return
	}
	if shift {
		modifiers = append(modifiers, userinput.ScancodeLShift)
	}
	q.PushKey(code, modifiers...)
}

func decodeEsc(q *userinput.Queue, b []byte) int {
	// a lone escape is the escape key
	if len(b) == 1 || b[1] == keyEsc {
		q.PushKey(userinput.ScancodeEscape)
		return 1
	}

	switch b[1] {
	case escSS3:
		if len(b) < 3 {
			// alt-O
			q.PushKey(userinput.ScancodeO, userinput.ScancodeLAlt, userinput.ScancodeLShift)
			return 2
		}
		if code, ok := ss3Keys[b[2]]; ok {
			q.PushKey(code)
		} else {
			q.Push(userinput.EventOther{})
		}
		return 3

	case escCSI:
		return decodeCSI(q, b)
	}

	// escape followed by a printable character is how terminals send the alt
	// key
	r, n := utf8.DecodeRune(b[1:])
	pushRune(q, r, userinput.ScancodeLAlt)
	return 1 + n
}

// CSI sequences are ESC [ followed by parameter bytes (0x30 to 0x3f) and a
// final byte (0x40 to 0x7e)
func decodeCSI(q *userinput.Queue, b []byte) int {
	i := 2
	for i < len(b) && b[i] >= 0x30 && b[i] <= 0x3f {
		i++
	}
	if i >= len(b) || b[i] < 0x40 || b[i] > 0x7e {
		// incomplete sequence. consume everything
		q.Push(userinput.EventOther{})
		return len(b)
	}

	final := b[i]
	params := strings.Split(string(b[2:i]), ";")
	n := i + 1

	var code userinput.Scancode
	var ok bool

	if final == csiTilde {
		p, err := strconv.Atoi(params[0])
		if err == nil {
			code, ok = csiTildeKeys[p]
		}
	} else {
		code, ok = csiKeys[final]
	}

	if !ok {
		q.Push(userinput.EventOther{})
		return n
	}

	var modifiers []userinput.Scancode
	if len(params) > 1 {
		modifiers = csiModifiers(params[1])
	}
	q.PushKey(code, modifiers...)

	return n
}

// the modifier parameter of a CSI sequence is one plus a bit field of
// shift (1), alt (2) and ctrl (4)
func csiModifiers(param string) []userinput.Scancode {
	m, err := strconv.Atoi(param)
	if err != nil || m < 1 {
		return nil
	}
	m--

	var modifiers []userinput.Scancode
	if m&0x04 == 0x04 {
		modifiers = append(modifiers, userinput.ScancodeLCtrl)
	}
	if m&0x02 == 0x02 {
		modifiers = append(modifiers, userinput.ScancodeLAlt)
	}
	if m&0x01 == 0x01 {
		modifiers = append(modifiers, userinput.ScancodeLShift)
	}
	return modifiers
}
