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

package userinput

import (
	"fmt"
	"strconv"
	"strings"
)

// Scancode identifies the physical position of a key on the host keyboard.
// Values are taken from the USB HID usage table, which is also the numbering
// used by SDL.
type Scancode uint32

// ScancodeNone indicates that there is no physical key information.
const ScancodeNone Scancode = 0

// List of named scancodes. This is not a complete list of the USB HID
// keyboard usage table but it includes every key found on a typical
// keyboard, excluding the numeric keypad.
const (
	ScancodeA            Scancode = 4
	ScancodeB            Scancode = 5
	ScancodeC            Scancode = 6
	ScancodeD            Scancode = 7
	ScancodeE            Scancode = 8
	ScancodeF            Scancode = 9
	ScancodeG            Scancode = 10
	ScancodeH            Scancode = 11
	ScancodeI            Scancode = 12
	ScancodeJ            Scancode = 13
	ScancodeK            Scancode = 14
	ScancodeL            Scancode = 15
	ScancodeM            Scancode = 16
	ScancodeN            Scancode = 17
	ScancodeO            Scancode = 18
	ScancodeP            Scancode = 19
	ScancodeQ            Scancode = 20
	ScancodeR            Scancode = 21
	ScancodeS            Scancode = 22
	ScancodeT            Scancode = 23
	ScancodeU            Scancode = 24
	ScancodeV            Scancode = 25
	ScancodeW            Scancode = 26
	ScancodeX            Scancode = 27
	ScancodeY            Scancode = 28
	ScancodeZ            Scancode = 29
	ScancodeNum1         Scancode = 30
	ScancodeNum2         Scancode = 31
	ScancodeNum3         Scancode = 32
	ScancodeNum4         Scancode = 33
	ScancodeNum5         Scancode = 34
	ScancodeNum6         Scancode = 35
	ScancodeNum7         Scancode = 36
	ScancodeNum8         Scancode = 37
	ScancodeNum9         Scancode = 38
	ScancodeNum0         Scancode = 39
	ScancodeReturn       Scancode = 40
	ScancodeEscape       Scancode = 41
	ScancodeBackspace    Scancode = 42
	ScancodeTab          Scancode = 43
	ScancodeSpace        Scancode = 44
	ScancodeMinus        Scancode = 45
	ScancodeEquals       Scancode = 46
	ScancodeLeftBracket  Scancode = 47
	ScancodeRightBracket Scancode = 48
	ScancodeBackslash    Scancode = 49
	ScancodeSemicolon    Scancode = 51
	ScancodeApostrophe   Scancode = 52
	ScancodeGrave        Scancode = 53
	ScancodeComma        Scancode = 54
	ScancodePeriod       Scancode = 55
	ScancodeSlash        Scancode = 56
	ScancodeCapsLock     Scancode = 57
	ScancodeF1           Scancode = 58
	ScancodeF2           Scancode = 59
	ScancodeF3           Scancode = 60
	ScancodeF4           Scancode = 61
	ScancodeF5           Scancode = 62
	ScancodeF6           Scancode = 63
	ScancodeF7           Scancode = 64
	ScancodeF8           Scancode = 65
	ScancodeF9           Scancode = 66
	ScancodeF10          Scancode = 67
	ScancodeF11          Scancode = 68
	ScancodeF12          Scancode = 69
	ScancodePrintScreen  Scancode = 70
	ScancodeScrollLock   Scancode = 71
	ScancodePause        Scancode = 72
	ScancodeInsert       Scancode = 73
	ScancodeHome         Scancode = 74
	ScancodePageUp       Scancode = 75
	ScancodeDelete       Scancode = 76
	ScancodeEnd          Scancode = 77
	ScancodePageDown     Scancode = 78
	ScancodeRight        Scancode = 79
	ScancodeLeft         Scancode = 80
	ScancodeDown         Scancode = 81
	ScancodeUp           Scancode = 82
	ScancodeLCtrl        Scancode = 224
	ScancodeLShift       Scancode = 225
	ScancodeLAlt         Scancode = 226
	ScancodeLGUI         Scancode = 227
	ScancodeRCtrl        Scancode = 228
	ScancodeRShift       Scancode = 229
	ScancodeRAlt         Scancode = 230
	ScancodeRGUI         Scancode = 231
)

// the name of each scancode as used in String() and Lookup(). numbers are
// named by their digit and the letter keys by their letter
var scancodeNames = map[Scancode]string{
	ScancodeNone:         "NONE",
	ScancodeA:            "A",
	ScancodeB:            "B",
	ScancodeC:            "C",
	ScancodeD:            "D",
	ScancodeE:            "E",
	ScancodeF:            "F",
	ScancodeG:            "G",
	ScancodeH:            "H",
	ScancodeI:            "I",
	ScancodeJ:            "J",
	ScancodeK:            "K",
	ScancodeL:            "L",
	ScancodeM:            "M",
	ScancodeN:            "N",
	ScancodeO:            "O",
	ScancodeP:            "P",
	ScancodeQ:            "Q",
	ScancodeR:            "R",
	ScancodeS:            "S",
	ScancodeT:            "T",
	ScancodeU:            "U",
	ScancodeV:            "V",
	ScancodeW:            "W",
	ScancodeX:            "X",
	ScancodeY:            "Y",
	ScancodeZ:            "Z",
	ScancodeNum1:         "1",
	ScancodeNum2:         "2",
	ScancodeNum3:         "3",
	ScancodeNum4:         "4",
	ScancodeNum5:         "5",
	ScancodeNum6:         "6",
	ScancodeNum7:         "7",
	ScancodeNum8:         "8",
	ScancodeNum9:         "9",
	ScancodeNum0:         "0",
	ScancodeReturn:       "Return",
	ScancodeEscape:       "Escape",
	ScancodeBackspace:    "Backspace",
	ScancodeTab:          "Tab",
	ScancodeSpace:        "Space",
	ScancodeMinus:        "Minus",
	ScancodeEquals:       "Equals",
	ScancodeLeftBracket:  "LeftBracket",
	ScancodeRightBracket: "RightBracket",
	ScancodeBackslash:    "Backslash",
	ScancodeSemicolon:    "Semicolon",
	ScancodeApostrophe:   "Apostrophe",
	ScancodeGrave:        "Grave",
	ScancodeComma:        "Comma",
	ScancodePeriod:       "Period",
	ScancodeSlash:        "Slash",
	ScancodeCapsLock:     "CapsLock",
	ScancodeF1:           "F1",
	ScancodeF2:           "F2",
	ScancodeF3:           "F3",
	ScancodeF4:           "F4",
	ScancodeF5:           "F5",
	ScancodeF6:           "F6",
	ScancodeF7:           "F7",
	ScancodeF8:           "F8",
	ScancodeF9:           "F9",
	ScancodeF10:          "F10",
	ScancodeF11:          "F11",
	ScancodeF12:          "F12",
	ScancodePrintScreen:  "PrintScreen",
	ScancodeScrollLock:   "ScrollLock",
	ScancodePause:        "Pause",
	ScancodeInsert:       "Insert",
	ScancodeHome:         "Home",
	ScancodePageUp:       "PageUp",
	ScancodeDelete:       "Delete",
	ScancodeEnd:          "End",
	ScancodePageDown:     "PageDown",
	ScancodeRight:        "Right",
	ScancodeLeft:         "Left",
	ScancodeDown:         "Down",
	ScancodeUp:           "Up",
	ScancodeLCtrl:        "LCtrl",
	ScancodeLShift:       "LShift",
	ScancodeLAlt:         "LAlt",
	ScancodeLGUI:         "LGUI",
	ScancodeRCtrl:        "RCtrl",
	ScancodeRShift:       "RShift",
	ScancodeRAlt:         "RAlt",
	ScancodeRGUI:         "RGUI",
}

var scancodesByName map[string]Scancode

func init() {
	scancodesByName = make(map[string]Scancode, len(scancodeNames))
	for c, n := range scancodeNames {
		scancodesByName[strings.ToUpper(n)] = c
	}
}

// prefix for scancodes without a name. the digit keys are named "0" to "9"
// so a bare number would be ambiguous
const unnamedPrefix = "#"

// String returns the name of the scancode. Scancodes without a name are
// returned as their decimal value with a leading #.
func (c Scancode) String() string {
	if n, ok := scancodeNames[c]; ok {
		return n
	}
	return unnamedPrefix + strconv.FormatUint(uint64(c), 10)
}

// LookupScancode returns the scancode for a name returned by the String()
// function. Names are not case sensitive. A decimal value with a leading # is
// also accepted so that every result of String() can be looked up.
func LookupScancode(name string) (Scancode, error) {
	name = strings.TrimSpace(name)
	if c, ok := scancodesByName[strings.ToUpper(name)]; ok {
		return c, nil
	}
	if v, ok := strings.CutPrefix(name, unnamedPrefix); ok {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return Scancode(n), nil
		}
	}
	return ScancodeNone, fmt.Errorf("unrecognised scancode name (%s)", name)
}

// ScancodeFromRune returns the scancode for the key that types the rune on a
// US keyboard layout. The shift return value is true if the shift key is
// required to type the rune.
//
// Used by backends that report typed characters rather than physical keys.
func ScancodeFromRune(r rune) (code Scancode, shift bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return ScancodeA + Scancode(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return ScancodeA + Scancode(r-'A'), true, true
	case r == '0':
		return ScancodeNum0, false, true
	case r >= '1' && r <= '9':
		return ScancodeNum1 + Scancode(r-'1'), false, true
	}

	if c, ok := unshiftedRunes[r]; ok {
		return c, false, true
	}
	if c, ok := shiftedRunes[r]; ok {
		return c, true, true
	}

	return ScancodeNone, false, false
}

var unshiftedRunes = map[rune]Scancode{
	' ':  ScancodeSpace,
	'\r': ScancodeReturn,
	'\n': ScancodeReturn,
	'\t': ScancodeTab,
	'-':  ScancodeMinus,
	'=':  ScancodeEquals,
	'[':  ScancodeLeftBracket,
	']':  ScancodeRightBracket,
	'\\': ScancodeBackslash,
	';':  ScancodeSemicolon,
	'\'': ScancodeApostrophe,
	'`':  ScancodeGrave,
	',':  ScancodeComma,
	'.':  ScancodePeriod,
	'/':  ScancodeSlash,
}

var shiftedRunes = map[rune]Scancode{
	'!': ScancodeNum1,
	'@': ScancodeNum2,
	'#': ScancodeNum3,
	'$': ScancodeNum4,
	'%': ScancodeNum5,
	'^': ScancodeNum6,
	'&': ScancodeNum7,
	'*': ScancodeNum8,
	'(': ScancodeNum9,
	')': ScancodeNum0,
	'_': ScancodeMinus,
	'+': ScancodeEquals,
	'{': ScancodeLeftBracket,
	'}': ScancodeRightBracket,
	'|': ScancodeBackslash,
	':': ScancodeSemicolon,
	'"': ScancodeApostrophe,
	'~': ScancodeGrave,
	'<': ScancodeComma,
	'>': ScancodePeriod,
	'?': ScancodeSlash,
}
