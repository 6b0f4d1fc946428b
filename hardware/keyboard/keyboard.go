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

// Package keyboard defines the keys of the ZX Spectrum keyboard.
//
// The keyboard is a matrix of eight half-rows of five keys. A half-row is
// selected by a zero bit in the high byte of the port address used to read
// it (port 0xFEFE reads the half-row containing Caps Shift, Z, X, C and V)
// and each key in the half-row is one of the low five bits of the result.
//
// A Key is therefore identified by the high byte of its half-row address and
// its bit mask. The representation of the pressed/released state of the
// matrix belongs to the emulator core and is not part of this package.
package keyboard

import (
	"fmt"
	"strings"
)

// Key is a single key on the ZX Spectrum keyboard.
type Key struct {
	// high byte of the port address for the key's half-row
	HalfRow uint8

	// bit mask of the key in the half-row
	Mask uint8
}

// the half-rows in order of their port address, high to low. the bit order of
// keys in the half-row follows the order of the names in halfRowNames.
var halfRows = [...]uint8{0xfe, 0xfd, 0xfb, 0xf7, 0xef, 0xdf, 0xbf, 0x7f}

var halfRowNames = [len(halfRows)][5]string{
	{"CapsShift", "Z", "X", "C", "V"},
	{"A", "S", "D", "F", "G"},
	{"Q", "W", "E", "R", "T"},
	{"1", "2", "3", "4", "5"},
	{"0", "9", "8", "7", "6"},
	{"P", "O", "I", "U", "Y"},
	{"Enter", "L", "K", "J", "H"},
	{"Space", "SymShift", "M", "N", "B"},
}

// List of all keys. Named Key0 to Key9 for the number keys.
var (
	KeyCapsShift = Key{HalfRow: 0xfe, Mask: 0x01}
	KeyZ         = Key{HalfRow: 0xfe, Mask: 0x02}
	KeyX         = Key{HalfRow: 0xfe, Mask: 0x04}
	KeyC         = Key{HalfRow: 0xfe, Mask: 0x08}
	KeyV         = Key{HalfRow: 0xfe, Mask: 0x10}

	KeyA = Key{HalfRow: 0xfd, Mask: 0x01}
	KeyS = Key{HalfRow: 0xfd, Mask: 0x02}
	KeyD = Key{HalfRow: 0xfd, Mask: 0x04}
	KeyF = Key{HalfRow: 0xfd, Mask: 0x08}
	KeyG = Key{HalfRow: 0xfd, Mask: 0x10}

	KeyQ = Key{HalfRow: 0xfb, Mask: 0x01}
	KeyW = Key{HalfRow: 0xfb, Mask: 0x02}
	KeyE = Key{HalfRow: 0xfb, Mask: 0x04}
	KeyR = Key{HalfRow: 0xfb, Mask: 0x08}
	KeyT = Key{HalfRow: 0xfb, Mask: 0x10}

	Key1 = Key{HalfRow: 0xf7, Mask: 0x01}
	Key2 = Key{HalfRow: 0xf7, Mask: 0x02}
	Key3 = Key{HalfRow: 0xf7, Mask: 0x04}
	Key4 = Key{HalfRow: 0xf7, Mask: 0x08}
	Key5 = Key{HalfRow: 0xf7, Mask: 0x10}

	Key0 = Key{HalfRow: 0xef, Mask: 0x01}
	Key9 = Key{HalfRow: 0xef, Mask: 0x02}
	Key8 = Key{HalfRow: 0xef, Mask: 0x04}
	Key7 = Key{HalfRow: 0xef, Mask: 0x08}
	Key6 = Key{HalfRow: 0xef, Mask: 0x10}

	KeyP = Key{HalfRow: 0xdf, Mask: 0x01}
	KeyO = Key{HalfRow: 0xdf, Mask: 0x02}
	KeyI = Key{HalfRow: 0xdf, Mask: 0x04}
	KeyU = Key{HalfRow: 0xdf, Mask: 0x08}
	KeyY = Key{HalfRow: 0xdf, Mask: 0x10}

	KeyEnter = Key{HalfRow: 0xbf, Mask: 0x01}
	KeyL     = Key{HalfRow: 0xbf, Mask: 0x02}
	KeyK     = Key{HalfRow: 0xbf, Mask: 0x04}
	KeyJ     = Key{HalfRow: 0xbf, Mask: 0x08}
	KeyH     = Key{HalfRow: 0xbf, Mask: 0x10}

	KeySpace    = Key{HalfRow: 0x7f, Mask: 0x01}
	KeySymShift = Key{HalfRow: 0x7f, Mask: 0x02}
	KeyM        = Key{HalfRow: 0x7f, Mask: 0x04}
	KeyN        = Key{HalfRow: 0x7f, Mask: 0x08}
	KeyB        = Key{HalfRow: 0x7f, Mask: 0x10}
)

// indexes the position of a key in halfRowNames. returns false if the key is
// not a valid key
func (k Key) position() (int, int, bool) {
	for r, h := range halfRows {
		if h != k.HalfRow {
			continue
		}
		for b := 0; b < 5; b++ {
			if k.Mask == 1<<b {
				return r, b, true
			}
		}
	}
	return 0, 0, false
}

// Valid returns true if the key is one of the forty keys on the keyboard.
func (k Key) Valid() bool {
	_, _, ok := k.position()
	return ok
}

// Port returns the full port address used to read the key's half-row.
func (k Key) Port() uint16 {
	return uint16(k.HalfRow)<<8 | 0xfe
}

func (k Key) String() string {
	r, b, ok := k.position()
	if !ok {
		return fmt.Sprintf("invalid key (%#02x/%#02x)", k.HalfRow, k.Mask)
	}
	return halfRowNames[r][b]
}

// Lookup returns the key with the name. Names are those returned by the
// String() function and are not case sensitive.
func Lookup(name string) (Key, bool) {
	name = strings.TrimSpace(name)
	for r := range halfRowNames {
		for b, n := range halfRowNames[r] {
			if strings.EqualFold(n, name) {
				return Key{HalfRow: halfRows[r], Mask: 1 << b}, true
			}
		}
	}
	return Key{}, false
}

// Keys returns all keys on the keyboard in half-row order.
func Keys() []Key {
	keys := make([]Key, 0, len(halfRows)*5)
	for _, h := range halfRows {
		for b := 0; b < 5; b++ {
			keys = append(keys, Key{HalfRow: h, Mask: 1 << b})
		}
	}
	return keys
}
