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

package keymap

import (
	"slices"

	"github.com/jetsetilly/gopherzx/hardware/keyboard"
	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
	"github.com/jetsetilly/gopherzx/userinput"
)

// Keymap is the collection of the three tables. Once built, a Keymap is not
// modified by any of the classifier functions and can be shared freely.
type Keymap struct {
	machine    map[userinput.Scancode]keyboard.Key
	peripheral map[userinput.Scancode]kempston.Key
	meta       map[userinput.Scancode]Command
}

// New returns a Keymap with empty tables.
func New() *Keymap {
	return &Keymap{
		machine:    make(map[userinput.Scancode]keyboard.Key),
		peripheral: make(map[userinput.Scancode]kempston.Key),
		meta:       make(map[userinput.Scancode]Command),
	}
}

// Default returns a new Keymap containing the default tables.
func Default() *Keymap {
	km := New()
	for c, k := range defaultMachine {
		km.machine[c] = k
	}
	for c, k := range defaultPeripheral {
		km.peripheral[c] = k
	}
	for c, cmd := range defaultMeta {
		km.meta[c] = cmd
	}
	return km
}

// Machine returns the ZX Spectrum key for the scancode.
func (km *Keymap) Machine(code userinput.Scancode) (keyboard.Key, bool) {
	k, ok := km.machine[code]
	return k, ok
}

// Peripheral returns the Kempston joystick input for the scancode.
func (km *Keymap) Peripheral(code userinput.Scancode) (kempston.Key, bool) {
	k, ok := km.peripheral[code]
	return k, ok
}

// Meta returns the meta command for the scancode.
func (km *Keymap) Meta(code userinput.Scancode) (Command, bool) {
	cmd, ok := km.meta[code]
	return cmd, ok
}

// Len returns the number of entries in each of the three tables.
func (km *Keymap) Len() (machine int, peripheral int, meta int) {
	return len(km.machine), len(km.peripheral), len(km.meta)
}

// the scancodes in a table in ascending order
// ClearMeta removes every entry from the meta table.
func (km *Keymap) ClearMeta() {
	km.meta = make(map[userinput.Scancode]Command)
}

func sortedCodes[V any](m map[userinput.Scancode]V) []userinput.Scancode {
	codes := make([]userinput.Scancode, 0, len(m))
	for c := range m {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}
