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

// Package kempston defines the inputs of the Kempston joystick interface.
//
// The interface is read from port 0x1f. Each input is one bit of the value
// read from the port and is set while the input is active.
package kempston

import (
	"fmt"
	"strings"
)

// Key is one input of the Kempston joystick. The value of a Key is its bit in
// the value read from the Kempston port.
type Key uint8

// List of valid Key values.
const (
	Right Key = 0x01
	Left  Key = 0x02
	Down  Key = 0x04
	Up    Key = 0x08
	Fire  Key = 0x10
)

// Port is the port address of the Kempston interface.
const Port = 0x1f

var keyNames = map[Key]string{
	Right: "Right",
	Left:  "Left",
	Down:  "Down",
	Up:    "Up",
	Fire:  "Fire",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("invalid kempston key (%#02x)", uint8(k))
}

// Valid returns true if the key is one of the five Kempston inputs.
func (k Key) Valid() bool {
	_, ok := keyNames[k]
	return ok
}

// Lookup returns the key with the name. Names are not case sensitive.
func Lookup(name string) (Key, bool) {
	name = strings.TrimSpace(name)
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}

// Keys returns all the Kempston keys in bit order.
func Keys() []Key {
	return []Key{Right, Left, Down, Up, Fire}
}
