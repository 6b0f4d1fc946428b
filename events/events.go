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

// Package events defines the domain events delivered to the emulator's main
// loop. They are independent of the host input backend that caused them.
//
// The Event interface is implemented by the types in this package only.
// Consumers should use a type switch:
//
//	switch ev := ev.(type) {
//	case events.Exit:
//	case events.MachineKey:
//		matrix.Set(ev.Key, ev.Down)
//	case events.ChangeSpeed:
//		...
//	}
package events

import (
	"fmt"

	"github.com/jetsetilly/gopherzx/emulation"
	"github.com/jetsetilly/gopherzx/hardware/keyboard"
	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
)

// Event is implemented by all domain events.
type Event interface {
	fmt.Stringer
	isEvent()
}

// Exit requests that the application ends.
type Exit struct{}

// MachineKey indicates that a key on the emulated machine's keyboard has
// changed state.
type MachineKey struct {
	Key  keyboard.Key
	Down bool
}

// PeripheralKey indicates that an input on the emulated joystick has changed
// state.
type PeripheralKey struct {
	Key  kempston.Key
	Down bool
}

// ChangeSpeed requests a new emulation speed.
type ChangeSpeed struct {
	Speed emulation.Speed
}

// ToggleDebugOverlay requests that the debugging information overlay is shown
// or hidden.
type ToggleDebugOverlay struct{}

// RequestTapeInsert requests that the tape in the tape player starts playing.
type RequestTapeInsert struct{}

// RequestTapeStop requests that the tape player stops.
type RequestTapeStop struct{}

// OpenFile requests that a file is opened. The file type is decided by the
// emulator.
type OpenFile struct {
	Path string
}

func (Exit) isEvent()               {}
func (MachineKey) isEvent()         {}
func (PeripheralKey) isEvent()      {}
func (ChangeSpeed) isEvent()        {}
func (ToggleDebugOverlay) isEvent() {}
func (RequestTapeInsert) isEvent()  {}
func (RequestTapeStop) isEvent()    {}
func (OpenFile) isEvent()           {}

func direction(down bool) string {
	if down {
		return "down"
	}
	return "up"
}

func (Exit) String() string {
	return "exit"
}

func (ev MachineKey) String() string {
	return fmt.Sprintf("key %s %s", ev.Key, direction(ev.Down))
}

func (ev PeripheralKey) String() string {
	return fmt.Sprintf("kempston %s %s", ev.Key, direction(ev.Down))
}

func (ev ChangeSpeed) String() string {
	return fmt.Sprintf("speed %s", ev.Speed)
}

func (ToggleDebugOverlay) String() string {
	return "toggle debug overlay"
}

func (RequestTapeInsert) String() string {
	return "tape insert"
}

func (RequestTapeStop) String() string {
	return "tape stop"
}

func (ev OpenFile) String() string {
	return fmt.Sprintf("open file %q", ev.Path)
}
