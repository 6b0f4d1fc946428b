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

package translator

import (
	"github.com/jetsetilly/gopherzx/events"
	"github.com/jetsetilly/gopherzx/hardware/keyboard"
	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
	"github.com/jetsetilly/gopherzx/keymap"
	"github.com/jetsetilly/gopherzx/userinput"
)

// Classify returns the domain event for a single raw event. It is the
// function used by NextEvent() and is exposed so that raw events can be
// classified without a source.
func (tr *Translator) Classify(ev userinput.Event) (events.Event, bool) {
	switch ev := ev.(type) {
	case userinput.EventQuit:
		return events.Exit{}, true
	case userinput.EventKeyboard:
		return classifyKey(tr.km, ev.Scancode, ev.Down)
	case userinput.EventDropFile:
		return events.OpenFile{Path: ev.Path}, true
	}
	return nil, false
}

// the three lookups used to classify a key. implemented by keymap.Keymap
type classifier interface {
	Machine(userinput.Scancode) (keyboard.Key, bool)
	Peripheral(userinput.Scancode) (kempston.Key, bool)
	Meta(userinput.Scancode) (keymap.Command, bool)
}

// machine keys take priority over peripheral keys, which take priority over
// meta commands. meta commands only happen on key press.
func classifyKey(km classifier, code userinput.Scancode, down bool) (events.Event, bool) {
	if k, ok := km.Machine(code); ok {
		return events.MachineKey{Key: k, Down: down}, true
	}

	if k, ok := km.Peripheral(code); ok {
		return events.PeripheralKey{Key: k, Down: down}, true
	}

	if !down {
		return nil, false
	}

	cmd, ok := km.Meta(code)
	if !ok {
		return nil, false
	}

	switch cmd.Action {
	case keymap.ActionChangeSpeed:
		return events.ChangeSpeed{Speed: cmd.Speed}, true
	case keymap.ActionToggleDebug:
		return events.ToggleDebugOverlay{}, true
	case keymap.ActionInsertTape:
		return events.RequestTapeInsert{}, true
	case keymap.ActionStopTape:
		return events.RequestTapeStop{}, true
	}

	return nil, false
}
