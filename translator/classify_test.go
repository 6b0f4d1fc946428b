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
	"testing"

	"github.com/jetsetilly/gopherzx/emulation"
	"github.com/jetsetilly/gopherzx/events"
	"github.com/jetsetilly/gopherzx/hardware/keyboard"
	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
	"github.com/jetsetilly/gopherzx/keymap"
	"github.com/jetsetilly/gopherzx/test"
	"github.com/jetsetilly/gopherzx/userinput"
)

// every scancode hits in the tables that are enabled
type everything struct {
	machine    bool
	peripheral bool
	meta       bool
}

func (e everything) Machine(_ userinput.Scancode) (keyboard.Key, bool) {
	return keyboard.KeyQ, e.machine
}

func (e everything) Peripheral(_ userinput.Scancode) (kempston.Key, bool) {
	return kempston.Fire, e.peripheral
}

func (e everything) Meta(_ userinput.Scancode) (keymap.Command, bool) {
	return keymap.Command{Action: keymap.ActionChangeSpeed, Speed: emulation.Definite(4)}, e.meta
}

func TestClassifyPriority(t *testing.T) {
	km := everything{machine: true, peripheral: true, meta: true}

	ev, ok := classifyKey(km, userinput.ScancodeF1, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, events.Event(events.MachineKey{Key: keyboard.KeyQ, Down: true}))

	km.machine = false
	ev, ok = classifyKey(km, userinput.ScancodeF1, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, events.Event(events.PeripheralKey{Key: kempston.Fire, Down: false}))

	km.peripheral = false
	ev, ok = classifyKey(km, userinput.ScancodeF1, true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, events.Event(events.ChangeSpeed{Speed: emulation.Definite(4)}))

	_, ok = classifyKey(km, userinput.ScancodeF1, false)
	test.ExpectFailure(t, ok)

	km.meta = false
	_, ok = classifyKey(km, userinput.ScancodeF1, true)
	test.ExpectFailure(t, ok)
}

func TestUnknownAction(t *testing.T) {
	km := unknownMeta{}
	_, ok := classifyKey(km, userinput.ScancodeF1, true)
	test.ExpectFailure(t, ok)
}

type unknownMeta struct{ everything }

func (unknownMeta) Meta(_ userinput.Scancode) (keymap.Command, bool) {
	return keymap.Command{Action: keymap.Action(99)}, true
}
