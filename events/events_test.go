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

package events_test

import (
	"testing"

	"github.com/jetsetilly/gopherzx/emulation"
	"github.com/jetsetilly/gopherzx/events"
	"github.com/jetsetilly/gopherzx/hardware/keyboard"
	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
	"github.com/jetsetilly/gopherzx/test"
)

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, events.Exit{}.String(), "exit")
	test.ExpectEquality(t, events.MachineKey{Key: keyboard.KeyZ, Down: true}.String(), "key Z down")
	test.ExpectEquality(t, events.PeripheralKey{Key: kempston.Up, Down: false}.String(), "kempston Up up")
	test.ExpectEquality(t, events.ChangeSpeed{Speed: emulation.SpeedMax}.String(), "speed max")
	test.ExpectEquality(t, events.ChangeSpeed{Speed: emulation.Definite(2)}.String(), "speed x2")
	test.ExpectEquality(t, events.OpenFile{Path: "/tmp/game.tap"}.String(), `open file "/tmp/game.tap"`)
}
