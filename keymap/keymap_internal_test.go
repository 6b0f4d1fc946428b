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
	"testing"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/hardware/keyboard"
	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
	"github.com/jetsetilly/gopherzx/test"
	"github.com/jetsetilly/gopherzx/userinput"
)

func TestValidateReportsOverlap(t *testing.T) {
	km := Default()
	km.peripheral[userinput.ScancodeZ] = kempston.Fire
	km.peripheral[userinput.ScancodeA] = kempston.Left

	conflicts := km.Conflicts()
	test.DemandEquality(t, len(conflicts), 2)

	// ordered by scancode
	test.ExpectEquality(t, conflicts[0], Conflict{
		Scancode:   userinput.ScancodeA,
		Machine:    keyboard.KeyA,
		Peripheral: kempston.Left,
	})
	test.ExpectEquality(t, conflicts[1].Scancode, userinput.ScancodeZ)

	err := km.Validate()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, Overlap))
	test.ExpectEquality(t, err.Error(), "keymap: 2 scancodes in both machine and peripheral tables: "+
		"A is bound to machine key A and to kempston Left; Z is bound to machine key Z and to kempston Fire")
}

func TestShadowed(t *testing.T) {
	km := Default()
	km.meta[userinput.ScancodeRAlt] = Command{Action: ActionToggleDebug}
	km.meta[userinput.ScancodeQ] = Command{Action: ActionInsertTape}

	shadowed := km.Shadowed()
	test.DemandEquality(t, len(shadowed), 2)
	test.ExpectEquality(t, shadowed[0], userinput.ScancodeQ)
	test.ExpectEquality(t, shadowed[1], userinput.ScancodeRAlt)

	// shadowing is not a conflict
	test.ExpectSuccess(t, km.Validate())
}
