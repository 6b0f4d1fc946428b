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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/hardware/keyboard"
	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
	"github.com/jetsetilly/gopherzx/userinput"
)

// Conflict is a scancode that is bound in both the machine and peripheral
// tables.
type Conflict struct {
	Scancode   userinput.Scancode
	Machine    keyboard.Key
	Peripheral kempston.Key
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s is bound to machine key %s and to kempston %s", c.Scancode, c.Machine, c.Peripheral)
}

// Conflicts returns every scancode that is in both the machine and peripheral
// tables, ordered by scancode.
func (km *Keymap) Conflicts() []Conflict {
	var conflicts []Conflict
	for _, c := range sortedCodes(km.machine) {
		if p, ok := km.peripheral[c]; ok {
			conflicts = append(conflicts, Conflict{
				Scancode:   c,
				Machine:    km.machine[c],
				Peripheral: p,
			})
		}
	}
	return conflicts
}

// Validate returns an error if the machine and peripheral tables are not
// disjoint. The error message lists every conflict.
func (km *Keymap) Validate() error {
	conflicts := km.Conflicts()
	if len(conflicts) == 0 {
		return nil
	}

	s := make([]string, len(conflicts))
	for i, c := range conflicts {
		s[i] = c.String()
	}
	return curated.Errorf("%v: %s", curated.Errorf(Overlap, len(conflicts)), strings.Join(s, "; "))
}

// Shadowed returns the scancodes in the meta table that will never be reached
// because the scancode is also in the machine or peripheral table. Ordered
// by scancode.
func (km *Keymap) Shadowed() []userinput.Scancode {
	var shadowed []userinput.Scancode
	for _, c := range sortedCodes(km.meta) {
		_, m := km.machine[c]
		_, p := km.peripheral[c]
		if m || p {
			shadowed = append(shadowed, c)
		}
	}
	return shadowed
}
