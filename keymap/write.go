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
	"io"
)

// Write prints the three tables in a human readable form. Entries are
// ordered by scancode.
func (km *Keymap) Write(w io.Writer) error {
	var err error
	line := func(format string, a ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, a...)
	}

	line("machine\n")
	for _, c := range sortedCodes(km.machine) {
		k := km.machine[c]
		line("  %-12s %-10s %#04x %#02x\n", c, k, k.Port(), k.Mask)
	}

	line("peripheral\n")
	for _, c := range sortedCodes(km.peripheral) {
		line("  %-12s %s\n", c, km.peripheral[c])
	}

	line("meta\n")
	for _, c := range sortedCodes(km.meta) {
		line("  %-12s %s\n", c, km.meta[c])
	}

	return err
}
