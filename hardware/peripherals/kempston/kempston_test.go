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

package kempston_test

import (
	"testing"

	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
	"github.com/jetsetilly/gopherzx/test"
)

func TestKeys(t *testing.T) {
	var all uint8
	for _, k := range kempston.Keys() {
		test.ExpectSuccess(t, k.Valid(), k)

		// one bit per key and no bit is shared
		test.ExpectEquality(t, all&uint8(k), uint8(0), k)
		all |= uint8(k)

		l, ok := kempston.Lookup(k.String())
		test.ExpectSuccess(t, ok, k)
		test.ExpectEquality(t, l, k)
	}
	test.ExpectEquality(t, all, uint8(0x1f))

	k, ok := kempston.Lookup("fire")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, kempston.Fire)

	_, ok = kempston.Lookup("Jump")
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, kempston.Key(0x20).Valid())
}
