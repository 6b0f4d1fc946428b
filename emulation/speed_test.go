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

package emulation_test

import (
	"testing"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/emulation"
	"github.com/jetsetilly/gopherzx/test"
)

func TestSpeed(t *testing.T) {
	test.ExpectEquality(t, emulation.Definite(1).String(), "x1")
	test.ExpectEquality(t, emulation.Definite(2).Multiplier(), 2)
	test.ExpectEquality(t, emulation.Definite(0), emulation.Definite(1))
	test.ExpectFailure(t, emulation.Definite(3).IsMax())

	test.ExpectSuccess(t, emulation.SpeedMax.IsMax())
	test.ExpectEquality(t, emulation.SpeedMax.Multiplier(), 0)
	test.ExpectEquality(t, emulation.SpeedMax.String(), "max")
}

func TestParseSpeed(t *testing.T) {
	s, err := emulation.ParseSpeed("max")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, emulation.SpeedMax)

	s, err = emulation.ParseSpeed(" X3 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, emulation.Definite(3))

	s, err = emulation.ParseSpeed("2")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, emulation.Definite(2))

	for _, bad := range []string{"", "0", "-1", "fast", "x"} {
		_, err = emulation.ParseSpeed(bad)
		test.ExpectSuccess(t, curated.Is(err, emulation.UnrecognisedSpeed), bad)
	}
}
