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

// Package emulation contains definitions shared between the emulator core and
// the packages that control it.
package emulation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherzx/curated"
)

// Speed is the rate at which the emulation should run. It is either a
// definite multiple of the machine's natural speed or the maximum speed the
// host can manage.
//
// The zero value is not a valid speed. Use Definite() or SpeedMax.
type Speed int

// SpeedMax indicates that emulation should run as fast as possible.
const SpeedMax Speed = -1

// Definite returns a Speed that is a multiple of the machine's natural speed.
// Multipliers of less than one are not allowed and are treated as one.
func Definite(multiplier int) Speed {
	if multiplier < 1 {
		multiplier = 1
	}
	return Speed(multiplier)
}

// IsMax returns true if speed is SpeedMax.
func (s Speed) IsMax() bool {
	return s == SpeedMax
}

// Multiplier returns the multiplier for a definite speed. The value for
// SpeedMax is zero.
func (s Speed) Multiplier() int {
	if s < 1 {
		return 0
	}
	return int(s)
}

func (s Speed) String() string {
	if s.IsMax() {
		return "max"
	}
	return fmt.Sprintf("x%d", s.Multiplier())
}

// UnrecognisedSpeed is the error pattern returned by ParseSpeed().
const UnrecognisedSpeed = "emulation: unrecognised speed (%s)"

// ParseSpeed converts a string to a Speed. Accepted forms are "max" and a
// positive integer, optionally prefixed with "x".
func ParseSpeed(s string) (Speed, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "max" {
		return SpeedMax, nil
	}

	n, err := strconv.Atoi(strings.TrimPrefix(s, "x"))
	if err != nil || n < 1 {
		return 0, curated.Errorf(UnrecognisedSpeed, s)
	}

	return Definite(n), nil
}
