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
	"github.com/jetsetilly/gopherzx/emulation"
)

// Action is the type of a meta command.
type Action int

// List of valid Action values.
const (
	ActionChangeSpeed Action = iota
	ActionToggleDebug
	ActionInsertTape
	ActionStopTape
)

// Command is a meta command. The Speed field is only used by
// ActionChangeSpeed.
type Command struct {
	Action Action
	Speed  emulation.Speed
}

// String returns the text form of the command, as accepted by
// ParseCommand().
func (cmd Command) String() string {
	switch cmd.Action {
	case ActionChangeSpeed:
		if cmd.Speed.IsMax() {
			return "speed:max"
		}
		return fmt.Sprintf("speed:%d", cmd.Speed.Multiplier())
	case ActionToggleDebug:
		return "debug"
	case ActionInsertTape:
		return "tape:insert"
	case ActionStopTape:
		return "tape:stop"
	}
	return fmt.Sprintf("unknown action (%d)", cmd.Action)
}

// ParseCommand converts the text form of a command to a Command. Accepted
// forms are:
//
//	speed:N
//	speed:max
//	debug
//	tape:insert
//	tape:stop
func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "debug":
		return Command{Action: ActionToggleDebug}, nil
	case "tape:insert":
		return Command{Action: ActionInsertTape}, nil
	case "tape:stop":
		return Command{Action: ActionStopTape}, nil
	}

	if arg, ok := strings.CutPrefix(s, "speed:"); ok {
		spd, err := emulation.ParseSpeed(arg)
		if err != nil {
			return Command{}, curated.Errorf(UnknownName, "meta command", s)
		}
		return Command{Action: ActionChangeSpeed, Speed: spd}, nil
	}

	return Command{}, curated.Errorf(UnknownName, "meta command", s)
}
