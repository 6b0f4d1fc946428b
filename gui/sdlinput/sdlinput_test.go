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

package sdlinput

import (
	"testing"

	"github.com/jetsetilly/gopherzx/test"
	"github.com/jetsetilly/gopherzx/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func TestConvert(t *testing.T) {
	var ev userinput.Event

	ev = convert(&sdl.QuitEvent{Type: sdl.QUIT})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventQuit{}))

	ev = convert(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_Z},
	})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventKeyboard{Scancode: userinput.ScancodeZ, Down: true}))

	ev = convert(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LALT},
	})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventKeyboard{Scancode: userinput.ScancodeLAlt, Down: false}))

	// repeats are not key transitions
	ev = convert(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Repeat: 1,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_Z},
	})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventOther{}))

	// absent scancode is passed through
	ev = convert(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_UNKNOWN},
	})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventKeyboard{Scancode: userinput.ScancodeNone, Down: true}))

	ev = convert(&sdl.DropEvent{Type: sdl.DROPFILE, File: "/tmp/manic miner.tap"})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventDropFile{Path: "/tmp/manic miner.tap"}))

	ev = convert(&sdl.DropEvent{Type: sdl.DROPBEGIN})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventOther{}))

	ev = convert(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventOther{}))
}

// the userinput scancodes are the same values as the SDL scancodes
func TestScancodeValues(t *testing.T) {
	test.ExpectEquality(t, uint32(userinput.ScancodeA), uint32(sdl.SCANCODE_A))
	test.ExpectEquality(t, uint32(userinput.ScancodeNum0), uint32(sdl.SCANCODE_0))
	test.ExpectEquality(t, uint32(userinput.ScancodeReturn), uint32(sdl.SCANCODE_RETURN))
	test.ExpectEquality(t, uint32(userinput.ScancodeF12), uint32(sdl.SCANCODE_F12))
	test.ExpectEquality(t, uint32(userinput.ScancodeInsert), uint32(sdl.SCANCODE_INSERT))
	test.ExpectEquality(t, uint32(userinput.ScancodeDelete), uint32(sdl.SCANCODE_DELETE))
	test.ExpectEquality(t, uint32(userinput.ScancodeUp), uint32(sdl.SCANCODE_UP))
	test.ExpectEquality(t, uint32(userinput.ScancodeLCtrl), uint32(sdl.SCANCODE_LCTRL))
	test.ExpectEquality(t, uint32(userinput.ScancodeRAlt), uint32(sdl.SCANCODE_RALT))
}
