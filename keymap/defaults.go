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
	"github.com/jetsetilly/gopherzx/emulation"
	"github.com/jetsetilly/gopherzx/hardware/keyboard"
	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
	"github.com/jetsetilly/gopherzx/userinput"
)

// the default tables. these are never modified. Default() returns a copy

var defaultMachine = map[userinput.Scancode]keyboard.Key{
	// 0xfefe
	userinput.ScancodeLShift: keyboard.KeyCapsShift,
	userinput.ScancodeRShift: keyboard.KeyCapsShift,
	userinput.ScancodeZ:      keyboard.KeyZ,
	userinput.ScancodeX:      keyboard.KeyX,
	userinput.ScancodeC:      keyboard.KeyC,
	userinput.ScancodeV:      keyboard.KeyV,

	// 0xfdfe
	userinput.ScancodeA: keyboard.KeyA,
	userinput.ScancodeS: keyboard.KeyS,
	userinput.ScancodeD: keyboard.KeyD,
	userinput.ScancodeF: keyboard.KeyF,
	userinput.ScancodeG: keyboard.KeyG,

	// 0xfbfe
	userinput.ScancodeQ: keyboard.KeyQ,
	userinput.ScancodeW: keyboard.KeyW,
	userinput.ScancodeE: keyboard.KeyE,
	userinput.ScancodeR: keyboard.KeyR,
	userinput.ScancodeT: keyboard.KeyT,

	// 0xf7fe
	userinput.ScancodeNum1: keyboard.Key1,
	userinput.ScancodeNum2: keyboard.Key2,
	userinput.ScancodeNum3: keyboard.Key3,
	userinput.ScancodeNum4: keyboard.Key4,
	userinput.ScancodeNum5: keyboard.Key5,

	// 0xeffe
	userinput.ScancodeNum0: keyboard.Key0,
	userinput.ScancodeNum9: keyboard.Key9,
	userinput.ScancodeNum8: keyboard.Key8,
	userinput.ScancodeNum7: keyboard.Key7,
	userinput.ScancodeNum6: keyboard.Key6,

	// 0xdffe
	userinput.ScancodeP: keyboard.KeyP,
	userinput.ScancodeO: keyboard.KeyO,
	userinput.ScancodeI: keyboard.KeyI,
	userinput.ScancodeU: keyboard.KeyU,
	userinput.ScancodeY: keyboard.KeyY,

	// 0xbffe
	userinput.ScancodeReturn: keyboard.KeyEnter,
	userinput.ScancodeL:      keyboard.KeyL,
	userinput.ScancodeK:      keyboard.KeyK,
	userinput.ScancodeJ:      keyboard.KeyJ,
	userinput.ScancodeH:      keyboard.KeyH,

	// 0x7ffe
	userinput.ScancodeSpace: keyboard.KeySpace,
	userinput.ScancodeLCtrl: keyboard.KeySymShift,
	userinput.ScancodeRCtrl: keyboard.KeySymShift,
	userinput.ScancodeM:     keyboard.KeyM,
	userinput.ScancodeN:     keyboard.KeyN,
	userinput.ScancodeB:     keyboard.KeyB,
}

var defaultPeripheral = map[userinput.Scancode]kempston.Key{
	userinput.ScancodeLAlt:  kempston.Fire,
	userinput.ScancodeRAlt:  kempston.Fire,
	userinput.ScancodeUp:    kempston.Up,
	userinput.ScancodeDown:  kempston.Down,
	userinput.ScancodeLeft:  kempston.Left,
	userinput.ScancodeRight: kempston.Right,
}

var defaultMeta = map[userinput.Scancode]Command{
	// speed control
	userinput.ScancodeF3: {Action: ActionChangeSpeed, Speed: emulation.Definite(1)},
	userinput.ScancodeF4: {Action: ActionChangeSpeed, Speed: emulation.Definite(2)},
	userinput.ScancodeF5: {Action: ActionChangeSpeed, Speed: emulation.SpeedMax},

	// debug overlay
	userinput.ScancodeF6: {Action: ActionToggleDebug},

	// tape control
	userinput.ScancodeInsert: {Action: ActionInsertTape},
	userinput.ScancodeDelete: {Action: ActionStopTape},
}

func init() {
	if err := Default().Validate(); err != nil {
		panic(err)
	}
}
