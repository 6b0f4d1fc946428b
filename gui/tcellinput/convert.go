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

package tcellinput

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/gopherzx/userinput"
)

// tcell keys that are not runes
var keys = map[tcell.Key]userinput.Scancode{
	tcell.KeyEnter:      userinput.ScancodeReturn,
	tcell.KeyTab:        userinput.ScancodeTab,
	tcell.KeyBackspace:  userinput.ScancodeBackspace,
	tcell.KeyBackspace2: userinput.ScancodeBackspace,
	tcell.KeyEscape:     userinput.ScancodeEscape,
	tcell.KeyUp:         userinput.ScancodeUp,
	tcell.KeyDown:       userinput.ScancodeDown,
	tcell.KeyLeft:       userinput.ScancodeLeft,
	tcell.KeyRight:      userinput.ScancodeRight,
	tcell.KeyInsert:     userinput.ScancodeInsert,
	tcell.KeyDelete:     userinput.ScancodeDelete,
	tcell.KeyHome:       userinput.ScancodeHome,
	tcell.KeyEnd:        userinput.ScancodeEnd,
	tcell.KeyPgUp:       userinput.ScancodePageUp,
	tcell.KeyPgDn:       userinput.ScancodePageDown,
	tcell.KeyF1:         userinput.ScancodeF1,
	tcell.KeyF2:         userinput.ScancodeF2,
	tcell.KeyF3:         userinput.ScancodeF3,
	tcell.KeyF4:         userinput.ScancodeF4,
	tcell.KeyF5:         userinput.ScancodeF5,
	tcell.KeyF6:         userinput.ScancodeF6,
	tcell.KeyF7:         userinput.ScancodeF7,
	tcell.KeyF8:         userinput.ScancodeF8,
	tcell.KeyF9:         userinput.ScancodeF9,
	tcell.KeyF10:        userinput.ScancodeF10,
	tcell.KeyF11:        userinput.ScancodeF11,
	tcell.KeyF12:        userinput.ScancodeF12,
}

// convert a single tcell event and push the result onto the queue
func convert(q *userinput.Queue, ev tcell.Event) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		q.Push(userinput.EventOther{})
		return
	}

	if kev.Key() == tcell.KeyCtrlC {
		q.Push(userinput.EventQuit{})
		return
	}

	modifiers := expandModifiers(kev.Modifiers())

	if kev.Key() == tcell.KeyRune {
		code, shift, ok := userinput.ScancodeFromRune(kev.Rune())
		if !ok {
			q.Push(userinput.EventOther{})
			return
		}
		if shift && !hasModifier(modifiers, userinput.ScancodeLShift) {
			modifiers = append(modifiers, userinput.ScancodeLShift)
		}
		q.PushKey(code, modifiers...)
		return
	}

	if code, ok := keys[kev.Key()]; ok {
		q.PushKey(code, modifiers...)
		return
	}

	// control keys. tcell.KeyCtrlA to tcell.KeyCtrlZ are consecutive
	if kev.Key() >= tcell.KeyCtrlA && kev.Key() <= tcell.KeyCtrlZ {
		code := userinput.ScancodeA + userinput.Scancode(kev.Key()-tcell.KeyCtrlA)
		if !hasModifier(modifiers, userinput.ScancodeLCtrl) {
			modifiers = append([]userinput.Scancode{userinput.ScancodeLCtrl}, modifiers...)
		}
		q.PushKey(code, modifiers...)
		return
	}

	q.Push(userinput.EventOther{})
}

// modifiers in the order they are pressed
func expandModifiers(mod tcell.ModMask) []userinput.Scancode {
	var modifiers []userinput.Scancode
	if mod&tcell.ModCtrl != 0 {
		modifiers = append(modifiers, userinput.ScancodeLCtrl)
	}
	if mod&tcell.ModAlt != 0 {
		modifiers = append(modifiers, userinput.ScancodeLAlt)
	}
	if mod&tcell.ModShift != 0 {
		modifiers = append(modifiers, userinput.ScancodeLShift)
	}
	return modifiers
}

func hasModifier(modifiers []userinput.Scancode, m userinput.Scancode) bool {
	for _, n := range modifiers {
		if n == m {
			return true
		}
	}
	return false
}
