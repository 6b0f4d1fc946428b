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

// Package keymap decides what a key on the host keyboard means to the
// emulation. There are three tables:
//
//   - machine keys: keys on the emulated ZX Spectrum keyboard
//   - peripheral keys: inputs on the emulated Kempston joystick
//   - meta commands: control of the emulator itself (speed, tape, etc.)
//
// Each table is consulted with one of the classifier functions Machine(),
// Peripheral() and Meta(). The classifiers are pure lookups. How the three
// results are combined is decided by the translator package.
//
// A host key must not appear in both the machine and peripheral tables.
// Validate() checks for this. A meta command may share a key with the other
// two tables but it will never be reached because machine and peripheral
// keys take priority. Shadowed() lists such keys.
//
// The default tables can be changed with an Overrides value, usually loaded
// from a TOML file with LoadOverrides():
//
//	[machine]
//	LShift = "CapsShift"
//	Backspace = ""
//
//	[peripheral]
//	RCtrl = "Fire"
//
//	[meta]
//	F7 = "speed:3"
//
// The key of each entry is the name of a host scancode (see
// userinput.Scancode) and the value is the name of a ZX Spectrum key, a
// Kempston input or a meta command. An empty value removes the binding from
// that table.
//
// A meta binding never replaces a machine or Kempston binding for the same
// scancode. The meta command is kept but is unreachable, and is reported by
// Shadowed().
package keymap
