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

// Package userinput describes the input from the real hardware that the user
// of the emulator is using. It is the boundary between the host input backend
// (SDL, a terminal, a playback transcript) and the rest of the application.
//
// Host backends implement the Source interface and produce Event values. The
// events in this package are deliberately raw: a keyboard event carries the
// physical position of the key (the Scancode) and whether it went down or up
// and nothing else. What that key means to the emulation is decided by the
// keymap and translator packages.
//
// The Scancode values are those of the USB HID usage table for keyboards,
// which is the numbering used by SDL. Backends that do not have a concept of
// physical keys (terminals) map their input onto the same values.
package userinput
