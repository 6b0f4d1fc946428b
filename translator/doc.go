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

// Package translator turns the raw events of a host input backend into the
// domain events of the emulation.
//
// The Translator is polled once per frame with NextEvent(). Each call takes
// at most one event from the host source and returns at most one domain
// event. Raw events are classified as follows:
//
//   - a quit request is always an Exit event
//   - a key that is on the emulated keyboard is a MachineKey event, for both
//     press and release
//   - otherwise, a key that is on the emulated joystick is a PeripheralKey
//     event, for both press and release
//   - otherwise, if the key is being pressed and is bound to a meta command,
//     the event for that command. Releases of these keys produce nothing
//   - a dropped file is an OpenFile event
//   - anything else produces nothing
//
// The classification depends only on the raw event being classified. The
// Translator has no memory of earlier events.
//
// What a key means is decided by a keymap.Keymap. By default this is the
// keymap returned by keymap.Default() but it can be changed with a bindings
// file named in the Preferences.
package translator
