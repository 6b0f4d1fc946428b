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

// Package terminput is a host input source that reads key presses from a
// terminal in raw mode.
//
// A terminal only reports characters and escape sequences. It does not
// report key releases so every key is delivered as a press immediately
// followed by a release. Upper-case letters and shifted symbols are wrapped
// in a press and release of the left shift key. Control characters are
// wrapped in the left control key.
//
// Ctrl-C is delivered as a quit request rather than as a key.
package terminput
