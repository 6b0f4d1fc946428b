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

// Package tcellinput is a host input source using a tcell screen. It is an
// alternative to the terminput package for terminals that tcell supports
// better than a raw tty, and is the only terminal source on windows.
//
// Like all terminal sources, key releases are not reported by tcell. Keys are
// delivered as a press followed immediately by a release, with any
// modifiers pressed before and released after.
//
// The Console type displays lines of text on the same screen. Writing to
// stdout while the screen is active would corrupt the display.
package tcellinput
