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

// Package sdlinput is a host input source using SDL. Keyboard events, quit
// requests and dropped files are converted to userinput events.
//
// SDL only delivers keyboard events to a window with focus so a small window
// is normally opened. NewSdlInput() and PollEvent() must be called from the
// main thread.
package sdlinput
