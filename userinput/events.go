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

package userinput

// Event represents all the different type of events that can occur in the
// host input backend. Sources should use one of the types below. Any other
// type is treated in the same way as EventOther.
type Event interface{}

// EventQuit is sent when the user has asked for the application to end. For
// example, by closing the window.
type EventQuit struct{}

// EventKeyboard is sent when a key changes state. A Scancode of ScancodeNone
// indicates that the host reported a key transition but could not say which
// physical key it was.
type EventKeyboard struct {
	Scancode Scancode
	Down     bool
}

// EventDropFile is sent when a file has been dropped onto the application
// window.
type EventDropFile struct {
	Path string
}

// EventOther is sent for events that the host backend knows about but which
// have no meaning to the application.
type EventOther struct{}
