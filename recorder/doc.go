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

// Package recorder records the raw events delivered by a userinput.Source to
// a transcript file, and plays them back.
//
// The Recorder type wraps another source. Events pass through unchanged and
// are written to the transcript as they go by. The Playback type is a source
// that returns the events in a transcript on the same poll that they were
// originally returned on. When playing back a transcript into a translator,
// the same domain events will be produced on the same frames as the original
// session.
//
// The transcript format is line based. The first two lines are the header:
//
//	gopherzx transcript
//	v1
//
// Every other line is an event:
//
//	<poll>, <kind>, <data>
//
// where poll is the zero-based count of the PollEvent() call on which the
// event was returned, and kind is one of QUIT, KEYDOWN, KEYUP, DROP or OTHER.
// For keyboard events the data is the name of the scancode. Scancodes without
// a name are written as a decimal number with a leading #. For DROP events the
// data is the path of the file as a quoted Go string. QUIT and OTHER events
// have no data field.
package recorder
