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

// Source is implemented by host input backends.
type Source interface {
	// PollEvent returns the next pending event or nil if there is no event
	// pending. It must never block.
	//
	// Events must be returned in the order they occurred.
	PollEvent() Event
}

// Queue is a FIFO of events and an implementation of the Source interface.
// Useful for backends that produce more than one Event for a single
// occurrence. The zero value is an empty queue.
type Queue struct {
	events []Event
}

// Push events onto the end of the queue.
func (q *Queue) Push(ev ...Event) {
	q.events = append(q.events, ev...)
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	return len(q.events)
}

// PollEvent implements the Source interface.
func (q *Queue) PollEvent() Event {
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// PushKey pushes a key press immediately followed by its release. If any
// modifiers are supplied they are pressed before the key and released after
// it, in reverse order.
//
// Used by backends that do not report key releases.
func (q *Queue) PushKey(code Scancode, modifiers ...Scancode) {
	for _, m := range modifiers {
		q.Push(EventKeyboard{Scancode: m, Down: true})
	}
	q.Push(EventKeyboard{Scancode: code, Down: true}, EventKeyboard{Scancode: code, Down: false})
	for i := len(modifiers) - 1; i >= 0; i-- {
		q.Push(EventKeyboard{Scancode: modifiers[i], Down: false})
	}
}
