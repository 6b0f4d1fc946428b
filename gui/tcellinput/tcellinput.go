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
	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/logger"
	"github.com/jetsetilly/gopherzx/userinput"
)

// the number of tcell events that can be waiting before the polling
// goroutine blocks
const eventQueueLen = 100

// TcellInput is an implementation of the userinput.Source interface.
type TcellInput struct {
	screen tcell.Screen

	// tcell.Screen.PollEvent() blocks so it is run in its own goroutine
	events chan tcell.Event
	done   chan struct{}

	// converted events waiting to be returned by PollEvent()
	queue userinput.Queue
}

// NewTcellInput is the preferred method of initialisation for the TcellInput
// type. If screen is nil a new screen for the terminal is created. The screen
// is initialised by this function and finalised by Destroy().
func NewTcellInput(screen tcell.Screen) (*TcellInput, error) {
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, curated.Errorf("tcellinput: %v", err)
		}
	}

	if err := screen.Init(); err != nil {
		return nil, curated.Errorf("tcellinput: %v", err)
	}

	inp := &TcellInput{
		screen: screen,
		events: make(chan tcell.Event, eventQueueLen),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			ev := inp.screen.PollEvent()

			// PollEvent() returns nil when the screen has been finalised
			if ev == nil {
				return
			}

			select {
			case inp.events <- ev:
			case <-inp.done:
				return
			}
		}
	}()

	logger.Log(logger.Allow, "tcellinput", "screen initialised")

	return inp, nil
}

// Screen returns the tcell screen being used for input.
func (inp *TcellInput) Screen() tcell.Screen {
	return inp.screen
}

// Destroy finalises the screen and stops the polling goroutine.
func (inp *TcellInput) Destroy() {
	close(inp.done)
	inp.screen.Fini()
}

// PollEvent implements the userinput.Source interface.
func (inp *TcellInput) PollEvent() userinput.Event {
	if inp.queue.Len() > 0 {
		return inp.queue.PollEvent()
	}

	select {
	case ev := <-inp.events:
		convert(&inp.queue, ev)
	default:
		return nil
	}

	return inp.queue.PollEvent()
}
