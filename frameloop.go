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

package main

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherzx/events"
	"github.com/jetsetilly/gopherzx/logger"
	"github.com/jetsetilly/gopherzx/performance/limiter"
	"github.com/jetsetilly/gopherzx/translator"
)

// eventDisplay stands in for the emulation. It prints every event it is given
// and keeps track of the state that the events change.
type eventDisplay struct {
	output io.Writer

	// whether the log is being echoed to output
	debug bool

	// the current speed multiplier. zero means unlimited
	multiplier int

	// number of machine keys and peripheral inputs currently held down
	held int

	exited bool
}

func newEventDisplay(output io.Writer, debug bool) *eventDisplay {
	return &eventDisplay{
		output:     output,
		debug:      debug,
		multiplier: 1,
	}
}

// handle a single event. the limiter is adjusted for ChangeSpeed events
func (ed *eventDisplay) handle(ev events.Event, lim *limiter.FpsLimiter, baseFPS int) {
	fmt.Fprintf(ed.output, "%s\n", ev)

	switch ev := ev.(type) {
	case events.Exit:
		ed.exited = true

	case events.MachineKey:
		ed.hold(ev.Down)

	case events.PeripheralKey:
		ed.hold(ev.Down)

	case events.ChangeSpeed:
		measured := logger.PermissionFunc(func() bool {
			return lim.Measured() > 0
		})
		logger.Logf(measured, "gopherzx", "measured %.1f frames per second at limit %d", lim.Measured(), lim.Limit())
		if ev.Speed.IsMax() {
			ed.multiplier = 0
			lim.SetLimit(0)
		} else {
			ed.multiplier = ev.Speed.Multiplier()
			lim.SetLimit(baseFPS * ed.multiplier)
		}
		logger.Logf(logger.Allow, "gopherzx", "frame limit is now %d", lim.Limit())

	case events.ToggleDebugOverlay:
		ed.debug = !ed.debug
		if ed.debug {
			logger.SetEcho(ed.output)
		} else {
			logger.SetEcho(nil)
		}

	case events.OpenFile:
		logger.Logf(logger.Allow, "gopherzx", "file requested: %s", ev.Path)
	}
}

func (ed *eventDisplay) hold(down bool) {
	if down {
		ed.held++
	} else if ed.held > 0 {
		ed.held--
	}
}

// the number of times the translator is polled every frame. a false result
// from NextEvent() can be an ignored signal rather than an empty source, so
// polling continues past it. any events beyond this number wait for the
// next frame
const pollsPerFrame = 64

// runLoop translates input once per frame until an Exit event is seen or
// until the done function returns true.
func runLoop(tr *translator.Translator, lim *limiter.FpsLimiter, baseFPS int, ed *eventDisplay, done func() bool) error {
	for {
		for i := 0; i < pollsPerFrame; i++ {
			ev, ok := tr.NextEvent()
			if !ok {
				continue
			}
			ed.handle(ev, lim, baseFPS)
			if ed.exited {
				return nil
			}
		}

		if done != nil && done() {
			return nil
		}

		lim.Wait()
	}
}
