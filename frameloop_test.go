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
	"strings"
	"testing"

	"github.com/jetsetilly/gopherzx/logger"
	"github.com/jetsetilly/gopherzx/performance/limiter"
	"github.com/jetsetilly/gopherzx/test"
	"github.com/jetsetilly/gopherzx/translator"
	"github.com/jetsetilly/gopherzx/userinput"
)

func TestRunLoop(t *testing.T) {
	var q userinput.Queue
	q.Push(userinput.EventKeyboard{Scancode: userinput.ScancodeZ, Down: true})
	q.Push(userinput.EventKeyboard{Scancode: userinput.ScancodeUp, Down: true})
	q.Push(userinput.EventKeyboard{Scancode: userinput.ScancodeZ, Down: false})
	q.PushKey(userinput.ScancodeF4)
	q.Push(userinput.EventDropFile{Path: "game.tap"})
	q.PushKey(userinput.ScancodeF5)
	q.Push(userinput.EventQuit{})

	// events after the exit are never seen
	q.Push(userinput.EventKeyboard{Scancode: userinput.ScancodeZ, Down: true})

	tr, err := translator.NewTranslator(&q, nil)
	test.DemandSuccess(t, err)

	const baseFPS = 500
	lim := limiter.NewFPSLimiter(baseFPS)

	logger.Clear()
	w := &test.CompareWriter{}
	ed := newEventDisplay(w, false)
	err = runLoop(tr, lim, baseFPS, ed, nil)
	test.ExpectSuccess(t, err)

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 7)
	for i, s := range []string{
		"key Z down",
		"kempston Up down",
		"key Z up",
		"speed x2",
		`open file "game.tap"`,
		"speed max",
		"exit",
	} {
		test.ExpectEquality(t, lines[i], s, i)
	}

	test.ExpectSuccess(t, ed.exited)
	test.ExpectEquality(t, ed.held, 1)
	test.ExpectEquality(t, ed.multiplier, 0)
	test.ExpectEquality(t, lim.Limit(), 0)
	test.ExpectEquality(t, q.Len(), 1)

	// the speed changes are logged. the frame rate has not been running long
	// enough to be measured so that is not logged
	lw := &test.CompareWriter{}
	logger.Write(lw)
	test.ExpectSuccess(t, strings.Contains(lw.String(), "frame limit is now 0"), lw.String())
	test.ExpectFailure(t, strings.Contains(lw.String(), "frames per second at limit"), lw.String())
}

func TestIgnoredSignalsDoNotDelay(t *testing.T) {
	var q userinput.Queue
	for i := 0; i < 10; i++ {
		q.Push(userinput.EventOther{})
	}
	q.Push(userinput.EventKeyboard{Scancode: userinput.ScancodeZ, Down: true})

	tr, err := translator.NewTranslator(&q, nil)
	test.DemandSuccess(t, err)

	// the key press is seen in the first frame
	frames := 0
	ed := newEventDisplay(&test.CompareWriter{}, false)
	err = runLoop(tr, limiter.NewFPSLimiter(0), 0, ed, func() bool {
		frames++
		return true
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, 1)
	test.ExpectEquality(t, ed.held, 1)
}

func TestRunLoopDone(t *testing.T) {
	var q userinput.Queue
	q.PushKey(userinput.ScancodeF4)

	tr, err := translator.NewTranslator(&q, nil)
	test.DemandSuccess(t, err)

	const baseFPS = 500
	lim := limiter.NewFPSLimiter(baseFPS)

	frames := 0
	ed := newEventDisplay(&test.CompareWriter{}, false)
	err = runLoop(tr, lim, baseFPS, ed, func() bool {
		frames++
		return frames == 3
	})
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ed.exited)
	test.ExpectEquality(t, frames, 3)
	test.ExpectEquality(t, lim.Limit(), baseFPS*2)
}

func TestToggleDebug(t *testing.T) {
	t.Cleanup(func() {
		logger.SetEcho(nil)
	})

	var q userinput.Queue
	q.PushKey(userinput.ScancodeF6)
	q.Push(userinput.EventQuit{})

	tr, err := translator.NewTranslator(&q, nil)
	test.DemandSuccess(t, err)

	ed := newEventDisplay(&test.CompareWriter{}, false)
	err = runLoop(tr, limiter.NewFPSLimiter(0), 0, ed, nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ed.debug)
}

func TestCRLFWriter(t *testing.T) {
	w := &test.CompareWriter{}
	cw := &crlfWriter{w: w}

	n, err := cw.Write([]byte("one\ntwo\n\nthree"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 14)
	test.ExpectSuccess(t, w.Compare("one\r\ntwo\r\n\r\nthree"))
}
