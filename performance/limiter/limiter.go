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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(50)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		pollInput()
//	}
//
// A limit of zero (or less) means that Wait() never stalls. This is how the
// emulation runs at maximum speed.
package limiter

import (
	"time"
)

// the period over which the actual frame rate is measured
const measurementPeriod = time.Second

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	// the time of the next trigger
	next time.Time

	// measurement of the actual rate
	measureStart time.Time
	measureCount int
	measured     float64
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	lim.measureStart = time.Now()
	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits. A value of zero
// or less means there is no limit.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond < 0 {
		framesPerSecond = 0
	}
	lim.framesPerSecond = framesPerSecond
	if framesPerSecond == 0 {
		lim.secondsPerFrame = 0
	} else {
		lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	}
	lim.next = time.Now().Add(lim.secondsPerFrame)
}

// Limit returns the current limit. A value of zero means there is no limit.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	if lim.secondsPerFrame > 0 {
		if d := time.Until(lim.next); d > 0 {
			time.Sleep(d)
		}
		lim.advance()
	}
	lim.measure()
}

// the time of the next trigger is based on the time of the previous trigger
// and not the current time, so that the oversleeping of one frame is made up
// in the next. if we've fallen too far behind the schedule is reset
func (lim *FpsLimiter) advance() {
	lim.next = lim.next.Add(lim.secondsPerFrame)
	now := time.Now()
	if now.Sub(lim.next) > lim.secondsPerFrame {
		lim.next = now.Add(lim.secondsPerFrame)
	}
}

func (lim *FpsLimiter) measure() {
	lim.measureCount++
	if d := time.Since(lim.measureStart); d >= measurementPeriod {
		lim.measured = float64(lim.measureCount) / d.Seconds()
		lim.measureCount = 0
		lim.measureStart = time.Now()
	}
}

// Measured returns the number of triggers per second, measured over the most
// recently completed period of one second. Returns zero until the first
// period has completed.
func (lim *FpsLimiter) Measured() float64 {
	return lim.measured
}
