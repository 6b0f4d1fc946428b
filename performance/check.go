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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/paths"
	"github.com/jetsetilly/gopherzx/recorder"
	"github.com/jetsetilly/gopherzx/translator"
)

// Check measures how quickly the translator consumes the transcript. The
// transcript is played back as quickly as possible, with one translator
// poll per frame, until the transcript ends or the duration has elapsed.
// Results are written to output.
func Check(output io.Writer, profile Profile, transcript string, prefs *translator.Preferences, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var numFrames int
	var numEvents int
	var elapsed time.Duration

	runner := func() error {
		plb, err := recorder.NewPlayback(transcript)
		if err != nil {
			return err
		}

		tr, err := translator.NewTranslator(plb, prefs)
		if err != nil {
			return err
		}

		start := time.Now()
		for !plb.EndOfTranscript() {
			if _, ok := tr.NextEvent(); ok {
				numEvents++
			}
			numFrames++

			// checking the time is relatively expensive compared to a poll
			if numFrames%1000 == 0 && time.Since(start) >= dur {
				break
			}
		}
		elapsed = time.Since(start)

		return nil
	}

	err = RunProfiler(profile, paths.UniqueFilename("performance", ""), runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fps, _ := CalcFPS(0, numFrames, elapsed.Seconds())
	_, err = fmt.Fprintf(output, "%.0f polls per second (%d polls, %d events in %.3f seconds)\n", fps, numFrames, numEvents, elapsed.Seconds())

	return err
}
