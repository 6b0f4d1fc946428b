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

package recorder

import (
	"io"
	"os"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/logger"
	"github.com/jetsetilly/gopherzx/userinput"
)

// Recorder wraps a userinput.Source and writes every event returned by the
// source to a transcript. It is itself an implementation of the
// userinput.Source interface.
type Recorder struct {
	transcript string
	output     io.WriteCloser

	src userinput.Source

	// the number of calls to PollEvent()
	poll int

	// the first write error. recording stops if this is not nil
	err error
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The transcript file is created and must not already exist.
func NewRecorder(transcript string, src userinput.Source) (*Recorder, error) {
	if src == nil {
		return nil, curated.Errorf("recorder: no input source")
	}

	f, err := os.OpenFile(transcript, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	rec := &Recorder{
		transcript: transcript,
		output:     f,
		src:        src,
	}

	if _, err := io.WriteString(rec.output, header()); err != nil {
		_ = rec.output.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	logger.Logf(logger.Allow, "recorder", "recording to %s", transcript)

	return rec, nil
}

// PollEvent implements the userinput.Source interface.
func (rec *Recorder) PollEvent() userinput.Event {
	ev := rec.src.PollEvent()
	poll := rec.poll
	rec.poll++

	if ev == nil || rec.err != nil {
		return ev
	}

	_, err := io.WriteString(rec.output, formatEntry(poll, ev)+"\n")
	if err != nil {
		rec.err = err
		logger.Logf(logger.Allow, "recorder", "recording stopped: %v", err)
	}

	return ev
}

// End closes the transcript. Any error that stopped the recording early is
// returned.
func (rec *Recorder) End() error {
	err := rec.output.Close()
	if rec.err != nil {
		return curated.Errorf("recorder: %v", rec.err)
	}
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	logger.Logf(logger.Allow, "recorder", "finished recording to %s after %d polls", rec.transcript, rec.poll)

	return nil
}
