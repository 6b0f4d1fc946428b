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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/logger"
	"github.com/jetsetilly/gopherzx/userinput"
)

type playbackEntry struct {
	poll  int
	event userinput.Event

	// the line in the transcript the entry appears
	line int
}

// Playback returns the events in a transcript on the same poll as they were
// recorded. It implements the userinput.Source interface.
type Playback struct {
	transcript string

	sequence []playbackEntry
	seqCt    int

	// the number of calls to PollEvent()
	poll int
}

func (plb *Playback) String() string {
	if len(plb.sequence) == 0 {
		return "0/0"
	}
	end := plb.sequence[len(plb.sequence)-1].poll
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.poll, end, 100*(float64(plb.poll)/float64(end+1)))
}

// NewPlayback is the preferred method of initialisation for the Playback type.
func NewPlayback(transcript string) (*Playback, error) {
	tf, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	buffer, err := io.ReadAll(tf)
	if err != nil {
		_ = tf.Close()
		return nil, curated.Errorf("playback: %v", err)
	}
	err = tf.Close()
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	plb := &Playback{
		transcript: transcript,
	}

	// convert file contents to an array of lines
	lines := strings.Split(strings.ReplaceAll(string(buffer), "\r\n", "\n"), "\n")

	err = checkHeader(transcript, lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		// blank lines are allowed. there is always one at the end of the file
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		poll, ev, col, err := parseEntry(lines[i])
		if err != nil {
			return nil, curated.Errorf(MalformedEntry, err, i+1, col)
		}

		// only one event can be returned by a poll
		if len(plb.sequence) > 0 && poll <= plb.sequence[len(plb.sequence)-1].poll {
			return nil, curated.Errorf(MalformedEntry, curated.Errorf("poll values not in order"), i+1, 1)
		}

		plb.sequence = append(plb.sequence, playbackEntry{
			poll:  poll,
			event: ev,
			line:  i + 1,
		})
	}

	logger.Logf(logger.Allow, "playback", "%d events in %s", len(plb.sequence), transcript)

	return plb, nil
}

// PollEvent implements the userinput.Source interface.
func (plb *Playback) PollEvent() userinput.Event {
	poll := plb.poll
	plb.poll++

	// we've reached the end of the transcript
	if plb.seqCt >= len(plb.sequence) {
		return nil
	}

	entry := plb.sequence[plb.seqCt]
	if entry.poll != poll {
		return nil
	}

	plb.seqCt++
	return entry.event
}

// EndOfTranscript returns true if every event in the transcript has been
// returned by PollEvent().
func (plb *Playback) EndOfTranscript() bool {
	return plb.seqCt >= len(plb.sequence)
}
