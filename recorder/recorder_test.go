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

package recorder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/recorder"
	"github.com/jetsetilly/gopherzx/test"
	"github.com/jetsetilly/gopherzx/userinput"
)

// returns one entry per poll. nil entries are polls with nothing pending
type scripted struct {
	events []userinput.Event
}

func (s *scripted) PollEvent() userinput.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

var session = []userinput.Event{
	nil,
	userinput.EventKeyboard{Scancode: userinput.ScancodeLShift, Down: true},
	userinput.EventKeyboard{Scancode: userinput.ScancodeNum5, Down: true},
	nil,
	nil,
	userinput.EventKeyboard{Scancode: userinput.ScancodeNum5, Down: false},
	userinput.EventKeyboard{Scancode: userinput.ScancodeLShift, Down: false},
	userinput.EventKeyboard{Scancode: userinput.ScancodeNone, Down: true},
	userinput.EventOther{},
	userinput.EventDropFile{Path: "/games/horace, goes skiing.tap"},
	nil,
	userinput.EventQuit{},
	userinput.EventKeyboard{Scancode: userinput.Scancode(1), Down: true},
	userinput.EventDropFile{Path: "/tmp/odd\nname.tap"},
	userinput.EventDropFile{Path: "C:\\games\\dos\r\n.tap"},
}

func TestRoundTrip(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")

	src := &scripted{events: append([]userinput.Event(nil), session...)}
	rec, err := recorder.NewRecorder(transcript, src)
	test.DemandSuccess(t, err)

	// events pass through the recorder unchanged
	for i, ev := range session {
		test.ExpectEquality(t, rec.PollEvent(), ev, i)
	}
	test.DemandSuccess(t, rec.End())

	data, err := os.ReadFile(transcript)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), `gopherzx transcript
v1
1, KEYDOWN, LShift
2, KEYDOWN, 5
5, KEYUP, 5
6, KEYUP, LShift
7, KEYDOWN, NONE
8, OTHER
9, DROP, "/games/horace, goes skiing.tap"
11, QUIT
12, KEYDOWN, #1
13, DROP, "/tmp/odd\nname.tap"
14, DROP, "C:\\games\\dos\r\n.tap"
`)

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	for i, ev := range session {
		test.ExpectFailure(t, plb.EndOfTranscript(), i)
		test.ExpectEquality(t, plb.PollEvent(), ev, i)
	}
	test.ExpectSuccess(t, plb.EndOfTranscript())
	test.ExpectSuccess(t, plb.PollEvent() == nil)
}

func TestRecorderExistingFile(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	test.DemandSuccess(t, os.WriteFile(transcript, []byte("precious"), 0o600))

	_, err := recorder.NewRecorder(transcript, &scripted{})
	test.ExpectFailure(t, err)

	_, err = recorder.NewRecorder(filepath.Join(t.TempDir(), "other"), nil)
	test.ExpectFailure(t, err)
}

func playbackError(t *testing.T, content string) error {
	t.Helper()
	transcript := filepath.Join(t.TempDir(), "transcript")
	test.DemandSuccess(t, os.WriteFile(transcript, []byte(content), 0o600))
	_, err := recorder.NewPlayback(transcript)
	return err
}

func TestMalformedTranscripts(t *testing.T) {
	err := playbackError(t, "")
	test.ExpectSuccess(t, curated.Is(err, recorder.NotATranscript))

	err = playbackError(t, "zx transcript\nv1\n")
	test.ExpectSuccess(t, curated.Is(err, recorder.NotATranscript))

	err = playbackError(t, "gopherzx transcript\nv2\n")
	test.ExpectSuccess(t, curated.Is(err, recorder.UnsupportedVersion))

	err = playbackError(t, "gopherzx transcript\nv1\n0, KEYDOWN, Z\nx, KEYUP, Z\n")
	test.ExpectSuccess(t, curated.Is(err, recorder.MalformedEntry))
	test.ExpectEquality(t, err.Error(), "playback: invalid poll value (x): line 4, col 1")

	err = playbackError(t, "gopherzx transcript\nv1\n0, KEYPRESS, Z\n")
	test.ExpectEquality(t, err.Error(), "playback: unrecognised event kind (KEYPRESS): line 3, col 4")

	err = playbackError(t, "gopherzx transcript\nv1\n10, KEYUP, Shift\n")
	test.ExpectEquality(t, err.Error(), "playback: unrecognised scancode name (Shift): line 3, col 12")

	err = playbackError(t, "gopherzx transcript\nv1\n10, KEYUP\n")
	test.ExpectSuccess(t, curated.Is(err, recorder.MalformedEntry))

	err = playbackError(t, "gopherzx transcript\nv1\n0, DROP, /unquoted\n")
	test.ExpectEquality(t, err.Error(), "playback: invalid path (/unquoted): line 3, col 10")

	err = playbackError(t, "gopherzx transcript\nv1\n10, QUIT, now\n")
	test.ExpectSuccess(t, curated.Is(err, recorder.MalformedEntry))

	// two events on the same poll
	err = playbackError(t, "gopherzx transcript\nv1\n3, KEYDOWN, Z\n3, KEYUP, Z\n")
	test.ExpectEquality(t, err.Error(), "playback: poll values not in order: line 4, col 1")
}

func TestPlaybackTolerance(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	test.DemandSuccess(t, os.WriteFile(transcript, []byte("gopherzx transcript\r\nv1\r\n\r\n2, KEYDOWN, z\r\n"), 0o600))

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, plb.PollEvent() == nil)
	test.ExpectSuccess(t, plb.PollEvent() == nil)
	test.ExpectEquality(t, plb.PollEvent(), userinput.Event(userinput.EventKeyboard{Scancode: userinput.ScancodeZ, Down: true}))
	test.ExpectSuccess(t, plb.EndOfTranscript())
}
