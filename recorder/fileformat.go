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
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/userinput"
)

const (
	fieldPoll int = iota
	fieldKind
	fieldData
	numFields
)

const fieldSep = ", "

// transcript file header format
// -----------------------------
//
// gopherzx transcript
// v1

const (
	lineMagic int = iota
	lineVersion
	numHeaderLines
)

const (
	magicString    = "gopherzx transcript"
	currentVersion = "v1"
)

// event kinds
const (
	kindQuit    = "QUIT"
	kindKeyDown = "KEYDOWN"
	kindKeyUp   = "KEYUP"
	kindDrop    = "DROP"
	kindOther   = "OTHER"
)

// Sentinel error patterns for transcript files.
const (
	NotATranscript     = "playback: not a transcript file (%s)"
	UnsupportedVersion = "playback: unsupported transcript version (%s)"
	MalformedEntry     = "playback: %v: line %d, col %d"
)

func header() string {
	return fmt.Sprintf("%s\n%s\n", magicString, currentVersion)
}

func checkHeader(transcript string, lines []string) error {
	if len(lines) < numHeaderLines || lines[lineMagic] != magicString {
		return curated.Errorf(NotATranscript, transcript)
	}
	if lines[lineVersion] != currentVersion {
		return curated.Errorf(UnsupportedVersion, lines[lineVersion])
	}
	return nil
}

// formatEntry returns the transcript line for the event, without a newline
func formatEntry(poll int, ev userinput.Event) string {
	p := strconv.Itoa(poll)

	switch ev := ev.(type) {
	case userinput.EventQuit:
		return strings.Join([]string{p, kindQuit}, fieldSep)
	case userinput.EventKeyboard:
		if ev.Down {
			return strings.Join([]string{p, kindKeyDown, ev.Scancode.String()}, fieldSep)
		}
		return strings.Join([]string{p, kindKeyUp, ev.Scancode.String()}, fieldSep)
	case userinput.EventDropFile:
		return strings.Join([]string{p, kindDrop, strconv.Quote(ev.Path)}, fieldSep)
	}

	return strings.Join([]string{p, kindOther}, fieldSep)
}

// parseEntry is the inverse of formatEntry(). errors are returned with the
// column number of the field that could not be parsed
func parseEntry(line string) (int, userinput.Event, int, error) {
	toks := strings.SplitN(line, fieldSep, numFields)

	// the column of the start of a field
	col := func(field int) int {
		return len(strings.Join(toks[:field], fieldSep)) + len(fieldSep)*min(field, 1) + 1
	}

	poll, err := strconv.Atoi(toks[fieldPoll])
	if err != nil || poll < 0 {
		return 0, nil, 1, curated.Errorf("invalid poll value (%s)", toks[fieldPoll])
	}

	if len(toks) <= fieldKind {
		return 0, nil, len(line) + 1, curated.Errorf("missing event kind")
	}

	kind := toks[fieldKind]
	switch kind {
	case kindQuit, kindOther:
		if len(toks) > fieldData {
			return 0, nil, col(fieldData), curated.Errorf("unexpected data for %s event", kind)
		}
		if kind == kindQuit {
			return poll, userinput.EventQuit{}, 0, nil
		}
		return poll, userinput.EventOther{}, 0, nil

	case kindKeyDown, kindKeyUp:
		if len(toks) <= fieldData {
			return 0, nil, len(line) + 1, curated.Errorf("missing scancode for %s event", kind)
		}
		code, err := userinput.LookupScancode(toks[fieldData])
		if err != nil {
			return 0, nil, col(fieldData), err
		}
		return poll, userinput.EventKeyboard{Scancode: code, Down: kind == kindKeyDown}, 0, nil

	case kindDrop:
		if len(toks) <= fieldData {
			return 0, nil, len(line) + 1, curated.Errorf("missing path for %s event", kind)
		}
		path, err := strconv.Unquote(toks[fieldData])
		if err != nil {
			return 0, nil, col(fieldData), curated.Errorf("invalid path (%s)", toks[fieldData])
		}
		return poll, userinput.EventDropFile{Path: path}, 0, nil
	}

	return 0, nil, col(fieldKind), curated.Errorf("unrecognised event kind (%s)", kind)
}
