//go:build !windows

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

package terminput

import (
	"errors"
	"io"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/logger"
	"github.com/jetsetilly/gopherzx/userinput"

	"github.com/pkg/term"
)

// the terminal device to use when no device is specified
const defaultDevice = "/dev/tty"

// TermInput is an implementation of the userinput.Source interface.
type TermInput struct {
	tty *term.Term

	// bytes read from the terminal
	buf []byte

	// decoded events waiting to be returned by PollEvent()
	queue userinput.Queue
}

// NewTermInput is the preferred method of initialisation for the TermInput
// type. The device is put into raw mode until Destroy() is called. An empty
// device string means the controlling terminal.
func NewTermInput(device string) (*TermInput, error) {
	if device == "" {
		device = defaultDevice
	}

	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("terminput: %v", err)
	}

	// zero timeout means reads never block
	err = tty.SetReadTimeout(0)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, curated.Errorf("terminput: %v", err)
	}

	logger.Logf(logger.Allow, "terminput", "reading from %s", device)

	return &TermInput{
		tty: tty,
		buf: make([]byte, 64),
	}, nil
}

// Destroy restores the terminal to the mode it was in before NewTermInput()
// was called.
func (inp *TermInput) Destroy() {
	if err := inp.tty.Restore(); err != nil {
		logger.Log(logger.Allow, "terminput", err)
	}
	if err := inp.tty.Close(); err != nil {
		logger.Log(logger.Allow, "terminput", err)
	}
}

// PollEvent implements the userinput.Source interface.
func (inp *TermInput) PollEvent() userinput.Event {
	if inp.queue.Len() > 0 {
		return inp.queue.PollEvent()
	}

	n, err := inp.tty.Read(inp.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Log(logger.Allow, "terminput", err)
		return nil
	}
	if n == 0 {
		return nil
	}

	decode(&inp.queue, inp.buf[:n])

	return inp.queue.PollEvent()
}
