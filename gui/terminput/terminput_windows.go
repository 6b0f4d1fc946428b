//go:build windows

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
	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/userinput"
)

// TermInput is not available on windows.
type TermInput struct{}

// NewTermInput always returns an error on windows.
func NewTermInput(_ string) (*TermInput, error) {
	return nil, curated.Errorf("terminput: not supported on windows")
}

// Destroy does nothing on windows.
func (inp *TermInput) Destroy() {
}

// PollEvent implements the userinput.Source interface.
func (inp *TermInput) PollEvent() userinput.Event {
	return nil
}
