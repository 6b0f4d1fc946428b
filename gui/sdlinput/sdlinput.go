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

package sdlinput

import (
	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/logger"
	"github.com/jetsetilly/gopherzx/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// the size of the window. the size of the ZX Spectrum display including the
// border, doubled
const (
	windowWidth  = 352 * 2
	windowHeight = 296 * 2
)

// SdlInput is an implementation of the userinput.Source interface.
type SdlInput struct {
	window *sdl.Window
}

// NewSdlInput is the preferred method of initialisation for the SdlInput
// type. If window is false then no window will be opened. Without a window
// it is unlikely that any keyboard events will be received.
func NewSdlInput(title string, window bool) (*SdlInput, error) {
	inp := &SdlInput{}

	var flags uint32 = sdl.INIT_EVENTS
	if window {
		flags |= sdl.INIT_VIDEO
	}

	err := sdl.Init(flags)
	if err != nil {
		return nil, curated.Errorf("sdlinput: %v", err)
	}

	sdl.EventState(sdl.DROPFILE, sdl.ENABLE)

	if window {
		inp.window, err = sdl.CreateWindow(title,
			sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
			windowWidth, windowHeight, sdl.WINDOW_SHOWN)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf("sdlinput: %v", err)
		}
		inp.window.Raise()
	}

	v := sdl.Version{}
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdlinput", "using SDL %d.%d.%d", v.Major, v.Minor, v.Patch)

	return inp, nil
}

// Destroy closes the window and shuts down SDL.
func (inp *SdlInput) Destroy() {
	if inp.window != nil {
		err := inp.window.Destroy()
		if err != nil {
			logger.Log(logger.Allow, "sdlinput", err)
		}
		inp.window = nil
	}
	sdl.Quit()
}

// PollEvent implements the userinput.Source interface.
func (inp *SdlInput) PollEvent() userinput.Event {
	ev := sdl.PollEvent()
	if ev == nil {
		return nil
	}
	return convert(ev)
}

// convert a single SDL event. never returns nil
func convert(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.KeyboardEvent:
		// auto-repeated key presses are not transitions
		if ev.Repeat != 0 {
			return userinput.EventOther{}
		}

		switch ev.Type {
		case sdl.KEYDOWN:
			return userinput.EventKeyboard{
				Scancode: userinput.Scancode(ev.Keysym.Scancode),
				Down:     true,
			}
		case sdl.KEYUP:
			return userinput.EventKeyboard{
				Scancode: userinput.Scancode(ev.Keysym.Scancode),
				Down:     false,
			}
		}

	case *sdl.DropEvent:
		if ev.Type == sdl.DROPFILE {
			return userinput.EventDropFile{Path: ev.File}
		}
	}

	return userinput.EventOther{}
}
