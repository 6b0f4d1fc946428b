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

package translator

import (
	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/events"
	"github.com/jetsetilly/gopherzx/keymap"
	"github.com/jetsetilly/gopherzx/logger"
	"github.com/jetsetilly/gopherzx/userinput"
)

// NoSource is returned by NewTranslator() when there is no source.
const NoSource = "translator: no input source"

// Translator converts raw events from a host source into domain events.
type Translator struct {
	src userinput.Source
	km  *keymap.Keymap
}

// NewTranslator is the preferred method of initialisation for the Translator
// type. The source must already be initialised.
//
// The prefs argument can be nil, in which case the default keymap is used.
func NewTranslator(src userinput.Source, prefs *Preferences) (*Translator, error) {
	if src == nil {
		return nil, curated.Errorf(NoSource)
	}

	km, err := LoadKeymap(prefs)
	if err != nil {
		return nil, curated.Errorf("translator: %v", err)
	}

	return &Translator{
		src: src,
		km:  km,
	}, nil
}

// Keymap returns the keymap being used by the translator. It must not be
// changed.
func (tr *Translator) Keymap() *keymap.Keymap {
	return tr.km
}

// NextEvent takes the next raw event from the source and classifies it. The
// function never blocks. A false return value means that there is no event
// this time, either because the source had nothing pending or because the
// raw event has no meaning to the emulation.
func (tr *Translator) NextEvent() (events.Event, bool) {
	ev := tr.src.PollEvent()
	if ev == nil {
		return nil, false
	}
	return tr.Classify(ev)
}

// LoadKeymap returns the default keymap with the bindings file named by the
// preferences applied. A missing bindings file is not an error. The meta table
// is emptied if the MetaCommands preference is false.
//
// The prefs argument can be nil, in which case the default keymap is
// returned.
func LoadKeymap(prefs *Preferences) (*keymap.Keymap, error) {
	km := keymap.Default()

	if prefs == nil {
		return km, nil
	}

	err := applyBindings(km, prefs)
	if err != nil {
		return nil, err
	}

	if !prefs.MetaCommands.Get().(bool) {
		km.ClearMeta()
		logger.Log(logger.Allow, "translator", "meta commands disabled")
	}

	return km, nil
}

// applyBindings applies the bindings file named by the preferences to the
// keymap. A missing bindings file is not an error.
func applyBindings(km *keymap.Keymap, prefs *Preferences) error {
	pth, err := prefs.BindingsPath()
	if err != nil {
		return err
	}
	if pth == "" {
		return nil
	}

	ov, err := keymap.LoadOverrides(pth)
	if err != nil {
		if curated.Is(err, keymap.NoBindingsFile) {
			return nil
		}
		return err
	}

	err = km.Apply(ov)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "translator", "bindings applied from %s", pth)

	for _, c := range km.Shadowed() {
		cmd, _ := km.Meta(c)
		logger.Logf(logger.Allow, "translator", "meta command %s on %s is unreachable", cmd, c)
	}

	return nil
}
