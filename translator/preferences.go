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
	"path/filepath"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/paths"
	"github.com/jetsetilly/gopherzx/prefs"
)

// DefaultBindingsFile is the name of the bindings file in the resource
// directory, unless changed by the translator.bindings preference.
const DefaultBindingsFile = "bindings.toml"

// Preferences defines and collates all the preference values used by the
// translator.
type Preferences struct {
	dsk *prefs.Disk

	// the bindings file. a relative path is relative to the resource
	// directory. an empty string means that no bindings file is used
	Bindings prefs.String

	// whether the meta table is consulted. when false, keys that are in
	// neither the machine nor the peripheral table produce no event
	MetaCommands prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("translator.bindings", &p.Bindings)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("translator.metacommands", &p.MetaCommands)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Bindings.Set(DefaultBindingsFile)
	p.MetaCommands.Set(true)
}

// Reset all translator preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current translator preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current translator preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// BindingsPath returns the full path of the bindings file. An empty string is
// returned if no bindings file should be used.
func (p *Preferences) BindingsPath() (string, error) {
	b := p.Bindings.String()
	if b == "" {
		return "", nil
	}
	if filepath.IsAbs(b) {
		return b, nil
	}
	return paths.ResourcePath("", b)
}
