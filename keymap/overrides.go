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

package keymap

import (
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/hardware/keyboard"
	"github.com/jetsetilly/gopherzx/hardware/peripherals/kempston"
	"github.com/jetsetilly/gopherzx/userinput"
	"github.com/pelletier/go-toml/v2"
)

// Sentinel error patterns for the keymap package.
const (
	UnknownName    = "keymap: unknown %s name (%s)"
	NoBindingsFile = "keymap: no bindings file (%s)"
	BadBindings    = "keymap: bindings file: %v"
	Overlap        = "keymap: %d scancodes in both machine and peripheral tables"
	Ambiguous      = "keymap: %s bound in both machine and peripheral sections"
)

// Overrides is the decoded form of a bindings file. The keys of each map are
// scancode names and the values are logical names in the corresponding
// table. An empty value removes the binding.
type Overrides struct {
	Machine    map[string]string `toml:"machine,omitempty"`
	Peripheral map[string]string `toml:"peripheral,omitempty"`
	Meta       map[string]string `toml:"meta,omitempty"`
}

// IsEmpty returns true if there are no entries in the overrides.
func (ov Overrides) IsEmpty() bool {
	return len(ov.Machine) == 0 && len(ov.Peripheral) == 0 && len(ov.Meta) == 0
}

// LoadOverrides decodes the bindings file at path. Unknown sections or
// fields are an error.
//
// If the file does not exist the NoBindingsFile error is returned.
func LoadOverrides(path string) (Overrides, error) {
	var ov Overrides

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ov, curated.Errorf(NoBindingsFile, path)
		}
		return ov, curated.Errorf(BadBindings, err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ov); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return ov, curated.Errorf(BadBindings, curated.Errorf("%s: line %d, col %d: %v", path, row, col, derr))
		}
		return ov, curated.Errorf(BadBindings, curated.Errorf("%s: %v", path, err))
	}

	return ov, nil
}

// Overrides returns the keymap as an Overrides value. Applying the result to
// an empty keymap (see New()) will recreate this keymap.
func (km *Keymap) Overrides() Overrides {
	ov := Overrides{
		Machine:    make(map[string]string),
		Peripheral: make(map[string]string),
		Meta:       make(map[string]string),
	}
	for c, k := range km.machine {
		ov.Machine[c.String()] = k.String()
	}
	for c, k := range km.peripheral {
		ov.Peripheral[c.String()] = k.String()
	}
	for c, cmd := range km.meta {
		ov.Meta[c.String()] = cmd.String()
	}
	return ov
}

// Apply changes the keymap according to the overrides. A machine or
// peripheral binding removes the scancode from the other two tables first,
// so that a physical key is moved from one table to another. A meta binding
// leaves any machine or peripheral binding in place, in which case the meta
// binding is shadowed and reported by Shadowed().
//
// Names are checked before anything is changed. If any name is not
// recognised the keymap is left untouched and an UnknownName error is
// returned. A scancode given a machine and a peripheral binding is an
// Ambiguous error.
func (km *Keymap) Apply(ov Overrides) error {
	type change struct {
		code  userinput.Scancode
		apply func()
	}
	var changes []change

	// scancodes given a machine binding
	machine := make(map[userinput.Scancode]bool)

	scancode := func(name string) (userinput.Scancode, error) {
		c, err := userinput.LookupScancode(name)
		if err != nil || c == userinput.ScancodeNone {
			return userinput.ScancodeNone, curated.Errorf(UnknownName, "scancode", name)
		}
		return c, nil
	}

	for _, name := range sortedNames(ov.Machine) {
		c, err := scancode(name)
		if err != nil {
			return err
		}
		v := ov.Machine[name]
		if v == "" {
			changes = append(changes, change{code: c, apply: func() { delete(km.machine, c) }})
			continue
		}
		k, ok := keyboard.Lookup(v)
		if !ok {
			return curated.Errorf(UnknownName, "machine key", v)
		}
		machine[c] = true
		changes = append(changes, change{code: c, apply: func() {
			km.remove(c)
			km.machine[c] = k
		}})
	}

	for _, name := range sortedNames(ov.Peripheral) {
		c, err := scancode(name)
		if err != nil {
			return err
		}
		v := ov.Peripheral[name]
		if v == "" {
			changes = append(changes, change{code: c, apply: func() { delete(km.peripheral, c) }})
			continue
		}
		k, ok := kempston.Lookup(v)
		if !ok {
			return curated.Errorf(UnknownName, "peripheral key", v)
		}
		if machine[c] {
			return curated.Errorf(Ambiguous, c)
		}
		changes = append(changes, change{code: c, apply: func() {
			km.remove(c)
			km.peripheral[c] = k
		}})
	}

	for _, name := range sortedNames(ov.Meta) {
		c, err := scancode(name)
		if err != nil {
			return err
		}
		v := ov.Meta[name]
		if v == "" {
			changes = append(changes, change{code: c, apply: func() { delete(km.meta, c) }})
			continue
		}
		cmd, err := ParseCommand(v)
		if err != nil {
			return err
		}
		changes = append(changes, change{code: c, apply: func() {
			km.meta[c] = cmd
		}})
	}

	for _, ch := range changes {
		ch.apply()
	}

	return km.Validate()
}

// remove scancode from all tables
func (km *Keymap) remove(c userinput.Scancode) {
	delete(km.machine, c)
	delete(km.peripheral, c)
	delete(km.meta, c)
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
