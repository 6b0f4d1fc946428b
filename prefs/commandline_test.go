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

package prefs_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopherzx/curated"
	"github.com/jetsetilly/gopherzx/prefs"
	"github.com/jetsetilly/gopherzx/test"
)

// translatorDisk returns a disk with the same entries as the translator's
// preferences
func translatorDisk(t *testing.T, fn string) (*prefs.Disk, *prefs.String, *prefs.Bool) {
	t.Helper()

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var bindings prefs.String
	var meta prefs.Bool
	test.DemandSuccess(t, dsk.Add("translator.bindings", &bindings))
	test.DemandSuccess(t, dsk.Add("translator.metacommands", &meta))

	return dsk, &bindings, &meta
}

func TestCommandLineOverridesDisk(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(prefs.WarningBoilerPlate+"\ntranslator.bindings :: disk.toml\ntranslator.metacommands :: true\n"), 0o600))

	dsk, bindings, meta := translatorDisk(t, fn)

	prefs.PushCommandLineStack("translator.metacommands::false; translator.volume::11")
	test.ExpectSuccess(t, dsk.Load(false))

	// only the keys owned by the disk are consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "translator.volume::11")

	test.ExpectEquality(t, bindings.String(), "disk.toml")
	test.ExpectFailure(t, meta.Get().(bool))

	// the stack is empty so the disk values are restored
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectSuccess(t, meta.Get().(bool))
}

func TestCommandLineWithoutPrefsFile(t *testing.T) {
	dsk, bindings, _ := translatorDisk(t, tmpPrefFile(t))

	prefs.PushCommandLineStack("translator.bindings::cli.toml")
	err := dsk.Load(false)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// the missing file is still reported but the command line is applied
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, bindings.String(), "cli.toml")
}

func TestCommandLineNesting(t *testing.T) {
	dsk, bindings, _ := translatorDisk(t, tmpPrefFile(t))

	prefs.PushCommandLineStack("translator.bindings::outer.toml")
	prefs.PushCommandLineStack("translator.bindings::inner.toml")

	// only the top of the stack is consulted
	_ = dsk.Load(false)
	test.ExpectEquality(t, bindings.String(), "inner.toml")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	_ = dsk.Load(false)
	test.ExpectEquality(t, bindings.String(), "outer.toml")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// popping an empty stack is harmless
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineParsing(t *testing.T) {
	// pairs without a separator are dropped. keys and values are trimmed and
	// the value is everything after the first separator
	prefs.PushCommandLineStack(" translator.bindings ;z.key:: 1 ;translator.bindings :: a::b.toml")
	ok, v := prefs.GetCommandLinePref("translator.bindings")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "a::b.toml")

	// a value is consumed when it is read
	ok, _ = prefs.GetCommandLinePref("translator.bindings")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "z.key::1")

	ok, _ = prefs.GetCommandLinePref("z.key")
	test.ExpectFailure(t, ok)
}
