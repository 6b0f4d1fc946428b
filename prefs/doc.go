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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are declared with one of the types in this package
// (Bool, String) and added to a Disk instance with a unique key. The
// Disk instance is then used to Load() and Save() all the values it knows
// about.
//
//	var v prefs.Bool
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("translator.example", &v)
//	_ = dsk.Load(false)
//
// More than one Disk instance can use the same file. Each instance only
// updates the entries it owns and preserves all other entries in the file.
//
// The file format is one entry per line, after a single line of warning:
//
//	key :: value
//
// Values can be overridden from the command line by pushing a prefs string
// onto the command line stack before calling Load(). See
// PushCommandLineStack() for the format of the prefs string.
package prefs
