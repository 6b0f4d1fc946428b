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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes), each of which can have
// its own set of flags.
//
// Arguments are given to NewArgs() and parsed with Parse(). For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PLAYBACK", "KEYMAP")
//	verbose := md.AddBool("verbose", false, "echo log entries")
//	r, err := md.Parse()
//
// The first sub-mode is the default. After Parse() the selected mode is
// returned by Mode(). A new set of flags for the selected mode is started
// with NewMode(), followed by another call to Parse():
//
//	switch md.Mode() {
//	case "PLAYBACK":
//		md.NewMode()
//		fps := md.AddInt("fps", 50, "frames per second")
//		r, err := md.Parse()
//		...
//	}
//
// Mode names are not case sensitive. Non-flag arguments that are not a mode
// are returned by RemainingArgs() and GetArg().
//
// Help messages are printed to the Output writer when the -help flag is
// given. Parse() returns ParseHelp in that case.
package modalflag
