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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report failure with t.Errorf() and allow the test to
// continue. The Demand functions report failure with t.Fatalf() and should be
// used when later parts of the test depend on the value being correct.
//
// Success and failure are interpreted according to the type of the value
// being tested:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil type is considered a success because of how errors are usually
// returned. A function returning a nil error has succeeded.
//
// The CompareWriter type implements io.Writer and can be used to capture
// output for comparison with an expected string.
package test
