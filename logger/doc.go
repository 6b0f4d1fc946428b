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

// Package logger is the central log for the application. Entries are tagged
// and repeated entries are collapsed into a single entry with a repeat count.
//
// The package level functions write to the central log, which is created
// when the package is initialised. Independent logs can be created with
// NewLogger(), which is useful for testing.
//
// Every logging function takes a Permission argument. Use logger.Allow if the
// entry should always be made.
package logger
