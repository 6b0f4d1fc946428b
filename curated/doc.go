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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a pattern and placeholder
// values in the same way as the fmt.Errorf() function.
//
// The pattern is remembered by the error and can be tested for later with the
// Is() and Has() functions. This means that a pattern stored as a const
// string can act as a sentinel. For example:
//
//	const NoSource = "translator: no input source"
//
//	err := curated.Errorf(NoSource)
//	if curated.Is(err, NoSource) {
//		...
//	}
//
// Has() is the same as Is() except that the pattern can appear anywhere in the
// chain of wrapped curated errors:
//
//	f := curated.Errorf("startup: %v", err)
//	curated.Has(f, NoSource) // true
//	curated.Is(f, NoSource)  // false
//
// The message returned by Error() is normalised so that adjacent, identical
// parts of the chain are only shown once. Parts are separated by the ": "
// sub-string. This means that the caller of a function does not need to know
// whether the callee has already prefixed the error with the same context:
//
//	sdlinput: sdlinput: cannot initialise events
//
// is reported as
//
//	sdlinput: cannot initialise events
//
// Curated errors also implement Unwrap() so that they work with the errors
// package in the standard library if a wrapped value is an error.
package curated
