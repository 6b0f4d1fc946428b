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

// Package paths contains functions to prepare paths to GopherZX resources.
//
// The ResourcePath() function returns the path to a resource, prepended with
// the appropriate config directory. For example, the following returns the
// path to the key-binding file:
//
//	pth, err := paths.ResourcePath("", "bindings.toml")
//
// The policy of ResourcePath() is simple: if the base resource directory,
// ".gopherzx", is present in the program's current directory then that is
// the base path that is used. If it is not present then the "gopherzx"
// directory in the user's config directory is used (see os.UserConfigDir()).
//
// On a modern Linux system the path returned by the example above will be:
//
//	/home/user/.config/gopherzx/bindings.toml
//
// Any missing directories in the path, not including the file itself, are
// created.
package paths
