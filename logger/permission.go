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

package logger

// Permission implementations decide whether a log request creates a new
// entry. The decision is made at the time of the request.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the Permission for entries that should always be made.
var Allow Permission = allow{}

// PermissionFunc adapts a function to the Permission interface. Useful when
// an entry only makes sense in some states. For example, a frame rate is
// only worth logging once it has been measured:
//
//	logger.Log(logger.PermissionFunc(func() bool {
//		return lim.Measured() > 0
//	}), "gopherzx", "...")
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}
