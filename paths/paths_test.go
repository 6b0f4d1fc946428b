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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/gopherzx/paths"
	"github.com/jetsetilly/gopherzx/test"
)

// change to a temporary directory containing a local resource directory.
// returns a function that restores the original working directory
func localResources(t *testing.T) func() {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".gopherzx", 0o700))

	return func() {
		_ = os.Chdir(wd)
	}
}

func TestLocalPaths(t *testing.T) {
	defer localResources(t)()

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherzx", "foo", "bar", "baz"))

	// sub-path directories have been created
	info, err := os.Stat(filepath.Join(".gopherzx", "foo", "bar"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherzx", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherzx", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherzx")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("transcript", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^transcript_\d{8}_\d{6}$`).MatchString(fn))

	fn = paths.UniqueFilename("transcript", ".txt")
	test.ExpectSuccess(t, regexp.MustCompile(`^transcript_\d{8}_\d{6}\.txt$`).MatchString(fn))
}
