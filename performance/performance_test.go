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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherzx/performance"
	"github.com/jetsetilly/gopherzx/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(50, 100, 2)
	test.ExpectApproximate(t, fps, 50, 0.001)
	test.ExpectApproximate(t, accuracy, 100, 0.001)

	fps, accuracy = performance.CalcFPS(50, 50, 2)
	test.ExpectApproximate(t, fps, 25, 0.001)
	test.ExpectApproximate(t, accuracy, 50, 0.001)

	fps, _ = performance.CalcFPS(50, 50, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestCheck(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	err := os.WriteFile(transcript, []byte("gopherzx transcript\nv1\n0, KEYDOWN, Z\n5, KEYUP, Z\n9, KEYDOWN, F12\n"), 0o600)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	err = performance.Check(w, performance.ProfileNone, transcript, nil, "1s")
	test.DemandSuccess(t, err)

	// the F12 key is not bound to anything
	test.ExpectSuccess(t, strings.Contains(w.String(), "(10 polls, 2 events in"), w.String())

	err = performance.Check(w, performance.ProfileNone, transcript, nil, "soon")
	test.ExpectFailure(t, err)
}
