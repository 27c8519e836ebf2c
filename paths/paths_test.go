// This file is part of ClockDivider.
//
// ClockDivider is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ClockDivider is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ClockDivider.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reactivesynth/clockdivider/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 7, 9, 5, 1, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename(n, "render", "div4", "wav"), "render_div4_20240307_090501.wav")
	test.ExpectEquality(t, uniqueFilename(n, "render", " ", ".wav"), "render_20240307_090501.wav")
	test.ExpectEquality(t, uniqueFilename(n, "trace", "", ""), "trace_20240307_090501")
}

func TestResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(clockdividerConfigDir, "foo", "bar", "baz"))

	// sub-directory has been created but not the file
	_, err = os.Stat(filepath.Dir(pth))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)
}
