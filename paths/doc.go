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

// Package paths contains functions to prepare paths to ClockDivider resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the base path is ".clockdivider" in the program's
// current directory. For release builds (the "release" build tag) the base
// path is "clockdivider" in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system the path above would be:
//
//	/home/user/.config/clockdivider/preferences
//
// Directories are created as required. The file itself is never created.
package paths
