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

// Package prefs holds preference values and saves them to disk.
//
// Preference values are the Bool, Int, Float, String and Generic types. They
// are safe for concurrent use. Values are associated with a key and added to a
// Disk. The Disk type saves and loads values to and from a preferences file,
// one key/value pair per line:
//
//	audio.sampleRate :: 48000
//
// Keys in the file that have not been added to a Disk are preserved when the
// Disk is saved. This means that more than one Disk can share the same file.
//
// Values can also be specified on the command line as a string of key/value
// pairs, separated by semi-colons:
//
//	audio.sampleRate::44100; divider.attackAfterTicks::4
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). Command line values override values in the file
// when Disk.Load() is called and are never saved to disk.
package prefs
