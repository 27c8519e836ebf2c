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

// Package logger is the central log for the application. Entries are made
// with a tag, naming the part of the program making the entry, and a detail.
//
//	logger.Log(logger.Allow, "control", "module ready")
//	logger.Logf(logger.Allow, "engine", "rendered %d blocks", n)
//
// Consecutive entries with the same tag and detail are coalesced into a single
// entry with a repeat count.
//
// The first argument to Log() and Logf() is a Permission. Use logger.Allow
// when an entry should always be made.
//
// Nothing on the real-time audio path should log. Logging takes a lock and
// allocates.
package logger
