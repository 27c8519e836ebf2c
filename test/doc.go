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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality(), ExpectInequality() and ExpectApproximate() functions
// compare values of the same type. The ExpectSuccess() and ExpectFailure()
// functions test for success under generic conditions:
//
//	bool -> true is success
//	error -> nil is success
//
// Note that nil is considered a success, so ExpectFailure(t, nil) fails. This
// follows from how errors are used in Go, where a nil error indicates that
// nothing went wrong.
//
// The Demand*() variants are the same as the Expect*() functions but they stop
// the test immediately on failure. Use them when continuing the test makes no
// sense, for example when a constructor has failed.
//
// The CompareWriter and RingWriter types implement io.Writer and can be used
// to capture output for later comparison.
package test
