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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that need to be checked by other packages should
// be stored as a const string, suitably named and commented. For example:
//
//	const AlreadyBound = "processor: already bound"
//
//	err := curated.Errorf(AlreadyBound)
//	if curated.Is(err, AlreadyBound) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("soundload: %v", curated.Errorf(UnsupportedFormat, ".ogg"))
//	curated.Has(e, UnsupportedFormat) // true
//	curated.Is(e, UnsupportedFormat)  // false
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. So
//
//	curated.Errorf("wavwriter: %v", curated.Errorf("wavwriter: %v", err))
//
// prints as "wavwriter: <err>" and not "wavwriter: wavwriter: <err>".
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '.
//
// Curated errors implement Unwrap() so that the standard library's errors.Is()
// and errors.As() functions can see through them to any plain errors that
// were used as values.
package curated
