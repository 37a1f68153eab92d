// This file is part of mmusim.
//
// mmusim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mmusim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mmusim.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectFailure and ExpectSuccess functions test for failure and success
// under generic conditions. Supported types are bool and error. The nil value
// is considered a success because that is how a nil error is interpreted.
//
// ExpectEquality and ExpectInequality compare values of the same comparable
// type. The Demand variants of the functions stop the test with t.Fatalf()
// rather than t.Errorf(). This is useful when the value is needed by later
// parts of the test, for example the length of a slice about to be iterated
// over.
//
// Every function accepts optional tags which are printed at the start of any
// failure message. Tags are useful for identifying the iteration of a loop.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string.
package test
