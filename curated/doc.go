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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values, in the same way as fmt.Errorf(). The pattern
// identifies the error and should be declared as an exported const string in
// the package that raises it. For example, the workload package declares:
//
//	const MalformedAddress = "workload: malformed logical address (%s)"
//
// and a caller can test for it with:
//
//	if curated.Is(err, workload.MalformedAddress) {
//		...
//	}
//
// The Has() function checks whether the pattern occurs anywhere in the chain
// of wrapped errors. Wrapping is done by passing an error as one of the values
// to Errorf(), usually with the %v verb:
//
//	return curated.Errorf("mmusim: %v", err)
//
// Error() removes duplicate adjacent parts from the message, where parts are
// separated by ": ". A chain such as
//
//	workload: workload: malformed logical address (0x12)
//
// is printed as
//
//	workload: malformed logical address (0x12)
//
// which means functions do not need to know whether the error they are
// wrapping already carries their prefix.
package curated
