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

package addresses

import (
	"github.com/jetsetilly/mmusim/curated"
)

// Sentinal error patterns returned by ParseLogical().
const (
	EmptyBitString   = "addresses: empty bit string"
	InvalidBitString = "addresses: invalid character (%q) in bit string (%s)"
	LongBitString    = "addresses: bit string (%s) is longer than %d bits"
)

// ParseLogical converts a string of binary digits into a logical address. The
// string may be shorter than LogicalBits, in which case the missing high bits
// are zero.
func ParseLogical(s string) (Logical, error) {
	if len(s) == 0 {
		return 0, curated.Errorf(EmptyBitString)
	}

	if len(s) > LogicalBits {
		return 0, curated.Errorf(LongBitString, s, LogicalBits)
	}

	var la Logical
	for _, c := range s {
		switch c {
		case '0':
			la <<= 1
		case '1':
			la = la<<1 | 1
		default:
			return 0, curated.Errorf(InvalidBitString, c, s)
		}
	}

	return la, nil
}
