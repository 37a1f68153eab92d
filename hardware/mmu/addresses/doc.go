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

// Package addresses defines the address types of the MMU and the functions
// that pack and unpack them.
//
// A logical address is LogicalBits wide. The low OffsetBits are the offset
// within the page and the remaining high bits are the page number:
//
//	 7 6 5 4 3   2 1 0
//	[page number][offset]
//
// A physical address is PhysicalBits wide and has the same layout, with a
// frame number in place of the page number:
//
//	15 ... 3   2 1 0
//	[frame  ][offset]
//
// Every type is an unsigned integer. Values are masked to the width of the
// field when they are created with one of the New*() functions, in the same
// way that assignment to a fixed width bit field would truncate the value.
package addresses
