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

// Package tlb implements the translation lookaside buffer of the MMU.
//
// The TLB has a fixed number of slots. A lookup is a linear scan from slot
// zero and the first matching slot wins. Replacement is FIFO: a cursor points
// at the next slot to be overwritten and advances by one, wrapping at Size,
// on every insertion. The replacement policy takes no account of usage or of
// what is already in the TLB.
package tlb
