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

package tlb

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mmusim/hardware/mmu/addresses"
)

// Size is the number of slots in the TLB.
const Size = 4

// Entry is a single slot in the TLB.
type Entry struct {
	Page  addresses.PageNumber
	Frame addresses.FrameNumber

	// slots are empty until the first insertion or seeding
	Valid bool
}

func (e Entry) String() string {
	if !e.Valid {
		return "empty"
	}
	return fmt.Sprintf("%02d -> %04d", e.Page, e.Frame)
}

// Lookup is the subset of the page table used to seed the TLB.
type Lookup interface {
	Lookup(addresses.PageNumber) addresses.FrameNumber
}

// TLB is a fully associative translation cache with round-robin replacement.
//
// The TLB does not prevent more than one slot holding the same page. Insert()
// never checks for an existing entry and Probe() returns the first match, so
// a duplicate in a later slot is never seen until it is overwritten.
type TLB struct {
	entries [Size]Entry

	// the slot to be overwritten by the next call to Insert()
	cursor int
}

// NewTLB is the preferred method of initialisation for the TLB type. All slots
// are empty.
func NewTLB() *TLB {
	return &TLB{}
}

// Reset empties every slot and returns the cursor to slot zero.
func (tlb *TLB) Reset() {
	tlb.entries = [Size]Entry{}
	tlb.cursor = 0
}

// Seed fills slot i with the translation of page i, taken from the lookup
// argument. The cursor returns to slot zero.
func (tlb *TLB) Seed(pt Lookup) {
	for i := range tlb.entries {
		p := addresses.PageNumber(i)
		tlb.entries[i] = Entry{
			Page:  p,
			Frame: pt.Lookup(p),
			Valid: true,
		}
	}
	tlb.cursor = 0
}

// Probe scans the slots in order and returns the frame number of the first
// slot holding the page.
func (tlb *TLB) Probe(page addresses.PageNumber) (addresses.FrameNumber, bool) {
	for i := range tlb.entries {
		if tlb.entries[i].Valid && tlb.entries[i].Page == page {
			return tlb.entries[i].Frame, true
		}
	}
	return 0, false
}

// Insert writes the translation to the slot indicated by the cursor and
// advances the cursor. Returns the slot number that was written and the
// entry that it replaced.
func (tlb *TLB) Insert(page addresses.PageNumber, frame addresses.FrameNumber) (int, Entry) {
	slot := tlb.cursor
	evicted := tlb.entries[slot]

	tlb.entries[slot] = Entry{
		Page:  page,
		Frame: frame,
		Valid: true,
	}
	tlb.cursor = (tlb.cursor + 1) % Size

	return slot, evicted
}

// Cursor returns the slot to be written by the next call to Insert().
func (tlb *TLB) Cursor() int {
	return tlb.cursor
}

// Entries returns a copy of the slots in the TLB.
func (tlb *TLB) Entries() [Size]Entry {
	return tlb.entries
}

func (tlb *TLB) String() string {
	s := strings.Builder{}
	for i, e := range tlb.entries {
		if i > 0 {
			s.WriteString(", ")
		}
		if i == tlb.cursor {
			s.WriteString("*")
		}
		s.WriteString(e.String())
	}
	return s.String()
}
