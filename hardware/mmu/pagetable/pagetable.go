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

// Package pagetable implements a single level page table. The table has one
// entry for every page in the logical address space and is indexed directly by
// page number.
//
// The table is populated when it is created and cannot be changed afterwards.
package pagetable

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mmusim/curated"
	"github.com/jetsetilly/mmusim/hardware/mmu/addresses"
)

// WrongSize is returned by NewPageTable() if the number of frames does not
// match the number of pages.
const WrongSize = "pagetable: wrong number of entries (%d, expected %d)"

// PageTable maps page numbers to frame numbers.
type PageTable struct {
	frames [addresses.PageTableSize]addresses.FrameNumber
}

// NewPageTable is the preferred method of initialisation for the PageTable
// type. The frames slice must have exactly addresses.PageTableSize entries.
// Entry i is the frame number for page i.
func NewPageTable(frames []addresses.FrameNumber) (*PageTable, error) {
	if len(frames) != addresses.PageTableSize {
		return nil, curated.Errorf(WrongSize, len(frames), addresses.PageTableSize)
	}

	pt := &PageTable{}
	for i := range frames {
		pt.frames[i] = frames[i] & addresses.MaskFrameNum
	}

	return pt, nil
}

// Lookup returns the frame number for the page. A page number is always in
// range so the lookup can not fail.
func (pt *PageTable) Lookup(page addresses.PageNumber) addresses.FrameNumber {
	return pt.frames[page&addresses.MaskPageNum]
}

// Len returns the number of entries in the page table.
func (pt *PageTable) Len() int {
	return len(pt.frames)
}

// Frames returns a copy of the entries in the page table, in page order.
func (pt *PageTable) Frames() []addresses.FrameNumber {
	f := make([]addresses.FrameNumber, len(pt.frames))
	copy(f, pt.frames[:])
	return f
}

// Summary returns a multi-line string of page to frame mappings. Useful for
// logging and debugging.
func (pt *PageTable) Summary() string {
	s := strings.Builder{}
	for i, f := range pt.frames {
		s.WriteString(fmt.Sprintf("%02d -> %04d\n", i, f))
	}
	return s.String()
}
