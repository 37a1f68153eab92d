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

package pagetable_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mmusim/curated"
	"github.com/jetsetilly/mmusim/hardware/mmu/addresses"
	"github.com/jetsetilly/mmusim/hardware/mmu/pagetable"
	"github.com/jetsetilly/mmusim/test"
)

func identity() []addresses.FrameNumber {
	f := make([]addresses.FrameNumber, addresses.PageTableSize)
	for i := range f {
		f[i] = addresses.FrameNumber(i)
	}
	return f
}

func TestLookup(t *testing.T) {
	frames := identity()
	frames[5] = 99

	pt, err := pagetable.NewPageTable(frames)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pt.Len(), addresses.PageTableSize)

	test.ExpectEquality(t, pt.Lookup(5), addresses.FrameNumber(99))
	for p := 0; p < addresses.PageTableSize; p++ {
		test.ExpectEquality(t, pt.Lookup(addresses.PageNumber(p)), frames[p], p)
	}
}

func TestWrongSize(t *testing.T) {
	_, err := pagetable.NewPageTable(identity()[:10])
	test.ExpectSuccess(t, curated.Is(err, pagetable.WrongSize))

	_, err = pagetable.NewPageTable(append(identity(), 0))
	test.ExpectSuccess(t, curated.Is(err, pagetable.WrongSize))

	_, err = pagetable.NewPageTable(nil)
	test.ExpectSuccess(t, curated.Is(err, pagetable.WrongSize))
}

// the page table takes a copy of the frames and is not affected by later
// changes to the slice
func TestReadOnly(t *testing.T) {
	frames := identity()
	pt, err := pagetable.NewPageTable(frames)
	test.DemandSuccess(t, err)

	frames[0] = 1000
	test.ExpectEquality(t, pt.Lookup(0), addresses.FrameNumber(0))

	f := pt.Frames()
	f[1] = 1000
	test.ExpectEquality(t, pt.Lookup(1), addresses.FrameNumber(1))
}

func TestSummary(t *testing.T) {
	frames := identity()
	frames[31] = 2543

	pt, err := pagetable.NewPageTable(frames)
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(pt.Summary()), "\n")
	test.DemandEquality(t, len(lines), addresses.PageTableSize)
	test.ExpectEquality(t, lines[0], "00 -> 0000")
	test.ExpectEquality(t, lines[31], "31 -> 2543")
}
