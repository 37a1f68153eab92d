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

package workload

import (
	"github.com/jetsetilly/mmusim/curated"
	"github.com/jetsetilly/mmusim/hardware/mmu/addresses"
	"github.com/jetsetilly/mmusim/hardware/mmu/pagetable"
	"github.com/jetsetilly/mmusim/logger"
	"github.com/jetsetilly/mmusim/random"
)

// DefaultSeed is the seed used for the generated workload unless another is
// requested.
const DefaultSeed = 47261

// Groups is the number of groups of accesses in a generated workload. Each
// group is a run of accesses to the same page.
const Groups = addresses.PageTableSize * 5

// MaxRun is the exclusive upper limit on the length of a group. A group can be
// empty.
const MaxRun = 20

// GeneratedFrames returns the page table entries for a generated workload.
//
// Entry i is first set to (i+37)*(i+3)+231. The entries are then shuffled by
// a fixed series of swaps, so that the frame numbers don't increase with the
// page number. No random numbers are used. The result is always the same.
func GeneratedFrames() []addresses.FrameNumber {
	frames := make([]addresses.FrameNumber, addresses.PageTableSize)

	for i := range frames {
		frames[i] = addresses.NewFrameNumber((i+37)*(i+3) + 231)
	}

	for i := range frames {
		n := ((i+13)*(i+7) + 891) % addresses.PageTableSize
		m := ((i+21)*(i+17) + 533) % addresses.PageTableSize
		frames[m], frames[n] = frames[n], frames[m]
	}

	return frames
}

// Generate creates a workload from the seed. The same seed always creates the
// same workload.
//
// The accesses are created in groups. For each group a page is chosen at
// random, followed by the length of the group. Each access in the group is to
// a random offset in that page.
func Generate(seed uint32) (*Workload, error) {
	pt, err := pagetable.NewPageTable(GeneratedFrames())
	if err != nil {
		return nil, curated.Errorf("workload: %v", err)
	}

	rnd := random.NewRandom(seed)

	var accesses []addresses.Logical
	for g := 0; g < Groups; g++ {
		base := addresses.PageBase(addresses.NewPageNumber(rnd.Intn(addresses.PageTableSize)))
		n := rnd.Intn(MaxRun)
		for j := 0; j < n; j++ {
			accesses = append(accesses, base|addresses.Logical(rnd.Intn(addresses.PageSize)))
		}
	}

	logger.Logf(logger.Allow, "workload", "generated %d accesses in %d groups (seed %d)", len(accesses), Groups, seed)

	return &Workload{
		PageTable: pt,
		Accesses:  accesses,
	}, nil
}
