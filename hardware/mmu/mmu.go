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

package mmu

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mmusim/curated"
	"github.com/jetsetilly/mmusim/hardware/mmu/addresses"
	"github.com/jetsetilly/mmusim/hardware/mmu/pagetable"
	"github.com/jetsetilly/mmusim/hardware/mmu/tlb"
	"github.com/jetsetilly/mmusim/logger"
)

// MMU owns the page table and the TLB for a single simulation session.
type MMU struct {
	// whether the MMU is allowed to add entries to the central log
	perm logger.Permission

	PageTable *pagetable.PageTable
	TLB       *tlb.TLB

	hits     int
	accesses int
}

// NewMMU is the preferred method of initialisation for the MMU type. The page
// table must be fully populated. The TLB is seeded with the translations for
// the first tlb.Size pages.
func NewMMU(perm logger.Permission, pt *pagetable.PageTable) *MMU {
	mmu := &MMU{
		perm:      perm,
		PageTable: pt,
		TLB:       tlb.NewTLB(),
	}
	mmu.Reset()
	return mmu
}

// Reset the TLB to its seeded state and zero the hit counters. The page table
// is unchanged.
func (mmu *MMU) Reset() {
	mmu.TLB.Seed(mmu.PageTable)
	mmu.hits = 0
	mmu.accesses = 0
	logger.Logf(mmu.perm, "mmu", "tlb seeded: %s", mmu.TLB)
}

// Translate a logical address into a physical address. The second return
// value is true if the translation was found in the TLB.
//
// On a TLB miss the frame number is read from the page table and the
// translation is inserted into the TLB.
func (mmu *MMU) Translate(la addresses.Logical) (addresses.Physical, bool) {
	page, offset := addresses.Decompose(la)

	mmu.accesses++

	frame, hit := mmu.TLB.Probe(page)
	if hit {
		mmu.hits++
	} else {
		frame = mmu.PageTable.Lookup(page)
		slot, evicted := mmu.TLB.Insert(page, frame)
		logger.Logf(mmu.perm, "tlb", "miss for page %02d: slot %d (%s) replaced with frame %04d", page, slot, evicted, frame)
	}

	return addresses.Compose(frame, offset), hit
}

// Hits returns the number of translations satisfied by the TLB since the last
// reset.
func (mmu *MMU) Hits() int {
	return mmu.hits
}

// Accesses returns the number of translations since the last reset.
func (mmu *MMU) Accesses() int {
	return mmu.accesses
}

// HitRate returns the percentage of translations satisfied by the TLB. Returns
// zero if there have been no translations.
func (mmu *MMU) HitRate() float64 {
	if mmu.accesses == 0 {
		return 0
	}
	return float64(mmu.hits) * 100 / float64(mmu.accesses)
}

// VisualiseError is returned by Visualise() if the output can not be written.
const VisualiseError = "mmu: visualise: %v"

// Visualise writes a graphviz representation of the MMU and everything it
// references.
func (mmu *MMU) Visualise(w io.Writer) error {
	ew := &errorWriter{w: w}
	memviz.Map(ew, mmu)
	if ew.err != nil {
		return curated.Errorf(VisualiseError, ew.err)
	}
	return nil
}

// memviz.Map() does not return write errors. errorWriter records the first
// error and discards all writes after it.
type errorWriter struct {
	w   io.Writer
	err error
}

func (ew *errorWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
