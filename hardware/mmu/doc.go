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

// Package mmu is the translation engine. The MMU type ties together the
// address codec (the addresses package), the page table and the TLB.
//
// A translation decomposes the logical address into page number and offset,
// probes the TLB and, on a miss, reads the page table and inserts the result
// into the TLB. The frame number and offset are then composed into the
// physical address. Translation never fails: every page has an entry in the
// page table.
//
// When an MMU is created the TLB is seeded with the translations for pages
// 0 to tlb.Size-1. Accesses to those pages are hits until their slots are
// overwritten.
//
// The MMU is not safe for concurrent use. Translations must be made one at a
// time, in order.
package mmu
