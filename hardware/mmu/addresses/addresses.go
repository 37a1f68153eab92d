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
	"strconv"
	"strings"
)

// Widths of the fields that make up logical and physical addresses. The
// offset width is the same for both address types because the page size and
// the frame size are the same.
const (
	OffsetBits   = 3
	PageNumBits  = 5
	FrameNumBits = 13

	LogicalBits  = PageNumBits + OffsetBits
	PhysicalBits = FrameNumBits + OffsetBits
)

// PageTableSize is the number of pages in the logical address space. It is
// also the number of entries in a page table.
const PageTableSize = 1 << PageNumBits

// PageSize is the number of bytes in a page (and in a frame).
const PageSize = 1 << OffsetBits

// Masks for each field, before shifting into position.
const (
	MaskOffset   = (1 << OffsetBits) - 1
	MaskPageNum  = (1 << PageNumBits) - 1
	MaskFrameNum = (1 << FrameNumBits) - 1
	MaskLogical  = (1 << LogicalBits) - 1
	MaskPhysical = (1 << PhysicalBits) - 1
)

// PageNumber identifies a page and indexes the page table.
type PageNumber uint8

// FrameNumber identifies a physical frame.
type FrameNumber uint16

// Offset is the position of a byte within a page or frame.
type Offset uint8

// Logical is a logical (virtual) address. The page number occupies the high
// bits and the offset the low bits.
type Logical uint16

// Physical is a physical address. The frame number occupies the high bits and
// the offset the low bits.
type Physical uint32

// NewPageNumber masks v to the width of a page number.
func NewPageNumber(v int) PageNumber {
	return PageNumber(v & MaskPageNum)
}

// NewFrameNumber masks v to the width of a frame number. Negative values are
// masked as two's complement.
func NewFrameNumber(v int) FrameNumber {
	return FrameNumber(v & MaskFrameNum)
}

// NewOffset masks v to the width of an offset.
func NewOffset(v int) Offset {
	return Offset(v & MaskOffset)
}

// NewLogical masks v to the width of a logical address.
func NewLogical(v int) Logical {
	return Logical(v & MaskLogical)
}

// NewPhysical masks v to the width of a physical address.
func NewPhysical(v int) Physical {
	return Physical(v & MaskPhysical)
}

// Decompose splits a logical address into its page number and offset.
func Decompose(la Logical) (PageNumber, Offset) {
	return PageNumber((la >> OffsetBits) & MaskPageNum), Offset(la & MaskOffset)
}

// Compose creates a physical address from a frame number and an offset.
func Compose(frame FrameNumber, offset Offset) Physical {
	return Physical(frame&MaskFrameNum)<<OffsetBits | Physical(offset&MaskOffset)
}

// PageBase returns the logical address of the first byte in the page.
func PageBase(page PageNumber) Logical {
	return Logical(page&MaskPageNum) << OffsetBits
}

// Page returns the page number part of the logical address.
func (la Logical) Page() PageNumber {
	p, _ := Decompose(la)
	return p
}

// Offset returns the offset part of the logical address.
func (la Logical) Offset() Offset {
	_, o := Decompose(la)
	return o
}

// String returns the address as a string of binary digits, most significant
// bit first. The string is always LogicalBits long.
func (la Logical) String() string {
	return bits(uint64(la), LogicalBits)
}

// Frame returns the frame number part of the physical address.
func (pa Physical) Frame() FrameNumber {
	return FrameNumber((pa >> OffsetBits) & MaskFrameNum)
}

// Offset returns the offset part of the physical address.
func (pa Physical) Offset() Offset {
	return Offset(pa & MaskOffset)
}

// String returns the address as a string of binary digits, most significant
// bit first. The string is always PhysicalBits long.
func (pa Physical) String() string {
	return bits(uint64(pa), PhysicalBits)
}

func bits(v uint64, width int) string {
	s := strconv.FormatUint(v, 2)
	if len(s) >= width {
		return s[len(s)-width:]
	}
	return strings.Repeat("0", width-len(s)) + s
}
