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

// Package report writes the result of a simulation run. Each translation is
// written on its own line:
//
//	00101010 --> 0000001100011010 1
//
// The logical address, the physical address and whether the translation was a
// TLB hit (1) or a miss (0). After the last translation a summary line gives
// the hit rate as a percentage:
//
//	TLB hit rate: 43.75%
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jetsetilly/mmusim/curated"
	"github.com/jetsetilly/mmusim/hardware/mmu/addresses"
)

// WriteError is returned if the output can not be written to.
const WriteError = "report: %v"

// Report writes translation results to an io.Writer.
type Report struct {
	out io.Writer
}

// NewReport is the preferred method of initialisation for the Report type.
func NewReport(out io.Writer) *Report {
	return &Report{out: out}
}

// Access writes the result of a single translation.
func (rep *Report) Access(la addresses.Logical, pa addresses.Physical, hit bool) error {
	h := 0
	if hit {
		h = 1
	}
	if _, err := fmt.Fprintf(rep.out, "%s --> %s %d\n", la, pa, h); err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}

// Summary writes the hit rate line. The rate is a percentage.
func (rep *Report) Summary(rate float64) error {
	if _, err := fmt.Fprintf(rep.out, "TLB hit rate: %s%%\n", FormatRate(rate)); err != nil {
		return curated.Errorf(WriteError, err)
	}
	return nil
}

// FormatRate formats a percentage with at most six significant digits and
// without trailing zeros. For example, 43.75, 33.3333 and 100.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'g', 6, 64)
}
