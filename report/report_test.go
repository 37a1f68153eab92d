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

package report_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/mmusim/curated"
	"github.com/jetsetilly/mmusim/hardware/mmu/addresses"
	"github.com/jetsetilly/mmusim/report"
	"github.com/jetsetilly/mmusim/test"
)

func TestAccess(t *testing.T) {
	w := &test.CompareWriter{}
	rep := report.NewReport(w)

	test.ExpectSuccess(t, rep.Access(addresses.NewLogical(0b00101010), addresses.Compose(99, 2), false))
	test.ExpectSuccess(t, rep.Access(addresses.NewLogical(0b00101010), addresses.Compose(99, 2), true))
	test.ExpectEquality(t, w.String(), "00101010 --> 0000001100011010 0\n00101010 --> 0000001100011010 1\n")
}

func TestSummary(t *testing.T) {
	w := &test.CompareWriter{}
	rep := report.NewReport(w)

	test.ExpectSuccess(t, rep.Summary(43.75))
	test.ExpectEquality(t, w.String(), "TLB hit rate: 43.75%\n")

	w.Clear()
	test.ExpectSuccess(t, rep.Summary(0))
	test.ExpectEquality(t, w.String(), "TLB hit rate: 0%\n")
}

func TestFormatRate(t *testing.T) {
	test.ExpectEquality(t, report.FormatRate(100), "100")
	test.ExpectEquality(t, report.FormatRate(0), "0")
	test.ExpectEquality(t, report.FormatRate(100.0/3.0), "33.3333")
	test.ExpectEquality(t, report.FormatRate(200.0/3.0), "66.6667")
	test.ExpectEquality(t, report.FormatRate(1367.0*100/1507), "90.71")
	test.ExpectEquality(t, report.FormatRate(12.5), "12.5")
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestWriteError(t *testing.T) {
	rep := report.NewReport(failingWriter{})
	test.ExpectSuccess(t, curated.Is(rep.Access(0, 0, false), report.WriteError))
	test.ExpectSuccess(t, curated.Is(rep.Summary(0), report.WriteError))
}
