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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/mmusim/curated"
	"github.com/jetsetilly/mmusim/performance"
	"github.com/jetsetilly/mmusim/test"
	"github.com/jetsetilly/mmusim/workload"
)

func TestCalcRate(t *testing.T) {
	test.ExpectEquality(t, performance.CalcRate(1000, 2), 500.0)
	test.ExpectEquality(t, performance.CalcRate(1000, 0), 0.0)
}

func TestCheck(t *testing.T) {
	w := &test.CompareWriter{}
	err := performance.Check(w, false, 50*time.Millisecond, workload.DefaultSeed)
	test.DemandSuccess(t, err)

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 1)
	test.ExpectSuccess(t, strings.Contains(lines[0], "translations/sec"))
	test.ExpectSuccess(t, strings.Contains(lines[0], "TLB hit rate"))
}

func TestCheckDuration(t *testing.T) {
	err := performance.Check(&test.CompareWriter{}, false, 0, workload.DefaultSeed)
	test.ExpectSuccess(t, curated.Is(err, performance.PerformanceError))
}

func TestProfiling(t *testing.T) {
	dir := t.TempDir()

	cpu := filepath.Join(dir, "cpu.profile")
	var ran bool
	err := performance.ProfileCPU(cpu, func() error {
		ran = true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ran)

	mem := filepath.Join(dir, "mem.profile")
	test.DemandSuccess(t, performance.ProfileMem(mem))

	for _, fn := range []string{cpu, mem} {
		_, err := os.Stat(fn)
		test.ExpectSuccess(t, err, fn)
	}

	err = performance.ProfileMem(filepath.Join(dir, "missing", "mem.profile"))
	test.ExpectSuccess(t, curated.Is(err, performance.PerformanceError))
}
