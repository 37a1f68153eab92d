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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mmusim/curated"
	"github.com/jetsetilly/mmusim/hardware/mmu"
	"github.com/jetsetilly/mmusim/logger"
	"github.com/jetsetilly/mmusim/report"
	"github.com/jetsetilly/mmusim/workload"
)

// PerformanceError is the pattern for all errors returned by this package.
const PerformanceError = "performance: %v"

// the number of translations between checks of the timer. checking the timer
// channel is relatively expensive compared to a translation
const performanceBrake = 1024

// names of the profile files created by Check()
const (
	cpuProfile = "performance.cpu.profile"
	memProfile = "performance.mem.profile"
)

// Check the performance of the MMU using the generated workload for the
// supplied seed. Translation runs for the specified duration, repeating the
// workload as often as required. The TLB is reset at the start of each pass.
//
// If profile is true then a CPU and memory profile are written to the current
// directory.
func Check(output io.Writer, profile bool, duration time.Duration, seed uint32) error {
	if duration <= 0 {
		return curated.Errorf(PerformanceError, fmt.Sprintf("duration must be positive (%v)", duration))
	}

	wl, err := workload.Generate(seed)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}
	if len(wl.Accesses) == 0 {
		return curated.Errorf(PerformanceError, "workload is empty")
	}

	// logging every translation would swamp the measurement
	m := mmu.NewMMU(logger.Deny, wl.PageTable)

	var numTranslations int
	var hits int

	runner := func() error {
		timesUp := make(chan bool, 1)
		time.AfterFunc(duration, func() {
			timesUp <- true
		})

		brake := 0
		for {
			for _, la := range wl.Accesses {
				_, _ = m.Translate(la)

				brake++
				if brake >= performanceBrake {
					brake = 0
					select {
					case <-timesUp:
						numTranslations += m.Accesses()
						hits += m.Hits()
						return nil
					default:
					}
				}
			}

			numTranslations += m.Accesses()
			hits += m.Hits()
			m.Reset()
		}
	}

	if profile {
		err = ProfileCPU(cpuProfile, runner)
	} else {
		err = runner()
	}
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	rate := CalcRate(numTranslations, duration.Seconds())
	hitRate := float64(hits) * 100 / float64(numTranslations)
	output.Write([]byte(fmt.Sprintf("%.0f translations/sec (%d translations in %.2f seconds) TLB hit rate %s%%\n",
		rate, numTranslations, duration.Seconds(), report.FormatRate(hitRate))))

	logger.Logf(logger.Allow, "performance", "%d translations in %v", numTranslations, duration)

	if profile {
		return ProfileMem(memProfile)
	}

	return nil
}

// CalcRate takes the number of translations and duration (in seconds) and
// returns the translations-per-second.
func CalcRate(numTranslations int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numTranslations) / duration
}
