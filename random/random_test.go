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

package random_test

import (
	"testing"

	"github.com/jetsetilly/mmusim/random"
	"github.com/jetsetilly/mmusim/test"
)

// the first values returned by rand() in the GNU C library after srand(1)
func TestReferenceSequence(t *testing.T) {
	expected := []int{1804289383, 846930886, 1681692777, 1714636915, 1957747793, 424238335, 719885386, 1649760492}

	rnd := random.NewRandom(1)
	for i, v := range expected {
		test.ExpectEquality(t, rnd.Rand(), v, i)
	}
}

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom(0)
	b := random.NewRandom(1)
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, a.Rand(), b.Rand(), i)
	}
}

func TestReseed(t *testing.T) {
	a := random.NewRandom(47261)
	first := make([]int, 64)
	for i := range first {
		first[i] = a.Rand()
	}

	a.Seed(47261)
	for i := range first {
		test.ExpectEquality(t, a.Rand(), first[i], i)
	}
}

func TestRange(t *testing.T) {
	rnd := random.NewRandom(47261)
	for i := 0; i < 10000; i++ {
		v := rnd.Rand()
		test.ExpectSuccess(t, v >= 0 && v <= random.RandMax, i)

		n := rnd.Intn(20)
		test.ExpectSuccess(t, n >= 0 && n < 20, i)
	}
}
