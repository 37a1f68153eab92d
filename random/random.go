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

package random

// the generator is the additive feedback generator x[i] = x[i-3] + x[i-31]
// with a state of 31 words. the separation between the front and rear
// pointers is 3
const (
	degree     = 31
	separation = 3

	// number of values discarded after seeding
	discard = degree * 10
)

// RandMax is the largest value returned by Rand().
const RandMax = 0x7fffffff

// Random is a pseudo-random number generator. The same seed always produces
// the same sequence, on every platform.
//
// The zero value is not usable. Use NewRandom() to create a Random instance.
type Random struct {
	state [degree]uint32

	// front and rear indexes into state
	front int
	rear  int
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed uint32) *Random {
	rnd := &Random{}
	rnd.Seed(seed)
	return rnd
}

// Seed resets the generator. A seed of zero is treated as a seed of one.
func (rnd *Random) Seed(seed uint32) {
	if seed == 0 {
		seed = 1
	}

	rnd.state[0] = seed

	// state[i] = (16807 * state[i-1]) % 2147483647 computed with Schrage's
	// method so that the intermediate values stay within 32 bits. the
	// arithmetic is on a signed word
	word := int32(seed)
	for i := 1; i < degree; i++ {
		hi := int64(word) / 127773
		lo := int64(word) % 127773
		word = int32(16807*lo - 2836*hi)
		if word < 0 {
			word += 2147483647
		}
		rnd.state[i] = uint32(word)
	}

	rnd.front = separation
	rnd.rear = 0

	for i := 0; i < discard; i++ {
		rnd.next()
	}
}

func (rnd *Random) next() uint32 {
	rnd.state[rnd.front] += rnd.state[rnd.rear]
	v := rnd.state[rnd.front] >> 1

	rnd.front++
	if rnd.front >= degree {
		rnd.front = 0
		rnd.rear++
	} else {
		rnd.rear++
		if rnd.rear >= degree {
			rnd.rear = 0
		}
	}

	return v
}

// Rand returns a number in the range 0 to RandMax inclusive.
func (rnd *Random) Rand() int {
	return int(rnd.next())
}

// Intn returns Rand() modulo n. Note that this is not uniformly distributed
// for values of n that are not a power of two. It panics if n <= 0.
func (rnd *Random) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	return rnd.Rand() % n
}
