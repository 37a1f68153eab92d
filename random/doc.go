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

// Package random should be used in preference to the math/rand package when a
// random number is required by the workload generator.
//
// The sequence of numbers produced for a seed is the same as the sequence
// produced by srand() and rand() in the GNU C library. This means that a
// generated workload can be compared with a reference trace produced by a C
// or C++ program built on a glibc platform. The math/rand package makes no
// such guarantee; its sequences are specific to the Go implementation and
// have changed between releases.
package random
