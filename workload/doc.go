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

// Package workload supplies the page table and the stream of logical addresses
// for a simulation run.
//
// Generate() creates both from fixed formulas and a seeded random number
// generator. The random package reproduces the GNU C library generator, so the
// workload for a seed can be reproduced by a C program using srand() and
// rand() on a glibc platform.
//
// Read() takes the page table and the addresses from an io.Reader. Malformed
// input is an error, identified by one of the patterns declared in this
// package, and the run should not continue.
package workload
