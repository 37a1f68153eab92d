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

package digest

import (
	"crypto/sha1"
	"fmt"
	"hash"
)

// Trace is an implementation of io.Writer that generates a sha1 value of
// everything written to it. It is intended to sit alongside the real output of
// a run, by way of io.MultiWriter.
//
// Note that the use of sha1 is fine for this application because this is not a
// cryptographic task.
type Trace struct {
	hash  hash.Hash
	count int
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	return &Trace{hash: sha1.New()}
}

func (dig *Trace) String() string {
	return fmt.Sprintf("%s (%d bytes)", dig.Hash(), dig.count)
}

// Hash implements the digest.Digest interface.
func (dig *Trace) Hash() string {
	return fmt.Sprintf("%x", dig.hash.Sum(nil))
}

// ResetDigest implements the digest.Digest interface.
func (dig *Trace) ResetDigest() {
	dig.hash.Reset()
	dig.count = 0
}

// Write implements the io.Writer interface.
func (dig *Trace) Write(p []byte) (int, error) {
	n, err := dig.hash.Write(p)
	dig.count += n
	return n, err
}
