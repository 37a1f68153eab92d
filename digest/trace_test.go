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

package digest_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/jetsetilly/mmusim/digest"
	"github.com/jetsetilly/mmusim/test"
)

func TestTrace(t *testing.T) {
	var dig digest.Digest
	tr := digest.NewTrace()
	dig = tr

	// sha1 of nothing
	test.ExpectEquality(t, dig.Hash(), "da39a3ee5e6b4b0d3255bfef95601890afd80709")

	_, err := io.WriteString(tr, "abc")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dig.Hash(), "a9993e364706816aba3e25717850c26c9cd0d89d")

	// writing in pieces gives the same hash as writing in one go
	tr.ResetDigest()
	fmt.Fprint(tr, "a")
	fmt.Fprint(tr, "bc")
	test.ExpectEquality(t, dig.Hash(), "a9993e364706816aba3e25717850c26c9cd0d89d")
	test.ExpectEquality(t, tr.String(), "a9993e364706816aba3e25717850c26c9cd0d89d (3 bytes)")

	tr.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), "da39a3ee5e6b4b0d3255bfef95601890afd80709")
}
