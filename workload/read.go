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

package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/jetsetilly/mmusim/curated"
	"github.com/jetsetilly/mmusim/hardware/mmu/addresses"
	"github.com/jetsetilly/mmusim/hardware/mmu/pagetable"
	"github.com/jetsetilly/mmusim/logger"
)

// Sentinal error patterns returned by Read().
const (
	MalformedNumber  = "workload: malformed number for %s (%s)"
	MalformedAddress = "workload: malformed logical address %d: %v"
	NegativeCount    = "workload: negative number of accesses (%d)"
	TruncatedInput   = "workload: input ended while reading %s"
	ReadError        = "workload: %v"
)

const maxPrealloc = 4096

// scanner reads whitespace separated tokens.
type scanner struct {
	scn    *bufio.Scanner
	prompt io.Writer
}

func (s *scanner) token(expecting string) (string, error) {
	if !s.scn.Scan() {
		if err := s.scn.Err(); err != nil {
			return "", curated.Errorf(ReadError, err)
		}
		return "", curated.Errorf(TruncatedInput, expecting)
	}
	return s.scn.Text(), nil
}

func (s *scanner) number(expecting string) (int, error) {
	t, err := s.token(expecting)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(t)
	if err != nil {
		return 0, curated.Errorf(MalformedNumber, expecting, t)
	}
	return v, nil
}

func (s *scanner) say(msg string, args ...any) {
	if s.prompt != nil {
		fmt.Fprintf(s.prompt, msg, args...)
	}
}

// Read a workload. The input is a series of whitespace separated tokens:
//
//   - addresses.PageTableSize frame numbers, one for each page in order
//   - the number of accesses that follow
//   - the logical addresses, each written as a string of binary digits
//
// For example, with the page table abbreviated:
//
//	342 1463 2058 ... 2543
//	3
//	00101010 00101011 11111111
//
// Frame numbers larger than the frame number field are masked to fit. Any
// tokens after the last access are ignored.
//
// If the prompt argument is not nil then a short message describing the
// expected input is written to it before each section of the input.
func Read(input io.Reader, prompt io.Writer) (*Workload, error) {
	s := &scanner{
		scn:    bufio.NewScanner(input),
		prompt: prompt,
	}
	s.scn.Split(bufio.ScanWords)

	s.say("enter %d frame numbers, one for each page\n", addresses.PageTableSize)

	frames := make([]addresses.FrameNumber, addresses.PageTableSize)
	for i := range frames {
		v, err := s.number(fmt.Sprintf("frame number of page %d", i))
		if err != nil {
			return nil, err
		}
		frames[i] = addresses.NewFrameNumber(v)
		if int(frames[i]) != v {
			logger.Logf(logger.Allow, "workload", "frame number of page %d masked from %d to %d", i, v, frames[i])
		}
	}

	pt, err := pagetable.NewPageTable(frames)
	if err != nil {
		return nil, curated.Errorf("workload: %v", err)
	}

	s.say("enter the number of accesses\n")

	n, err := s.number("number of accesses")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, curated.Errorf(NegativeCount, n)
	}

	s.say("enter %d logical addresses, as %d binary digits\n", n, addresses.LogicalBits)

	// the count comes from the input so it is not trusted for preallocation
	accesses := make([]addresses.Logical, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		t, err := s.token(fmt.Sprintf("logical address %d", i))
		if err != nil {
			return nil, err
		}
		la, err := addresses.ParseLogical(t)
		if err != nil {
			return nil, curated.Errorf(MalformedAddress, i, err)
		}
		accesses = append(accesses, la)
	}

	logger.Logf(logger.Allow, "workload", "read %d accesses", len(accesses))

	return &Workload{
		PageTable: pt,
		Accesses:  accesses,
	}, nil
}
