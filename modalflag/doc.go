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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Most notably, the parsing of the command line is done in
// layers. For example:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Printf("* error: %v\n", err)
//		return
//	}
//
// After the call to Parse(), Mode() returns the selected sub-mode. The caller
// then prepares the next layer with NewMode(), adds the flags for that mode and
// calls Parse() again:
//
//	md.NewMode()
//	seed := md.AddUint("seed", 47261, "seed for the generated workload")
//	p, err = md.Parse()
//
// The first sub-mode given to AddSubModes() is the default. It is selected if
// the next argument is not one of the listed sub-modes, or if the arguments
// contain a flag that the current layer does not recognise. In that case the
// arguments are carried over to the next layer.
//
// Help is handled automatically. If -help or -h is given, a help message
// listing the flags and sub-modes of the current layer is printed to the
// Output field and Parse() returns ParseHelp.
package modalflag
