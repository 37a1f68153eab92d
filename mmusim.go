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

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/jetsetilly/mmusim/digest"
	"github.com/jetsetilly/mmusim/hardware/mmu"
	"github.com/jetsetilly/mmusim/logger"
	"github.com/jetsetilly/mmusim/modalflag"
	"github.com/jetsetilly/mmusim/performance"
	"github.com/jetsetilly/mmusim/report"
	"github.com/jetsetilly/mmusim/statsview"
	"github.com/jetsetilly/mmusim/version"
	"github.com/jetsetilly/mmusim/workload"
)

// exit values returned by launch()
const (
	exitSuccess  = 0
	exitCmdLine  = 10
	exitModeFail = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// launch parses the command line and runs the selected mode. the return value
// is suitable for os.Exit()
func launch(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitCmdLine
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, stdin, stdout, stderr)

	case "PERFORMANCE":
		err = perform(md, stdout, stderr)

	case "VERSION":
		fmt.Fprintln(stdout, version.String())
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		return exitModeFail
	}

	return exitSuccess
}

// the options for RUN mode. the zero value with the seed set to
// workload.DefaultSeed is the generated mode
type runOptions struct {
	interactive bool
	file        string
	seed        uint
	log         bool
	summary     bool
	digest      bool
	memviz      string
	statsview   bool
}

func run(md *modalflag.Modes, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()

	interactive := md.AddBool("i", false, "read page table and addresses from stdin")
	file := md.AddString("file", "", "read page table and addresses from file (implies -i)")
	seed := md.AddUint("seed", workload.DefaultSeed, "seed for the generated workload")
	log := md.AddBool("log", false, "echo log to stderr")
	summary := md.AddBool("summary", false, "print page table to stderr before translating")
	dig := md.AddBool("digest", false, "print sha1 digest of the output to stderr")
	memvizFile := md.AddString("memviz", "", "write graphviz representation of the MMU to file")
	stats := md.AddBool("statsview", false, "run stats server (statsview builds only)")

	md.AdditionalHelp("Arguments that are not recognised select the generated workload unless\nthey follow -i or -file.")

	opts := runOptions{seed: workload.DefaultSeed}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil

	case modalflag.ParseError:
		// flags before the unrecognised argument have been parsed. the
		// workload source is honoured but everything else is left at the
		// default
		opts.interactive = *interactive
		opts.file = *file
		if opts.interactive || opts.file != "" {
			logger.Logf(logger.Allow, "mmusim", "%v: ignoring remaining arguments", err)
		} else {
			logger.Logf(logger.Allow, "mmusim", "%v: using generated workload", err)
		}

	default:
		opts = runOptions{
			interactive: *interactive,
			file:        *file,
			seed:        *seed,
			log:         *log,
			summary:     *summary,
			digest:      *dig,
			memviz:      *memvizFile,
			statsview:   *stats,
		}
		if len(md.RemainingArgs()) > 0 {
			logger.Logf(logger.Allow, "mmusim", "ignoring arguments: %v", md.RemainingArgs())
		}
	}

	return runWithOptions(opts, stdin, stdout, stderr)
}

func runWithOptions(opts runOptions, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	if opts.log {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	} else {
		logger.SetEcho(nil)
	}

	if opts.statsview {
		if statsview.Available() {
			statsview.Launch(stderr)
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	wl, err := loadWorkload(opts, stdin, stderr)
	if err != nil {
		return err
	}

	if opts.summary {
		io.WriteString(stderr, wl.PageTable.Summary())
	}

	m := mmu.NewMMU(logger.Allow, wl.PageTable)

	out := stdout
	var trace *digest.Trace
	if opts.digest {
		trace = digest.NewTrace()
		out = io.MultiWriter(stdout, trace)
	}

	rep := report.NewReport(out)
	for _, la := range wl.Accesses {
		pa, hit := m.Translate(la)
		err = rep.Access(la, pa, hit)
		if err != nil {
			return err
		}
	}

	err = rep.Summary(m.HitRate())
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "mmusim", "%d translations, %d TLB hits", m.Accesses(), m.Hits())

	if trace != nil {
		fmt.Fprintf(stderr, "%s\n", trace.Hash())
	}

	if opts.memviz != "" {
		f, err := os.Create(opts.memviz)
		if err != nil {
			return err
		}
		err = m.Visualise(f)
		if err != nil {
			f.Close()
			return err
		}
		err = f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

// loadWorkload from the source indicated by the options
func loadWorkload(opts runOptions, stdin io.Reader, stderr io.Writer) (*workload.Workload, error) {
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return workload.Read(f, nil)
	}

	if opts.interactive {
		// prompts are only useful if someone is typing the input
		var prompt io.Writer
		if f, ok := stdin.(*os.File); ok && workload.IsTerminal(f) {
			prompt = stderr
		}
		return workload.Read(stdin, prompt)
	}

	if opts.seed > math.MaxUint32 {
		return nil, fmt.Errorf("seed too large (%d)", opts.seed)
	}
	return workload.Generate(uint32(opts.seed))
}

func perform(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	seed := md.AddUint("seed", workload.DefaultSeed, "seed for the generated workload")
	stats := md.AddBool("statsview", false, "run stats server (statsview builds only)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *seed > math.MaxUint32 {
		return fmt.Errorf("seed too large (%d)", *seed)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(stderr)
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	return performance.Check(stdout, *profile, *duration, uint32(*seed))
}
