package seed

import (
	"errors"
	"log"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/tribit/cpu"
	"github.com/ezrec/tribit/internal"
	"github.com/ezrec/tribit/io"
)

// MAX_DIGITS is the longest program whose seed can fit a 64-bit register.
// A 22 digit seed fits when its leading octal digit is 0 or 1.
const MAX_DIGITS = 22

// Config controls a search.
type Config struct {
	TickLimit int  // Tick limit of each run; cpu.DEFAULT_TICK_LIMIT if 0.
	MaxDigits int  // Longest program searched; MAX_DIGITS if 0 or larger.
	Parallel  bool // Search the leading octal digits concurrently.
	Verbose   bool // Log each accepted digit.
}

// Searcher finds the self-reproducing seed of a program.
type Searcher struct {
	Config
	Program *cpu.Program
}

// NewSearcher creates a searcher for a program.
func NewSearcher(prog *cpu.Program, config Config) (s *Searcher) {
	s = &Searcher{
		Config:  config,
		Program: prog,
	}

	return
}

// Find returns the smallest seed for a program, using the default Config.
func Find(prog *cpu.Program) (seed uint64, ok bool, err error) {
	return NewSearcher(prog, Config{}).Find()
}

// maxDigits returns the effective search depth.
func (s *Searcher) maxDigits() int {
	if s.MaxDigits <= 0 || s.MaxDigits > MAX_DIGITS {
		return MAX_DIGITS
	}
	return s.MaxDigits
}

// newCpu creates a CPU for a single search worker.
func (s *Searcher) newCpu() (cp *cpu.Cpu) {
	cp = cpu.NewCpu(s.Program)
	cp.TickLimit = s.TickLimit

	return
}

// Find returns the smallest seed which, loaded into A with B and C zero,
// makes the program output its own cells. ok is false if no seed exists.
func (s *Searcher) Find() (seed uint64, ok bool, err error) {
	if s.Program.Len() == 0 {
		// Nothing to print, and nothing is printed.
		ok = true
		return
	}

	if s.Program.Len() > s.maxDigits() {
		err = ErrSearchDepth
		return
	}

	err = CheckStructure(s.Program)
	if err != nil {
		return
	}

	want := s.Program.Cells()
	slices.Reverse(want)

	if s.Parallel {
		seed, ok, err = s.findParallel(want)
	} else {
		seed, ok, err = s.dfs(s.newCpu(), want, 0)
	}

	if s.Verbose {
		switch {
		case err != nil:
			log.Printf("seed: %v", err)
		case ok:
			log.Printf("seed: found %d (%v)", seed, internal.JoinDigits(internal.Octal(seed)))
		default:
			log.Printf("seed: none")
		}
	}

	return
}

// result is the outcome of the search under one leading digit.
type result struct {
	seed uint64
	ok   bool
	err  error
}

// first returns the outcome the sequential search would report: the first
// leading digit, in ascending order, that either fails or succeeds.
func first(results []result) (seed uint64, ok bool, err error) {
	for _, r := range results {
		if r.err != nil {
			return 0, false, r.err
		}
		if r.ok {
			return r.seed, true, nil
		}
	}

	return
}

// findParallel runs each leading digit in its own goroutine.
func (s *Searcher) findParallel(want []uint8) (seed uint64, ok bool, err error) {
	var results [8]result
	var g errgroup.Group
	for d := range uint64(8) {
		g.Go(func() error {
			var r result
			r.seed, r.ok, r.err = s.try(s.newCpu(), want, d)
			results[d] = r
			return nil
		})
	}

	_ = g.Wait()

	return first(results[:])
}

// dfs extends magic by one octal digit per remaining wanted digit,
// trying digits in ascending order.
func (s *Searcher) dfs(cp *cpu.Cpu, want []uint8, magic uint64) (seed uint64, ok bool, err error) {
	if len(want) == 0 {
		ok, err = s.Verify(magic)
		if ok {
			seed = magic
		}
		return
	}

	// Another digit would overflow A.
	if magic > math.MaxUint64>>3 {
		return
	}

	for d := range uint64(8) {
		seed, ok, err = s.try(cp, want, magic<<3|d)
		if err != nil || ok {
			return
		}
	}

	return
}

// try accepts a candidate if its loop iteration emits the next wanted
// digit, and continues the search from it.
func (s *Searcher) try(cp *cpu.Cpu, want []uint8, test uint64) (seed uint64, ok bool, err error) {
	// A is nonzero at the start of every pass that loops.
	if test == 0 {
		return
	}

	match, err := s.oracle(cp, test, want[0])
	if err != nil || !match {
		return
	}

	if s.Verbose {
		log.Printf("seed: %d digits left, a=%#o emits %d", len(want)-1, test, want[0])
	}

	return s.dfs(cp, want[1:], test)
}

// oracle runs one loop iteration from A=test, and reports whether it
// emits the wanted digit.
func (s *Searcher) oracle(cp *cpu.Cpu, test uint64, want uint8) (match bool, err error) {
	cp.Channel = nil
	cp.Reset(test, 0, 0)

	digit, reduced, ok, err := cp.RunIteration()
	if errors.Is(err, cpu.ErrTickLimit) {
		err = nil
		return
	}
	if err != nil || !ok {
		return
	}

	if reduced != test>>3 {
		err = &ErrStructure{Reason: f("pass from a=%#o left a=%#o", test, reduced)}
		return
	}

	match = digit == want

	return
}

// Verify runs the full program from A=seed and checks that it prints the
// program's own cells. The run is abandoned at the first wrong digit.
func (s *Searcher) Verify(seed uint64) (ok bool, err error) {
	match := &io.Match{Expect: s.Program.Cells()}

	cp := s.newCpu()
	cp.Channel = match
	cp.Reset(seed, 0, 0)

	_, err = cp.Run()
	var mismatch *io.ErrMismatch
	if errors.As(err, &mismatch) || errors.Is(err, cpu.ErrTickLimit) {
		if s.Verbose {
			log.Printf("seed: %d rejected: %v", seed, err)
		}
		err = nil
		return
	}
	if err != nil {
		return
	}

	ok = match.Complete()

	return
}
