// Package policy describes which execution modes an algorithm invocation
// allows, and selects the strategy a pattern runs with.
//
// A Policy is an immutable value. The four predefined policies Seq, Unseq,
// Par and ParUnseq mirror the standard execution policies. The With* methods
// return modified copies that carry a specific executor, scratch memory
// provider or offload backend.
package policy

import (
	"fmt"

	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/executor"
	"github.com/exascience/pstl/storage"
)

// Category describes what kind of positional access a sequence offers.
type Category int

const (
	// Forward sequences can only be traversed once, front to back, such as
	// an iter.Seq.
	Forward Category = iota
	// Bidirectional sequences can be traversed in both directions, such as
	// a linked list.
	Bidirectional
	// RandomAccess sequences offer constant-time positional access, such as
	// a slice.
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return "unknown"
	}
}

// Strategy is one of the four code paths a pattern can take.
type Strategy int

const (
	// Serial runs the serial brick in the calling goroutine.
	Serial Strategy = iota
	// Vectorized runs the vectorized brick in the calling goroutine.
	Vectorized
	// Parallel runs serial bricks on subranges via a scheduling primitive.
	Parallel
	// ParallelVectorized runs vectorized bricks on subranges via a
	// scheduling primitive.
	ParallelVectorized
)

// Vector reports whether the strategy uses vectorized bricks.
func (s Strategy) Vector() bool {
	return s == Vectorized || s == ParallelVectorized
}

// Parallel reports whether the strategy splits work across the executor.
func (s Strategy) Parallel() bool {
	return s == Parallel || s == ParallelVectorized
}

// Serial returns the strategy with parallelism removed.
func (s Strategy) Serial() Strategy {
	if s.Vector() {
		return Vectorized
	}
	return Serial
}

func (s Strategy) String() string {
	switch s {
	case Serial:
		return "serial"
	case Vectorized:
		return "vectorized"
	case Parallel:
		return "parallel"
	case ParallelVectorized:
		return "parallel-vectorized"
	default:
		return "unknown"
	}
}

// Policy carries the capability flags of an algorithm invocation together
// with the collaborators the patterns use.
type Policy struct {
	unseq, par bool
	grain      int
	exec       executor.Executor
	store      storage.Provider
	offload    executor.Offload
}

var (
	// Seq allows neither vectorization nor parallelism.
	Seq = Policy{}
	// Unseq allows vectorization only.
	Unseq = Policy{unseq: true}
	// Par allows parallelism only.
	Par = Policy{par: true}
	// ParUnseq allows both vectorization and parallelism.
	ParUnseq = Policy{unseq: true, par: true}
)

// All lists the four predefined policies, from least to most permissive.
var All = []Policy{Seq, Unseq, Par, ParUnseq}

// Parse returns the predefined policy with the given name, as returned by
// String.
func Parse(name string) (Policy, error) {
	for _, p := range All {
		if p.String() == name {
			return p, nil
		}
	}
	return Seq, fmt.Errorf("unknown policy %q", name)
}

func (p Policy) String() string {
	switch {
	case p.unseq && p.par:
		return "par_unseq"
	case p.par:
		return "par"
	case p.unseq:
		return "unseq"
	default:
		return "seq"
	}
}

// AllowsVector reports whether the policy permits unsequenced execution.
func (p Policy) AllowsVector() bool {
	return p.unseq
}

// AllowsParallel reports whether the policy permits parallel execution.
func (p Policy) AllowsParallel() bool {
	return p.par
}

func allRandomAccess(cats []Category) bool {
	for _, c := range cats {
		if c != RandomAccess {
			return false
		}
	}
	return true
}

// PreferVector reports whether a pattern over sequences of the given
// categories should use vectorized bricks. That requires the policy to
// permit unsequenced execution, vectorization not to be disabled in the
// configuration, and every sequence to be random-access.
func (p Policy) PreferVector(cats ...Category) bool {
	return p.unseq && !config.Default().NoSIMD && allRandomAccess(cats)
}

// PreferParallel reports whether a pattern over sequences of the given
// categories should split work across the executor. That requires the
// policy to permit parallel execution and every sequence to be
// random-access.
func (p Policy) PreferParallel(cats ...Category) bool {
	return p.par && allRandomAccess(cats)
}

// Select returns the strategy for a pattern over sequences of the given
// categories.
func (p Policy) Select(cats ...Category) Strategy {
	vector := p.PreferVector(cats...)
	switch {
	case p.PreferParallel(cats...) && vector:
		return ParallelVectorized
	case p.PreferParallel(cats...):
		return Parallel
	case vector:
		return Vectorized
	default:
		return Serial
	}
}

// Executor returns the executor the policy schedules parallel work on. It
// defaults to executor.Default().
func (p Policy) Executor() executor.Executor {
	if p.exec == nil {
		return executor.Default()
	}
	return p.exec
}

// Storage returns the scratch memory provider. It defaults to
// storage.Default().
func (p Policy) Storage() storage.Provider {
	if p.store == nil {
		return storage.Default()
	}
	return p.store
}

// Offload returns the offload backend, or nil if work runs on the host.
func (p Policy) Offload() executor.Offload {
	return p.offload
}

// Grain returns the leaf size set with WithGrain, or 0 if patterns choose
// their own.
func (p Policy) Grain() int {
	return p.grain
}

// WithGrain returns a copy of the policy whose parallel loops hand at most
// grain elements to each brick invocation. A grain of 0 or less lets every
// pattern choose a leaf size that fits the element type into the L1 cache,
// which is too coarse when the work per element is large.
func (p Policy) WithGrain(grain int) Policy {
	if grain < 0 {
		grain = 0
	}
	p.grain = grain
	return p
}

// WithExecutor returns a copy of the policy that schedules on ex. A nil
// executor restores the default.
func (p Policy) WithExecutor(ex executor.Executor) Policy {
	p.exec = ex
	return p
}

// WithStorage returns a copy of the policy that borrows scratch memory from
// provider. A nil provider restores the default.
func (p Policy) WithStorage(provider storage.Provider) Policy {
	p.store = provider
	return p
}

// WithOffload returns a copy of the policy whose element-wise patterns are
// delegated entirely to backend. A nil backend keeps work on the host.
func (p Policy) WithOffload(backend executor.Offload) Policy {
	p.offload = backend
	return p
}
