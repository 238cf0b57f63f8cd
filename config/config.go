// Package config holds the tunables shared by the execution engine: the
// number of workers, the cutoffs below which patterns stop splitting, the
// scratch memory budget, and the SIMD switch.
//
// Defaults are computed once from the environment:
//
//	PSTL_NUM_WORKERS    number of workers (default runtime.GOMAXPROCS(0))
//	PSTL_SCRATCH_LIMIT  scratch memory budget in bytes (default 0, unlimited)
//	PSTL_NO_SIMD        disable vectorized bricks when set to a true value
package config

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/klauspost/cpuid/v2"
)

// Config describes how patterns split work and how much scratch memory they
// may use.
type Config struct {
	// Workers is the number of workers the default executor schedules on.
	Workers int

	// Slack is the number of strict-scan tiles per worker.
	Slack int

	// MergeCutoff is the combined input size below which merges run serially.
	MergeCutoff int

	// SortCutoff is the size below which sorts run serially.
	SortCutoff int

	// SetCutoff is the combined input size below which set operations run
	// serially.
	SetCutoff int

	// PartitionCutoff is the size below which nth_element stops partitioning
	// in parallel.
	PartitionCutoff int

	// MinGrain is the smallest subrange a parallel loop hands to a brick.
	MinGrain int

	// ScratchLimit bounds the scratch memory that may be outstanding at any
	// time, in bytes. Zero means unlimited.
	ScratchLimit int64

	// NoSIMD disables vectorized bricks.
	NoSIMD bool
}

const (
	defaultSlack           = 4
	defaultMergeCutoff     = 2000
	defaultSortCutoff      = 0x500
	defaultSetCutoff       = 1000
	defaultPartitionCutoff = 0x1000
	defaultMinGrain        = 256
	defaultL1DataCache     = 32 * 1024
)

var (
	current   atomic.Pointer[Config]
	envOnce   sync.Once
	envConfig Config
)

// FromEnv returns a configuration built from the compiled defaults and the
// PSTL_* environment variables.
func FromEnv() Config {
	envOnce.Do(func() {
		envConfig = Config{
			Workers:         runtime.GOMAXPROCS(0),
			Slack:           defaultSlack,
			MergeCutoff:     defaultMergeCutoff,
			SortCutoff:      defaultSortCutoff,
			SetCutoff:       defaultSetCutoff,
			PartitionCutoff: defaultPartitionCutoff,
			MinGrain:        defaultMinGrain,
		}
		if n, err := strconv.Atoi(os.Getenv("PSTL_NUM_WORKERS")); err == nil && n > 0 {
			envConfig.Workers = n
		}
		if n, err := strconv.ParseInt(os.Getenv("PSTL_SCRATCH_LIMIT"), 10, 64); err == nil && n >= 0 {
			envConfig.ScratchLimit = n
		}
		if val := os.Getenv("PSTL_NO_SIMD"); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				envConfig.NoSIMD = b
			} else {
				envConfig.NoSIMD = true
			}
		}
	})
	return envConfig
}

// Default returns the process-wide configuration.
func Default() Config {
	if c := current.Load(); c != nil {
		return *c
	}
	return FromEnv()
}

// Set replaces the process-wide configuration and returns the previous one.
// Fields that are not positive are filled in from FromEnv. The default
// executor and scratch memory provider pick up a changed Workers or
// ScratchLimit on their next use.
func Set(c Config) (previous Config) {
	previous = Default()
	c = c.normalize()
	current.Store(&c)
	return previous
}

func (c Config) normalize() Config {
	env := FromEnv()
	if c.Workers <= 0 {
		c.Workers = env.Workers
	}
	if c.Slack <= 0 {
		c.Slack = env.Slack
	}
	if c.MergeCutoff <= 0 {
		c.MergeCutoff = env.MergeCutoff
	}
	if c.SortCutoff <= 0 {
		c.SortCutoff = env.SortCutoff
	}
	if c.SetCutoff <= 0 {
		c.SetCutoff = env.SetCutoff
	}
	if c.PartitionCutoff <= 0 {
		c.PartitionCutoff = env.PartitionCutoff
	}
	if c.MinGrain <= 0 {
		c.MinGrain = env.MinGrain
	}
	if c.ScratchLimit < 0 {
		c.ScratchLimit = 0
	}
	return c
}

// L1DataCache returns the size of the level 1 data cache in bytes, or a
// conservative default if the processor does not report it.
func L1DataCache() int {
	if size := cpuid.CPU.Cache.L1D; size > 0 {
		return size
	}
	return defaultL1DataCache
}

// GrainFor returns the leaf size, in elements, that parallel loops use for
// elements of the given size: as many elements as fit into half of the L1
// data cache, but never fewer than MinGrain.
func (c Config) GrainFor(elemSize uintptr) int {
	if elemSize == 0 {
		elemSize = 1
	}
	grain := L1DataCache() / 2 / int(elemSize)
	if grain < c.MinGrain {
		grain = c.MinGrain
	}
	return grain
}

// GrainFor is shorthand for Default().GrainFor(elemSize).
func GrainFor(elemSize uintptr) int {
	return Default().GrainFor(elemSize)
}

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// Logger returns the logger the engine reports fallbacks to. It discards
// everything unless SetLogger has been called.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger sets the logger the engine reports fallbacks to. A nil logger
// restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}
