// Package lanes reports how many elements of a type the vectorized bricks
// process per step.
//
// The vectorized bricks do not emit SIMD instructions themselves. They process
// fixed-size blocks with branch-free inner loops that the compiler can keep
// in registers, and size those blocks after the widest vector unit the
// processor reports. Setting PSTL_NO_SIMD (see package config) falls back to
// the width of a scalar block.
package lanes

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"github.com/exascience/pstl/config"
)

// Level is the widest vector instruction set detected on this processor.
type Level int

const (
	// Scalar means no usable vector unit, or vectorization is disabled.
	Scalar Level = iota
	// SSE2 is the x86-64 baseline (128 bits).
	SSE2
	// AVX2 provides 256-bit vectors.
	AVX2
	// AVX512 provides 512-bit vectors.
	AVX512
	// NEON is ARM Advanced SIMD (128 bits).
	NEON
)

func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the vector register width of the level in bytes.
func (l Level) Width() int {
	switch l {
	case AVX512:
		return 64
	case AVX2:
		return 32
	default:
		return 16
	}
}

// Max is the largest number of lanes a block ever has. Bricks size their
// stack-allocated masks with it.
const Max = 64

// Min is the smallest number of lanes a vectorized block has, so that very
// large element types still get blocked processing.
const Min = 4

var (
	detectOnce sync.Once
	detected   Level
)

func detect() Level {
	switch runtime.GOARCH {
	case "amd64", "386":
		switch {
		case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
			return AVX512
		case cpu.X86.HasAVX2:
			return AVX2
		case cpu.X86.HasSSE2:
			return SSE2
		}
	case "arm64":
		// ASIMD is mandatory in ARMv8, even if the kernel does not report it.
		return NEON
	}
	return Scalar
}

// Detected returns the level the processor supports, independent of
// configuration.
func Detected() Level {
	detectOnce.Do(func() {
		detected = detect()
	})
	return detected
}

// Current returns the level the vectorized bricks use: Scalar if SIMD is
// disabled in the configuration, Detected() otherwise.
func Current() Level {
	if config.Default().NoSIMD {
		return Scalar
	}
	return Detected()
}

// Of returns the number of lanes per block for element type T, between Min
// and Max.
func Of[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return Max
	}
	n := Current().Width() / size
	if n < Min {
		return Min
	}
	if n > Max {
		return Max
	}
	return n
}

// Describe returns a one-line summary of the processor and the selected
// vector level.
func Describe() string {
	return fmt.Sprintf("%s (%s, %d logical cores): %s, %d-byte vectors",
		cpuid.CPU.BrandName, cpuid.CPU.VendorString, cpuid.CPU.LogicalCores,
		Current(), Current().Width())
}
