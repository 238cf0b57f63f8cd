package lanes

import (
	"testing"

	"github.com/exascience/pstl/config"
)

func TestOfBounds(t *testing.T) {
	type big struct{ a [256]byte }
	checks := map[string]int{
		"int8":    Of[int8](),
		"int64":   Of[int64](),
		"float32": Of[float32](),
		"big":     Of[big](),
		"empty":   Of[struct{}](),
	}
	for name, n := range checks {
		if n < Min || n > Max {
			t.Errorf("Of[%s]() = %v, outside [%v, %v]", name, n, Min, Max)
		}
	}
	if Of[int8]() < Of[int64]() {
		t.Error("narrow elements should not get fewer lanes than wide elements")
	}
}

func TestNoSIMD(t *testing.T) {
	previous := config.Set(config.Config{NoSIMD: true})
	defer config.Set(previous)
	if Current() != Scalar {
		t.Errorf("Current() = %v with SIMD disabled", Current())
	}
	if got := Of[int32](); got != Min {
		t.Errorf("Of[int32]() = %v with SIMD disabled, want %v", got, Min)
	}
}

func TestLevelString(t *testing.T) {
	for l := Scalar; l <= NEON; l++ {
		if l.String() == "unknown" {
			t.Errorf("level %d has no name", int(l))
		}
	}
	if Level(99).String() != "unknown" {
		t.Error("out of range level should be unknown")
	}
}
