package config

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetNormalizes(t *testing.T) {
	previous := Set(Config{Workers: 3, MergeCutoff: 17})
	defer Set(previous)

	c := Default()
	if c.Workers != 3 {
		t.Errorf("Workers = %v, want 3", c.Workers)
	}
	if c.MergeCutoff != 17 {
		t.Errorf("MergeCutoff = %v, want 17", c.MergeCutoff)
	}
	env := FromEnv()
	if c.SortCutoff != env.SortCutoff || c.Slack != env.Slack || c.MinGrain != env.MinGrain {
		t.Errorf("unset fields were not filled in from the environment: %+v", c)
	}
}

func TestGrainFor(t *testing.T) {
	c := Config{MinGrain: 64}
	if g := c.GrainFor(1 << 20); g != 64 {
		t.Errorf("GrainFor(huge element) = %v, want MinGrain", g)
	}
	if g := c.GrainFor(0); g < 64 {
		t.Errorf("GrainFor(0) = %v, below MinGrain", g)
	}
	if small, large := c.GrainFor(1), c.GrainFor(8); small < large {
		t.Errorf("smaller elements should not get a smaller grain: %v < %v", small, large)
	}
}

func TestLogger(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)
	Logger().Debug("fallback", "reason", "test")
	if !strings.Contains(buf.String(), "reason=test") {
		t.Errorf("logger did not receive the record: %q", buf.String())
	}
}
