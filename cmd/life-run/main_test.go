package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunBlinker(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-steps", "2", "-pattern", "blinker", "-set", "extent=5", "-set", "cell_size=1", "-workers", "2"}
	if err := run(context.Background(), args, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "5x5 B3/S23, 2 generations\n" +
		"gen 1 pop 3\n" +
		"gen 2 pop 3\n" +
		".....\n" +
		".....\n" +
		".OOO.\n" +
		".....\n" +
		".....\n\n"
	if out.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunRealtimeStopsAfterSteps(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-steps", "3", "-realtime", "-set", "rate=60", "-set", "extent=16", "-set", "cell_size=2", "-set", "rule=seeds"}
	if err := run(context.Background(), args, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(out.String(), "gen "); n != 3 {
		t.Fatalf("%d generation lines, want 3:\n%s", n, out.String())
	}
	if !strings.HasPrefix(out.String(), "8x8 B2/S,") {
		t.Fatalf("unexpected header: %q", out.String())
	}
}

func TestRunRejectsUnknownPattern(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-pattern", "spaceship"}, &out); err == nil {
		t.Fatal("expected an error for an unknown pattern")
	}
}

func TestRunRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := run(ctx, []string{"-steps", "5", "-set", "extent=10", "-set", "cell_size=1"}, &out); err == nil {
		t.Fatal("expected context error")
	}
}
