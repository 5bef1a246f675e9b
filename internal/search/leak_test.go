//go:build leaktests
// +build leaktests

package search

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"testing"

	"go.uber.org/goleak"

	"github.com/standardbeagle/lks/internal/config"
)

// TestSearchDirectoryGoroutineLeak verifies that a full scan leaves no
// goroutines behind, for both aggregation disciplines. The channel
// aggregator in particular spawns a consumer goroutine that must exit
// once the final result has been taken.
func TestSearchDirectoryGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	for i := 0; i < 20; i++ {
		writeTestFile(t, dir, fmt.Sprintf("f%02d.txt", i), "needle in file")
	}

	for _, mode := range []string{config.AggregatorLock, config.AggregatorChannel} {
		cfg := config.Default()
		cfg.Project.Root = dir
		cfg.Performance.Workers = 4
		cfg.Performance.Aggregator = mode

		set, err := NewKeywordSet([]string{"needle"})
		if err != nil {
			t.Fatalf("failed to build keyword set: %v", err)
		}

		s := New(cfg, set, WithLogger(log.New(&bytes.Buffer{}, "", 0)))
		result, report := s.SearchDirectory(context.Background(), dir)

		if len(result.Files("needle")) != 20 {
			t.Fatalf("mode %s: expected 20 matches, got %d", mode, len(result.Files("needle")))
		}
		if report.Files != 20 {
			t.Fatalf("mode %s: expected 20 files processed, got %d", mode, report.Files)
		}
	}
}

// TestCancelledScanGoroutineLeak verifies that cancelling mid-run still
// joins every worker and the aggregator consumer.
func TestCancelledScanGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	for i := 0; i < 50; i++ {
		writeTestFile(t, dir, fmt.Sprintf("f%02d.txt", i), "needle in file")
	}

	cfg := config.Default()
	cfg.Project.Root = dir
	cfg.Performance.Workers = 8
	cfg.Performance.Aggregator = config.AggregatorChannel

	set, err := NewKeywordSet([]string{"needle"})
	if err != nil {
		t.Fatalf("failed to build keyword set: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(cfg, set, WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	_, report := s.SearchDirectory(ctx, dir)

	if !report.Incomplete {
		t.Fatal("expected report to be marked incomplete after cancellation")
	}
}
