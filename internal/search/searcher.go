package search

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/lks/internal/config"
	"github.com/standardbeagle/lks/internal/debug"
)

// Searcher coordinates one bulk scan: enumerate, partition, fan out to a
// fixed pool of workers, and merge their local results behind a barrier.
// The logger and diagnostic sink are capabilities handed in at
// construction; a Searcher holds no global state and is safe to discard
// after a run.
type Searcher struct {
	cfg      *config.Config
	keywords KeywordSet
	log      *log.Logger
	sink     DiagnosticSink
}

// Option configures a Searcher
type Option func(*Searcher)

// WithLogger replaces the default stderr logger
func WithLogger(l *log.Logger) Option {
	return func(s *Searcher) { s.log = l }
}

// WithDiagnosticSink replaces the default sink, which logs per-file
// failures through the Searcher's logger. Tests use this to collect
// errors instead.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(s *Searcher) { s.sink = sink }
}

// New creates a Searcher for the given configuration and keyword set
func New(cfg *config.Config, keywords KeywordSet, opts ...Option) *Searcher {
	s := &Searcher{
		cfg:      cfg,
		keywords: keywords,
		log:      log.New(os.Stderr, "lks ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sink == nil {
		s.sink = func(err error) {
			s.log.Printf("ERROR: %v", err)
		}
	}
	return s
}

// chunkStats is the per-worker bookkeeping merged by the coordinator
// after the barrier. Each worker owns its entry exclusively, so no
// synchronization is needed beyond the join.
type chunkStats struct {
	files      int
	errors     int
	hashes     map[uint64]struct{}
	incomplete bool
}

// SearchDirectory runs one scan of root with the configured pattern and
// returns the merged keyword -> files mapping plus a run report. It
// never returns an error: a listing failure or an empty match set is
// logged and yields the (empty) result accumulated so far. The call
// blocks until every worker has finished and every local result has
// been merged.
func (s *Searcher) SearchDirectory(ctx context.Context, root string) (Result, Report) {
	start := time.Now()

	files, err := ListFiles(root, s.cfg.Scan.Pattern, s.cfg.Exclude)
	if err != nil {
		s.log.Printf("ERROR: %v", err)
		return NewResult(), Report{Elapsed: time.Since(start)}
	}

	if len(files) == 0 {
		s.log.Printf("WARNING: no files matched pattern %q in %s", s.cfg.Scan.Pattern, root)
		return NewResult(), Report{Elapsed: time.Since(start)}
	}

	workers := s.cfg.Performance.ResolveWorkers()
	chunks := Partition(files, workers)
	debug.LogScan("partitioned %d files into %d chunks (%d workers requested)\n",
		len(files), len(chunks), workers)

	scanner := NewFileScanner(s.keywords, s.cfg, s.sink)
	agg := newAggregator(s.cfg.Performance.Aggregator)
	stats := make([]chunkStats, len(chunks))

	// Fixed pool: one goroutine per chunk, spawned once, never retried.
	// Workers only ever touch their own chunk and stats slot; the
	// aggregator is the single point of contact for results.
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			local, st := scanChunk(gctx, chunk, scanner)
			stats[i] = st
			agg.Offer(local)
			return nil
		})
	}

	// Barrier: no result or timing is reported until every worker has
	// finished and handed over its local result.
	_ = g.Wait()
	merged := agg.Result()

	report := Report{
		Files:   len(files),
		Elapsed: time.Since(start),
	}
	hashes := make(map[uint64]struct{})
	for _, st := range stats {
		report.FileErrors += st.errors
		report.Incomplete = report.Incomplete || st.incomplete
		for h := range st.hashes {
			hashes[h] = struct{}{}
		}
	}
	report.DistinctContents = len(hashes)

	s.log.Printf("scan completed in %.2fs", report.Elapsed.Seconds())
	s.log.Printf("files processed: %d", report.Files)

	return merged, report
}

// scanChunk is the worker body: a pure function of its chunk. It scans
// files in input order, unions per-file results into a chunk-local
// accumulator, and stops early (marking the run incomplete) if the
// context is cancelled.
func scanChunk(ctx context.Context, chunk []string, scanner *FileScanner) (Result, chunkStats) {
	local := NewResult()
	st := chunkStats{hashes: make(map[uint64]struct{})}

	for _, path := range chunk {
		select {
		case <-ctx.Done():
			st.incomplete = true
			return local, st
		default:
		}

		res, fstat := scanner.ScanFile(path)
		local.Merge(res)
		st.files++
		if fstat.Failed {
			st.errors++
		}
		if fstat.Read {
			st.hashes[fstat.ContentHash] = struct{}{}
		}
	}

	return local, st
}
