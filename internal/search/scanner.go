package search

import (
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/lks/internal/config"
	"github.com/standardbeagle/lks/internal/debug"
	lkserrors "github.com/standardbeagle/lks/internal/errors"
)

// DiagnosticSink receives per-file scan failures. A sink is a capability
// injected by the caller; the scanner never logs through a package global
// and never returns a file failure to the worker.
type DiagnosticSink func(err error)

// FileStat describes the outcome of scanning one file.
type FileStat struct {
	ContentHash uint64 // xxhash of the raw content, valid only when Read
	Size        int64
	Read        bool // content was read successfully
	Failed      bool // read failed; the file yielded zero matches
	Skipped     bool // oversize or binary; not an error
}

// FileScanner searches one file at a time for a fixed keyword set.
// Pure and stateless apart from its configuration: safe for concurrent
// use by multiple workers.
type FileScanner struct {
	keywords    KeywordSet
	maxFileSize int64
	binaryCheck bool
	detector    *BinaryDetector
	sink        DiagnosticSink
}

// NewFileScanner creates a scanner for the given keyword set. The sink
// must be non-nil; per-file failures are reported through it.
func NewFileScanner(keywords KeywordSet, cfg *config.Config, sink DiagnosticSink) *FileScanner {
	return &FileScanner{
		keywords:    keywords,
		maxFileSize: cfg.Scan.MaxFileSize,
		binaryCheck: cfg.Scan.BinaryCheck,
		detector:    NewBinaryDetector(),
		sink:        sink,
	}
}

// ScanFile reads path and returns the subset of keywords found in its
// content as a keyword -> {path} mapping. Read failures are reported to
// the diagnostic sink and yield an empty mapping; they never abort the
// surrounding worker or batch.
func (s *FileScanner) ScanFile(path string) (Result, FileStat) {
	result := NewResult()
	stat := FileStat{}

	info, err := os.Stat(path)
	if err != nil {
		s.sink(lkserrors.NewFileError("stat", path, err))
		stat.Failed = true
		return result, stat
	}
	stat.Size = info.Size()

	if info.Size() > s.maxFileSize {
		s.sink(lkserrors.NewFileTooLargeError(path, info.Size(), s.maxFileSize))
		stat.Skipped = true
		return result, stat
	}

	content, err := os.ReadFile(path)
	if err != nil {
		s.sink(lkserrors.NewFileError("read", path, err))
		stat.Failed = true
		return result, stat
	}
	stat.Read = true
	stat.ContentHash = xxhash.Sum64(content)

	if s.binaryCheck && s.detector.IsBinary(path, content) {
		debug.LogScan("skipping binary file %s\n", path)
		stat.Skipped = true
		return result, stat
	}

	// Lowercase once per file; each keyword is pre-folded at set
	// construction, so a scan is one allocation plus k substring tests.
	lowered := strings.ToLower(string(content))
	for _, kw := range s.keywords.words {
		if strings.Contains(lowered, kw.folded) {
			result.Add(kw.raw, path)
		}
	}

	return result, stat
}
