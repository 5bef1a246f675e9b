package search

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Result maps each keyword (original spelling) to the set of file paths
// whose content contains it, case-insensitively. Set semantics: a path
// appears at most once per keyword regardless of how many workers or
// merges touched it.
type Result map[string]map[string]struct{}

// NewResult creates an empty result mapping
func NewResult() Result {
	return make(Result)
}

// Add records that path contains keyword
func (r Result) Add(keyword, path string) {
	files, ok := r[keyword]
	if !ok {
		files = make(map[string]struct{})
		r[keyword] = files
	}
	files[path] = struct{}{}
}

// Merge unions other into r, key-wise. Merging is associative and
// commutative, so partial results may arrive in any order.
func (r Result) Merge(other Result) {
	for keyword, files := range other {
		dst, ok := r[keyword]
		if !ok {
			dst = make(map[string]struct{}, len(files))
			r[keyword] = dst
		}
		for path := range files {
			dst[path] = struct{}{}
		}
	}
}

// Keywords returns all keywords with at least one match, sorted
func (r Result) Keywords() []string {
	keywords := make([]string, 0, len(r))
	for keyword, files := range r {
		if len(files) > 0 {
			keywords = append(keywords, keyword)
		}
	}
	sort.Strings(keywords)
	return keywords
}

// Files returns the matching paths for keyword, sorted
func (r Result) Files(keyword string) []string {
	files := make([]string, 0, len(r[keyword]))
	for path := range r[keyword] {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

// keyword pairs the user-supplied spelling with its folded form used for
// matching
type keyword struct {
	raw    string
	folded string
}

// KeywordSet is a deduplicated, case-insensitive set of search terms,
// fixed for the duration of a scan.
type KeywordSet struct {
	words []keyword
}

// NewKeywordSet builds a keyword set from raw user input: terms are
// trimmed, blanks dropped, and duplicates (case-insensitive) collapsed to
// the first spelling seen. An empty set after cleaning is an error.
func NewKeywordSet(words []string) (KeywordSet, error) {
	seen := make(map[string]bool, len(words))
	set := KeywordSet{words: make([]keyword, 0, len(words))}

	for _, w := range words {
		raw := strings.TrimSpace(w)
		if raw == "" {
			continue
		}
		folded := strings.ToLower(raw)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		set.words = append(set.words, keyword{raw: raw, folded: folded})
	}

	if len(set.words) == 0 {
		return KeywordSet{}, fmt.Errorf("keyword set is empty after removing blanks")
	}
	return set, nil
}

// Len returns the number of distinct keywords
func (k KeywordSet) Len() int {
	return len(k.words)
}

// Words returns the original spellings, in input order
func (k KeywordSet) Words() []string {
	out := make([]string, len(k.words))
	for i, w := range k.words {
		out[i] = w.raw
	}
	return out
}

// Report summarizes one SearchDirectory run for logging and display.
type Report struct {
	Files            int           // files enumerated and handed to workers
	DistinctContents int           // unique content fingerprints among readable files
	FileErrors       int           // per-file read failures (scan still completed)
	Elapsed          time.Duration // wall-clock time for the whole run
	Incomplete       bool          // true when the run was cancelled mid-scan
}
