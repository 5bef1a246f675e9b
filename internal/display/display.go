package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/standardbeagle/lks/internal/search"
)

// Formatter renders a finished scan for the terminal
type Formatter struct {
	JSON bool
}

// jsonReport is the machine-readable output document
type jsonReport struct {
	Matches          map[string][]string `json:"matches"`
	Files            int                 `json:"files"`
	DistinctContents int                 `json:"distinctContents"`
	FileErrors       int                 `json:"fileErrors"`
	ElapsedMs        int64               `json:"elapsedMs"`
	Incomplete       bool                `json:"incomplete,omitempty"`
}

// Render writes the result mapping and run summary to w. Keywords with
// zero matches are omitted from the listing.
func (f Formatter) Render(w io.Writer, result search.Result, report search.Report) error {
	if f.JSON {
		return f.renderJSON(w, result, report)
	}
	return f.renderText(w, result, report)
}

func (f Formatter) renderText(w io.Writer, result search.Result, report search.Report) error {
	keywords := result.Keywords()

	fmt.Fprintln(w, "Search results:")
	if len(keywords) == 0 {
		fmt.Fprintln(w, "Nothing found.")
	} else {
		for _, keyword := range keywords {
			fmt.Fprintf(w, "\nKeyword %q found in:\n", keyword)
			for _, file := range result.Files(keyword) {
				fmt.Fprintf(w, "- %s\n", file)
			}
		}
	}

	fmt.Fprintf(w, "\nProcessed %d files (%d distinct contents) in %.2fs",
		report.Files, report.DistinctContents, report.Elapsed.Seconds())
	if report.FileErrors > 0 {
		fmt.Fprintf(w, ", %d read errors", report.FileErrors)
	}
	if report.Incomplete {
		fmt.Fprintf(w, " [incomplete]")
	}
	fmt.Fprintln(w)

	return nil
}

func (f Formatter) renderJSON(w io.Writer, result search.Result, report search.Report) error {
	doc := jsonReport{
		Matches:          make(map[string][]string, len(result)),
		Files:            report.Files,
		DistinctContents: report.DistinctContents,
		FileErrors:       report.FileErrors,
		ElapsedMs:        report.Elapsed.Milliseconds(),
		Incomplete:       report.Incomplete,
	}
	for _, keyword := range result.Keywords() {
		doc.Matches[keyword] = result.Files(keyword)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
