package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// promptKeywords collects keywords interactively, one per line. A blank
// line finishes input once at least one keyword has been entered.
func promptKeywords(r io.Reader, w io.Writer) ([]string, error) {
	fmt.Fprintln(w, "Enter keywords, one per line.")
	fmt.Fprintln(w, "Press Enter on an empty line to finish.")
	fmt.Fprintln(w)

	var keywords []string
	scanner := bufio.NewScanner(r)

	for {
		fmt.Fprint(w, "Keyword: ")
		if !scanner.Scan() {
			break
		}
		keyword := strings.TrimSpace(scanner.Text())
		if keyword == "" {
			if len(keywords) > 0 {
				break
			}
			fmt.Fprintln(w, "Please enter at least one keyword.")
			continue
		}
		keywords = append(keywords, keyword)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading keywords: %w", err)
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("no keywords entered")
	}
	return keywords, nil
}

// promptDirectory asks for the scan directory until an existing one is
// given.
func promptDirectory(r io.Reader, w io.Writer) (string, error) {
	scanner := bufio.NewScanner(r)

	for {
		fmt.Fprint(w, "\nDirectory to search: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("reading directory: %w", err)
			}
			return "", fmt.Errorf("no directory entered")
		}
		dir := strings.TrimSpace(scanner.Text())
		if dir == "" {
			fmt.Fprintln(w, "Error: path does not exist. Try again.")
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		fmt.Fprintln(w, "Error: path does not exist. Try again.")
	}
}
