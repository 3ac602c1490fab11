// Package bank loads question/answer pairs from two-column CSV files.
package bank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"obsqa/pkg/match"
)

// ErrNoRows is returned when a CSV file yields no usable question rows.
var ErrNoRows = errors.New("no question rows found")

// LoadCSV reads (question, answer) pairs from r. Rows with fewer than two
// columns, blank questions or blank answers are skipped; extra columns are
// ignored. Duplicate questions keep the first occurrence so insertion order
// stays the tie-break order downstream.
func LoadCSV(r io.Reader) ([]match.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, we filter ourselves

	var entries []match.Entry
	seen := map[string]struct{}{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row (stray quote etc.); skip it, keep the rest.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if len(row) < 2 {
			continue
		}
		question := strings.TrimSpace(row[0])
		answer := strings.TrimSpace(row[1])
		if question == "" || answer == "" {
			continue
		}
		if _, dup := seen[question]; dup {
			continue
		}
		seen[question] = struct{}{}
		entries = append(entries, match.Entry{Question: question, Answer: answer})
	}
	if len(entries) == 0 {
		return nil, ErrNoRows
	}
	return entries, nil
}

// LoadCSVFile opens path and delegates to LoadCSV.
func LoadCSVFile(path string) ([]match.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank file: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}
