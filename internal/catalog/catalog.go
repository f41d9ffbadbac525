// Package catalog loads the problem catalog from its CSV export.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/domain"
)

// Column headers as exported by the source spreadsheet.
const (
	colCategory   = "Category"
	colDifficulty = "Difficulty"
	colName       = "Name"
	colStatus     = "Status"
	colLink       = "Link"
	colNotes      = "Notes ( Fill in with your method to solve )"
)

// Defaults used when a column is absent from the header entirely. A present
// column with an empty value stays empty; only a missing column is
// defaulted.
const (
	defaultCategory   = "Uncategorized"
	defaultDifficulty = "Unknown"
	defaultName       = "Unnamed Problem"
)

// Load reads the catalog CSV at the given path. A missing file is returned
// as an error for the caller to treat as fatal; an empty catalog is not an
// error here.
func Load(path string) ([]domain.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	problems, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return problems, nil
}

// Parse reads catalog rows from r. The first row is the header; rows may be
// ragged, and short rows fall back to column defaults.
func Parse(r io.Reader) ([]domain.Problem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	field := func(row []string, name, fallback string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return fallback
		}
		return row[i]
	}

	var problems []domain.Problem
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		problems = append(problems, domain.Problem{
			Category:   field(row, colCategory, defaultCategory),
			Difficulty: field(row, colDifficulty, defaultDifficulty),
			Name:       field(row, colName, defaultName),
			Status:     field(row, colStatus, domain.StatusUnsolved),
			Link:       field(row, colLink, ""),
			Notes:      field(row, colNotes, ""),
		})
	}
	return problems, nil
}
