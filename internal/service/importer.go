package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/danielb254/Spent/internal/database/repository"
	"github.com/danielb254/Spent/internal/money"
)

// ColumnMapping names the zero-based column index of each field in the
// source file. An index outside the record falls back to a default value
// ("Imported"/"Other") or an empty string for amount/date.
type ColumnMapping struct {
	Amount      int
	Description int
	Category    int
	Date        int
}

// ImportResult is the per-batch tally. It is populated even when rows
// fail, so partial success stays visible.
type ImportResult struct {
	SuccessCount int
	ErrorCount   int
	Errors       []string
}

// Importer ingests external CSV exports. Each row is normalized and
// inserted independently; a bad row is reported and skipped, never
// aborting the batch. There is no enclosing transaction across the file.
type Importer struct {
	Transactions *repository.TransactionRepo
	Log          zerolog.Logger
}

// dateLayouts is tried strictly in order; the first layout that parses
// wins. For inputs like 03/04/2024 the month-first form is therefore
// always preferred, a known limitation inherited from the column-mapped
// file formats this accepts. Do not reorder.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04",
}

// Import parses csvText and inserts one transaction per valid record into
// the target container. Row numbers in error messages are 1-based and
// match the visual row in a spreadsheet, accounting for a skipped header.
func (s *Importer) Import(ctx context.Context, csvText, containerID string, cols ColumnMapping, hasHeader bool) (ImportResult, error) {
	res := ImportResult{}
	csvr := csv.NewReader(strings.NewReader(csvText))
	csvr.TrimLeadingSpace = true
	csvr.LazyQuotes = true
	csvr.FieldsPerRecord = -1

	row := 0
	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		row++
		if hasHeader && row == 1 {
			continue
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}

		amountRaw := field(rec, cols.Amount, "")
		dateRaw := field(rec, cols.Date, "")
		desc := strings.TrimSpace(field(rec, cols.Description, "Imported"))
		cat := strings.TrimSpace(field(rec, cols.Category, "Other"))
		if desc == "" {
			desc = "Imported"
		}
		if cat == "" {
			cat = "Other"
		}

		cents, err := money.ParseAmount(amountRaw)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: amount %q: %v", row, amountRaw, err))
			continue
		}

		date, err := parseDate(dateRaw)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}

		t := repository.Transaction{
			ID:          uuid.NewString(),
			Amount:      cents,
			Description: desc,
			Category:    cat,
			Date:        date,
			ContainerID: containerID,
		}
		if err := s.Transactions.Insert(ctx, t); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: insert: %v", row, err))
			continue
		}
		res.SuccessCount++
	}
	res.ErrorCount = len(res.Errors)

	s.Log.Info().
		Str("container", containerID).
		Int("imported", res.SuccessCount).
		Int("failed", res.ErrorCount).
		Msg("csv import finished")
	return res, nil
}

// field returns the mapped column, or fallback when the index is outside
// the record.
func field(rec []string, idx int, fallback string) string {
	if idx >= 0 && idx < len(rec) {
		return rec[idx]
	}
	return fallback
}

// parseDate normalizes an external date into canonical form. Date-only
// layouts come out at midnight.
func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(repository.CanonicalFormat), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}
