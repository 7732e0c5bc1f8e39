package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielb254/Spent/internal/database/repository"
	"github.com/danielb254/Spent/internal/money"
)

// Exporter renders a container's full history as CSV text.
type Exporter struct {
	Transactions *repository.TransactionRepo
}

// ExportCSV returns the container's transactions, newest first, with the
// amount rendered in major units. Fields are joined bare: descriptions
// or categories containing commas export lossily.
func (s *Exporter) ExportCSV(ctx context.Context, containerID string) (string, error) {
	txs, err := s.Transactions.List(ctx, containerID, 0)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("ID,Amount,Description,Category,Date\n")
	for _, t := range txs {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n", t.ID, money.FormatCents(t.Amount), t.Description, t.Category, t.Date)
	}
	return b.String(), nil
}
