// Package api is the boundary exposed to the host command-dispatch
// layer. One method per dispatched operation; every failure surfaces as
// a single opaque message, never a typed error the host must understand.
package api

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/danielb254/Spent/internal/database/repository"
	"github.com/danielb254/Spent/internal/service"
)

// Handler wires the repositories and services behind the dispatch
// operations.
type Handler struct {
	Containers   *repository.ContainerRepo
	Categories   *repository.CategoryRepo
	Transactions *repository.TransactionRepo
	Importer     *service.Importer
	Exporter     *service.Exporter
	Log          zerolog.Logger
}

// fail logs the underlying error and collapses it into the single
// message string the host sees.
func (h *Handler) fail(op string, err error) error {
	h.Log.Error().Err(err).Str("op", op).Msg("operation failed")
	return fmt.Errorf("%s: %v", op, err)
}

// AddTransaction persists a manual entry. Nil description/category get
// the store defaults.
func (h *Handler) AddTransaction(ctx context.Context, containerID string, amount int64, description, category *string) (repository.Transaction, error) {
	t, err := h.Transactions.Add(ctx, repository.NewTransaction{
		ContainerID: containerID,
		Amount:      amount,
		Description: description,
		Category:    category,
	})
	if err != nil {
		return repository.Transaction{}, h.fail("add_transaction", err)
	}
	return t, nil
}

// GetTransactions lists a container's rows, newest first. A non-positive
// limit means unbounded.
func (h *Handler) GetTransactions(ctx context.Context, containerID string, limit int) ([]repository.Transaction, error) {
	txs, err := h.Transactions.List(ctx, containerID, limit)
	if err != nil {
		return nil, h.fail("get_transactions", err)
	}
	return txs, nil
}

// GetTransactionsForMonth is GetTransactions filtered to a "YYYY-MM" prefix.
func (h *Handler) GetTransactionsForMonth(ctx context.Context, containerID, month string, limit int) ([]repository.Transaction, error) {
	txs, err := h.Transactions.ListForMonth(ctx, containerID, month, limit)
	if err != nil {
		return nil, h.fail("get_transactions_for_month", err)
	}
	return txs, nil
}

// UpdateTransaction overwrites the mutable fields of a row.
func (h *Handler) UpdateTransaction(ctx context.Context, id string, amount int64, description, category string) (repository.Transaction, error) {
	t, err := h.Transactions.Update(ctx, id, amount, description, category)
	if err != nil {
		return repository.Transaction{}, h.fail("update_transaction", err)
	}
	return t, nil
}

// DeleteTransaction removes a row; unknown ids succeed silently.
func (h *Handler) DeleteTransaction(ctx context.Context, id string) error {
	if err := h.Transactions.Delete(ctx, id); err != nil {
		return h.fail("delete_transaction", err)
	}
	return nil
}

// GetMonthlyBalance sums the current calendar month.
func (h *Handler) GetMonthlyBalance(ctx context.Context, containerID string) (int64, error) {
	b, err := h.Transactions.MonthlyBalance(ctx, containerID)
	if err != nil {
		return 0, h.fail("get_monthly_balance", err)
	}
	return b, nil
}

// GetAllTimeBalance sums the container across all time.
func (h *Handler) GetAllTimeBalance(ctx context.Context, containerID string) (int64, error) {
	b, err := h.Transactions.AllTimeBalance(ctx, containerID)
	if err != nil {
		return 0, h.fail("get_all_time_balance", err)
	}
	return b, nil
}

// GetBalanceForMonth sums an arbitrary "YYYY-MM" prefix.
func (h *Handler) GetBalanceForMonth(ctx context.Context, containerID, month string) (int64, error) {
	b, err := h.Transactions.BalanceForMonth(ctx, containerID, month)
	if err != nil {
		return 0, h.fail("get_balance_for_month", err)
	}
	return b, nil
}

// GetCategoryTotals aggregates the current month's expenses by category.
func (h *Handler) GetCategoryTotals(ctx context.Context, containerID string) ([]repository.CategoryTotal, error) {
	totals, err := h.Transactions.CategoryTotals(ctx, containerID)
	if err != nil {
		return nil, h.fail("get_category_totals", err)
	}
	return totals, nil
}

// GetCategoryTotalsForMonth aggregates an arbitrary month's expenses.
func (h *Handler) GetCategoryTotalsForMonth(ctx context.Context, containerID, month string) ([]repository.CategoryTotal, error) {
	totals, err := h.Transactions.CategoryTotalsForMonth(ctx, containerID, month)
	if err != nil {
		return nil, h.fail("get_category_totals_for_month", err)
	}
	return totals, nil
}

// GetAvailableMonths lists the distinct months present, newest first.
func (h *Handler) GetAvailableMonths(ctx context.Context, containerID string) ([]string, error) {
	months, err := h.Transactions.AvailableMonths(ctx, containerID)
	if err != nil {
		return nil, h.fail("get_available_months", err)
	}
	return months, nil
}

// GetCategories returns category names, defaults first.
func (h *Handler) GetCategories(ctx context.Context) ([]string, error) {
	cats, err := h.Categories.List(ctx)
	if err != nil {
		return nil, h.fail("get_categories", err)
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names, nil
}

// AddCategory creates a user category.
func (h *Handler) AddCategory(ctx context.Context, name string) error {
	if err := h.Categories.Add(ctx, name); err != nil {
		return h.fail("add_category", err)
	}
	return nil
}

// DeleteCategory removes a user category; defaults are silently kept.
func (h *Handler) DeleteCategory(ctx context.Context, name string) error {
	if err := h.Categories.Delete(ctx, name); err != nil {
		return h.fail("delete_category", err)
	}
	return nil
}

// GetContainers lists containers, default first.
func (h *Handler) GetContainers(ctx context.Context) ([]repository.Container, error) {
	cs, err := h.Containers.List(ctx)
	if err != nil {
		return nil, h.fail("get_containers", err)
	}
	return cs, nil
}

// AddContainer creates a named workspace.
func (h *Handler) AddContainer(ctx context.Context, name string) (repository.Container, error) {
	c, err := h.Containers.Create(ctx, name)
	if err != nil {
		return repository.Container{}, h.fail("add_container", err)
	}
	return c, nil
}

// UpdateContainer renames a workspace.
func (h *Handler) UpdateContainer(ctx context.Context, id, name string) (repository.Container, error) {
	c, err := h.Containers.Rename(ctx, id, name)
	if err != nil {
		return repository.Container{}, h.fail("update_container", err)
	}
	return c, nil
}

// DeleteContainer removes a workspace and its transactions. The default
// container is protected.
func (h *Handler) DeleteContainer(ctx context.Context, id string) error {
	if err := h.Containers.Delete(ctx, id); err != nil {
		return h.fail("delete_container", err)
	}
	return nil
}

// ExportCSV renders a container's history as CSV text.
func (h *Handler) ExportCSV(ctx context.Context, containerID string) (string, error) {
	out, err := h.Exporter.ExportCSV(ctx, containerID)
	if err != nil {
		return "", h.fail("export_csv", err)
	}
	return out, nil
}

// ImportCSV runs the bulk import pipeline. The tally is returned even
// when some rows fail.
func (h *Handler) ImportCSV(ctx context.Context, csvText, containerID string, cols service.ColumnMapping, hasHeader bool) (service.ImportResult, error) {
	res, err := h.Importer.Import(ctx, csvText, containerID, cols, hasHeader)
	if err != nil {
		return res, h.fail("import_csv", err)
	}
	return res, nil
}
