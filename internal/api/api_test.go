package api_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielb254/Spent/internal/api"
	"github.com/danielb254/Spent/internal/database"
	"github.com/danielb254/Spent/internal/database/repository"
	"github.com/danielb254/Spent/internal/logger"
	"github.com/danielb254/Spent/internal/service"
)

func newHandler(t *testing.T) (*api.Handler, string) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Init(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	txRepo := repository.NewTransactionRepo(db)
	log := logger.Nop()
	h := &api.Handler{
		Containers:   repository.NewContainerRepo(db),
		Categories:   repository.NewCategoryRepo(db),
		Transactions: txRepo,
		Importer:     &service.Importer{Transactions: txRepo, Log: log},
		Exporter:     &service.Exporter{Transactions: txRepo},
		Log:          log,
	}

	cs, err := h.GetContainers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cs)
	return h, cs[0].ID
}

func TestHandlerTransactionLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h, contID := newHandler(t)

	desc := "Coffee"
	tx, err := h.AddTransaction(ctx, contID, -450, &desc, nil)
	require.NoError(t, err)
	require.Equal(t, "Coffee", tx.Description)
	require.Equal(t, "Other", tx.Category)

	updated, err := h.UpdateTransaction(ctx, tx.ID, -500, "Latte", "Food & Dining")
	require.NoError(t, err)
	require.Equal(t, int64(-500), updated.Amount)

	txs, err := h.GetTransactions(ctx, contID, 0)
	require.NoError(t, err)
	require.Len(t, txs, 1)

	require.NoError(t, h.DeleteTransaction(ctx, tx.ID))
	txs, err = h.GetTransactions(ctx, contID, 0)
	require.NoError(t, err)
	require.Empty(t, txs)
}

func TestHandlerCollapsesErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h, _ := newHandler(t)

	// failures come back as a flat message naming the operation
	_, err := h.UpdateTransaction(ctx, "no-such-id", 1, "x", "y")
	require.Error(t, err)
	require.Contains(t, err.Error(), "update_transaction")

	_, err = h.AddContainer(ctx, "Personal")
	require.Error(t, err)
	require.Contains(t, err.Error(), "add_container")
}

func TestHandlerCategories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h, _ := newHandler(t)

	names, err := h.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, names, 8)
	require.Contains(t, names, "Food & Dining")
	require.Contains(t, names, "Income")

	require.NoError(t, h.AddCategory(ctx, "Pets"))
	names, err = h.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, names, 9)
	require.Equal(t, "Pets", names[len(names)-1])

	require.NoError(t, h.DeleteCategory(ctx, "Pets"))
	require.NoError(t, h.DeleteCategory(ctx, "Income")) // default, silent no-op
	names, err = h.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, names, 8)
}

func TestHandlerContainers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h, defaultID := newHandler(t)

	c, err := h.AddContainer(ctx, "Business")
	require.NoError(t, err)

	renamed, err := h.UpdateContainer(ctx, c.ID, "Company")
	require.NoError(t, err)
	require.Equal(t, "Company", renamed.Name)

	err = h.DeleteContainer(ctx, defaultID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "delete_container")

	require.NoError(t, h.DeleteContainer(ctx, c.ID))
	cs, err := h.GetContainers(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 1)
}

func TestHandlerImportExport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h, contID := newHandler(t)

	cols := service.ColumnMapping{Date: 0, Amount: 1, Description: 2, Category: 3}
	res, err := h.ImportCSV(ctx, "2024-03-15,-12.50,Coffee,Food & Dining\n", contID, cols, false)
	require.NoError(t, err)
	require.Equal(t, 1, res.SuccessCount)

	out, err := h.ExportCSV(ctx, contID)
	require.NoError(t, err)
	require.Contains(t, out, "-12.50,Coffee,Food & Dining,2024-03-15 00:00:00")

	totals, err := h.GetCategoryTotalsForMonth(ctx, contID, "2024-03")
	require.NoError(t, err)
	require.Equal(t, []repository.CategoryTotal{{Category: "Food & Dining", Total: -1250}}, totals)

	months, err := h.GetAvailableMonths(ctx, contID)
	require.NoError(t, err)
	require.Equal(t, []string{"2024-03"}, months)

	balance, err := h.GetBalanceForMonth(ctx, contID, "2024-03")
	require.NoError(t, err)
	require.Equal(t, int64(-1250), balance)
}
