package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielb254/Spent/internal/database/repository"
)

func defaultContainer(t *testing.T, db *sql.DB) repository.Container {
	t.Helper()
	cs, err := repository.NewContainerRepo(db).List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cs)
	return cs[0]
}

func insertRow(t *testing.T, repo *repository.TransactionRepo, id, containerID string, amount int64, category, date string) {
	t.Helper()
	err := repo.Insert(context.Background(), repository.Transaction{
		ID:          id,
		Amount:      amount,
		Description: "row " + id,
		Category:    category,
		Date:        date,
		ContainerID: containerID,
	})
	require.NoError(t, err)
}

func TestAddAppliesDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewTransactionRepo(db)
	cont := defaultContainer(t, db)

	tx, err := repo.Add(ctx, repository.NewTransaction{ContainerID: cont.ID, Amount: -999})
	require.NoError(t, err)
	require.NotEmpty(t, tx.ID)
	require.Equal(t, "Untitled", tx.Description)
	require.Equal(t, "Other", tx.Category)
	require.Equal(t, int64(-999), tx.Amount)

	// date is stamped in canonical form
	_, err = time.Parse(repository.CanonicalFormat, tx.Date)
	require.NoError(t, err)

	desc, cat := "Lunch", "Food & Dining"
	tx2, err := repo.Add(ctx, repository.NewTransaction{
		ContainerID: cont.ID,
		Amount:      -1250,
		Description: &desc,
		Category:    &cat,
	})
	require.NoError(t, err)
	require.Equal(t, "Lunch", tx2.Description)
	require.Equal(t, "Food & Dining", tx2.Category)

	// returned row matches what was persisted
	stored, err := repo.Get(ctx, tx2.ID)
	require.NoError(t, err)
	require.Equal(t, tx2, stored)
}

func TestListOrderingAndLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewTransactionRepo(db)
	cont := defaultContainer(t, db)

	insertRow(t, repo, "a", cont.ID, -100, "Other", "2024-01-15 08:00:00")
	insertRow(t, repo, "b", cont.ID, -200, "Other", "2024-03-01 12:30:00")
	insertRow(t, repo, "c", cont.ID, 300, "Income", "2024-02-20 18:45:00")

	txs, err := repo.List(ctx, cont.ID, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c", "a"}, ids(txs))

	txs, err = repo.List(ctx, cont.ID, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, ids(txs))
}

func TestListForMonth(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewTransactionRepo(db)
	cont := defaultContainer(t, db)

	insertRow(t, repo, "jan1", cont.ID, -100, "Other", "2024-01-15 08:00:00")
	insertRow(t, repo, "jan2", cont.ID, -50, "Other", "2024-01-31 23:59:59")
	insertRow(t, repo, "feb", cont.ID, -200, "Other", "2024-02-01 00:00:00")

	txs, err := repo.ListForMonth(ctx, cont.ID, "2024-01", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"jan2", "jan1"}, ids(txs))

	txs, err = repo.ListForMonth(ctx, cont.ID, "2024-12", 0)
	require.NoError(t, err)
	require.Empty(t, txs)
}

func TestBalances(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewTransactionRepo(db)
	cont := defaultContainer(t, db)

	// empty container sums to zero, not an error
	balance, err := repo.AllTimeBalance(ctx, cont.ID)
	require.NoError(t, err)
	require.Zero(t, balance)

	insertRow(t, repo, "a", cont.ID, -100, "Other", "2024-01-15 08:00:00")
	insertRow(t, repo, "b", cont.ID, 500, "Income", "2024-01-20 09:00:00")
	insertRow(t, repo, "c", cont.ID, -75, "Other", "2024-02-02 10:00:00")

	balance, err = repo.AllTimeBalance(ctx, cont.ID)
	require.NoError(t, err)
	require.Equal(t, int64(325), balance)

	jan, err := repo.BalanceForMonth(ctx, cont.ID, "2024-01")
	require.NoError(t, err)
	require.Equal(t, int64(400), jan)

	// monthlyBalance is just balanceForMonth on the current clock month
	_, err = repo.Add(ctx, repository.NewTransaction{ContainerID: cont.ID, Amount: -60})
	require.NoError(t, err)
	monthly, err := repo.MonthlyBalance(ctx, cont.ID)
	require.NoError(t, err)
	current, err := repo.BalanceForMonth(ctx, cont.ID, repository.CurrentMonth())
	require.NoError(t, err)
	require.Equal(t, current, monthly)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewTransactionRepo(db)
	cont := defaultContainer(t, db)

	insertRow(t, repo, "x", cont.ID, -100, "Other", "2024-01-15 08:00:00")

	updated, err := repo.Update(ctx, "x", -250, "Dinner", "Food & Dining")
	require.NoError(t, err)
	require.Equal(t, int64(-250), updated.Amount)
	require.Equal(t, "Dinner", updated.Description)
	require.Equal(t, "Food & Dining", updated.Category)
	// date and container are immutable
	require.Equal(t, "2024-01-15 08:00:00", updated.Date)
	require.Equal(t, cont.ID, updated.ContainerID)

	_, err = repo.Update(ctx, "missing", 1, "", "")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewTransactionRepo(db)
	cont := defaultContainer(t, db)

	insertRow(t, repo, "x", cont.ID, -100, "Other", "2024-01-15 08:00:00")

	require.NoError(t, repo.Delete(ctx, "x"))
	require.NoError(t, repo.Delete(ctx, "x"))
	require.NoError(t, repo.Delete(ctx, "never-existed"))
}

func TestCategoryTotalsOnlyCountExpenses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewTransactionRepo(db)
	cont := defaultContainer(t, db)

	insertRow(t, repo, "a", cont.ID, -1200, "Food & Dining", "2024-05-03 12:00:00")
	insertRow(t, repo, "b", cont.ID, -800, "Food & Dining", "2024-05-10 19:00:00")
	insertRow(t, repo, "c", cont.ID, -3000, "Shopping", "2024-05-12 15:00:00")
	insertRow(t, repo, "d", cont.ID, 500, "Food & Dining", "2024-05-15 09:00:00") // income, excluded
	insertRow(t, repo, "e", cont.ID, -100, "Other", "2024-06-01 08:00:00")        // other month

	totals, err := repo.CategoryTotalsForMonth(ctx, cont.ID, "2024-05")
	require.NoError(t, err)
	require.Equal(t, []repository.CategoryTotal{
		{Category: "Shopping", Total: -3000},
		{Category: "Food & Dining", Total: -2000},
	}, totals)
}

func TestAvailableMonths(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewTransactionRepo(db)
	cont := defaultContainer(t, db)

	insertRow(t, repo, "a", cont.ID, -1, "Other", "2024-01-15 08:00:00")
	insertRow(t, repo, "b", cont.ID, -1, "Other", "2024-01-20 08:00:00")
	insertRow(t, repo, "c", cont.ID, -1, "Other", "2023-12-31 23:00:00")
	insertRow(t, repo, "d", cont.ID, -1, "Other", "2024-03-01 00:00:00")

	months, err := repo.AvailableMonths(ctx, cont.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"2024-03", "2024-01", "2023-12"}, months)
}

func TestQueriesAreContainerScoped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewTransactionRepo(db)
	containers := repository.NewContainerRepo(db)
	main := defaultContainer(t, db)

	other, err := containers.Create(ctx, "Side")
	require.NoError(t, err)

	insertRow(t, repo, "mine", main.ID, -100, "Other", "2024-01-15 08:00:00")
	insertRow(t, repo, "theirs", other.ID, -900, "Other", "2024-01-16 08:00:00")

	txs, err := repo.List(ctx, main.ID, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"mine"}, ids(txs))

	balance, err := repo.AllTimeBalance(ctx, other.ID)
	require.NoError(t, err)
	require.Equal(t, int64(-900), balance)
}

func ids(txs []repository.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.ID)
	}
	return out
}
