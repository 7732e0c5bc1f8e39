package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/danielb254/Spent/internal/database/repository"
	"github.com/danielb254/Spent/internal/money"
)

type txCmd struct {
	app       *App
	container string
	month     string
	limit     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in a container" }
func (*txCmd) Usage() string {
	return `spent tx [-container <name>] [-month <YYYY-MM>] [-limit <n>]

  Lists transactions, newest first.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container name (defaults to the default container).")
	f.StringVar(&c.month, "month", "", "Restrict to a YYYY-MM month.")
	f.IntVar(&c.limit, "limit", 0, "Cap the number of rows (0 = unbounded).")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cont, err := c.app.resolveContainer(ctx, c.container)
	if err != nil {
		return c.app.errorf("%v", err)
	}

	var txs []repository.Transaction
	if c.month != "" {
		txs, err = c.app.Handler.GetTransactionsForMonth(ctx, cont.ID, c.month, c.limit)
	} else {
		txs, err = c.app.Handler.GetTransactions(ctx, cont.ID, c.limit)
	}
	if err != nil {
		return c.app.errorf("%v", err)
	}

	for _, t := range txs {
		fmt.Fprintf(c.app.Out, "%s  %s%s  %-20s  %s  %s\n",
			t.Date, c.app.Currency, money.FormatCents(t.Amount), t.Category, t.Description, t.ID)
	}
	return subcommands.ExitSuccess
}

type addCmd struct {
	app       *App
	container string
	amount    string
	desc      string
	category  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction" }
func (*addCmd) Usage() string {
	return `spent add -amount <value> [-desc <text>] [-category <name>] [-container <name>]

  Adds a transaction stamped with the current time. Negative amounts are
  expenses.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container name (defaults to the default container).")
	f.StringVar(&c.amount, "amount", "", "Amount in major units, e.g. -12.50.")
	f.StringVar(&c.desc, "desc", "", "Description.")
	f.StringVar(&c.category, "category", "", "Category name.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		return c.app.errorf("-amount is required")
	}
	cents, err := money.ParseAmount(c.amount)
	if err != nil {
		return c.app.errorf("amount %q: %v", c.amount, err)
	}
	cont, err := c.app.resolveContainer(ctx, c.container)
	if err != nil {
		return c.app.errorf("%v", err)
	}

	var desc, cat *string
	if c.desc != "" {
		desc = &c.desc
	}
	if c.category != "" {
		cat = &c.category
	}
	t, err := c.app.Handler.AddTransaction(ctx, cont.ID, cents, desc, cat)
	if err != nil {
		return c.app.errorf("%v", err)
	}
	fmt.Fprintf(c.app.Out, "added %s (%s%s)\n", t.ID, c.app.Currency, money.FormatCents(t.Amount))
	return subcommands.ExitSuccess
}

type rmCmd struct {
	app *App
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions by id" }
func (*rmCmd) Usage() string {
	return `spent rm <id> [<id>...]

  Deletes transactions. Unknown ids are ignored.
`
}

func (c *rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return c.app.errorf("at least one id is required")
	}
	for _, id := range f.Args() {
		if err := c.app.Handler.DeleteTransaction(ctx, id); err != nil {
			return c.app.errorf("%v", err)
		}
	}
	return subcommands.ExitSuccess
}

type updateCmd struct {
	app      *App
	id       string
	amount   string
	desc     string
	category string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "overwrite a transaction's mutable fields" }
func (*updateCmd) Usage() string {
	return `spent update -id <id> -amount <value> -desc <text> -category <name>

  Overwrites amount, description and category. Date and container are
  immutable.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id.")
	f.StringVar(&c.amount, "amount", "", "New amount in major units.")
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.category, "category", "", "New category.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.amount == "" {
		return c.app.errorf("-id and -amount are required")
	}
	cents, err := money.ParseAmount(c.amount)
	if err != nil {
		return c.app.errorf("amount %q: %v", c.amount, err)
	}
	t, err := c.app.Handler.UpdateTransaction(ctx, c.id, cents, c.desc, c.category)
	if err != nil {
		return c.app.errorf("%v", err)
	}
	fmt.Fprintf(c.app.Out, "updated %s\n", t.ID)
	return subcommands.ExitSuccess
}
