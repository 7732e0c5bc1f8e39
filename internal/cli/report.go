package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/danielb254/Spent/internal/database/repository"
	"github.com/danielb254/Spent/internal/money"
)

type balanceCmd struct {
	app       *App
	container string
	month     string
	all       bool
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show a container balance" }
func (*balanceCmd) Usage() string {
	return `spent balance [-container <name>] [-month <YYYY-MM> | -all]

  Shows the current month's balance by default.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container name (defaults to the default container).")
	f.StringVar(&c.month, "month", "", "Balance for a specific YYYY-MM month.")
	f.BoolVar(&c.all, "all", false, "All-time balance.")
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cont, err := c.app.resolveContainer(ctx, c.container)
	if err != nil {
		return c.app.errorf("%v", err)
	}

	var cents int64
	switch {
	case c.all:
		cents, err = c.app.Handler.GetAllTimeBalance(ctx, cont.ID)
	case c.month != "":
		cents, err = c.app.Handler.GetBalanceForMonth(ctx, cont.ID, c.month)
	default:
		cents, err = c.app.Handler.GetMonthlyBalance(ctx, cont.ID)
	}
	if err != nil {
		return c.app.errorf("%v", err)
	}
	fmt.Fprintf(c.app.Out, "%s%s\n", c.app.Currency, money.FormatCents(cents))
	return subcommands.ExitSuccess
}

type totalsCmd struct {
	app       *App
	container string
	month     string
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "show expense totals per category" }
func (*totalsCmd) Usage() string {
	return `spent totals [-container <name>] [-month <YYYY-MM>]

  Sums expenses (negative amounts) per category, largest first. Defaults
  to the current month.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container name (defaults to the default container).")
	f.StringVar(&c.month, "month", "", "Totals for a specific YYYY-MM month.")
}

func (c *totalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cont, err := c.app.resolveContainer(ctx, c.container)
	if err != nil {
		return c.app.errorf("%v", err)
	}

	var totals []repository.CategoryTotal
	if c.month != "" {
		totals, err = c.app.Handler.GetCategoryTotalsForMonth(ctx, cont.ID, c.month)
	} else {
		totals, err = c.app.Handler.GetCategoryTotals(ctx, cont.ID)
	}
	if err != nil {
		return c.app.errorf("%v", err)
	}
	for _, t := range totals {
		fmt.Fprintf(c.app.Out, "%-20s %s%s\n", t.Category, c.app.Currency, money.FormatCents(t.Total))
	}
	return subcommands.ExitSuccess
}

type monthsCmd struct {
	app       *App
	container string
}

func (*monthsCmd) Name() string     { return "months" }
func (*monthsCmd) Synopsis() string { return "list months with activity" }
func (*monthsCmd) Usage() string {
	return `spent months [-container <name>]

  Lists the distinct YYYY-MM months present, newest first.
`
}

func (c *monthsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container name (defaults to the default container).")
}

func (c *monthsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cont, err := c.app.resolveContainer(ctx, c.container)
	if err != nil {
		return c.app.errorf("%v", err)
	}
	months, err := c.app.Handler.GetAvailableMonths(ctx, cont.ID)
	if err != nil {
		return c.app.errorf("%v", err)
	}
	for _, m := range months {
		fmt.Fprintln(c.app.Out, m)
	}
	return subcommands.ExitSuccess
}
