package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/danielb254/Spent/internal/service"
)

type importCmd struct {
	app        *App
	container  string
	file       string
	amountCol  int
	descCol    int
	catCol     int
	dateCol    int
	skipHeader bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bulk-import a CSV export" }
func (*importCmd) Usage() string {
	return `spent import -file <path> -amount-col <n> -date-col <n> [-desc-col <n>] [-category-col <n>] [-skip-header] [-container <name>]

  Imports rows from an external CSV export. Column indices are zero
  based. Bad rows are reported and skipped; the rest are kept.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container name (defaults to the default container).")
	f.StringVar(&c.file, "file", "", "CSV file to import.")
	f.IntVar(&c.amountCol, "amount-col", 0, "Zero-based amount column.")
	f.IntVar(&c.descCol, "desc-col", -1, "Zero-based description column (-1 = none).")
	f.IntVar(&c.catCol, "category-col", -1, "Zero-based category column (-1 = none).")
	f.IntVar(&c.dateCol, "date-col", 1, "Zero-based date column.")
	f.BoolVar(&c.skipHeader, "skip-header", false, "Skip the first row as a header.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return c.app.errorf("-file is required")
	}
	data, err := os.ReadFile(c.file)
	if err != nil {
		return c.app.errorf("%v", err)
	}
	cont, err := c.app.resolveContainer(ctx, c.container)
	if err != nil {
		return c.app.errorf("%v", err)
	}

	res, err := c.app.Handler.ImportCSV(ctx, string(data), cont.ID, service.ColumnMapping{
		Amount:      c.amountCol,
		Description: c.descCol,
		Category:    c.catCol,
		Date:        c.dateCol,
	}, c.skipHeader)
	if err != nil {
		return c.app.errorf("%v", err)
	}

	fmt.Fprintf(c.app.Out, "imported %d, failed %d\n", res.SuccessCount, res.ErrorCount)
	for _, e := range res.Errors {
		fmt.Fprintln(c.app.Out, " ", e)
	}
	if res.SuccessCount == 0 && res.ErrorCount > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type exportCmd struct {
	app       *App
	container string
	outFile   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a container as CSV" }
func (*exportCmd) Usage() string {
	return `spent export [-container <name>] [-o <path>]

  Writes the container's full history as CSV, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.container, "container", "", "Container name (defaults to the default container).")
	f.StringVar(&c.outFile, "o", "", "Output file (defaults to stdout).")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cont, err := c.app.resolveContainer(ctx, c.container)
	if err != nil {
		return c.app.errorf("%v", err)
	}
	out, err := c.app.Handler.ExportCSV(ctx, cont.ID)
	if err != nil {
		return c.app.errorf("%v", err)
	}
	if c.outFile == "" {
		fmt.Fprint(c.app.Out, out)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.outFile, []byte(out), 0o644); err != nil {
		return c.app.errorf("%v", err)
	}
	return subcommands.ExitSuccess
}
