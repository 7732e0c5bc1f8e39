package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type categoriesCmd struct {
	app *App
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories" }
func (*categoriesCmd) Usage() string {
	return `spent categories

  Lists category names, defaults first.
`
}

func (c *categoriesCmd) SetFlags(*flag.FlagSet) {}

func (c *categoriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names, err := c.app.Handler.GetCategories(ctx)
	if err != nil {
		return c.app.errorf("%v", err)
	}
	for _, n := range names {
		fmt.Fprintln(c.app.Out, n)
	}
	return subcommands.ExitSuccess
}

type categoryAddCmd struct {
	app *App
}

func (*categoryAddCmd) Name() string     { return "category-add" }
func (*categoryAddCmd) Synopsis() string { return "add a category" }
func (*categoryAddCmd) Usage() string {
	return `spent category-add <name>
`
}

func (c *categoryAddCmd) SetFlags(*flag.FlagSet) {}

func (c *categoryAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.errorf("exactly one name is required")
	}
	if err := c.app.Handler.AddCategory(ctx, f.Arg(0)); err != nil {
		return c.app.errorf("%v", err)
	}
	return subcommands.ExitSuccess
}

type categoryRmCmd struct {
	app *App
}

func (*categoryRmCmd) Name() string     { return "category-rm" }
func (*categoryRmCmd) Synopsis() string { return "delete a user category" }
func (*categoryRmCmd) Usage() string {
	return `spent category-rm <name>

  Removes a user category. Default categories are kept; transactions
  labeled with a removed category keep their label.
`
}

func (c *categoryRmCmd) SetFlags(*flag.FlagSet) {}

func (c *categoryRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.errorf("exactly one name is required")
	}
	if err := c.app.Handler.DeleteCategory(ctx, f.Arg(0)); err != nil {
		return c.app.errorf("%v", err)
	}
	return subcommands.ExitSuccess
}
