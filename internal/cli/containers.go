package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type containersCmd struct {
	app *App
}

func (*containersCmd) Name() string     { return "containers" }
func (*containersCmd) Synopsis() string { return "list containers" }
func (*containersCmd) Usage() string {
	return `spent containers

  Lists containers, default first.
`
}

func (c *containersCmd) SetFlags(*flag.FlagSet) {}

func (c *containersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cs, err := c.app.Handler.GetContainers(ctx)
	if err != nil {
		return c.app.errorf("%v", err)
	}
	for _, cont := range cs {
		marker := " "
		if cont.IsDefault {
			marker = "*"
		}
		fmt.Fprintf(c.app.Out, "%s %-20s %s\n", marker, cont.Name, cont.CreatedAt)
	}
	return subcommands.ExitSuccess
}

type containerAddCmd struct {
	app *App
}

func (*containerAddCmd) Name() string     { return "container-add" }
func (*containerAddCmd) Synopsis() string { return "create a container" }
func (*containerAddCmd) Usage() string {
	return `spent container-add <name>

  Creates a new container. Names are unique.
`
}

func (c *containerAddCmd) SetFlags(*flag.FlagSet) {}

func (c *containerAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.errorf("exactly one name is required")
	}
	cont, err := c.app.Handler.AddContainer(ctx, f.Arg(0))
	if err != nil {
		return c.app.errorf("%v", err)
	}
	fmt.Fprintf(c.app.Out, "created %q (%s)\n", cont.Name, cont.ID)
	return subcommands.ExitSuccess
}

type containerRmCmd struct {
	app *App
}

func (*containerRmCmd) Name() string     { return "container-rm" }
func (*containerRmCmd) Synopsis() string { return "delete a container and its transactions" }
func (*containerRmCmd) Usage() string {
	return `spent container-rm <name>

  Deletes a container and everything in it. The default container cannot
  be deleted.
`
}

func (c *containerRmCmd) SetFlags(*flag.FlagSet) {}

func (c *containerRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return c.app.errorf("exactly one name is required")
	}
	cont, err := c.app.resolveContainer(ctx, f.Arg(0))
	if err != nil {
		return c.app.errorf("%v", err)
	}
	if err := c.app.Handler.DeleteContainer(ctx, cont.ID); err != nil {
		return c.app.errorf("%v", err)
	}
	fmt.Fprintf(c.app.Out, "deleted %q\n", cont.Name)
	return subcommands.ExitSuccess
}

type containerRenameCmd struct {
	app *App
}

func (*containerRenameCmd) Name() string     { return "container-rename" }
func (*containerRenameCmd) Synopsis() string { return "rename a container" }
func (*containerRenameCmd) Usage() string {
	return `spent container-rename <old-name> <new-name>
`
}

func (c *containerRenameCmd) SetFlags(*flag.FlagSet) {}

func (c *containerRenameCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return c.app.errorf("old and new name are required")
	}
	cont, err := c.app.resolveContainer(ctx, f.Arg(0))
	if err != nil {
		return c.app.errorf("%v", err)
	}
	renamed, err := c.app.Handler.UpdateContainer(ctx, cont.ID, f.Arg(1))
	if err != nil {
		return c.app.errorf("%v", err)
	}
	fmt.Fprintf(c.app.Out, "renamed %q to %q\n", cont.Name, renamed.Name)
	return subcommands.ExitSuccess
}
