// Package cli implements the spent command line, a thin host over the
// dispatch boundary in internal/api.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"github.com/danielb254/Spent/internal/api"
	"github.com/danielb254/Spent/internal/database/repository"
)

// App bundles what every command needs.
type App struct {
	Handler  *api.Handler
	Currency string
	Out      io.Writer
}

// Commands returns every subcommand bound to app.
func Commands(app *App) []subcommands.Command {
	return []subcommands.Command{
		&txCmd{app: app},
		&addCmd{app: app},
		&rmCmd{app: app},
		&updateCmd{app: app},
		&balanceCmd{app: app},
		&totalsCmd{app: app},
		&monthsCmd{app: app},
		&containersCmd{app: app},
		&containerAddCmd{app: app},
		&containerRmCmd{app: app},
		&containerRenameCmd{app: app},
		&categoriesCmd{app: app},
		&categoryAddCmd{app: app},
		&categoryRmCmd{app: app},
		&importCmd{app: app},
		&exportCmd{app: app},
	}
}

// resolveContainer maps a -container flag value to a container. The
// empty name picks the default container.
func (a *App) resolveContainer(ctx context.Context, name string) (repository.Container, error) {
	cs, err := a.Handler.GetContainers(ctx)
	if err != nil {
		return repository.Container{}, err
	}
	if name == "" {
		for _, c := range cs {
			if c.IsDefault {
				return c, nil
			}
		}
		return repository.Container{}, errors.New("no default container")
	}
	for _, c := range cs {
		if c.Name == name {
			return c, nil
		}
	}
	return repository.Container{}, fmt.Errorf("unknown container %q", name)
}

func (a *App) errorf(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(a.Out, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
