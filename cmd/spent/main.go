package main

import (
	"context"
	"flag"
	"os"
	"path"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/danielb254/Spent/internal/api"
	"github.com/danielb254/Spent/internal/cli"
	"github.com/danielb254/Spent/internal/config"
	"github.com/danielb254/Spent/internal/database"
	"github.com/danielb254/Spent/internal/database/repository"
	"github.com/danielb254/Spent/internal/logger"
	"github.com/danielb254/Spent/internal/service"
)

func main() {
	ctx := context.Background()
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatal().Err(err).Msg("mkdir db dir")
	}

	db, err := database.Init(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("init db")
	}
	defer db.Close()

	// repositories
	containerRepo := repository.NewContainerRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	handler := &api.Handler{
		Containers:   containerRepo,
		Categories:   categoryRepo,
		Transactions: txRepo,
		Importer:     &service.Importer{Transactions: txRepo, Log: log},
		Exporter:     &service.Exporter{Transactions: txRepo},
		Log:          log,
	}

	app := &cli.App{Handler: handler, Currency: cfg.UI.CurrencySymbol, Out: os.Stdout}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cli.Commands(app) {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(ctx)))
}
