package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/ganttline/internal/cli"
	"github.com/alexanderramin/ganttline/internal/config"
	"github.com/alexanderramin/ganttline/internal/db"
	"github.com/alexanderramin/ganttline/internal/schedule"
	"github.com/alexanderramin/ganttline/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Defaults, config files and GANTTLINE_* variables. Flags are applied by
	// the root command once they are parsed.
	cfg, err := config.Load(config.Options{})
	if err != nil {
		return err
	}

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{Config: *cfg}

	// The database is opened only after flags are applied so --db wins.
	app.Connect = func(cfg config.Config) (service.BoardService, error) {
		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}

		var observers []service.UseCaseObserver
		if cfg.LogCalls {
			observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
		}

		return service.NewBoardService(
			db.NewSQLiteUnitOfWork(database),
			schedule.NewEngine(schedule.Policy{PropagateTransitively: cfg.PropagateTransitively}),
			cfg.Layout(),
			observers...,
		), nil
	}

	// Detect interactive terminal for forms and the board view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
