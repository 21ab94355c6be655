package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arjunshenoy/funnelcast/internal/cli"
	"github.com/arjunshenoy/funnelcast/internal/db"
	"github.com/arjunshenoy/funnelcast/internal/repository"
	"github.com/arjunshenoy/funnelcast/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Plain output when piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Determine DB path: env var or default ~/.funnelcast/funnelcast.db
	dbPath := os.Getenv("FUNNELCAST_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".funnelcast", "funnelcast.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	pocRepo := repository.NewSQLitePocRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects:   service.NewProjectService(projectRepo, uow),
		Plans:      service.NewPlanService(projectRepo, uow),
		Actuals:    service.NewActualsService(projectRepo, uow),
		MediaPlans: service.NewMediaPlanService(projectRepo, uow),
		Reports:    service.NewReportService(projectRepo),
		Pocs:       service.NewPocService(pocRepo),
	}

	return cli.NewRootCmd(app).Execute()
}
