package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/kmcrawford/crewbook/internal/config"
	"github.com/kmcrawford/crewbook/internal/database"
	"github.com/kmcrawford/crewbook/internal/database/repository"
	"github.com/kmcrawford/crewbook/internal/directory"
	"github.com/kmcrawford/crewbook/internal/tui"
)

func main() {
	var (
		demo    bool
		cfgPath string
		dbPath  string
	)
	pflag.BoolVar(&demo, "demo", false, "run against the built-in user table, no database")
	pflag.StringVar(&cfgPath, "config", "", "path to config.toml (overrides CREWBOOK_CONFIG)")
	pflag.StringVar(&dbPath, "db", "", "sqlite database path override")
	pflag.Parse()

	if cfgPath != "" {
		os.Setenv("CREWBOOK_CONFIG", cfgPath)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	ctx := context.Background()

	var dir tui.Directory
	if demo {
		dir = directory.NewTable(directory.DefaultUsers, cfg.Directory.FetchDelay)
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			log.Fatalf("mkdir db dir: %v", err)
		}
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()

		if err := database.RunMigrationsWithDB(db, "internal/database/migrations"); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		if err := database.SeedDefaults(ctx, db); err != nil {
			log.Fatalf("seed defaults: %v", err)
		}
		dir = repository.NewUserRepo(db)
	}

	p := tea.NewProgram(tui.New(ctx, cfg, dir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
