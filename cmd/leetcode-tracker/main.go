package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/app"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/catalog"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/config"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/store"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/tracker"
)

func main() {
	flags := config.Flags()
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The catalog is the one thing the tracker cannot run without.
	problems, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load problem catalog %q: %v", cfg.CatalogFile, err)
	}
	if len(problems) == 0 {
		slog.Warn("no problems loaded from catalog", "path", cfg.CatalogFile)
	}

	t := tracker.New(problems, cfg.WeeklyGoal)
	st := store.New(cfg.ProgressFile, cfg.SolutionsDir)
	if err := st.Load(t); err != nil {
		log.Fatalf("Failed to load progress: %v", err)
	}

	if err := app.New(cfg, t, st).Run(); err != nil {
		log.Fatalf("Tracker exited with error: %v", err)
	}
}
