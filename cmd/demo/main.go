package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/ldengine/pkg/config"
	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/cbodonnell/ldengine/pkg/log"
	"github.com/cbodonnell/ldengine/pkg/storage"
	"github.com/cbodonnell/ldengine/pkg/version"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file")
	debug := flag.Bool("debug", false, "Debug mode")
	logLevel := flag.String("log-level", "", "Log level (error, warn, info, debug, trace)")
	profileMode := flag.String("profile", "", "Enable profiling (cpu or mem)")
	flag.Parse()

	if *logLevel == "" {
		*logLevel = os.Getenv("LOG_LEVEL")
	}
	if *logLevel != "" {
		level, err := log.ParseLogLevel(*logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to parse log level: %v\n", err)
			os.Exit(1)
		}
		log.SetLevel(level)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown profile mode %q\n", *profileMode)
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if cfg.Logging.Level != "" && *logLevel == "" {
		if level, err := log.ParseLogLevel(cfg.Logging.Level); err == nil {
			log.SetLevel(level)
		}
	}

	log.Info("Starting %s demo", version.String())

	repo, err := newRepository(cfg)
	if err != nil {
		log.Error("Failed to open save repository: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			log.Error("Failed to close save repository: %v", err)
		}
	}()

	err = engine.Run(NewDemoGame(), engine.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		TPS:        cfg.Window.TPS,
		Repository: repo,
		Debug:      *debug,
	})
	if err != nil {
		log.Error("Game exited with error: %v", err)
		os.Exit(1)
	}
}

func newRepository(cfg *config.Config) (storage.Repository, error) {
	switch cfg.Save.Backend {
	case "sqlite":
		return storage.NewSQLiteRepository(context.Background(), cfg.Save.Path)
	default:
		return storage.NewFileRepository(cfg.Save.Dir)
	}
}
