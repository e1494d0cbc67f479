package main

import (
	"context"
	"fmt"
	"os"

	"github.com/notjagan/poketypecalc/pkg/config"
	"github.com/notjagan/poketypecalc/pkg/model"
	"github.com/notjagan/poketypecalc/pkg/source"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfg *config.Config

// setup reads the config file and lets any flag set on the command line override it.
func setup(cmd *cobra.Command) error {
	c, err := config.Read(configPath)
	if err != nil {
		return fmt.Errorf("error while reading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("chart") {
		c.Chart.Path = chartPath
	}
	if flags.Changed("db") {
		c.DB.Path = dbPath
	}
	if flags.Changed("generation") {
		c.DB.Generation = generation
	}
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if flags.Lookup("top") != nil && flags.Changed("top") {
		c.Search.Top = searchTop
	}

	err = c.Validate()
	if err != nil {
		return err
	}
	cfg = c

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	return nil
}

func loadChart(ctx context.Context) (*model.Chart, error) {
	switch {
	case cfg.DB.Path != "":
		db, err := source.OpenDB(ctx, cfg.DB.Path)
		if err != nil {
			return nil, fmt.Errorf("error while opening database %q: %w", cfg.DB.Path, err)
		}
		defer func() {
			err := db.Close()
			if err != nil {
				log.Error().Err(err).Msg("error while closing database")
			}
		}()

		return db.Chart(ctx, cfg.DB.Generation)
	case cfg.Chart.Path != "":
		return source.ReadFile(cfg.Chart.Path)
	default:
		return source.Canonical()
	}
}

func loadModel(ctx context.Context) (*model.Model, error) {
	chart, err := loadChart(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while loading type chart: %w", err)
	}

	mdl, err := model.New(*chart)
	if err != nil {
		return nil, fmt.Errorf("error while building type registry: %w", err)
	}

	return mdl, nil
}
