package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/free-mri/infra/config"
	"github.com/drakos74/free-mri/internal/dataset"
	"github.com/drakos74/free-mri/internal/math/standard"
	"github.com/drakos74/free-mri/internal/storage"
	"github.com/drakos74/free-mri/internal/storage/file/json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config defines the files to standardize.
type Config struct {
	Train    string            `json:"train"`
	Test     string            `json:"test"`
	Output   string            `json:"output"`
	Name     string            `json:"name"`
	Strategy standard.Strategy `json:"strategy"`
	Policy   standard.Policy   `json:"policy"`
	Epsilon  float64           `json:"epsilon"`
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	var cfg Config
	config.MustLoad("zscore", &cfg)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Str("train", cfg.Train).Msg("could not standardize")
	}
}

func run(cfg Config) error {
	s, err := standard.New(cfg.Strategy, standard.WithPolicy(cfg.Policy, cfg.Epsilon))
	if err != nil {
		return err
	}

	train, err := dataset.ReadFile(cfg.Train)
	if err != nil {
		return err
	}

	z, stats, err := s.Fit(train)
	if err != nil {
		return fmt.Errorf("could not fit '%s': %w", cfg.Train, err)
	}

	if err := os.MkdirAll(cfg.Output, os.ModePerm); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	if err := dataset.WriteFile(output(cfg, "train"), z); err != nil {
		return err
	}

	// the evaluation set uses the training statistics
	if cfg.Test != "" {
		test, err := dataset.ReadFile(cfg.Test)
		if err != nil {
			return err
		}
		zt, err := s.Transform(test, stats)
		if err != nil {
			return fmt.Errorf("could not transform '%s': %w", cfg.Test, err)
		}
		if err := dataset.WriteFile(output(cfg, "test"), zt); err != nil {
			return err
		}
	}

	store := json.NewJsonBlob(storage.StatsDir, cfg.Name, true).WithRoot(cfg.Output)
	if err := standard.Save(store, storage.Key{Name: cfg.Name, Label: "stats"}, stats); err != nil {
		return err
	}

	log.Info().
		Str("output", cfg.Output).
		Int("rows", len(z)).
		Int("columns", stats.Columns()).
		Floats64("means", stats.Means()).
		Floats64("std-devs", stats.StdDevs()).
		Msg("standardized")
	return nil
}

func output(cfg Config, set string) string {
	return filepath.Join(cfg.Output, fmt.Sprintf("%s_%s.csv", cfg.Name, set))
}
