package main

import (
	"fmt"

	"github.com/drakos74/free-mri/infra/config"
	"github.com/drakos74/free-mri/internal/dataset"
	"github.com/drakos74/free-mri/internal/plot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config points to the two feature vectors to compare.
type Config struct {
	File   string    `json:"file"`
	First  int       `json:"first"`
	Second int       `json:"second"`
	Labels [2]string `json:"labels"`
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	var cfg Config
	config.MustLoad("features", &cfg)

	m, err := dataset.ReadFile(cfg.File)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.File).Msg("could not read features")
	}

	for _, row := range []int{cfg.First, cfg.Second} {
		if row < 0 || row >= len(m) {
			log.Fatal().Int("row", row).Int("rows", len(m)).Msg("feature row out of range")
		}
	}

	s, err := plot.Compare(
		plot.Series{Label: label(cfg, 0), Values: m[cfg.First]},
		plot.Series{Label: label(cfg, 1), Values: m[cfg.Second]},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("could not plot features")
	}
	fmt.Println(s)
}

func label(cfg Config, i int) string {
	if cfg.Labels[i] != "" {
		return cfg.Labels[i]
	}
	return fmt.Sprintf("Subject %d", i+1)
}
