package main

import (
	"fmt"

	"github.com/drakos74/free-mri/infra/config"
	"github.com/drakos74/free-mri/internal/storage"
	"github.com/drakos74/free-mri/internal/storage/file/json"
	"github.com/drakos74/free-mri/internal/volume"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config lists the subjects to normalize.
type Config struct {
	Root     string   `json:"root"`
	Subjects []string `json:"subjects"`
	// Masks derives the tumour region masks from the segmentation as well
	Masks bool `json:"masks"`
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	var cfg Config
	config.MustLoad("normalize", &cfg)

	if cfg.Root != "" {
		storage.DefaultDir = cfg.Root
	}

	var failed int
	for _, subject := range cfg.Subjects {
		if err := run(subject, cfg.Masks); err != nil {
			log.Error().Err(err).Str("subject", subject).Msg("could not process subject")
			failed++
		}
	}
	log.Info().Int("subjects", len(cfg.Subjects)).Int("failed", failed).Msg("normalization completed")
}

func run(subject string, masks bool) error {
	persistence, err := json.BlobShard(storage.VolumeDir)(subject)
	if err != nil {
		return err
	}
	store := volume.NewStore(persistence)

	for _, modality := range volume.Modalities {
		n, err := volume.NormalizeSubject(store, subject, modality)
		if err != nil {
			return err
		}
		if err := store.Save(fmt.Sprintf("%s_%s_normalize", subject, modality), n); err != nil {
			return err
		}
	}

	if !masks {
		return nil
	}
	mm, err := volume.SubjectMasks(store, subject)
	if err != nil {
		return err
	}
	for _, label := range volume.Labels {
		if err := store.Save(fmt.Sprintf("%s_%s", subject, label), mm[label]); err != nil {
			return err
		}
	}
	return nil
}
