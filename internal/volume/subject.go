package volume

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// NormalizeSubject loads the subject volume for the modality and z-score normalizes its foreground.
func NormalizeSubject(src Source, subject string, modality Modality) (Volume, error) {
	v, err := src.Load(subject, modality)
	if err != nil {
		return Volume{}, err
	}
	n, err := Normalize(v, true)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Str("modality", string(modality)).Msg("could not normalize volume")
		return Volume{}, fmt.Errorf("could not normalize %s for '%s': %w", modality, subject, err)
	}
	return n, nil
}

// SubjectMasks loads the segmentation of the subject and derives the region masks.
func SubjectMasks(src Source, subject string) (map[Label]Volume, error) {
	seg, err := src.Load(subject, Seg)
	if err != nil {
		return nil, err
	}
	return Masks(seg), nil
}
