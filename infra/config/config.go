package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const (
	// Env overrides the directory the configs are loaded from.
	Env = "FREE_MRI_CONFIG"
	dir = "infra/config"
)

// Dir returns the config directory.
func Dir() string {
	if d := os.Getenv(Env); d != "" {
		return d
	}
	return dir
}

// Load loads the config for the given key into v.
func Load(key string, v interface{}) ([]byte, error) {
	p := filepath.Join(Dir(), fmt.Sprintf("%s.json", key))
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("could not load config for %s: %w", key, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("command", key).Str("path", p).Msg("loaded config")
	return b, nil
}

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) []byte {
	b, err := Load(key, v)
	if err != nil {
		panic(err.Error())
	}
	return b
}
