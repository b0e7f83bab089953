package etl

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds importer pipeline settings.
type Config struct {
	RecipesPath string `env:"IMPORTER_RECIPES_PATH"`
	SourceSlug  string `env:"IMPORTER_SOURCE_SLUG" env-default:"dump"`
	BatchSize   int    `env:"IMPORTER_BATCH_SIZE"  env-default:"500"`
	DryRun      bool   `env:"IMPORTER_DRY_RUN"`
}

// LoadConfig reads importer configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("importer config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("importer config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("importer config: read env: %w", err)
	}

	return &cfg, nil
}
