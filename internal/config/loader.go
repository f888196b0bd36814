package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPaths are tried in order when CONFIG_PATH is unset. A .env file is
// parsed by cleanenv like any other format.
var defaultPaths = []string{"./config.yaml", "./config.yml", "./.env"}

// Load reads configuration with priority ENV > file > env-default tags.
// CONFIG_PATH names the file explicitly and must then exist; otherwise the
// first of defaultPaths that exists is used, or ENV alone when none does.
func Load() (*Config, error) {
	var cfg Config

	path, err := resolvePath(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config: file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	for _, p := range defaultPaths {
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config: file %s: %w", p, err)
		}
	}
	return "", nil
}
