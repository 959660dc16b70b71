package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrUnknownStorageDriver  = errors.New("unknown storage driver")
	ErrPostgresConfigMissing = errors.New("postgres username and database are required")
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the cross-field rules cleanenv tags cannot express.
func (cfg *Config) Validate() error {
	switch cfg.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.Postgres.Username == "" || cfg.Postgres.Database == "" {
			return ErrPostgresConfigMissing
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStorageDriver, cfg.Storage.Driver)
	}

	return nil
}
