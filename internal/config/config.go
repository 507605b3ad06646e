package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"TransactLab"`
	}

	API struct {
		BaseURL  string        `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
		Token    string        `envconfig:"API_TOKEN"`
		Timeout  time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
		PageSize int           `envconfig:"API_PAGE_SIZE" default:"20"`
	}

	Server struct {
		Port        int           `envconfig:"PORT" default:"8080"`
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		DatasetSize int           `envconfig:"SANDBOX_DATASET_SIZE" default:"242"`
		Seed        uint64        `envconfig:"SANDBOX_SEED" default:"11"`
	}

	Auth struct {
		Secret   string        `envconfig:"AUTH_SECRET" default:"sandbox-dev-secret"`
		TokenTTL time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"12h"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
