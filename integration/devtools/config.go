package devtools

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the inspector server configuration. The defaults bind to
// localhost so a development build never exposes application state on a
// public interface by accident.
type Config struct {
	Addr         string        `env:"NAVKIT_DEVTOOLS_ADDR" envDefault:"localhost:8973"`
	Path         string        `env:"NAVKIT_DEVTOOLS_PATH" envDefault:"/ws"`
	WriteTimeout time.Duration `env:"NAVKIT_DEVTOOLS_WRITE_TIMEOUT" envDefault:"5s"`
}

// LoadConfig populates a Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
