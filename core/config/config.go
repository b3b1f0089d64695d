package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// Load populates cfg from environment variables using `env` struct
// tags. A .env file in the working directory is loaded once per
// process before the first parse; a missing file is not an error.
func Load(cfg any) error {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// MustLoad is Load that panics on failure, for use at startup where a
// bad environment should stop the process.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
