package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	DbDsn  string
	OutDir string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration, loading .env once when
// present. DB_DSN is only needed when a SQL source or sink is used.
func GetConfig() *Config {
	once.Do(func() {
		// A missing .env file is fine; plain environment variables work too.
		_ = godotenv.Load()

		config = &Config{
			DbDsn:  os.Getenv("DB_DSN"),
			OutDir: os.Getenv("OUT_DIR"),
		}
		if config.OutDir == "" {
			config.OutDir = "."
		}
	})
	return config
}
