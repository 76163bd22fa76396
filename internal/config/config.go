// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultTableTitle is the heading shown above the assessment table.
const DefaultTableTitle = "Social Sustainability Assessments"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string
	DBPath     string
	TableTitle string
}

// Load reads configuration from environment variables and returns a Config.
// Variables from an optional .env file (SUSTAINHUB_ENV_FILE, default ".env")
// are applied first without overriding values already set in the process
// environment. Optional variables with defaults: SUSTAINHUB_LISTEN_ADDR
// (127.0.0.1:8080), SUSTAINHUB_DB_PATH (sustainhub.db),
// SUSTAINHUB_TABLE_TITLE (Social Sustainability Assessments).
func Load() (*Config, error) {
	envFile := ".env"
	if v, ok := os.LookupEnv("SUSTAINHUB_ENV_FILE"); ok && v != "" {
		envFile = v
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("SUSTAINHUB_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	dbPath := "sustainhub.db"
	if v, ok := os.LookupEnv("SUSTAINHUB_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	tableTitle := DefaultTableTitle
	if v, ok := os.LookupEnv("SUSTAINHUB_TABLE_TITLE"); ok && v != "" {
		tableTitle = v
	}

	return &Config{
		ListenAddr: listenAddr,
		DBPath:     dbPath,
		TableTitle: tableTitle,
	}, nil
}
