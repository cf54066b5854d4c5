// Package config loads the process configuration from the environment, with
// a .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"resume-builder/internal/i18n"
	"resume-builder/internal/model"
)

type Config struct {
	// Port the HTTP server listens on.
	Port string
	// StateDir is where the durable AppState snapshot lives.
	StateDir string
	// ChromePath overrides headless Chrome discovery for the export engine.
	ChromePath string
	// APIKey optionally seeds the AI credential so the user is not prompted.
	APIKey string
	// DefaultLanguage picks the string table for fresh sessions.
	DefaultLanguage model.Language
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getenv("PORT", "3000"),
		StateDir:        getenv("STATE_DIR", ".state"),
		ChromePath:      os.Getenv("CHROME_PATH"),
		APIKey:          os.Getenv("OPENROUTER_API_KEY"),
		DefaultLanguage: model.LangEnglish,
	}
	if lang := os.Getenv("DEFAULT_LANGUAGE"); lang != "" {
		cfg.DefaultLanguage = i18n.Match(lang)
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
