// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads at startup.
type Config struct {
	Addr         string `env:"SOTC_ADDR" envDefault:":8080"`
	DBPath       string `env:"SOTC_DB_PATH" envDefault:"sotchelper.db"`
	TemplateDir  string `env:"SOTC_TEMPLATE_DIR" envDefault:"templates"`
	StaticDir    string `env:"SOTC_STATIC_DIR" envDefault:"static"`
	SheetPath    string `env:"SOTC_SHEET_PATH"`
	LogLevel     string `env:"SOTC_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"SOTC_LOG_FORMAT" envDefault:"text"`
	OTelEndpoint string `env:"SOTC_OTEL_ENDPOINT"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads env-tagged fields of target from the environment.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
