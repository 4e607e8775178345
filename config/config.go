// Package config loads generator settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, e.g. DECKGEN_OUTPUT.
const EnvPrefix = "DECKGEN"

// Defaults. The struct tags below must use the same literals.
const (
	DefaultOutput   = "Data_Mining_Betrugserkennung_Praesentation.pptx"
	DefaultFormats  = "pptx"
	DefaultLanguage = "de"
)

// Config structure
type Config struct {
	// Output is the pptx path; other formats reuse its base name.
	// Env: DECKGEN_OUTPUT
	Output string `envconfig:"OUTPUT" default:"Data_Mining_Betrugserkennung_Praesentation.pptx" json:"output"`

	// Formats is a comma separated list of pptx, docx, xlsx, pdf or "all".
	// Env: DECKGEN_FORMATS
	Formats string `envconfig:"FORMATS" default:"pptx" json:"formats"`

	// Language selects console messages (de or en).
	// Env: DECKGEN_LANGUAGE
	Language string `envconfig:"LANGUAGE" default:"de" json:"language"`

	// LogDir enables file logging when set.
	// Env: DECKGEN_LOG_DIR
	LogDir string `envconfig:"LOG_DIR" json:"logDir"`

	// DetailedLog also logs every slide title.
	// Env: DECKGEN_DETAILED_LOG
	DetailedLog bool `envconfig:"DETAILED_LOG" default:"false" json:"detailedLog"`
}

// LoadDotEnv loads variables from a .env file. If path is empty it loads
// ".env" from the working directory. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadFromEnv reads the configuration from DECKGEN_* variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

// Load reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	return LoadFromEnv()
}

// Validate rejects settings that cannot produce output.
func (c Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path is empty")
	}
	if c.Formats == "" {
		return fmt.Errorf("no output format configured")
	}
	return nil
}
