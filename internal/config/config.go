// internal/config/config.go
//
// Runtime configuration.
// Precedence: defaults < YAML file < environment < command-line flags
// (flags are applied by the cli package after Load).
//
// Environment:
//   SOLVER_OPENING_GUESS, SOLVER_MAX_ATTEMPTS, SOLVER_PROMPT,
//   WORDS_DICTIONARY_FILE, WORDS_ALLOWED_FILE,
//   DB_PATH, PORT, LOG_LEVEL, JWT_SECRET, DAILY_SALT

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved runtime configuration shared by every command.
type Config struct {
	OpeningGuess   string `yaml:"opening_guess"`
	MaxAttempts    int    `yaml:"max_attempts"`
	Prompt         string `yaml:"prompt"` // auto | form | lines
	DictionaryFile string `yaml:"dictionary_file"`
	AllowedFile    string `yaml:"allowed_file"`
	DBPath         string `yaml:"db_path"`
	Port           string `yaml:"port"`
	LogLevel       string `yaml:"log_level"`
	JWTSecret      string `yaml:"jwt_secret"`
	DailySalt      string `yaml:"daily_salt"`
}

// Default returns the built-in values that YAML, env and flags override.
func Default() Config {
	return Config{
		OpeningGuess: session.DefaultOpeningGuess,
		MaxAttempts:  session.DefaultMaxAttempts,
		Prompt:       "auto",
		DBPath:       "./data/solver.db",
		Port:         "5175",
		LogLevel:     "info",
		DailySalt:    "dev-salt",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"SOLVER_OPENING_GUESS":  &c.OpeningGuess,
		"SOLVER_PROMPT":         &c.Prompt,
		"WORDS_DICTIONARY_FILE": &c.DictionaryFile,
		"WORDS_ALLOWED_FILE":    &c.AllowedFile,
		"DB_PATH":               &c.DBPath,
		"PORT":                  &c.Port,
		"LOG_LEVEL":             &c.LogLevel,
		"JWT_SECRET":            &c.JWTSecret,
		"DAILY_SALT":            &c.DailySalt,
	}
	for k, dst := range str {
		if v, ok := lookup(k); ok && v != "" {
			*dst = v
		}
	}
	if v, ok := lookup("SOLVER_MAX_ATTEMPTS"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: SOLVER_MAX_ATTEMPTS=%q", ErrInvalidConfig, v)
		}
		c.MaxAttempts = n
	}
	return nil
}

// Validate checks the values a session depends on.
func (c Config) Validate() error {
	if _, err := solver.NormalizeGuess(c.OpeningGuess); err != nil {
		return fmt.Errorf("%w: opening guess: %v", ErrInvalidConfig, err)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1, got %d", ErrInvalidConfig, c.MaxAttempts)
	}
	switch c.Prompt {
	case "", "auto", "form", "lines":
	default:
		return fmt.Errorf("%w: prompt must be auto, form or lines, got %q", ErrInvalidConfig, c.Prompt)
	}
	return nil
}

// Session returns the solver settings for a new session.
func (c Config) Session() session.Config {
	return session.Config{OpeningGuess: c.OpeningGuess, MaxAttempts: c.MaxAttempts}
}

// Words returns the lexicon file locations.
func (c Config) Words() words.Sources {
	return words.Sources{DictionaryFile: c.DictionaryFile, AllowedFile: c.AllowedFile}
}
