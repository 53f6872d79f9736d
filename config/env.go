package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv
const (
	EnvLevel      = "SERLOG_LEVEL"
	EnvPort       = "SERLOG_PORT"
	EnvBaud       = "SERLOG_BAUD"
	EnvLineEnding = "SERLOG_LINE_ENDING"
)

// ApplyEnv loads the given .env files (".env" when none are named, missing
// files are skipped) and then overrides c from SERLOG_* variables. Values
// already set in the process environment win over .env entries.
func (c *Config) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v, ok := os.LookupEnv(EnvLevel); ok {
		if err := c.Level.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvLevel, err)
		}
	}
	if v, ok := os.LookupEnv(EnvPort); ok {
		c.Port = v
	}
	if v, ok := os.LookupEnv(EnvBaud); ok {
		baud, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvBaud, v)
		}
		c.Baud = baud
	}
	if v, ok := os.LookupEnv(EnvLineEnding); ok {
		c.LineEnding = v
	}
	return c.Validate()
}
