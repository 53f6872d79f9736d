package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"

	"github.com/Philipp01105/serlog/core"
	"github.com/Philipp01105/serlog/transport/serialport"
)

// ErrInvalid is returned for configuration values that cannot be used
var ErrInvalid = errors.New("invalid configuration")

// Line endings accepted in LineEnding
const (
	LF   = "lf"
	CRLF = "crlf"
)

// Config describes where and how serlog writes
type Config struct {
	// Level is the threshold (default: DEBUG)
	Level core.Level `yaml:"level" json:"level"`
	// Port is the serial port name or device path; empty writes to stdout
	Port string `yaml:"port" json:"port"`
	// Baud is the serial line speed (default: 9600)
	Baud int `yaml:"baud" json:"baud"`
	// LineEnding is "lf" (default) or "crlf"
	LineEnding string `yaml:"line_ending" json:"line_ending"`
	// Serialized guards every line with a mutex
	Serialized bool `yaml:"serialized" json:"serialized"`
	// Output is an optional file that receives a copy of every line
	Output string `yaml:"output" json:"output"`
	// Stdout replaces os.Stdout when Port is empty
	Stdout io.Writer `yaml:"-" json:"-"`
}

// Default returns the configuration used when nothing is loaded
func Default() Config {
	return Config{
		Level:      core.DebugLevel,
		Baud:       serialport.DefaultBaud,
		LineEnding: LF,
	}
}

// Load reads a YAML (.yaml, .yml) or JSON5 (.json, .json5) file on top of
// Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json", ".json5":
		err = json5.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field and returns an error wrapping ErrInvalid
func (c Config) Validate() error {
	if c.Level < core.DebugLevel || c.Level > core.ErrorLevel {
		return fmt.Errorf("%w: level %d", ErrInvalid, c.Level)
	}
	if c.Baud <= 0 {
		return fmt.Errorf("%w: baud %d", ErrInvalid, c.Baud)
	}
	switch strings.ToLower(c.LineEnding) {
	case "", LF, CRLF:
	default:
		return fmt.Errorf("%w: line ending %q", ErrInvalid, c.LineEnding)
	}
	return nil
}

// Terminator returns the bytes written after every line
func (c Config) Terminator() string {
	if strings.EqualFold(c.LineEnding, CRLF) {
		return "\r\n"
	}
	return "\n"
}
