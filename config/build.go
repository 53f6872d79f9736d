package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Philipp01105/serlog/logger"
	"github.com/Philipp01105/serlog/transport"
	"github.com/Philipp01105/serlog/transport/serialport"
)

// Transport opens the configured outputs: the serial port (or stdout when
// Port is empty), fanned out to Output when it is set.
func (c Config) Transport() (transport.Transport, error) {
	var primary transport.Transport
	if c.Port == "" {
		primary = transport.NewWriterTransport(transport.WriterConfig{Writer: c.Stdout})
	} else {
		port, err := serialport.Open(serialport.Config{Port: c.Port, Baud: c.Baud})
		if err != nil {
			return nil, err
		}
		primary = port
	}

	if c.Output == "" {
		return primary, nil
	}

	file, err := transport.NewFileTransport(transport.FileConfig{Filename: c.Output})
	if err != nil {
		return nil, multierr.Append(err, primary.Close())
	}
	return transport.NewMultiTransport(primary, file), nil
}

// Logger validates c and builds a Logger writing to its transport
func (c Config) Logger() (*logger.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	t, err := c.Transport()
	if err != nil {
		return nil, fmt.Errorf("open transport: %w", err)
	}
	return logger.NewBuilder().
		WithTransport(t).
		WithLevel(c.Level).
		WithLineEnding(c.Terminator()).
		WithSerialized(c.Serialized).
		Build(), nil
}
