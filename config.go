package logquery

import (
	"github.com/roadrunner-server/errors"
	"github.com/roadrunner-server/logquery/invocation"
)

const (
	consoleEncoding string = "console"
	jsonEncoding    string = "json"
)

// Config is the logquery section of the configuration.
type Config struct {
	// Level is the lowest level recorded, default trace.
	Level string `mapstructure:"level"`
	// Console echoes every recorded call to stdout.
	Console bool `mapstructure:"console"`
	// Encoding of the console echo: console or json.
	Encoding string `mapstructure:"encoding"`
}

func (c *Config) InitDefault() (invocation.Level, error) {
	if c.Level == "" {
		c.Level = "trace"
	}

	if c.Encoding == "" {
		c.Encoding = consoleEncoding
	}

	switch c.Encoding {
	case consoleEncoding, jsonEncoding:
	default:
		return invocation.Trace, errors.Errorf("unknown encoding %q, should be one of: %s, %s", c.Encoding, consoleEncoding, jsonEncoding)
	}

	return invocation.ParseLevel(c.Level)
}
