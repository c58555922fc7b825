// Package config defines lowering options loaded from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/jslower/internal/jsast"
)

// Config holds lowering options.
type Config struct {
	// TempPrefix is the spelling prefix of temporaries.
	TempPrefix string `yaml:"temp_prefix"`

	// FlattenBlocks splices nested Go blocks into their parent JS block.
	// Temporaries of a spliced block join the parent's declaration group.
	FlattenBlocks bool `yaml:"flatten_blocks"`

	// Indent is a single indentation level of the emitted source.
	Indent string `yaml:"indent"`

	// Callees adds or overrides known callees.
	Callees map[Reference]Callee `yaml:"callees"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		TempPrefix:    jsast.DefaultTempPrefix,
		FlattenBlocks: true,
		Indent:        "  ",
	}
}

// Parse reads YAML configuration. Missing options keep their default values.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Load reads configuration from the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.TempPrefix == "" {
		return errors.New("temp_prefix must not be empty")
	}

	for ref, callee := range c.Callees {
		if ref.Type != "" {
			return fmt.Errorf("callee %s: methods cannot be mapped, only functions", ref)
		}

		switch callee.Kind {
		case CalleeKindCall:
			if callee.Target == "" {
				return fmt.Errorf("callee %s: target is required for %s", ref, callee.Kind)
			}
		case CalleeKindLength, CalleeKindConcat, CalleeKindThrow:
		default:
			return fmt.Errorf("callee %s: kind is required", ref)
		}
	}

	return nil
}
