// Package config loads helatype settings from a YAML file, a .env file
// and HELATYPE_* environment variables, in that order of precedence from
// lowest to highest.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/helatype/helatype/helatype"
)

// Config of the CLI and the HTTP server
type Config struct {
	// Compiled scheme file. Empty means the built-in Sinhala mappings.
	Scheme string `yaml:"scheme"`

	// History database
	History string `yaml:"history"`

	// Address the HTTP server listens on
	Listen string `yaml:"listen"`

	// Number of history items returned when no limit is asked for
	HistoryLimit int `yaml:"history-limit"`

	IgnoreDuplicates bool `yaml:"ignore-duplicates"`
	Debug            bool `yaml:"debug"`
}

// Default configuration
func Default() *Config {
	return &Config{
		History:      helatype.DefaultHistoryPath(),
		Listen:       ":8080",
		HistoryLimit: 50,
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// skips the file. envFiles are loaded with godotenv before the
// environment is read; missing ones are ignored.
func Load(path string, envFiles ...string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("couldn't parse %s: %w", path, err)
		}
	}

	for _, envFile := range envFiles {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("couldn't load %s: %w", envFile, err)
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("HELATYPE_SCHEME"); ok {
		c.Scheme = v
	}
	if v, ok := os.LookupEnv("HELATYPE_HISTORY"); ok {
		c.History = v
	}
	if v, ok := os.LookupEnv("HELATYPE_LISTEN"); ok {
		c.Listen = v
	}

	if v, ok := os.LookupEnv("HELATYPE_HISTORY_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HELATYPE_HISTORY_LIMIT: %w", err)
		}
		c.HistoryLimit = n
	}

	flags := map[string]*bool{
		"HELATYPE_IGNORE_DUPLICATES": &c.IgnoreDuplicates,
		"HELATYPE_DEBUG":             &c.Debug,
	}
	for name, field := range flags {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*field = b
	}

	return nil
}

// SchemeConfig for opening the configured scheme
func (c *Config) SchemeConfig() helatype.SchemeConfig {
	return helatype.SchemeConfig{IgnoreDuplicates: c.IgnoreDuplicates}
}
