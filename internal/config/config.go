// Package config loads runtime configuration from selq.yaml, SELQ_*
// environment variables, and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/selquery/selq/internal/inspect"
	"github.com/selquery/selq/pkg/types"
)

// ConfigFileName is the name of the config file
const ConfigFileName = "selq.yaml"

// ConfigFileNameAlt is the alternate name of the config file
const ConfigFileNameAlt = "selq.yml"

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "SELQ_"

// Defaults returns the built-in default configuration
func Defaults() types.Config {
	return types.Config{
		Format:      "table",
		Output:      "",
		DataFile:    inspect.DefaultDataFile,
		Parallelism: 1,
		Debounce:    200 * time.Millisecond,
		Verbose:     false,
	}
}

// Load builds the runtime configuration by layering, in increasing
// priority: built-in defaults, the config file (an explicit path, or
// selq.yaml/selq.yml discovered by walking up from the working
// directory), and SELQ_* environment variables.
func Load(cfgFile string) (*types.Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	defaults := Defaults()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":      defaults.Format,
		"output":      defaults.Output,
		"data":        defaults.DataFile,
		"parallelism": defaults.Parallelism,
		"debounce":    defaults.Debounce,
		"verbose":     defaults.Verbose,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	if cfgFile == "" {
		if wd, err := os.Getwd(); err == nil {
			if root := FindProjectRoot(wd); root != "" {
				cfgFile = findConfigFile(root)
			}
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Load environment variables
	// Transform: SELQ_DATA -> data
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Unmarshal into the shared Config struct
	var cfg types.Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}

// FindProjectRoot walks up from the given directory to find a directory
// containing selq.yaml or selq.yml.
// Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for {
		if findConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}
