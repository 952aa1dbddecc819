package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteDefault writes a selq.yaml populated with the built-in defaults to
// the given directory. It refuses to overwrite an existing config file.
func WriteDefault(dir string) (string, error) {
	if existing := findConfigFile(dir); existing != "" {
		return "", fmt.Errorf("config file already exists: %s", existing)
	}

	defaults := Defaults()
	body, err := yaml.Marshal(struct {
		Format      string `yaml:"format"`
		Data        string `yaml:"data"`
		Parallelism int    `yaml:"parallelism"`
		Debounce    string `yaml:"debounce"`
		Verbose     bool   `yaml:"verbose"`
	}{
		Format:      defaults.Format,
		Data:        defaults.DataFile,
		Parallelism: defaults.Parallelism,
		Debounce:    defaults.Debounce.String(),
		Verbose:     defaults.Verbose,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal defaults: %w", err)
	}

	header := "# selq configuration. Every key can be overridden by a SELQ_* environment variable.\n"
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, append([]byte(header), body...), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
