package cli

import (
	"time"

	"github.com/selquery/selq/internal/config"
	"github.com/selquery/selq/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// LoadConfig loads configuration from file, environment, and defaults
func LoadConfig(cfgFile string) (*Config, error) {
	return config.Load(cfgFile)
}

// ApplyFlagsToConfig applies command-line flag values to configuration.
// Zero values mean the flag was not set and leave the config untouched;
// --verbose can enable but never disable verbose output.
func ApplyFlagsToConfig(c *Config, format, output, dataFile string,
	parallel int, debounce time.Duration, verbose bool) {

	if format != "" {
		c.Format = format
	}
	if output != "" {
		c.Output = output
	}
	if dataFile != "" {
		c.DataFile = dataFile
	}
	if parallel != 0 {
		c.Parallelism = parallel
	}
	if debounce != 0 {
		c.Debounce = debounce
	}
	if verbose {
		c.Verbose = true
	}
}
