package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Upload.SingerID <= 0 {
		return fmt.Errorf("upload.singer_id must be positive, got %d", c.Upload.SingerID)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
