package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Paths.LibraryDB) == "" {
		c.Paths.LibraryDB = defaultLibraryDB
	}
	if c.Paths.LibraryDB, err = expandPath(c.Paths.LibraryDB); err != nil {
		return fmt.Errorf("paths.library_db: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	if strings.TrimSpace(c.Upload.Uploader) == "" {
		c.Upload.Uploader = defaultUploader
	}
	if c.Upload.MaxConcurrency <= 0 {
		c.Upload.MaxConcurrency = defaultMaxConcurrency
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
