package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"songbook/internal/config"
	"songbook/internal/library"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withStore opens the library database, preferring an explicit --db flag
// value over the configured default.
func (c *commandContext) withStore(dbFlag string, fn func(*config.Config, *library.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	dbPath := strings.TrimSpace(dbFlag)
	if dbPath == "" {
		dbPath = cfg.Paths.LibraryDB
	} else if dbPath, err = config.ExpandPath(dbPath); err != nil {
		return err
	}

	store, err := library.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(cfg, store)
}

// configPath returns the raw --config flag value.
func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
