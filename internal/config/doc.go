// Package config loads, normalizes, and validates songbook configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes the knobs the
// CLI needs: library database location, upload defaults, and logging output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
