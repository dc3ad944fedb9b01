package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidateWithDefaults(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "Config file did not exist; defaults were used")
}

func TestConfigInitWritesSample(t *testing.T) {
	isolateHome(t)
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config on disk: %v", err)
	}

	// Without --overwrite a second init must refuse to clobber the file.
	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("overwrite init failed: %v", err)
	}

	out, _, err = runCLI(t, "config", "validate", "--config", target)
	if err != nil {
		t.Fatalf("validate generated config: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigShowPrintsTOML(t *testing.T) {
	isolateHome(t)

	out, _, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	requireContains(t, out, "# defaults (no config file found)")
	requireContains(t, out, "[upload]")
	requireContains(t, out, "singer_id = 1")
}
