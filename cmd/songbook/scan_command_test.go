package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScanCommandPrintsUploadLines(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	for _, name := range []string{
		"Moonlight Sonata (05 03 23).mp3",
		"random_notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	out, _, err := runCLI(t,
		"scan", dir,
		"--db", "/data/library.db",
		"--singer-id", "2",
		"--uploader", "songbook",
		"--log-env", `SONGBOOK_LOG="debug"`,
	)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one command line, got %d:\n%s", len(lines), out)
	}
	want := `SONGBOOK_LOG="debug" songbook upload --title "Moonlight Sonata" --singer-id 2 --db "/data/library.db" --sung-at "05/03/2023" "` +
		filepath.Join(dir, "Moonlight Sonata (05 03 23).mp3") + `"`
	if lines[0] != want {
		t.Errorf("command line mismatch:\n got: %s\nwant: %s", lines[0], want)
	}
}

func TestScanCommandUsesConfigDefaults(t *testing.T) {
	isolateHome(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Short (1 2 03).ogg"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, _, err := runCLI(t, "scan", dir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	requireContains(t, out, `songbook upload --title "Short" --singer-id 1`)
	requireContains(t, out, `--sung-at "01/02/2003"`)
}
