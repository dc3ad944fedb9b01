package scan

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"songbook/internal/songfile"
)

// Scanner lists a directory and parses every regular file's name.
type Scanner struct {
	parser *songfile.Parser
	logger *slog.Logger
}

// New constructs a Scanner. A nil logger discards diagnostics.
func New(parser *songfile.Parser, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}
	return &Scanner{parser: parser, logger: logger}
}

// Scan parses every regular file name in dir and returns the successes in
// directory order. Unparseable names are logged and skipped.
func (s *Scanner) Scan(dir string) ([]songfile.ParsedFilename, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	var parsed []songfile.ParsedFilename
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			s.logger.Debug("skipping non-regular entry", "name", entry.Name())
			continue
		}
		s.logger.Info("inspecting", "file", entry.Name())

		result, err := s.parser.Parse(entry.Name())
		if err != nil {
			s.logger.Warn("failed to parse filename", "filename", entry.Name(), "error", err)
			continue
		}
		s.logger.Info("parsed file", "title", result.Title, "convention", result.Convention)
		parsed = append(parsed, result)
	}
	return parsed, nil
}
