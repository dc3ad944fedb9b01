package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"songbook/internal/library"
	"songbook/internal/songfile"
)

// ErrLibraryBusy indicates another bulk upload already holds the library lock.
var ErrLibraryBusy = errors.New("another bulk upload is running against this library")

// Summary counts the outcomes of one bulk run.
type Summary struct {
	Uploaded int
	// Skipped counts files whose path was already in the library.
	Skipped int
	// Unparsed counts files no naming convention recognized or whose
	// captured date was invalid.
	Unparsed int
	// Failed counts database errors.
	Failed int
}

// Ingestor uploads parsed song metadata into a library store.
type Ingestor struct {
	store       *library.Store
	parser      *songfile.Parser
	logger      *slog.Logger
	singerID    int64
	concurrency int
}

// New constructs an Ingestor. Concurrency values below one are raised to one.
func New(store *library.Store, parser *songfile.Parser, logger *slog.Logger, singerID int64, concurrency int) *Ingestor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Ingestor{
		store:       store,
		parser:      parser,
		logger:      logger,
		singerID:    singerID,
		concurrency: concurrency,
	}
}

// Run parses every regular file in dir and inserts the successes into the
// library, skipping paths that were already ingested. It returns
// ErrLibraryBusy when another run holds the library lock.
func (i *Ingestor) Run(ctx context.Context, dir string) (Summary, error) {
	lock := flock.New(i.store.Path() + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return Summary{}, ErrLibraryBusy
	}
	defer func() { _ = lock.Unlock() }()

	logger := i.logger.With("run_id", uuid.NewString(), "directory", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Summary{}, fmt.Errorf("read directory %q: %w", dir, err)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		summary Summary
	)
	sem := make(chan struct{}, i.concurrency)

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			logger.Debug("skipping non-regular entry", "name", entry.Name())
			continue
		}
		if ctx.Err() != nil {
			break
		}

		name := entry.Name()
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			outcome := i.uploadOne(ctx, logger, dir, name)
			mu.Lock()
			switch outcome {
			case outcomeUploaded:
				summary.Uploaded++
			case outcomeSkipped:
				summary.Skipped++
			case outcomeUnparsed:
				summary.Unparsed++
			case outcomeFailed:
				summary.Failed++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	logger.Info("bulk upload finished",
		"uploaded", summary.Uploaded,
		"skipped", summary.Skipped,
		"unparsed", summary.Unparsed,
		"failed", summary.Failed,
	)
	return summary, nil
}

type outcome int

const (
	outcomeUploaded outcome = iota
	outcomeSkipped
	outcomeUnparsed
	outcomeFailed
)

func (i *Ingestor) uploadOne(ctx context.Context, logger *slog.Logger, dir, name string) outcome {
	path := filepath.Join(dir, name)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	existing, err := i.store.SongByPath(ctx, path)
	if err != nil {
		logger.Error("library lookup failed", "path", path, "error", err)
		return outcomeFailed
	}
	if existing != nil {
		logger.Warn("skipping file as path is already in library", "path", path, "song_id", existing.ID)
		return outcomeSkipped
	}

	parsed, err := i.parser.Parse(name)
	if err != nil {
		logger.Warn("failed to parse filename", "filename", name, "error", err)
		return outcomeUnparsed
	}

	song, err := i.store.InsertSong(ctx, library.SongMetadata{
		Title:         parsed.Title,
		SingerID:      i.singerID,
		DateFirstSung: parsed.PerformanceDate,
		LocalPath:     path,
	})
	if err != nil {
		logger.Error("failed to insert song", "path", path, "error", err)
		return outcomeFailed
	}
	logger.Info("inserted song", "song_id", song.ID, "title", song.Title)
	return outcomeUploaded
}
