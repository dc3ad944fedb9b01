package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// dateFormat is how date_first_sung is stored.
const dateFormat = "2006-01-02"

// Store manages song persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the library database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// dsn builds a connection string whose pragmas apply to every pooled
// connection. Setting them with db.Exec would configure only the one
// connection serving that statement, and concurrent inserts would hit
// SQLITE_BUSY on the rest.
func dsn(path string) string {
	return "file:" + path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=foreign_keys(1)"
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// InsertSong persists a new song and returns the stored row.
func (s *Store) InsertSong(ctx context.Context, meta SongMetadata) (*Song, error) {
	if meta.Title == "" {
		return nil, errors.New("song title is required")
	}
	now := time.Now().UTC()

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO songs (title, singer_id, date_first_sung, local_path, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		meta.Title,
		meta.SingerID,
		nullableDate(meta.DateFirstSung),
		nullableString(meta.LocalPath),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert song: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetSong(ctx, id)
}

// GetSong fetches a song by identifier. Returns nil when absent.
func (s *Store) GetSong(ctx context.Context, id int64) (*Song, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs s
        LEFT JOIN singers ON singers.id = s.singer_id WHERE s.id = ?`, id)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

// SongByPath returns the song stored for a local path, or nil when the path
// has not been ingested yet.
func (s *Store) SongByPath(ctx context.Context, localPath string) (*Song, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs s
        LEFT JOIN singers ON singers.id = s.singer_id WHERE s.local_path = ? LIMIT 1`, localPath)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("song by path: %w", err)
	}
	return song, nil
}

// ListSongs returns every song ordered by insertion.
func (s *Store) ListSongs(ctx context.Context) ([]*Song, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+songColumns+` FROM songs s
        LEFT JOIN singers ON singers.id = s.singer_id ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	var songs []*Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// AddSinger registers or renames a performer.
func (s *Store) AddSinger(ctx context.Context, id int64, name string) error {
	if name == "" {
		return errors.New("singer name is required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO singers (id, name) VALUES (?, ?)
         ON CONFLICT(id) DO UPDATE SET name = excluded.name`, id, name)
	if err != nil {
		return fmt.Errorf("add singer: %w", err)
	}
	return nil
}

// ListSingers returns every registered performer ordered by identifier.
func (s *Store) ListSingers(ctx context.Context) ([]*Singer, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM singers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list singers: %w", err)
	}
	defer rows.Close()

	var singers []*Singer
	for rows.Next() {
		singer := &Singer{}
		if err := rows.Scan(&singer.ID, &singer.Name); err != nil {
			return nil, err
		}
		singers = append(singers, singer)
	}
	return singers, rows.Err()
}

// Stats returns song counts grouped by singer identifier.
func (s *Store) Stats(ctx context.Context) (map[int64]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT singer_id, COUNT(1) FROM songs GROUP BY singer_id`)
	if err != nil {
		return nil, fmt.Errorf("library stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int64]int)
	for rows.Next() {
		var singerID int64
		var count int
		if err := rows.Scan(&singerID, &count); err != nil {
			return nil, err
		}
		stats[singerID] = count
	}
	return stats, rows.Err()
}

const songColumns = "s.id, s.title, s.singer_id, s.date_first_sung, s.local_path, s.created_at, singers.name"

func scanSong(scanner interface{ Scan(dest ...any) error }) (*Song, error) {
	var (
		id         int64
		title      string
		singerID   int64
		sungRaw    sql.NullString
		localPath  sql.NullString
		createdRaw string
		singerName sql.NullString
	)
	if err := scanner.Scan(&id, &title, &singerID, &sungRaw, &localPath, &createdRaw, &singerName); err != nil {
		return nil, err
	}

	song := &Song{
		ID: id,
		SongMetadata: SongMetadata{
			Title:     title,
			SingerID:  singerID,
			LocalPath: localPath.String,
		},
		SingerName: singerName.String,
	}
	if sungRaw.Valid {
		sung, err := time.ParseInLocation(dateFormat, sungRaw.String, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse date_first_sung %q: %w", sungRaw.String, err)
		}
		song.DateFirstSung = &sung
	}
	created, err := time.Parse(time.RFC3339Nano, createdRaw)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdRaw, err)
	}
	song.CreatedAt = created
	return song, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(dateFormat)
}
