package library

import "time"

// Singer identifies a performer.
type Singer struct {
	ID   int64
	Name string
}

// SongMetadata is the caller-supplied portion of a song row.
type SongMetadata struct {
	Title string
	// SingerID distinguishes performer identity.
	SingerID int64
	// DateFirstSung is the performance date extracted from the filename,
	// when the naming convention carried one.
	DateFirstSung *time.Time
	// LocalPath is the file the metadata was extracted from. Unique per
	// library; bulk uploads use it to skip already-ingested files.
	LocalPath string
}

// Song is a persisted library entry.
type Song struct {
	ID int64
	SongMetadata
	// SingerName is populated by listing queries that join the singers
	// table; empty when the singer is unknown.
	SingerName string
	CreatedAt  time.Time
}
