// Package ingest bulk-uploads a directory of song files into the library.
//
// Filenames are parsed in-process, already-ingested paths are skipped, and
// inserts run under bounded concurrency. A file lock next to the database
// rejects concurrent bulk runs against the same library; each run carries a
// UUID so its log lines can be correlated.
package ingest
