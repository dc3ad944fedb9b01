// Package library persists song metadata in SQLite.
//
// The Store manages the database connection, schema initialization, and the
// queries the upload and listing commands need. Songs are keyed by their
// local path so repeated bulk uploads skip files that were already ingested.
// Schema changes bump schemaVersion; users clear the database to adopt a new
// schema.
package library
