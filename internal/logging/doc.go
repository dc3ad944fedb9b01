// Package logging constructs slog loggers for the songbook CLI.
//
// Two output formats are supported: a line-oriented console format
// (timestamp, level, message, key=value attributes) and JSON with ts/level/msg
// keys. Logs always go to stderr so command output on stdout stays
// machine-consumable.
package logging
