// Package scan drives the filename parser over a directory and formats
// ready-to-run upload command lines for each success.
//
// Parse failures never abort a batch: each unparseable file is logged at
// warning level and skipped, with the typed parser error preserved in the log
// so no-match and invalid-date faults stay distinguishable.
package scan
