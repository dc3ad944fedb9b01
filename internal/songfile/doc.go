// Package songfile extracts song metadata from free-form filenames.
//
// Filenames in the shared media folder follow several historical naming
// conventions, each produced by a different export or recording tool. The
// Parser owns an ordered table of convention matchers and returns the first
// success; matching is a pure function over the input string, so callers may
// parallelize freely.
//
// Failures are typed: NoMatchError when no convention recognizes the input,
// InvalidDateError when a convention matched structurally but the captured
// day/month/year do not form a calendar date. The two are distinct fault
// classes and must stay distinguishable in logs and output.
package songfile
