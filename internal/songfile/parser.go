package songfile

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// ParsedFilename is the metadata extracted from a single filename.
type ParsedFilename struct {
	// Title is the human-readable song or performance name.
	Title string
	// PerformanceDate is set only when the matched convention carries a
	// full date.
	PerformanceDate *time.Time
	// SourceFilename is the literal input to Parse, never a preprocessed
	// working copy, so results stay traceable back to the filesystem.
	SourceFilename string
	// Convention names the matcher that recognized the filename.
	Convention string
}

// evilMarker is a literal annotation present in a handful of historical
// filenames. It has to be removed before the generic date pattern can apply.
const evilMarker = " (evil)"

// suffixDateExpr matches "Title (D M YY)". The title capture is greedy so
// that when several parenthesized groups exist, the date binds to the final
// one.
const suffixDateExpr = `(?P<title>.+) \((?P<day>\d{1,2}) (?P<month>\d{1,2}) (?P<year>\d{2})\)`

// bracketDateExpr matches "[M-D-YY] Title [n].ext" with "-" or the
// full-width "／" as separator. The title capture is lazy and the extension
// is anchored so an optional bracketed numeric suffix stays out of the title.
const bracketDateExpr = `^\[(?P<month>\d{1,2})(?:-|／)(?P<day>\d{1,2})(?:-|／)(?P<year>\d{2})\] (?P<title>.+?)(?: \[\d+\])?\.[^.]+$`

// convention pairs an optional preprocessing transform with the pattern used
// to test one historical naming shape. The preprocess hook returns the
// working copy to match against and whether the convention applies at all.
type convention struct {
	name       string
	preprocess func(string) (string, bool)
	pattern    *regexp.Regexp
}

// Parser tries naming conventions in a fixed priority order and returns the
// first success. The zero value is not usable; construct with NewParser.
type Parser struct {
	conventions []convention
}

// NewParser compiles the convention table. The returned parser is immutable
// and safe for concurrent use.
func NewParser() *Parser {
	suffixDate := regexp.MustCompile(suffixDateExpr)
	return &Parser{
		conventions: []convention{
			{name: "evil", preprocess: evilPreprocess, pattern: suffixDate},
			{name: "bracketed", pattern: regexp.MustCompile(bracketDateExpr)},
			{name: "suffix-date", pattern: suffixDate},
			// Duet recordings currently share the suffix-date shape; the
			// separate entry keeps the convention addressable should it
			// ever diverge.
			{name: "duet", pattern: suffixDate},
		},
	}
}

// Parse extracts a title and an optional performance date from filename.
// It returns a *NoMatchError when no convention recognizes the input and a
// *InvalidDateError when a convention matched but the numbers are not a
// calendar date. An invalid date surfaces immediately; it is never downgraded
// to a no-match by falling through to later conventions.
func (p *Parser) Parse(filename string) (ParsedFilename, error) {
	// Shared-folder names often arrive NFD from macOS clients; normalize
	// the working copy only, the reported source filename stays literal.
	working := norm.NFC.String(filename)

	for _, conv := range p.conventions {
		candidate := working
		if conv.preprocess != nil {
			rewritten, ok := conv.preprocess(candidate)
			if !ok {
				continue
			}
			candidate = rewritten
		}
		match := conv.pattern.FindStringSubmatch(candidate)
		if match == nil {
			continue
		}
		return buildResult(conv, match, filename)
	}
	return ParsedFilename{}, &NoMatchError{Filename: filename}
}

func evilPreprocess(filename string) (string, bool) {
	if !strings.Contains(filename, evilMarker) {
		return "", false
	}
	return strings.ReplaceAll(filename, evilMarker, ""), true
}

func buildResult(conv convention, match []string, source string) (ParsedFilename, error) {
	parsed := ParsedFilename{
		Title:          groupValue(conv.pattern, match, "title"),
		SourceFilename: source,
		Convention:     conv.name,
	}

	day := groupValue(conv.pattern, match, "day")
	month := groupValue(conv.pattern, match, "month")
	year := groupValue(conv.pattern, match, "year")
	if day == "" || month == "" || year == "" {
		// The pattern carries no date fields; a dateless parse is a
		// success, not a failure.
		return parsed, nil
	}

	d := atoi(day)
	m := atoi(month)
	// Two-digit years are assumed to belong to the 2000s. "99" becomes
	// 2099, not 1999; there is deliberately no pivot year.
	y := 2000 + atoi(year)

	date, ok := buildDate(y, m, d)
	if !ok {
		return ParsedFilename{}, &InvalidDateError{Filename: source, Day: d, Month: m, Year: y}
	}
	parsed.PerformanceDate = &date
	return parsed, nil
}

// buildDate constructs a UTC date and rejects inputs that time.Date would
// silently normalize, such as day 31 in a 30-day month.
func buildDate(year, month, day int) (time.Time, bool) {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

func groupValue(pattern *regexp.Regexp, match []string, name string) string {
	idx := pattern.SubexpIndex(name)
	if idx < 0 || idx >= len(match) {
		return ""
	}
	return match[idx]
}

func atoi(value string) int {
	n, _ := strconv.Atoi(value)
	return n
}
