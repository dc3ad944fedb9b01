package songfile_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"songbook/internal/songfile"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestParseRecognizedConventions(t *testing.T) {
	cases := []struct {
		name       string
		filename   string
		title      string
		date       *time.Time
		convention string
	}{
		{
			name:       "suffix date",
			filename:   "Moonlight Sonata (05 03 23).mp3",
			title:      "Moonlight Sonata",
			date:       date(2023, time.March, 5),
			convention: "suffix-date",
		},
		{
			name:       "suffix date single digit fields",
			filename:   "Short (1 2 03).ogg",
			title:      "Short",
			date:       date(2003, time.February, 1),
			convention: "suffix-date",
		},
		{
			name:       "greedy title keeps earlier parenthesized groups",
			filename:   "Aria (live) (1 2 03).mp3",
			title:      "Aria (live)",
			date:       date(2003, time.February, 1),
			convention: "suffix-date",
		},
		{
			name:       "bracketed prefix with numeric suffix",
			filename:   "[03-15-22] Evening Rain [2].wav",
			title:      "Evening Rain",
			date:       date(2022, time.March, 15),
			convention: "bracketed",
		},
		{
			name:       "bracketed prefix full-width separator",
			filename:   "[03／15／22] Evening Rain [2].wav",
			title:      "Evening Rain",
			date:       date(2022, time.March, 15),
			convention: "bracketed",
		},
		{
			name:       "bracketed prefix without suffix",
			filename:   "[1-2-03] Quiet Hours.mp3",
			title:      "Quiet Hours",
			date:       date(2003, time.January, 2),
			convention: "bracketed",
		},
		{
			name:       "bracketed title containing a dot",
			filename:   "[03-15-22] Mr. Blue [2].wav",
			title:      "Mr. Blue",
			date:       date(2022, time.March, 15),
			convention: "bracketed",
		},
		{
			name:       "evil marker stripped before matching",
			filename:   "Lullaby (12 (evil) 01 24).flac",
			title:      "Lullaby",
			date:       date(2024, time.January, 12),
			convention: "evil",
		},
		{
			name:       "naive century assumption maps 99 to 2099",
			filename:   "Old Tape (01 01 99).mp3",
			title:      "Old Tape",
			date:       date(2099, time.January, 1),
			convention: "suffix-date",
		},
	}

	parser := songfile.NewParser()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := parser.Parse(tc.filename)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.filename, err)
			}
			if parsed.Title != tc.title {
				t.Errorf("title = %q, want %q", parsed.Title, tc.title)
			}
			if parsed.SourceFilename != tc.filename {
				t.Errorf("source filename = %q, want original input %q", parsed.SourceFilename, tc.filename)
			}
			if parsed.Convention != tc.convention {
				t.Errorf("convention = %q, want %q", parsed.Convention, tc.convention)
			}
			switch {
			case tc.date == nil && parsed.PerformanceDate != nil:
				t.Errorf("unexpected performance date %v", parsed.PerformanceDate)
			case tc.date != nil && parsed.PerformanceDate == nil:
				t.Errorf("missing performance date, want %v", tc.date)
			case tc.date != nil && !parsed.PerformanceDate.Equal(*tc.date):
				t.Errorf("performance date = %v, want %v", parsed.PerformanceDate, tc.date)
			}
		})
	}
}

func TestParseNoMatch(t *testing.T) {
	parser := songfile.NewParser()
	inputs := []string{
		"random_notes.txt",
		"",
		"(05 03 23).mp3",
		// Stripping the marker leaves nothing any convention recognizes.
		"Tune (evil).mp3",
	}
	for _, input := range inputs {
		_, err := parser.Parse(input)
		var noMatch *songfile.NoMatchError
		if !errors.As(err, &noMatch) {
			t.Fatalf("Parse(%q) = %v, want NoMatchError", input, err)
		}
		if noMatch.Filename != input {
			t.Errorf("NoMatchError filename = %q, want %q", noMatch.Filename, input)
		}
	}
}

func TestParseInvalidDateSurfaces(t *testing.T) {
	parser := songfile.NewParser()
	cases := []struct {
		filename         string
		day, month, year int
	}{
		{"Song (31 02 24).mp3", 31, 2, 2024},
		{"Song (1 13 24).mp3", 1, 13, 2024},
		{"Ballad (31 (evil) 04 24).flac", 31, 4, 2024},
	}
	for _, tc := range cases {
		_, err := parser.Parse(tc.filename)
		var invalid *songfile.InvalidDateError
		if !errors.As(err, &invalid) {
			t.Fatalf("Parse(%q) = %v, want InvalidDateError", tc.filename, err)
		}
		if invalid.Day != tc.day || invalid.Month != tc.month || invalid.Year != tc.year {
			t.Errorf("InvalidDateError = %d/%d/%d, want %d/%d/%d",
				invalid.Day, invalid.Month, invalid.Year, tc.day, tc.month, tc.year)
		}
		if invalid.Filename != tc.filename {
			t.Errorf("InvalidDateError filename = %q, want %q", invalid.Filename, tc.filename)
		}
	}
}

func TestParseSeparatorVariantsAgree(t *testing.T) {
	parser := songfile.NewParser()
	hyphen, err := parser.Parse("[04-09-21] Harbor Lights.flac")
	if err != nil {
		t.Fatalf("hyphen variant failed: %v", err)
	}
	fullWidth, err := parser.Parse("[04／09／21] Harbor Lights.flac")
	if err != nil {
		t.Fatalf("full-width variant failed: %v", err)
	}
	if hyphen.Title != fullWidth.Title {
		t.Errorf("titles differ: %q vs %q", hyphen.Title, fullWidth.Title)
	}
	if !hyphen.PerformanceDate.Equal(*fullWidth.PerformanceDate) {
		t.Errorf("dates differ: %v vs %v", hyphen.PerformanceDate, fullWidth.PerformanceDate)
	}
}

func TestParseIsPure(t *testing.T) {
	parser := songfile.NewParser()
	const input = "Moonlight Sonata (05 03 23).mp3"
	first, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("first Parse failed: %v", err)
	}
	second, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("second Parse failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse is not deterministic: %#v vs %#v", first, second)
	}
}
