package songfile

import "fmt"

// NoMatchError reports that no known naming convention recognized a filename.
type NoMatchError struct {
	Filename string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no naming convention matches %q", e.Filename)
}

// InvalidDateError reports that a convention matched a filename but the
// captured numbers do not form a valid calendar date.
type InvalidDateError struct {
	Filename string
	Day      int
	Month    int
	Year     int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %02d/%02d/%04d in %q", e.Day, e.Month, e.Year, e.Filename)
}
