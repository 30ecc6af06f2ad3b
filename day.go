package advent

import (
	"fmt"
	"strings"
	"time"
)

// DefaultBaseURL is the puzzle site root.
const DefaultBaseURL = "https://adventofcode.com"

// MinYear is the first year puzzles were published.
const MinYear = 2015

// Day identifies one puzzle.
type Day struct {
	Year int
	Day  int
}

// Validate returns an error if the year or day lies outside the published range.
func (d Day) Validate() error {
	if d.Year < MinYear || d.Year > time.Now().Year() {
		return Errorf(EINVALID, "year must be between %d and %d, got %d", MinYear, time.Now().Year(), d.Year)
	}
	if d.Day < 1 || d.Day > 25 {
		return Errorf(EINVALID, "day must be between 1 and 25, got %d", d.Day)
	}
	return nil
}

// URL returns the puzzle page URL under base.
func (d Day) URL(base string) string {
	return fmt.Sprintf("%s/%d/day/%d", strings.TrimSuffix(base, "/"), d.Year, d.Day)
}

// InputURL returns the raw puzzle input URL under base.
func (d Day) InputURL(base string) string {
	return d.URL(base) + "/input"
}

func (d Day) String() string {
	return fmt.Sprintf("%d day %d", d.Year, d.Day)
}
