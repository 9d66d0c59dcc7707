package query

import (
	"fmt"
	"strings"
	"time"
)

// Release dates are mostly ISO dates, but the generators have used a few forms over time
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"20060102",
}

// ParseDate reads a release date, ok is false if no known layout matches
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateFilter selects rows by release year and month, empty fields match everything
// Year is four digits, Month is two digits "01" to "12"
type DateFilter struct {
	Year  string `json:"year,omitempty"`
	Month string `json:"month,omitempty"`
}

func (f DateFilter) Active() bool {
	return f.Year != "" || f.Month != ""
}

func (f DateFilter) Match(releaseDate string) bool {
	if !f.Active() {
		return true
	}
	t, ok := ParseDate(releaseDate)
	if !ok {
		return false
	}
	if f.Year != "" && fmt.Sprintf("%04d", t.Year()) != f.Year {
		return false
	}
	if f.Month != "" && fmt.Sprintf("%02d", int(t.Month())) != f.Month {
		return false
	}
	return true
}
