package query

import (
	"sort"
	"strings"
	"time"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort is the column ordering, a zero Sort leaves rows in their given order
type Sort struct {
	Key Field     `json:"key,omitempty"`
	Dir Direction `json:"dir,omitempty"`
}

// Toggle is what selecting a column header does, the same key flips direction and a new key starts ascending
func (s Sort) Toggle(key Field) Sort {
	if s.Key == key && s.Dir != Descending {
		return Sort{Key: key, Dir: Descending}
	}
	return Sort{Key: key, Dir: Ascending}
}

func (s Sort) Active() bool {
	return s.Key != ""
}

// compare returns <0, 0, >0 for a against b on the sort key
func compare(key Field, a, b Row) int {
	switch key {
	case FieldSize:
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		}
		return 0
	case FieldReleaseDate:
		return compareDates(a.ReleaseDate, b.ReleaseDate)
	}
	return strings.Compare(a.Value(key), b.Value(key))
}

// Unparseable dates sort as the zero time
func compareDates(a, b string) int {
	ta, _ := ParseDate(a)
	tb, _ := ParseDate(b)
	return ta.Compare(tb)
}

// Apply sorts rows in place, stable so equal keys keep their order
func (s Sort) Apply(rows []Row) {
	if !s.Active() {
		return
	}
	descending := s.Dir == Descending
	sort.SliceStable(rows, func(i, j int) bool {
		c := compare(s.Key, rows[i], rows[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
}

// SortByRelease orders rows oldest first
func SortByRelease(rows []Row) {
	Sort{Key: FieldReleaseDate, Dir: Ascending}.Apply(rows)
}

func releasedBy(r Row, now time.Time) bool {
	t, ok := ParseDate(r.ReleaseDate)
	return ok && !t.After(now)
}
