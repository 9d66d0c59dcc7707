package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ralim/nxmissing/dataset"
)

// PageSizeAll disables paging, all rows land on one page
const PageSizeAll = -1

// Query is everything that shapes a table view
type Query struct {
	Search   string     `json:"search,omitempty"`
	Date     DateFilter `json:"date"`
	Sort     Sort       `json:"sort"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}

type Result struct {
	Rows       []Row `json:"rows"`
	Total      int   `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
}

// MatchText reports if the search text is within any displayed field, ignoring case
func MatchText(r Row, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range Columns(r.Kind) {
		value := r.Value(f)
		if value != "" && strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

// Filter returns the rows passing both the date and text filters, the input is not modified
func Filter(rows []Row, search string, date DateFilter) []Row {
	result := make([]Row, 0, len(rows))
	for _, r := range rows {
		if date.Match(r.ReleaseDate) && MatchText(r, search) {
			result = append(result, r)
		}
	}
	return result
}

// TotalPages for a row count. An empty set has 0 pages
func TotalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	if pageSize == PageSizeAll || pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate slices out the 1 based page, a page past the end is empty rather than an error
func Paginate(rows []Row, page, pageSize int) []Row {
	if pageSize == PageSizeAll || pageSize <= 0 {
		return rows
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []Row{}
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Run filters, sorts and pages the rows. It has no side effects on rows
func Run(rows []Row, q Query) Result {
	filtered := Filter(rows, q.Search, q.Date)
	q.Sort.Apply(filtered)
	page := q.Page
	if page < 1 {
		page = 1
	}
	return Result{
		Rows:       Paginate(filtered, page, q.PageSize),
		Total:      len(filtered),
		TotalPages: TotalPages(len(filtered), q.PageSize),
		Page:       page,
	}
}

// Pager tracks the page shown for a table, and goes back to the first page
// whenever the kind or the number of pages changes underneath it
type Pager struct {
	Kind       dataset.Kind
	TotalPages int
	Page       int
}

func (p Pager) Sync(kind dataset.Kind, totalPages int) Pager {
	if p.Kind != kind || p.TotalPages != totalPages || p.Page < 1 {
		return Pager{Kind: kind, TotalPages: totalPages, Page: 1}
	}
	return p
}

// Years lists the distinct release years, newest first
func Years(rows []Row) []string {
	seen := make(map[int]bool)
	for _, r := range rows {
		if t, ok := ParseDate(r.ReleaseDate); ok {
			seen[t.Year()] = true
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	result := make([]string, 0, len(years))
	for _, y := range years {
		result = append(result, fmt.Sprintf("%04d", y))
	}
	return result
}

// SplitByRelease picks the home page rows: up to n most recent releases (newest first)
// and up to n upcoming releases (soonest first). Rows without a readable date are in neither
func SplitByRelease(rows []Row, now time.Time, n int) (recent, upcoming []Row) {
	ordered := make([]Row, len(rows))
	copy(ordered, rows)
	SortByRelease(ordered)
	released := make([]Row, 0)
	upcoming = make([]Row, 0)
	for _, r := range ordered {
		if _, ok := ParseDate(r.ReleaseDate); !ok {
			continue
		}
		if releasedBy(r, now) {
			released = append(released, r)
		} else if len(upcoming) < n {
			upcoming = append(upcoming, r)
		}
	}
	if len(released) > n {
		released = released[len(released)-n:]
	}
	recent = make([]Row, 0, len(released))
	for i := len(released) - 1; i >= 0; i-- {
		recent = append(recent, released[i])
	}
	return recent, upcoming
}
