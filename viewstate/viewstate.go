package viewstate

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ralim/nxmissing/dataset"
	"github.com/ralim/nxmissing/query"
)

// TabHome is the landing page, every other tab is a dataset kind
const TabHome = "home"

// PageSizes are the choices offered for rows per page, query.PageSizeAll is offered on top
var PageSizes = []int{10, 20, 50}

const DefaultPageSize = 10

// State is everything about the current view that lives in the URL, so back/forward restores it
type State struct {
	Tab        string
	Search     string
	Date       query.DateFilter
	Sort       query.Sort
	Page       int
	PageSize   int
	TotalPages int // Page count the page number was chosen against
	Lang       string
}

// Parse reads the view from URL query values, anything unreadable falls back to its default
func Parse(values url.Values, defaultPageSize int) State {
	s := State{
		Tab:      TabHome,
		Search:   values.Get("search"),
		Page:     1,
		PageSize: defaultPageSize,
		Lang:     values.Get("lang"),
	}
	if tab := values.Get("tab"); dataset.Kind(tab).Valid() {
		s.Tab = tab
	}
	if year := values.Get("year"); len(year) == 4 {
		if _, err := strconv.Atoi(year); err == nil {
			s.Date.Year = year
		}
	}
	if month, err := strconv.Atoi(values.Get("month")); err == nil && month >= 1 && month <= 12 {
		s.Date.Month = fmt.Sprintf("%02d", month)
	}
	if key := query.Field(values.Get("sort")); key != "" && s.IsTable() && query.HasColumn(s.Kind(), key) {
		s.Sort.Key = key
		s.Sort.Dir = query.Ascending
		if values.Get("dir") == string(query.Descending) {
			s.Sort.Dir = query.Descending
		}
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		s.Page = page
	}
	if perPage := values.Get("per_page"); perPage != "" {
		if strings.EqualFold(perPage, "all") {
			s.PageSize = query.PageSizeAll
		} else if size, err := strconv.Atoi(perPage); err == nil && (size > 0 || size == query.PageSizeAll) {
			s.PageSize = size
		}
	}
	if tp, err := strconv.Atoi(values.Get("tp")); err == nil && tp >= 0 {
		s.TotalPages = tp
	}
	return s
}

func (s State) IsTable() bool {
	return s.Tab != TabHome
}

func (s State) Kind() dataset.Kind {
	return dataset.Kind(s.Tab)
}

// Query is the engine query this view asks for
func (s State) Query() query.Query {
	return query.Query{
		Search:   s.Search,
		Date:     s.Date,
		Sort:     s.Sort,
		Page:     s.Page,
		PageSize: s.PageSize,
	}
}

// Values encodes the view, leaving out anything at its default so URL's stay short
func (s State) Values(defaultPageSize int) url.Values {
	values := url.Values{}
	if s.Tab != "" && s.Tab != TabHome {
		values.Set("tab", s.Tab)
	}
	if s.Search != "" {
		values.Set("search", s.Search)
	}
	if s.Date.Year != "" {
		values.Set("year", s.Date.Year)
	}
	if s.Date.Month != "" {
		values.Set("month", s.Date.Month)
	}
	if s.Sort.Active() {
		values.Set("sort", string(s.Sort.Key))
		values.Set("dir", string(s.Sort.Dir))
	}
	if s.Page > 1 {
		values.Set("page", strconv.Itoa(s.Page))
		values.Set("tp", strconv.Itoa(s.TotalPages))
	}
	if s.PageSize != defaultPageSize {
		if s.PageSize == query.PageSizeAll {
			values.Set("per_page", "all")
		} else {
			values.Set("per_page", strconv.Itoa(s.PageSize))
		}
	}
	if s.Lang != "" {
		values.Set("lang", s.Lang)
	}
	return values
}

// Link is the relative URL for the view
func (s State) Link(defaultPageSize int) string {
	encoded := s.Values(defaultPageSize).Encode()
	if encoded == "" {
		return "/"
	}
	return "/?" + encoded
}

// WithTab moves to another tab, search text is kept but filters, sort and page belong to the old table
func (s State) WithTab(tab string) State {
	return State{Tab: tab, Search: s.Search, Page: 1, PageSize: s.PageSize, Lang: s.Lang}
}

func (s State) WithSearch(search string) State {
	s.Search = search
	s.Page = 1
	return s
}

// WithSort toggles the column the way clicking its header does
func (s State) WithSort(key query.Field) State {
	s.Sort = s.Sort.Toggle(key)
	s.Page = 1
	return s
}

func (s State) WithPage(page, totalPages int) State {
	s.Page = page
	s.TotalPages = totalPages
	return s
}

func (s State) WithPageSize(size int) State {
	s.PageSize = size
	s.Page = 1
	return s
}

func (s State) WithLang(lang string) State {
	s.Lang = lang
	return s
}

// Resolve runs the view's query over the rows of its tab. The page goes back to the first one
// when the number of pages is not the one the page link was made against
func (s State) Resolve(rows []query.Row) (State, query.Result) {
	q := s.Query()
	filtered := query.Filter(rows, q.Search, q.Date)
	totalPages := query.TotalPages(len(filtered), q.PageSize)
	pager := query.Pager{Kind: s.Kind(), TotalPages: s.TotalPages, Page: s.Page}.Sync(s.Kind(), totalPages)
	q.Page = pager.Page
	result := query.Run(filtered, q)
	s.Page = result.Page
	s.TotalPages = result.TotalPages
	return s, result
}
