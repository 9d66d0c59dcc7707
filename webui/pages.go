package webui

import (
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/ralim/nxmissing/dataset"
	"github.com/ralim/nxmissing/query"
	"github.com/ralim/nxmissing/titleid"
	"github.com/ralim/nxmissing/viewstate"
	"golang.org/x/text/message"
)

type link struct {
	Label  string
	Link   string
	Active bool
	Count  string
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type hiddenField struct {
	Name  string
	Value string
}

// basePage has what every page needs for its header, footer and translations
type basePage struct {
	SiteTitle string
	Lang      Language
	State     viewstate.State
	Tabs      []link
	Languages []link
	printer   *message.Printer
}

func (p basePage) T(key string) string {
	return p.printer.Sprintf(key)
}

func (p basePage) Number(n int) string {
	return p.printer.Sprintf("%d", n)
}

func (web *WebUI) newBasePage(state viewstate.State, lang Language, counts *dataset.Counts) basePage {
	p := basePage{
		SiteTitle: web.opts.SiteTitle,
		Lang:      lang,
		State:     state,
		printer:   newPrinter(lang),
	}
	p.Tabs = append(p.Tabs, link{
		Label:  p.T("tab.home"),
		Link:   state.WithTab(viewstate.TabHome).Link(web.opts.DefaultPageSize),
		Active: !state.IsTable(),
	})
	for _, kind := range dataset.Kinds {
		tab := link{
			Label:  p.T("tab." + string(kind)),
			Link:   state.WithTab(string(kind)).Link(web.opts.DefaultPageSize),
			Active: state.Kind() == kind,
		}
		if counts != nil {
			tab.Count = p.Number(counts.Of(kind))
		}
		p.Tabs = append(p.Tabs, tab)
	}
	for _, l := range Languages {
		p.Languages = append(p.Languages, link{
			Label:  l.Name,
			Link:   state.WithLang(l.Code).Link(web.opts.DefaultPageSize),
			Active: l.Code == lang.Code,
		})
	}
	return p
}

type card struct {
	ID    string
	Name  string
	Image string
	Date  string
	Timer ReleaseTimer
}

type homeSection struct {
	Title    string
	Link     string
	Banner   bool
	Recent   []card
	Upcoming []card
}

type homePage struct {
	basePage
	Total       string
	Counts      []link
	ViewAllLink string
	Sections    []homeSection
}

// Cards shown per home page section
const (
	bannerCards = 6
	iconCards   = 8
)

func (web *WebUI) RenderHome(writer io.Writer, ds *dataset.Dataset, state viewstate.State, lang Language) error {
	counts := ds.Counts()
	page := homePage{
		basePage:    web.newBasePage(state, lang, &counts),
		ViewAllLink: state.WithTab(string(dataset.KindTitles)).Link(web.opts.DefaultPageSize),
	}
	page.Total = page.Number(counts.Total())
	for _, kind := range dataset.Kinds {
		page.Counts = append(page.Counts, link{
			Label: page.T("tab." + string(kind)),
			Link:  state.WithTab(string(kind)).Link(web.opts.DefaultPageSize),
			Count: page.Number(counts.Of(kind)),
		})
	}
	sections := []struct {
		key    string
		kind   dataset.Kind
		banner bool
	}{
		{"home.sections.games", dataset.KindTitles, true},
		{"home.sections.updates", dataset.KindUpdates, false},
		{"home.sections.dlcs", dataset.KindDLCs, false},
	}
	now := web.now()
	for _, s := range sections {
		n := iconCards
		if s.banner {
			n = bannerCards
		}
		recent, upcoming := query.SplitByRelease(query.Flatten(ds, s.kind), now, n)
		if len(recent) == 0 && len(upcoming) == 0 {
			continue
		}
		page.Sections = append(page.Sections, homeSection{
			Title:    page.T(s.key),
			Link:     state.WithTab(string(s.kind)).Link(web.opts.DefaultPageSize),
			Banner:   s.banner,
			Recent:   web.cards(recent, s.banner, now, page.printer),
			Upcoming: web.cards(upcoming, s.banner, now, page.printer),
		})
	}
	return web.render(writer, "home", page)
}

func (web *WebUI) cards(rows []query.Row, banner bool, now time.Time, p *message.Printer) []card {
	cards := make([]card, 0, len(rows))
	for _, r := range rows {
		image := titleid.IconURL(web.opts.ImageServiceURL, r.ID)
		if banner {
			image = titleid.BannerURL(web.opts.ImageServiceURL, r.ID)
		}
		cards = append(cards, card{
			ID:    r.ID,
			Name:  Truncate(r.Name, web.opts.NameCharacterBudget),
			Image: image,
			Date:  FormatDate(r.ReleaseDate),
			Timer: NewReleaseTimer(r.ReleaseDate, now, p),
		})
	}
	return cards
}

type column struct {
	Label  string
	Link   string
	Sorted bool
	Desc   bool
}

type tableRow struct {
	ID    string
	Icon  string
	Cells []string
}

type tablePage struct {
	basePage
	Kind      dataset.Kind
	Columns   []column
	Rows      []tableRow
	Result    query.Result
	Results   string
	PageOf    string
	Hidden    []hiddenField
	Years     []option
	Months    []option
	PageSizes []link
	First     string
	Previous  string
	Next      string
	Last      string
}

func (web *WebUI) RenderTable(writer io.Writer, ds *dataset.Dataset, state viewstate.State, lang Language) error {
	counts := ds.Counts()
	rows := query.Flatten(ds, state.Kind())
	state, result := state.Resolve(rows)
	dps := web.opts.DefaultPageSize
	page := tablePage{
		basePage: web.newBasePage(state, lang, &counts),
		Kind:     state.Kind(),
		Result:   result,
	}
	page.Results = page.printer.Sprintf("table.results", result.Total)
	if result.TotalPages > 0 {
		page.PageOf = page.printer.Sprintf("table.pageOf", result.Page, result.TotalPages)
	}

	columns := query.Columns(state.Kind())
	for _, f := range columns {
		page.Columns = append(page.Columns, column{
			Label:  page.T("column." + string(f)),
			Link:   state.WithSort(f).Link(dps),
			Sorted: state.Sort.Key == f,
			Desc:   state.Sort.Key == f && state.Sort.Dir == query.Descending,
		})
	}
	for _, r := range result.Rows {
		row := tableRow{ID: r.ID, Icon: titleid.IconURL(web.opts.ImageServiceURL, r.ID)}
		for _, f := range columns {
			row.Cells = append(row.Cells, web.cell(r, f))
		}
		page.Rows = append(page.Rows, row)
	}

	// The filter form resubmits everything but the fields it owns, and the page
	values := state.Values(dps)
	for _, owned := range []string{"search", "year", "month", "page", "tp"} {
		values.Del(owned)
	}
	page.Hidden = hiddenFields(values)
	page.Years = append(page.Years, option{Label: page.T("table.allYears")})
	for _, y := range query.Years(rows) {
		page.Years = append(page.Years, option{Value: y, Label: y, Selected: y == state.Date.Year})
	}
	page.Months = append(page.Months, option{Label: page.T("table.allMonths")})
	for m := 1; m <= 12; m++ {
		value := fmt.Sprintf("%02d", m)
		page.Months = append(page.Months, option{Value: value, Label: value, Selected: value == state.Date.Month})
	}
	for _, size := range viewstate.PageSizes {
		page.PageSizes = append(page.PageSizes, link{
			Label:  strconv.Itoa(size),
			Link:   state.WithPageSize(size).Link(dps),
			Active: state.PageSize == size,
		})
	}
	page.PageSizes = append(page.PageSizes, link{
		Label:  page.T("table.all"),
		Link:   state.WithPageSize(query.PageSizeAll).Link(dps),
		Active: state.PageSize == query.PageSizeAll,
	})

	if result.Page > 1 && result.TotalPages > 0 {
		page.First = state.WithPage(1, result.TotalPages).Link(dps)
		previous := result.Page - 1
		if previous > result.TotalPages {
			previous = result.TotalPages
		}
		page.Previous = state.WithPage(previous, result.TotalPages).Link(dps)
	}
	if result.Page < result.TotalPages {
		page.Next = state.WithPage(result.Page+1, result.TotalPages).Link(dps)
		page.Last = state.WithPage(result.TotalPages, result.TotalPages).Link(dps)
	}
	return web.render(writer, "table", page)
}

func (web *WebUI) cell(r query.Row, f query.Field) string {
	switch f {
	case query.FieldName, query.FieldBaseGame:
		return Truncate(r.Value(f), web.opts.NameCharacterBudget)
	case query.FieldSize:
		return FormatSize(r.Size)
	case query.FieldReleaseDate:
		return FormatDate(r.ReleaseDate)
	}
	return r.Value(f)
}

func hiddenFields(values url.Values) []hiddenField {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := make([]hiddenField, 0, len(names))
	for _, name := range names {
		fields = append(fields, hiddenField{Name: name, Value: values.Get(name)})
	}
	return fields
}

type errorPage struct {
	basePage
	Message   string
	RetryLink string
}

// RenderError is shown in place of any page while the data could not be loaded
func (web *WebUI) RenderError(writer io.Writer, state viewstate.State, lang Language, loadErr error) error {
	page := errorPage{
		basePage:  web.newBasePage(state, lang, nil),
		RetryLink: "/reload?next=" + url.QueryEscape(state.Link(web.opts.DefaultPageSize)),
	}
	if loadErr != nil {
		page.Message = loadErr.Error()
	}
	return web.render(writer, "error", page)
}
