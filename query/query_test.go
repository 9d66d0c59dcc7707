package query

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ralim/nxmissing/dataset"
)

func sampleDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Titles: map[string]dataset.TitleRecord{
			"0100AAAA00000000": {ID: "0100AAAA00000000", ReleaseDate: "2024-01-15", Name: "Alpha Quest", Size: 300},
			"0100BBBB00000000": {ID: "0100BBBB00000000", ReleaseDate: "2023-06-02", Name: "beta racer", Size: 100},
			"0100CCCC00000000": {ID: "0100CCCC00000000", ReleaseDate: "2024-03-30", Name: "Gamma", Size: 200},
			"0100DDDD00000000": {ID: "0100DDDD00000000", ReleaseDate: "not a date", Name: "Delta", Size: 0},
		},
		DLCs: map[string]dataset.DLCRecord{
			"0100AAAA00001001": {ID: "0100AAAA00001001", ReleaseDate: "2024-02-01", Name: "Alpha Pack", BaseGame: "Alpha Quest", Size: 50},
		},
		Updates: map[string]dataset.UpdateRecord{
			"0100AAAA00000800": {ID: "0100AAAA00000800", GameName: "Alpha Quest", Version: "v65536", ReleaseDate: "2024-02-10"},
		},
		OldUpdates: map[string][]dataset.OldUpdateVersion{
			"0100BBBB00000800": {
				{Version: "v3", ReleaseDate: "2023-09-01"},
				{Version: "v1", ReleaseDate: "2023-07-01"},
				{Version: "v2", ReleaseDate: "2023-08-01"},
			},
			"0100AAAA00000800": {
				{Version: "v1", ReleaseDate: "2024-02-01"},
			},
		},
	}
}

func ids(rows []Row) []string {
	result := make([]string, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.ID)
	}
	return result
}

func TestFlatten(t *testing.T) {
	ds := sampleDataset()
	rows := Flatten(ds, dataset.KindTitles)
	if diff := cmp.Diff([]string{"0100AAAA00000000", "0100BBBB00000000", "0100CCCC00000000", "0100DDDD00000000"}, ids(rows)); diff != "" {
		t.Errorf("unexpected title rows (-want +got):\n%s", diff)
	}
	dlcs := Flatten(ds, dataset.KindDLCs)
	want := []Row{{Kind: dataset.KindDLCs, ID: "0100AAAA00001001", Name: "Alpha Pack", BaseGame: "Alpha Quest", ReleaseDate: "2024-02-01", Size: 50}}
	if diff := cmp.Diff(want, dlcs); diff != "" {
		t.Errorf("unexpected dlc rows (-want +got):\n%s", diff)
	}
	old := Flatten(ds, dataset.KindOldUpdates)
	if len(old) != 4 || old[0].ID != "0100AAAA00000800" || old[1].Version != "v3" {
		t.Errorf("old updates should flatten one row per version, got %+v", old)
	}
	if rows := Flatten(nil, dataset.KindTitles); len(rows) != 0 {
		t.Error("nil dataset should give no rows")
	}
	if rows := Flatten(ds, dataset.Kind("home")); len(rows) != 0 {
		t.Error("unknown kind should give no rows")
	}
}

func TestRegroupRoundTrip(t *testing.T) {
	ds := sampleDataset()
	regrouped := Regroup(Flatten(ds, dataset.KindOldUpdates))
	if !reflect.DeepEqual(regrouped, ds.OldUpdates) {
		t.Errorf("regrouping should restore the version order, %+v <-> %+v", ds.OldUpdates, regrouped)
	}
}

func TestMatchText(t *testing.T) {
	rows := Flatten(sampleDataset(), dataset.KindTitles)
	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"0100AAAA00000000", "0100BBBB00000000", "0100CCCC00000000", "0100DDDD00000000"}},
		{"BETA", []string{"0100BBBB00000000"}},
		{"0100cccc", []string{"0100CCCC00000000"}},
		{"2024-0", []string{"0100AAAA00000000", "0100CCCC00000000"}},
		{"300", []string{"0100AAAA00000000"}},
		{"nothing like this", []string{}},
	}
	for _, test := range tests {
		got := ids(Filter(rows, test.search, DateFilter{}))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("search %q (-want +got):\n%s", test.search, diff)
		}
	}
}

func TestSearchSkipsFieldsTheKindDoesNotShow(t *testing.T) {
	rows := []Row{{Kind: dataset.KindOldUpdates, ID: "0100BBBB00000800", Name: "hidden", Version: "v1", ReleaseDate: "2023-01-01"}}
	if got := Filter(rows, "hidden", DateFilter{}); len(got) != 0 {
		t.Error("old updates have no name column, so it should not match")
	}
}

func TestDateFilter(t *testing.T) {
	rows := Flatten(sampleDataset(), dataset.KindTitles)
	tests := []struct {
		filter DateFilter
		want   []string
	}{
		{DateFilter{Year: "2024"}, []string{"0100AAAA00000000", "0100CCCC00000000"}},
		{DateFilter{Month: "06"}, []string{"0100BBBB00000000"}},
		{DateFilter{Year: "2024", Month: "03"}, []string{"0100CCCC00000000"}},
		{DateFilter{Year: "2024", Month: "06"}, []string{}},
		{DateFilter{Year: "1999"}, []string{}},
	}
	for _, test := range tests {
		got := ids(Filter(rows, "", test.filter))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("filter %+v (-want +got):\n%s", test.filter, diff)
		}
	}
}

func TestSortSizeReverses(t *testing.T) {
	rows := Flatten(sampleDataset(), dataset.KindTitles)
	asc := make([]Row, len(rows))
	copy(asc, rows)
	Sort{Key: FieldSize, Dir: Ascending}.Apply(asc)
	if diff := cmp.Diff([]string{"0100DDDD00000000", "0100BBBB00000000", "0100CCCC00000000", "0100AAAA00000000"}, ids(asc)); diff != "" {
		t.Errorf("ascending size (-want +got):\n%s", diff)
	}
	desc := make([]Row, len(rows))
	copy(desc, rows)
	Sort{Key: FieldSize, Dir: Descending}.Apply(desc)
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("descending should be the exact reverse, %v <-> %v", ids(asc), ids(desc))
		}
	}
}

func TestSortKeys(t *testing.T) {
	rows := Flatten(sampleDataset(), dataset.KindTitles)
	Sort{Key: FieldReleaseDate, Dir: Ascending}.Apply(rows)
	// The bad date sorts as the zero time, so first
	if diff := cmp.Diff([]string{"0100DDDD00000000", "0100BBBB00000000", "0100AAAA00000000", "0100CCCC00000000"}, ids(rows)); diff != "" {
		t.Errorf("release date sort (-want +got):\n%s", diff)
	}
	Sort{Key: FieldName, Dir: Ascending}.Apply(rows)
	// Case sensitive, so lower case beta goes last
	if diff := cmp.Diff([]string{"Alpha Quest", "Delta", "Gamma", "beta racer"}, values(rows, FieldName)); diff != "" {
		t.Errorf("name sort (-want +got):\n%s", diff)
	}
}

func values(rows []Row, f Field) []string {
	result := []string{}
	for _, r := range rows {
		result = append(result, r.Value(f))
	}
	return result
}

func TestSortIsStable(t *testing.T) {
	rows := Flatten(sampleDataset(), dataset.KindOldUpdates)
	Sort{Key: FieldID, Dir: Descending}.Apply(rows)
	// Same ID rows keep their version order
	if diff := cmp.Diff([]string{"v3", "v1", "v2", "v1"}, values(rows, FieldVersion)); diff != "" {
		t.Errorf("stable sort (-want +got):\n%s", diff)
	}
}

func TestSortToggle(t *testing.T) {
	s := Sort{}
	s = s.Toggle(FieldSize)
	if s != (Sort{Key: FieldSize, Dir: Ascending}) {
		t.Errorf("first select should be ascending, got %+v", s)
	}
	s = s.Toggle(FieldSize)
	if s.Dir != Descending {
		t.Errorf("second select should be descending, got %+v", s)
	}
	s = s.Toggle(FieldSize)
	if s.Dir != Ascending {
		t.Errorf("third select should be ascending again, got %+v", s)
	}
	s = s.Toggle(FieldSize).Toggle(FieldName)
	if s != (Sort{Key: FieldName, Dir: Ascending}) {
		t.Errorf("new key should reset to ascending, got %+v", s)
	}
}

func makeRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{Kind: dataset.KindTitles, ID: fmt.Sprintf("%016d", i), ReleaseDate: "2024-01-01"}
	}
	return rows
}

func TestRunPagination(t *testing.T) {
	rows := makeRows(25)
	tests := []struct {
		page, size       int
		wantLen, wantTot int
	}{
		{1, 10, 10, 3},
		{3, 10, 5, 3},
		{4, 10, 0, 3},
		{0, 10, 10, 3},
		{1, 50, 25, 1},
		{1, PageSizeAll, 25, 1},
		{7, PageSizeAll, 25, 1},
	}
	for _, test := range tests {
		result := Run(rows, Query{Page: test.page, PageSize: test.size})
		if len(result.Rows) != test.wantLen || result.TotalPages != test.wantTot || result.Total != 25 {
			t.Errorf("page %d size %d: got %d rows, %d pages, %d total", test.page, test.size, len(result.Rows), result.TotalPages, result.Total)
		}
	}
	third := Run(rows, Query{Page: 3, PageSize: 10})
	if third.Rows[0].ID != rows[20].ID {
		t.Errorf("page 3 should start at row 20, got %s", third.Rows[0].ID)
	}
}

func TestRunEmptyResult(t *testing.T) {
	result := Run(makeRows(5), Query{Search: "zzz", Page: 1, PageSize: 10})
	if result.Total != 0 || result.TotalPages != 0 || len(result.Rows) != 0 {
		t.Errorf("no match should be 0 rows and 0 pages, got %+v", result)
	}
	result = Run(nil, Query{Page: 1, PageSize: PageSizeAll})
	if result.TotalPages != 0 {
		t.Errorf("empty set on all should have 0 pages, got %d", result.TotalPages)
	}
}

func TestRunAllPageSize(t *testing.T) {
	rows := makeRows(1234)
	result := Run(rows, Query{Page: 1, PageSize: PageSizeAll, Sort: Sort{Key: FieldID, Dir: Descending}})
	if len(result.Rows) != 1234 || result.TotalPages != 1 {
		t.Errorf("all should put every row on one page, got %d rows %d pages", len(result.Rows), result.TotalPages)
	}
	if result.Rows[0].ID != rows[1233].ID {
		t.Error("sort should apply before paging")
	}
	if rows[0].ID != fmt.Sprintf("%016d", 0) {
		t.Error("run should not reorder the input")
	}
}

func TestPagerSync(t *testing.T) {
	p := Pager{Kind: dataset.KindTitles, TotalPages: 5, Page: 3}
	if got := p.Sync(dataset.KindTitles, 5); got.Page != 3 {
		t.Errorf("nothing changed, page should stay, got %+v", got)
	}
	if got := p.Sync(dataset.KindDLCs, 5); got.Page != 1 {
		t.Errorf("changing kind should reset, got %+v", got)
	}
	if got := p.Sync(dataset.KindTitles, 4); got.Page != 1 || got.TotalPages != 4 {
		t.Errorf("changing page count should reset, got %+v", got)
	}
	if got := (Pager{Kind: dataset.KindTitles, TotalPages: 5}).Sync(dataset.KindTitles, 5); got.Page != 1 {
		t.Errorf("an unset page should become the first, got %+v", got)
	}
}

func TestYears(t *testing.T) {
	years := Years(Flatten(sampleDataset(), dataset.KindTitles))
	if diff := cmp.Diff([]string{"2024", "2023"}, years); diff != "" {
		t.Errorf("years (-want +got):\n%s", diff)
	}
}

func TestSplitByRelease(t *testing.T) {
	rows := Flatten(sampleDataset(), dataset.KindTitles)
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	recent, upcoming := SplitByRelease(rows, now, 1)
	if diff := cmp.Diff([]string{"0100AAAA00000000"}, ids(recent)); diff != "" {
		t.Errorf("recent (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0100CCCC00000000"}, ids(upcoming)); diff != "" {
		t.Errorf("upcoming (-want +got):\n%s", diff)
	}
	recent, _ = SplitByRelease(rows, now, 8)
	if diff := cmp.Diff([]string{"0100AAAA00000000", "0100BBBB00000000"}, ids(recent)); diff != "" {
		t.Errorf("recent should be newest first (-want +got):\n%s", diff)
	}
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2024-01-15", "2024-01-15T10:00:00Z", "20240115", "2024-01-15 10:00:00"} {
		d, ok := ParseDate(s)
		if !ok || d.Year() != 2024 || d.Month() != time.January || d.Day() != 15 {
			t.Errorf("%s should parse, got %v %v", s, d, ok)
		}
	}
	if _, ok := ParseDate("soon"); ok {
		t.Error("garbage should not parse")
	}
}
